package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/service"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// ListClients handles GET /api/client. Sales executives see only their own
// clients.
func ListClients(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	page, size := utils.ParsePagination(c)
	search := c.Query("search")
	salesExecCode := c.Query("salesExecCode")
	if models.UserRole(user.Role) == models.UserRoleSales {
		salesExecCode = user.UserCode
	}

	query := bson.M{}
	if search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"userCode": bson.M{"$regex": search, "$options": "i"}},
			{"phone": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if salesExecCode != "" && salesExecCode != "all" {
		query["salesExecCode"] = salesExecCode
	}

	ctx := repository.GetContext()
	coll := repository.Collection(repository.ClientsCollection)

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "userCode", Value: 1}}).
		SetSkip((page - 1) * size).
		SetLimit(size)

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, clients, total, service.TotalPages(total, size))
}

// GetClient handles GET /api/client/:id.
func GetClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	var client models.Client
	err = repository.Collection(repository.ClientsCollection).
		FindOne(ctx, bson.M{"_id": objID}).
		Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("client"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, client, "")
}

// CreateClient handles POST /api/client.
func CreateClient(c *gin.Context) {
	var input models.CreateClientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	now := time.Now()
	client := models.Client{
		UserCode:      strings.ToUpper(strings.TrimSpace(input.UserCode)),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		SalesExecCode: input.SalesExecCode,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.ClientsCollection).InsertOne(ctx, client)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.HandleError(c, utils.CreateBadRequestError(
				fmt.Sprintf("userCode %q already exists", client.UserCode)))
			return
		}
		utils.HandleError(c, err)
		return
	}
	client.ID = res.InsertedID.(primitive.ObjectID)

	utils.SuccessResponse(c, client, "client created", http.StatusCreated)
}

// UpdateClient handles PUT /api/client/:id. The userCode business key is
// immutable; follow-up records join on it.
func UpdateClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	var input models.UpdateClientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.SalesExecCode != "" {
		set["salesExecCode"] = input.SalesExecCode
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.ClientsCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("client"))
		return
	}

	utils.SuccessResponse(c, nil, "client updated")
}

// DeleteClient handles DELETE /api/client/:id.
func DeleteClient(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.ClientsCollection).
		DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("client"))
		return
	}

	utils.SuccessResponse(c, nil, "client deleted")
}

// ImportClients handles POST /api/client/import.
func ImportClients(c *gin.Context) {
	rows, fileName, err := utils.ReadExcelFile(c, "file", "")
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	now := time.Now()
	batchID := uuid.NewString()

	var docs []interface{}
	var rowErrors []string
	for i, row := range rows {
		userCode := strings.ToUpper(strings.TrimSpace(row["Client Code"]))
		name := strings.TrimSpace(row["Client Name"])
		if userCode == "" || name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing Client Code or Client Name", i+2))
			continue
		}
		docs = append(docs, models.Client{
			UserCode:      userCode,
			Name:          name,
			Email:         strings.TrimSpace(row["Email"]),
			Phone:         strings.TrimSpace(row["Phone"]),
			SalesExecCode: strings.TrimSpace(row["Sales Exec"]),
			IsActive:      true,
			ImportBatchID: batchID,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	if len(docs) == 0 {
		utils.HandleError(c, utils.CreateBadRequestError(
			fmt.Sprintf("no importable rows in %s: %v", fileName, rowErrors)))
		return
	}

	// unordered insert: duplicate codes skip, the rest land
	ctx := repository.GetContext()
	res, err := repository.Collection(repository.ClientsCollection).
		InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil && inserted == 0 {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"file":     fileName,
		"batchId":  batchID,
		"inserted": inserted,
		"skipped":  len(rowErrors),
	}, "client import finished")

	message := fmt.Sprintf("imported %d clients from %s", inserted, fileName)
	if len(rowErrors) > 0 {
		message = fmt.Sprintf("%s (%d rows skipped)", message, len(rowErrors))
	}
	utils.SuccessResponse(c, gin.H{"imported": inserted, "batchId": batchID}, message)
}

// ExportClients handles GET /api/client/export.
func ExportClients(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	query := bson.M{}
	if models.UserRole(user.Role) == models.UserRoleSales {
		query["salesExecCode"] = user.UserCode
	}

	ctx := repository.GetContext()
	cursor, err := repository.Collection(repository.ClientsCollection).
		Find(ctx, query, options.Find().
			SetSort(bson.D{{Key: "userCode", Value: 1}}).
			SetLimit(service.FetchAllCap))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		utils.HandleError(c, err)
		return
	}

	if len(clients) == 0 {
		utils.HandleError(c, utils.CreateBadRequestError("no clients to export"))
		return
	}

	headers := []string{"Client Code", "Client Name", "Email", "Phone", "Sales Exec", "Active"}
	rows := make([][]string, 0, len(clients))
	for _, cl := range clients {
		active := "no"
		if cl.IsActive {
			active = "yes"
		}
		rows = append(rows, []string{cl.UserCode, cl.Name, cl.Email, cl.Phone, cl.SalesExecCode, active})
	}

	workbook, err := service.WriteWorkbook(headers, rows, "Clients")
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer workbook.Close()

	fileName := service.ExportFileName("Clients", time.Now())
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		utils.LogError(err, map[string]interface{}{"file": fileName}, "workbook write failed")
	}
}
