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

// ListSalesPersons handles GET /api/salesPerson.
func ListSalesPersons(c *gin.Context) {
	page, size := utils.ParsePagination(c)
	search := c.Query("search")
	role := c.Query("role")

	query := bson.M{}
	if search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"userCode": bson.M{"$regex": search, "$options": "i"}},
			{"email": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if role != "" && role != "all" {
		query["role"] = role
	}

	ctx := repository.GetContext()
	coll := repository.Collection(repository.SalesPersonsCollection)

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

	var users []models.SalesPerson
	if err := cursor.All(ctx, &users); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, users, total, service.TotalPages(total, size))
}

// GetSalesPerson handles GET /api/salesPerson/:id.
func GetSalesPerson(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	var user models.SalesPerson
	err = repository.Collection(repository.SalesPersonsCollection).
		FindOne(ctx, bson.M{"_id": objID}).
		Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("sales person"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, user, "")
}

// CreateSalesPerson handles POST /api/salesPerson.
func CreateSalesPerson(c *gin.Context) {
	var input models.CreateSalesPersonRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	now := time.Now()
	user := models.SalesPerson{
		UserCode:  strings.ToUpper(strings.TrimSpace(input.UserCode)),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  utils.HashPassword(input.Password),
		Role:      input.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.SalesPersonsCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.HandleError(c, utils.CreateBadRequestError(
				fmt.Sprintf("userCode %q already exists", user.UserCode)))
			return
		}
		utils.HandleError(c, err)
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	utils.SuccessResponse(c, user, "sales person created", http.StatusCreated)
}

// UpdateSalesPerson handles PUT /api/salesPerson/:id.
func UpdateSalesPerson(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	var input models.UpdateSalesPersonRequest
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
	if input.Password != "" {
		set["password"] = utils.HashPassword(input.Password)
	}
	if input.Role != "" {
		set["role"] = input.Role
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.SalesPersonsCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("sales person"))
		return
	}

	utils.SuccessResponse(c, nil, "sales person updated")
}

// DeleteSalesPerson handles DELETE /api/salesPerson/:id.
func DeleteSalesPerson(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.SalesPersonsCollection).
		DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("sales person"))
		return
	}

	utils.SuccessResponse(c, nil, "sales person deleted")
}

// ImportSalesPersons handles POST /api/salesPerson/import. Imported accounts
// get their userCode as initial password; set-password rotates it.
func ImportSalesPersons(c *gin.Context) {
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
		userCode := strings.ToUpper(strings.TrimSpace(row["User Code"]))
		name := strings.TrimSpace(row["Name"])
		if userCode == "" || name == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing User Code or Name", i+2))
			continue
		}
		role := models.UserRoleSales
		if strings.EqualFold(strings.TrimSpace(row["Role"]), string(models.UserRoleAdmin)) {
			role = models.UserRoleAdmin
		}
		docs = append(docs, models.SalesPerson{
			UserCode:  userCode,
			Name:      name,
			Email:     strings.TrimSpace(row["Email"]),
			Phone:     strings.TrimSpace(row["Phone"]),
			Password:  utils.HashPassword(userCode),
			Role:      role,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(docs) == 0 {
		utils.HandleError(c, utils.CreateBadRequestError(
			fmt.Sprintf("no importable rows in %s: %v", fileName, rowErrors)))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.SalesPersonsCollection).
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
	}, "sales person import finished")

	utils.SuccessResponse(c, gin.H{"imported": inserted},
		fmt.Sprintf("imported %d sales persons from %s", inserted, fileName))
}
