package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/service"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// ListRemarks handles GET /api/remarks, filterable by entity and client.
func ListRemarks(c *gin.Context) {
	page, size := utils.ParsePagination(c)

	query := bson.M{}
	if v := c.Query("entityType"); v != "" && v != "all" {
		query["entityType"] = v
	}
	if v := c.Query("entityId"); v != "" {
		query["entityId"] = v
	}
	if v := c.Query("clientCode"); v != "" {
		query["clientCode"] = v
	}
	if v := c.Query("salesExecCode"); v != "" && v != "all" {
		query["salesExecCode"] = v
	}

	ctx := repository.GetContext()
	coll := repository.Collection(repository.RemarksCollection)

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * size).
		SetLimit(size)

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	var remarks []models.Remark
	if err := cursor.All(ctx, &remarks); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, remarks, total, service.TotalPages(total, size))
}

// CreateRemark handles POST /api/remarks.
func CreateRemark(c *gin.Context) {
	var input models.RemarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	now := time.Now()
	docs := service.RemarkDocs([]models.RemarkInput{input}, now)

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.RemarksCollection).InsertOne(ctx, docs[0])
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	remark := docs[0].(models.Remark)
	remark.ID = res.InsertedID.(primitive.ObjectID)
	utils.SuccessResponse(c, remark, "remark created", http.StatusCreated)
}

// CreateRemarksBulk handles POST /api/remarks/bulk: one batched insert of
// per-record remark inputs derived by the caller from each selected record.
func CreateRemarksBulk(c *gin.Context) {
	var input models.BulkRemarkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	now := time.Now()
	docs := service.RemarkDocs(input.Remarks, now)

	// no retry: re-running the batch after a partial failure would insert
	// the committed prefix a second time
	ctx := repository.GetContext()
	res, err := repository.Collection(repository.RemarksCollection).
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
		"requested": len(docs),
		"inserted":  inserted,
	}, "bulk remarks created")

	utils.SuccessResponse(c, models.BulkResult{
		Matched:  int64(len(docs)),
		Affected: int64(inserted),
	}, "remarks created", http.StatusCreated)
}

// DeleteRemark handles DELETE /api/remarks/:id.
func DeleteRemark(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(repository.RemarksCollection).
		DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("remark"))
		return
	}

	utils.SuccessResponse(c, nil, "remark deleted")
}
