package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/service"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// DeleteMultiple handles POST /api/shared/delete-multiple: bulk delete of a
// selection within one entity type. The result reports the actual deleted
// count; callers keep their selection on failure.
func DeleteMultiple(c *gin.Context) {
	var input models.BulkIDsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	collName, ok := repository.RecordCollections[input.EntityType]
	if !ok {
		utils.HandleError(c, utils.CreateBadRequestError("unknown entity type"))
		return
	}

	filter, err := service.BulkSelectionFilter(input.IDs)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return repository.Collection(collName).DeleteMany(ctx, filter)
	}, 3)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	deleted := res.(*mongo.DeleteResult).DeletedCount

	utils.LogInfo(map[string]interface{}{
		"entityType": input.EntityType,
		"requested":  len(input.IDs),
		"deleted":    deleted,
	}, "bulk delete finished")

	utils.SuccessResponse(c, models.BulkResult{
		Matched:  int64(len(input.IDs)),
		Affected: deleted,
	}, fmt.Sprintf("deleted %d of %d records", deleted, len(input.IDs)))
}

// UpdateStatus handles POST /api/shared/update-status: bulk status change of
// a selection within one entity type.
func UpdateStatus(c *gin.Context) {
	var input models.BulkStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	collName, ok := repository.RecordCollections[input.EntityType]
	if !ok {
		utils.HandleError(c, utils.CreateBadRequestError("unknown entity type"))
		return
	}

	filter, err := service.BulkSelectionFilter(input.IDs)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	ctx := repository.GetContext()
	update := service.BulkStatusUpdate(input.Status, time.Now())
	res, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return repository.Collection(collName).UpdateMany(ctx, filter, update)
	}, 3)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	updateRes := res.(*mongo.UpdateResult)

	utils.LogInfo(map[string]interface{}{
		"entityType": input.EntityType,
		"status":     input.Status,
		"matched":    updateRes.MatchedCount,
		"modified":   updateRes.ModifiedCount,
	}, "bulk status update finished")

	utils.SuccessResponse(c, models.BulkResult{
		Matched:  updateRes.MatchedCount,
		Affected: updateRes.ModifiedCount,
	}, fmt.Sprintf("updated %d of %d records", updateRes.ModifiedCount, len(input.IDs)))
}

// DeleteMultipleUsers handles POST /api/shared/delete-multiple-users for
// sales person and client accounts.
func DeleteMultipleUsers(c *gin.Context) {
	var input models.BulkUsersRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	var collName string
	switch input.UserType {
	case "salesPerson":
		collName = repository.SalesPersonsCollection
	case "client":
		collName = repository.ClientsCollection
	default:
		utils.HandleError(c, utils.CreateBadRequestError("unknown user type"))
		return
	}

	filter, err := service.BulkSelectionFilter(input.IDs)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.ExecuteDbOperation(func() (interface{}, error) {
		return repository.Collection(collName).DeleteMany(ctx, filter)
	}, 3)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	deleted := res.(*mongo.DeleteResult).DeletedCount

	utils.LogInfo(map[string]interface{}{
		"userType":  input.UserType,
		"requested": len(input.IDs),
		"deleted":   deleted,
	}, "bulk user delete finished")

	utils.SuccessResponse(c, models.BulkResult{
		Matched:  int64(len(input.IDs)),
		Affected: deleted,
	}, fmt.Sprintf("deleted %d of %d accounts", deleted, len(input.IDs)))
}
