package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

var newOrderFamily = recordFamily{
	entity:     models.RecordTypeNewOrder,
	collection: repository.NewOrdersCollection,
	reportName: "NewOrders",
	dateField:  "lastOrderDate",
	rangeField: "daysSince",
	sortFields: map[string]string{
		"clientName":       "clientName",
		"clientCode":       "clientCode",
		"salesExecCode":    "salesExecCode",
		"lastOrderDate":    "lastOrderDate",
		"nextFollowUpDate": "nextFollowUpDate",
		"lastFollowUpDate": "lastFollowUpDate",
	},
	decodeAll: func(ctx context.Context, cur *mongo.Cursor) ([]models.FollowupRecord, error) {
		return decodeAllAs(ctx, cur, func(r *models.NewOrder) models.FollowupRecord { return r })
	},
	decodeOne: func(res *mongo.SingleResult) (models.FollowupRecord, error) {
		return decodeOneAs(res, func(r *models.NewOrder) models.FollowupRecord { return r })
	},
	fromRow: newOrderFromRow,
}

func newOrderFromRow(row map[string]string, batchID string, now time.Time) (interface{}, error) {
	base, err := importBase(row, batchID, now)
	if err != nil {
		return nil, err
	}
	lastOrderDate, err := parseImportDate(row["Last Order Date"])
	if err != nil {
		return nil, err
	}
	return &models.NewOrder{
		FollowupBase:  base,
		LastOrderNo:   row["Last Order No"],
		LastOrderDate: lastOrderDate,
	}, nil
}

// ListNewOrders handles GET /api/newOrder.
func ListNewOrders(c *gin.Context) { listRecords(c, newOrderFamily) }

// GetNewOrder handles GET /api/newOrder/:id.
func GetNewOrder(c *gin.Context) { getRecord(c, newOrderFamily) }

// DeleteNewOrder handles DELETE /api/newOrder/:id.
func DeleteNewOrder(c *gin.Context) { deleteRecord(c, newOrderFamily) }

// ImportNewOrders handles POST /api/newOrder/import.
func ImportNewOrders(c *gin.Context) { importRecords(c, newOrderFamily) }

// ExportNewOrders handles GET /api/newOrder/export.
func ExportNewOrders(c *gin.Context) { exportRecords(c, newOrderFamily) }

// ListNewOrderFollowups handles GET /api/newOrder/followups.
func ListNewOrderFollowups(c *gin.Context) { listFollowups(c, newOrderFamily) }

// AddNewOrderFollowup handles POST /api/newOrder/followups.
func AddNewOrderFollowup(c *gin.Context) { addFollowup(c, newOrderFamily) }

// CreateNewOrder handles POST /api/newOrder.
func CreateNewOrder(c *gin.Context) {
	var input models.CreateNewOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	record := &models.NewOrder{
		FollowupBase: models.FollowupBase{
			ClientCode:       input.ClientCode,
			SalesExecCode:    input.SalesExecCode,
			NextFollowUpDate: input.NextFollowUpDate,
			Remark:           input.Remark,
		},
		LastOrderNo:   input.LastOrderNo,
		LastOrderDate: input.LastOrderDate,
	}

	insertRecord(c, newOrderFamily, record)
}

// UpdateNewOrder handles PUT /api/newOrder/:id.
func UpdateNewOrder(c *gin.Context) {
	var input models.UpdateNewOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	set := bson.M{}
	if input.SalesExecCode != "" {
		set["salesExecCode"] = input.SalesExecCode
	}
	if input.LastOrderNo != "" {
		set["lastOrderNo"] = input.LastOrderNo
	}
	if input.LastOrderDate != nil {
		set["lastOrderDate"] = input.LastOrderDate
	}
	if input.NextFollowUpDate != nil {
		set["nextFollowUpDate"] = input.NextFollowUpDate
	}
	if input.Status != "" {
		set["status"] = models.NormalizeStatus(input.Status)
	}
	if input.Remark != "" {
		set["remark"] = input.Remark
	}

	updateRecordFields(c, newOrderFamily, set)
}
