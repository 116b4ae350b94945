package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

var pendingOrderFamily = recordFamily{
	entity:     models.RecordTypePendingOrder,
	collection: repository.PendingOrdersCollection,
	reportName: "PendingOrders",
	dateField:  "orderDate",
	rangeField: "pendingPcs",
	sortFields: map[string]string{
		"clientName":       "clientName",
		"clientCode":       "clientCode",
		"salesExecCode":    "salesExecCode",
		"orderNo":          "orderNo",
		"orderDate":        "orderDate",
		"totalOrderPcs":    "totalOrderPcs",
		"pendingPcs":       "pendingPcs",
		"nextFollowUpDate": "nextFollowUpDate",
		"lastFollowUpDate": "lastFollowUpDate",
	},
	decodeAll: func(ctx context.Context, cur *mongo.Cursor) ([]models.FollowupRecord, error) {
		return decodeAllAs(ctx, cur, func(r *models.PendingOrder) models.FollowupRecord { return r })
	},
	decodeOne: func(res *mongo.SingleResult) (models.FollowupRecord, error) {
		return decodeOneAs(res, func(r *models.PendingOrder) models.FollowupRecord { return r })
	},
	fromRow: pendingOrderFromRow,
}

func pendingOrderFromRow(row map[string]string, batchID string, now time.Time) (interface{}, error) {
	base, err := importBase(row, batchID, now)
	if err != nil {
		return nil, err
	}
	orderDate, err := parseImportDate(row["Order Date"])
	if err != nil {
		return nil, err
	}
	totalPcs, err := parseImportInt(row["Total Order Pcs"])
	if err != nil {
		return nil, err
	}
	pendingPcs, err := parseImportInt(row["Pending Pcs"])
	if err != nil {
		return nil, err
	}

	record := &models.PendingOrder{
		FollowupBase:  base,
		OrderNo:       row["Order No"],
		OrderDate:     orderDate,
		TotalOrderPcs: totalPcs,
		PendingPcs:    pendingPcs,
	}
	if v := row["Delivered Pcs"]; v != "" {
		delivered, err := parseImportInt(v)
		if err != nil {
			return nil, err
		}
		record.DeliveredPcs = &delivered
	}
	record.DerivePendingPcs()

	return record, nil
}

// ListPendingOrders handles GET /api/pendingOrder.
func ListPendingOrders(c *gin.Context) { listRecords(c, pendingOrderFamily) }

// GetPendingOrder handles GET /api/pendingOrder/:id.
func GetPendingOrder(c *gin.Context) { getRecord(c, pendingOrderFamily) }

// DeletePendingOrder handles DELETE /api/pendingOrder/:id.
func DeletePendingOrder(c *gin.Context) { deleteRecord(c, pendingOrderFamily) }

// ImportPendingOrders handles POST /api/pendingOrder/import.
func ImportPendingOrders(c *gin.Context) { importRecords(c, pendingOrderFamily) }

// ExportPendingOrders handles GET /api/pendingOrder/export.
func ExportPendingOrders(c *gin.Context) { exportRecords(c, pendingOrderFamily) }

// ListPendingOrderFollowups handles GET /api/pendingOrder/followups.
func ListPendingOrderFollowups(c *gin.Context) { listFollowups(c, pendingOrderFamily) }

// AddPendingOrderFollowup handles POST /api/pendingOrder/followups.
func AddPendingOrderFollowup(c *gin.Context) { addFollowup(c, pendingOrderFamily) }

// CreatePendingOrder handles POST /api/pendingOrder.
func CreatePendingOrder(c *gin.Context) {
	var input models.CreatePendingOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	record := &models.PendingOrder{
		FollowupBase: models.FollowupBase{
			ClientCode:       input.ClientCode,
			SalesExecCode:    input.SalesExecCode,
			NextFollowUpDate: input.NextFollowUpDate,
			Remark:           input.Remark,
		},
		OrderNo:       input.OrderNo,
		OrderDate:     input.OrderDate,
		TotalOrderPcs: input.TotalOrderPcs,
		DeliveredPcs:  input.DeliveredPcs,
		PendingPcs:    input.PendingPcs,
	}
	record.DerivePendingPcs()
	if record.DeliveredPcs == nil && record.PendingPcs == 0 {
		record.PendingPcs = record.TotalOrderPcs
	}

	insertRecord(c, pendingOrderFamily, record)
}

// UpdatePendingOrder handles PUT /api/pendingOrder/:id. When the delivered
// count is supplied, pendingPcs is rederived from it.
func UpdatePendingOrder(c *gin.Context) {
	var input models.UpdatePendingOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	set := bson.M{}
	if input.SalesExecCode != "" {
		set["salesExecCode"] = input.SalesExecCode
	}
	if input.OrderNo != "" {
		set["orderNo"] = input.OrderNo
	}
	if input.OrderDate != nil {
		set["orderDate"] = input.OrderDate
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

	if input.TotalOrderPcs != nil || input.DeliveredPcs != nil {
		objID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
			return
		}

		var current models.PendingOrder
		ctx := repository.GetContext()
		err = repository.Collection(pendingOrderFamily.collection).
			FindOne(ctx, bson.M{"_id": objID}).
			Decode(&current)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				utils.HandleError(c, utils.CreateNotFoundError("record"))
				return
			}
			utils.HandleError(c, err)
			return
		}

		if input.TotalOrderPcs != nil {
			current.TotalOrderPcs = *input.TotalOrderPcs
			set["totalOrderPcs"] = current.TotalOrderPcs
		}
		if input.DeliveredPcs != nil {
			current.DeliveredPcs = input.DeliveredPcs
			set["deliveredPcs"] = input.DeliveredPcs
		}
		current.DerivePendingPcs()
		set["pendingPcs"] = current.PendingPcs
	} else if input.PendingPcs != nil {
		set["pendingPcs"] = *input.PendingPcs
	}

	updateRecordFields(c, pendingOrderFamily, set)
}
