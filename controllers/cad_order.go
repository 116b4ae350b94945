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

var cadOrderFamily = recordFamily{
	entity:     models.RecordTypeCadOrder,
	collection: repository.CadOrdersCollection,
	reportName: "CadOrders",
	dateField:  "cadDate",
	rangeField: "daysSince",
	sortFields: map[string]string{
		"clientName":       "clientName",
		"clientCode":       "clientCode",
		"salesExecCode":    "salesExecCode",
		"designNo":         "designNo",
		"cadDate":          "cadDate",
		"designStatus":     "designStatus",
		"nextFollowUpDate": "nextFollowUpDate",
		"lastFollowUpDate": "lastFollowUpDate",
	},
	decodeAll: func(ctx context.Context, cur *mongo.Cursor) ([]models.FollowupRecord, error) {
		return decodeAllAs(ctx, cur, func(r *models.CadOrder) models.FollowupRecord { return r })
	},
	decodeOne: func(res *mongo.SingleResult) (models.FollowupRecord, error) {
		return decodeOneAs(res, func(r *models.CadOrder) models.FollowupRecord { return r })
	},
	fromRow: cadOrderFromRow,
}

func cadOrderFromRow(row map[string]string, batchID string, now time.Time) (interface{}, error) {
	base, err := importBase(row, batchID, now)
	if err != nil {
		return nil, err
	}
	cadDate, err := parseImportDate(row["Cad Date"])
	if err != nil {
		return nil, err
	}

	return &models.CadOrder{
		FollowupBase: base,
		DesignNo:     row["Design No"],
		CadDate:      cadDate,
		DesignStatus: row["Design Status"],
	}, nil
}

// ListCadOrders handles GET /api/cadOrder.
func ListCadOrders(c *gin.Context) { listRecords(c, cadOrderFamily) }

// GetCadOrder handles GET /api/cadOrder/:id.
func GetCadOrder(c *gin.Context) { getRecord(c, cadOrderFamily) }

// DeleteCadOrder handles DELETE /api/cadOrder/:id.
func DeleteCadOrder(c *gin.Context) { deleteRecord(c, cadOrderFamily) }

// ImportCadOrders handles POST /api/cadOrder/import.
func ImportCadOrders(c *gin.Context) { importRecords(c, cadOrderFamily) }

// ExportCadOrders handles GET /api/cadOrder/export.
func ExportCadOrders(c *gin.Context) { exportRecords(c, cadOrderFamily) }

// ListCadOrderFollowups handles GET /api/cadOrder/followups.
func ListCadOrderFollowups(c *gin.Context) { listFollowups(c, cadOrderFamily) }

// AddCadOrderFollowup handles POST /api/cadOrder/followups.
func AddCadOrderFollowup(c *gin.Context) { addFollowup(c, cadOrderFamily) }

// CreateCadOrder handles POST /api/cadOrder.
func CreateCadOrder(c *gin.Context) {
	var input models.CreateCadOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	record := &models.CadOrder{
		FollowupBase: models.FollowupBase{
			ClientCode:       input.ClientCode,
			SalesExecCode:    input.SalesExecCode,
			NextFollowUpDate: input.NextFollowUpDate,
			Remark:           input.Remark,
		},
		DesignNo:     input.DesignNo,
		CadDate:      input.CadDate,
		DesignStatus: input.DesignStatus,
	}

	insertRecord(c, cadOrderFamily, record)
}

// UpdateCadOrder handles PUT /api/cadOrder/:id.
func UpdateCadOrder(c *gin.Context) {
	var input models.UpdateCadOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	set := bson.M{}
	if input.SalesExecCode != "" {
		set["salesExecCode"] = input.SalesExecCode
	}
	if input.DesignNo != "" {
		set["designNo"] = input.DesignNo
	}
	if input.CadDate != nil {
		set["cadDate"] = input.CadDate
	}
	if input.DesignStatus != "" {
		set["designStatus"] = input.DesignStatus
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

	updateRecordFields(c, cadOrderFamily, set)
}
