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

var pendingMaterialFamily = recordFamily{
	entity:     models.RecordTypePendingMaterial,
	collection: repository.PendingMaterialsCollection,
	reportName: "PendingMaterials",
	dateField:  "expectedDeliveryDate",
	rangeField: "totalNetWt",
	sortFields: map[string]string{
		"clientName":           "clientName",
		"clientCode":           "clientCode",
		"salesExecCode":        "salesExecCode",
		"styleNo":              "styleNo",
		"departmentName":       "departmentName",
		"totalNetWt":           "totalNetWt",
		"expectedDeliveryDate": "expectedDeliveryDate",
		"nextFollowUpDate":     "nextFollowUpDate",
		"lastFollowUpDate":     "lastFollowUpDate",
	},
	decodeAll: func(ctx context.Context, cur *mongo.Cursor) ([]models.FollowupRecord, error) {
		return decodeAllAs(ctx, cur, func(r *models.PendingMaterial) models.FollowupRecord { return r })
	},
	decodeOne: func(res *mongo.SingleResult) (models.FollowupRecord, error) {
		return decodeOneAs(res, func(r *models.PendingMaterial) models.FollowupRecord { return r })
	},
	fromRow: pendingMaterialFromRow,
}

func pendingMaterialFromRow(row map[string]string, batchID string, now time.Time) (interface{}, error) {
	base, err := importBase(row, batchID, now)
	if err != nil {
		return nil, err
	}
	expected, err := parseImportDate(row["Expected Delivery Date"])
	if err != nil {
		return nil, err
	}
	netWt, err := parseImportFloat(row["Total Net Wt"])
	if err != nil {
		return nil, err
	}

	return &models.PendingMaterial{
		FollowupBase:         base,
		StyleNo:              row["Style No"],
		DepartmentName:       row["Department"],
		TotalNetWt:           netWt,
		ExpectedDeliveryDate: expected,
	}, nil
}

// ListPendingMaterials handles GET /api/pendingMaterial.
func ListPendingMaterials(c *gin.Context) { listRecords(c, pendingMaterialFamily) }

// GetPendingMaterial handles GET /api/pendingMaterial/:id.
func GetPendingMaterial(c *gin.Context) { getRecord(c, pendingMaterialFamily) }

// DeletePendingMaterial handles DELETE /api/pendingMaterial/:id.
func DeletePendingMaterial(c *gin.Context) { deleteRecord(c, pendingMaterialFamily) }

// ImportPendingMaterials handles POST /api/pendingMaterial/import.
func ImportPendingMaterials(c *gin.Context) { importRecords(c, pendingMaterialFamily) }

// ExportPendingMaterials handles GET /api/pendingMaterial/export.
func ExportPendingMaterials(c *gin.Context) { exportRecords(c, pendingMaterialFamily) }

// ListPendingMaterialFollowups handles GET /api/pendingMaterial/followups.
func ListPendingMaterialFollowups(c *gin.Context) { listFollowups(c, pendingMaterialFamily) }

// AddPendingMaterialFollowup handles POST /api/pendingMaterial/followups.
func AddPendingMaterialFollowup(c *gin.Context) { addFollowup(c, pendingMaterialFamily) }

// CreatePendingMaterial handles POST /api/pendingMaterial.
func CreatePendingMaterial(c *gin.Context) {
	var input models.CreatePendingMaterialRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	record := &models.PendingMaterial{
		FollowupBase: models.FollowupBase{
			ClientCode:       input.ClientCode,
			SalesExecCode:    input.SalesExecCode,
			NextFollowUpDate: input.NextFollowUpDate,
			Remark:           input.Remark,
		},
		StyleNo:              input.StyleNo,
		DepartmentName:       input.DepartmentName,
		TotalNetWt:           input.TotalNetWt,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
	}

	insertRecord(c, pendingMaterialFamily, record)
}

// UpdatePendingMaterial handles PUT /api/pendingMaterial/:id.
func UpdatePendingMaterial(c *gin.Context) {
	var input models.UpdatePendingMaterialRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	set := bson.M{}
	if input.SalesExecCode != "" {
		set["salesExecCode"] = input.SalesExecCode
	}
	if input.StyleNo != "" {
		set["styleNo"] = input.StyleNo
	}
	if input.DepartmentName != "" {
		set["departmentName"] = input.DepartmentName
	}
	if input.TotalNetWt != nil {
		set["totalNetWt"] = *input.TotalNetWt
	}
	if input.ExpectedDeliveryDate != nil {
		set["expectedDeliveryDate"] = input.ExpectedDeliveryDate
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

	updateRecordFields(c, pendingMaterialFamily, set)
}
