package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/service"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

var reportFamilies = []recordFamily{
	newOrderFamily,
	pendingOrderFamily,
	pendingMaterialFamily,
	cadOrderFamily,
}

// FollowupSummary handles GET /api/reports/followup-summary: per entity
// type, how many records fall in each overdue bucket today.
func FollowupSummary(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx := repository.GetContext()
	today := time.Now()

	summary := make(map[models.RecordType]map[service.Bucket]int, len(reportFamilies))
	totals := make(map[service.Bucket]int)

	for _, fam := range reportFamilies {
		filters := service.FilterSet{}
		if models.UserRole(user.Role) == models.UserRoleSales {
			filters.SalesExecCode = user.UserCode
		}

		coll := repository.Collection(fam.collection)
		cursor, err := coll.Find(ctx, filters.Query(fam.dateField),
			options.Find().SetLimit(service.FetchAllCap))
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		records, err := fam.decodeAll(ctx, cursor)
		cursor.Close(ctx)
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		counts := make(map[service.Bucket]int, len(service.AllBuckets))
		for _, bucket := range service.AllBuckets {
			counts[bucket] = 0
		}
		for _, r := range records {
			bucket := service.ClassifyRecord(r, today)
			counts[bucket]++
			totals[bucket]++
		}
		summary[fam.entity] = counts
	}

	utils.SuccessResponse(c, gin.H{
		"byEntity": summary,
		"totals":   totals,
		"asOf":     service.TruncateToUTCDay(today),
	}, "")
}
