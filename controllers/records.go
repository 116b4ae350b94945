package controllers

import (
	"context"
	"fmt"
	"net/http"
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

// recordFamily describes one follow-up record variant to the shared
// handlers: its collection, its reference-date field, which columns the
// database may sort, and how rows decode and import.
type recordFamily struct {
	entity     models.RecordType
	collection string
	reportName string
	dateField  string
	rangeField string
	sortFields map[string]string
	decodeAll  func(ctx context.Context, cur *mongo.Cursor) ([]models.FollowupRecord, error)
	decodeOne  func(res *mongo.SingleResult) (models.FollowupRecord, error)
	fromRow    func(row map[string]string, batchID string, now time.Time) (interface{}, error)
}

// decodeAllAs decodes a cursor into concrete variant values and lifts them
// into the tagged union.
func decodeAllAs[T any](ctx context.Context, cur *mongo.Cursor, lift func(*T) models.FollowupRecord) ([]models.FollowupRecord, error) {
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.FollowupRecord, len(docs))
	for i := range docs {
		out[i] = lift(&docs[i])
	}
	return out, nil
}

func decodeOneAs[T any](res *mongo.SingleResult, lift func(*T) models.FollowupRecord) (models.FollowupRecord, error) {
	var doc T
	if err := res.Decode(&doc); err != nil {
		return nil, err
	}
	return lift(&doc), nil
}

// parseRecordFilters builds the FilterSet from query params. Sales
// executives are always scoped to their own records.
func parseRecordFilters(c *gin.Context, user *utils.LoginUser, fam recordFamily) (service.FilterSet, error) {
	filters := service.FilterSet{
		SalesExecCode: c.Query("salesExecCode"),
		ClientCode:    c.Query("clientCode"),
		Search:        c.Query("search"),
	}

	switch status := c.Query("status"); status {
	case "", "all":
	case string(models.StatusPending), string(models.StatusCompleted):
		filters.Status = models.Status(status)
	default:
		return filters, utils.CreateBadRequestError(fmt.Sprintf("invalid status %q", status))
	}

	if models.UserRole(user.Role) == models.UserRoleSales {
		filters.SalesExecCode = user.UserCode
	}

	from, err := utils.ParseDateParam(c.Query("startDate"))
	if err != nil {
		return filters, utils.CreateBadRequestError(err.Error())
	}
	to, err := utils.ParseDateParam(c.Query("endDate"))
	if err != nil {
		return filters, utils.CreateBadRequestError(err.Error())
	}
	if from != nil && to != nil {
		if to.Before(*from) {
			return filters, utils.CreateBadRequestError("endDate is before startDate")
		}
		filters.DateRange = &service.DateRange{From: *from, To: *to}
	} else if from != nil || to != nil {
		return filters, utils.CreateBadRequestError("startDate and endDate must be supplied together")
	}

	rangeField := c.DefaultQuery("rangeField", fam.rangeField)
	bucket, err := service.ParseRangeFilter(rangeField, c.Query("rangeFilter"))
	if err != nil {
		return filters, utils.CreateBadRequestError(err.Error())
	}
	filters.NumericBucket = bucket

	return filters, nil
}

// parsePageParams reads paging and sorting inputs.
func parsePageParams(c *gin.Context) service.PageParams {
	page, size := utils.ParsePagination(c)
	return service.PageParams{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
	}
}

// serverSort maps the requested sort column to a mongo sort document,
// falling back to most-recently-updated first. The _id tiebreak keeps
// pagination stable across requests.
func serverSort(fam recordFamily, params service.PageParams) bson.D {
	if field, ok := fam.sortFields[params.SortBy]; ok {
		order := 1
		if params.Descending() {
			order = -1
		}
		return bson.D{{Key: field, Value: order}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}}
}

// fetchAllMatching loads every row matching the query in the given order,
// bounded by the fetch cap, for client-side sorting and bucket filtering.
func fetchAllMatching(ctx context.Context, fam recordFamily, query bson.M, sort bson.D) ([]models.FollowupRecord, error) {
	coll := repository.Collection(fam.collection)
	opts := options.Find().SetLimit(service.FetchAllCap).SetSort(sort)
	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return fam.decodeAll(ctx, cursor)
}

// listRecords is the shared GET /{entity} handler implementing the hybrid
// sort/paginate coordinator.
func listRecords(c *gin.Context, fam recordFamily) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	filters, err := parseRecordFilters(c, user, fam)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	params := parsePageParams(c)

	ctx := repository.GetContext()
	today := time.Now()
	query := filters.Query(fam.dateField)
	coll := repository.Collection(fam.collection)

	var result service.PageResult

	if service.NeedsClientPaging(params, filters) {
		rows, err := fetchAllMatching(ctx, fam, query, serverSort(fam, params))
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		// the server query cannot express computed-field buckets; the
		// predicate applies the full FilterSet, which is idempotent over
		// the clauses the query already narrowed
		pred := filters.Predicate(today)
		filtered := rows[:0]
		for _, r := range rows {
			if pred(r) {
				filtered = append(filtered, r)
			}
		}
		result = service.Paginate(service.ClientPaged{AllRows: filtered}, nil, params, today)
	} else {
		total, err := coll.CountDocuments(ctx, query)
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		findOpts := options.Find().
			SetSkip((params.Page - 1) * params.Size).
			SetLimit(params.Size).
			SetSort(serverSort(fam, params))

		cursor, err := coll.Find(ctx, query, findOpts)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		defer cursor.Close(ctx)

		items, err := fam.decodeAll(ctx, cursor)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		result = service.Paginate(service.ServerPaged{TotalItems: total}, items, params, today)
	}

	utils.ListResponse(c, result.Items, result.TotalItems, result.TotalPages)
}

// getRecord is the shared GET /{entity}/:id handler.
func getRecord(c *gin.Context, fam recordFamily) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	res := repository.Collection(fam.collection).FindOne(ctx, bson.M{"_id": objID})
	record, err := fam.decodeOne(res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(c, utils.CreateNotFoundError("record"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, record, "")
}

// deleteRecord is the shared DELETE /{entity}/:id handler.
func deleteRecord(c *gin.Context, fam recordFamily) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(fam.collection).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.DeletedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("record"))
		return
	}

	utils.SuccessResponse(c, nil, "record deleted")
}

// resolveClient looks a client up by business key and returns its name.
func resolveClient(ctx context.Context, clientCode string) (*models.Client, error) {
	var client models.Client
	err := repository.Collection(repository.ClientsCollection).
		FindOne(ctx, bson.M{"userCode": clientCode}).
		Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateBadRequestError(fmt.Sprintf("unknown client code %q", clientCode))
		}
		return nil, err
	}
	return &client, nil
}

// insertRecord stores a new record and echoes it back with its id.
func insertRecord(c *gin.Context, fam recordFamily, record models.FollowupRecord) {
	ctx := repository.GetContext()
	base := record.Base()

	client, err := resolveClient(ctx, base.ClientCode)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	base.ClientName = client.Name
	if base.SalesExecCode == "" {
		base.SalesExecCode = client.SalesExecCode
	}

	now := time.Now()
	base.Status = models.NormalizeStatus(base.Status)
	base.CreatedAt = now
	base.UpdatedAt = now

	res, err := repository.Collection(fam.collection).InsertOne(ctx, record)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	base.ID = res.InsertedID.(primitive.ObjectID)

	utils.LogInfo(map[string]interface{}{
		"entityType": fam.entity,
		"recordId":   base.ID.Hex(),
		"clientCode": base.ClientCode,
	}, "record created")

	utils.SuccessResponse(c, record, "record created", http.StatusCreated)
}

// updateRecordFields applies a $set update to one record.
func updateRecordFields(c *gin.Context, fam recordFamily, set bson.M) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid id"))
		return
	}

	set["updatedAt"] = time.Now()

	ctx := repository.GetContext()
	res, err := repository.Collection(fam.collection).UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("record"))
		return
	}

	utils.SuccessResponse(c, nil, "record updated")
}

// listFollowups is the shared GET /{entity}/followups handler: records for
// one client with their follow-up history, paged.
func listFollowups(c *gin.Context, fam recordFamily) {
	clientCode := c.Query("clientCode")
	if clientCode == "" {
		utils.HandleError(c, utils.CreateBadRequestError("clientCode is required"))
		return
	}
	page, size := utils.ParsePagination(c)

	ctx := repository.GetContext()
	coll := repository.Collection(fam.collection)
	query := bson.M{"clientCode": clientCode}

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip((page - 1) * size).
		SetLimit(size)

	cursor, err := coll.Find(ctx, query, opts)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer cursor.Close(ctx)

	records, err := fam.decodeAll(ctx, cursor)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, records, total, service.TotalPages(total, size))
}

// addFollowup is the shared POST /{entity}/followups handler. It appends a
// history entry and mirrors the entry's state onto the parent record.
func addFollowup(c *gin.Context, fam recordFamily) {
	var input models.AddFollowUpEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid request data"))
		return
	}

	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	objID, err := primitive.ObjectIDFromHex(input.RecordID)
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("invalid record id"))
		return
	}

	now := time.Now()
	entry := models.FollowUpEntry{
		FollowUpMsg:      input.FollowUpMsg,
		NextFollowUpDate: input.NextFollowUpDate,
		Status:           models.NormalizeStatus(input.Status),
		CreatedAt:        now,
		TakenBy:          user.UserCode,
	}

	update := bson.M{
		"$push": bson.M{"followUps": entry},
		"$set": bson.M{
			"status":           entry.Status,
			"nextFollowUpDate": entry.NextFollowUpDate,
			"lastFollowUpDate": now,
			"lastFollowUpBy":   user.UserCode,
			"updatedAt":        now,
		},
	}

	ctx := repository.GetContext()
	res, err := repository.Collection(fam.collection).UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if res.MatchedCount == 0 {
		utils.HandleError(c, utils.CreateNotFoundError("record"))
		return
	}

	utils.LogInfo(map[string]interface{}{
		"entityType": fam.entity,
		"recordId":   input.RecordID,
		"takenBy":    user.UserCode,
	}, "follow-up entry added")

	utils.SuccessResponse(c, nil, "follow-up added", http.StatusCreated)
}

// importRecords is the shared POST /{entity}/import handler. Rows that fail
// to map are reported back; valid rows are inserted under one batch id.
func importRecords(c *gin.Context, fam recordFamily) {
	rows, fileName, err := utils.ReadExcelFile(c, "file", "")
	if err != nil {
		utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		return
	}

	batchID := uuid.NewString()
	now := time.Now()

	var docs []interface{}
	var rowErrors []string
	for i, row := range rows {
		doc, err := fam.fromRow(row, batchID, now)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		utils.HandleError(c, utils.CreateBadRequestError(
			fmt.Sprintf("no importable rows in %s: %v", fileName, rowErrors)))
		return
	}

	// no retry here: a mid-batch failure must not re-insert the committed
	// prefix, and imported rows carry no unique key to dedupe on
	ctx := repository.GetContext()
	res, err := repository.Collection(fam.collection).
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
		"entityType": fam.entity,
		"file":       fileName,
		"batchId":    batchID,
		"inserted":   inserted,
		"skipped":    len(rowErrors),
	}, "import finished")

	message := fmt.Sprintf("imported %d records from %s", inserted, fileName)
	if len(rowErrors) > 0 {
		message = fmt.Sprintf("%s (%d rows skipped: %v)", message, len(rowErrors), rowErrors)
	}
	utils.SuccessResponse(c, gin.H{"imported": inserted, "batchId": batchID}, message)
}

// exportRecords is the shared GET /{entity}/export handler: the currently
// filtered and sorted view as a workbook download.
func exportRecords(c *gin.Context, fam recordFamily) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	filters, err := parseRecordFilters(c, user, fam)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	params := parsePageParams(c)

	ctx := repository.GetContext()
	today := time.Now()

	rows, err := fetchAllMatching(ctx, fam, filters.Query(fam.dateField), serverSort(fam, params))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	pred := filters.Predicate(today)
	filtered := rows[:0]
	for _, r := range rows {
		if pred(r) {
			filtered = append(filtered, r)
		}
	}

	// export everything in display order: one oversized page
	params.Page = 1
	params.Size = service.FetchAllCap
	result := service.PaginateClient(filtered, params, today)

	headers, tabular, err := service.ToRows(result.Items, today)
	if err != nil {
		if err == service.ErrNothingToExport {
			utils.HandleError(c, utils.CreateBadRequestError("no records to export for the current filters"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	workbook, err := service.WriteWorkbook(headers, tabular, fam.reportName)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer workbook.Close()

	fileName := service.ExportFileName(fam.reportName, time.Now())
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		utils.LogError(err, map[string]interface{}{
			"entityType": fam.entity,
			"file":       fileName,
		}, "workbook write failed")
	}
}
