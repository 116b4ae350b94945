package service

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

// ObjectIDsFromHex converts selection ids, rejecting the whole batch on any
// malformed id so a typo cannot silently shrink the selection.
func ObjectIDsFromHex(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", id, err)
		}
		out = append(out, objID)
	}
	return out, nil
}

// BulkSelectionFilter builds the query addressing a selection.
func BulkSelectionFilter(ids []string) (bson.M, error) {
	objIDs, err := ObjectIDsFromHex(ids)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": bson.M{"$in": objIDs}}, nil
}

// BulkStatusUpdate builds the update document for a bulk status change.
func BulkStatusUpdate(status models.Status, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"status":    models.NormalizeStatus(status),
		"updatedAt": now,
	}}
}

// RemarkInputsFromRecords derives one remark input per selected record from
// the record's own denormalized fields, not a single shared value.
func RemarkInputsFromRecords(records []models.FollowupRecord, remarkMsg string) []models.RemarkInput {
	inputs := make([]models.RemarkInput, 0, len(records))
	for _, r := range records {
		base := r.Base()
		inputs = append(inputs, models.RemarkInput{
			RemarkMsg:     remarkMsg,
			SalesExecCode: base.SalesExecCode,
			ClientCode:    base.ClientCode,
			EntityType:    r.Type(),
			EntityID:      base.ID.Hex(),
		})
	}
	return inputs
}

// RemarkDocs converts remark inputs into insertable documents with
// pre-assigned ids, so retrying an insert cannot duplicate them.
func RemarkDocs(inputs []models.RemarkInput, now time.Time) []interface{} {
	docs := make([]interface{}, 0, len(inputs))
	for _, in := range inputs {
		docs = append(docs, models.Remark{
			ID:            primitive.NewObjectID(),
			RemarkMsg:     in.RemarkMsg,
			SalesExecCode: in.SalesExecCode,
			ClientCode:    in.ClientCode,
			EntityType:    in.EntityType,
			EntityID:      in.EntityID,
			CreatedAt:     now,
		})
	}
	return docs
}
