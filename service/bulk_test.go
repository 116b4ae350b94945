package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

func TestObjectIDsFromHex(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	ids, err := ObjectIDsFromHex([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b}, ids)
}

func TestObjectIDsFromHexRejectsWholeBatch(t *testing.T) {
	good := primitive.NewObjectID().Hex()

	ids, err := ObjectIDsFromHex([]string{good, "not-an-id"})
	assert.Error(t, err)
	assert.Nil(t, ids)
}

func TestBulkSelectionFilter(t *testing.T) {
	a := primitive.NewObjectID()

	filter, err := BulkSelectionFilter([]string{a.Hex()})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$in": []primitive.ObjectID{a}}}, filter)
}

func TestBulkStatusUpdate(t *testing.T) {
	now := day(2024, 6, 10)

	update := BulkStatusUpdate(models.StatusCompleted, now)
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, set["status"])
	assert.Equal(t, now, set["updatedAt"])

	// unknown status values normalize to pending
	update = BulkStatusUpdate("", now)
	set = update["$set"].(bson.M)
	assert.Equal(t, models.StatusPending, set["status"])
}

func TestRemarkInputsFromRecords(t *testing.T) {
	r1 := &models.CadOrder{DesignNo: "D-1"}
	r1.ID = primitive.NewObjectID()
	r1.ClientCode = "C1"
	r1.SalesExecCode = "S1"

	r2 := &models.CadOrder{DesignNo: "D-2"}
	r2.ID = primitive.NewObjectID()
	r2.ClientCode = "C2"
	r2.SalesExecCode = "S2"

	inputs := RemarkInputsFromRecords([]models.FollowupRecord{r1, r2}, "call next week")
	require.Len(t, inputs, 2)

	// each remark carries its own record's codes, not a shared value
	assert.Equal(t, "C1", inputs[0].ClientCode)
	assert.Equal(t, "S1", inputs[0].SalesExecCode)
	assert.Equal(t, r1.ID.Hex(), inputs[0].EntityID)
	assert.Equal(t, "C2", inputs[1].ClientCode)
	assert.Equal(t, "S2", inputs[1].SalesExecCode)
	assert.Equal(t, r2.ID.Hex(), inputs[1].EntityID)

	for _, in := range inputs {
		assert.Equal(t, "call next week", in.RemarkMsg)
		assert.Equal(t, models.RecordTypeCadOrder, in.EntityType)
	}
}

func TestRemarkDocs(t *testing.T) {
	now := day(2024, 6, 10)
	inputs := []models.RemarkInput{
		{
			RemarkMsg:     "ping",
			SalesExecCode: "S1",
			ClientCode:    "C1",
			EntityType:    models.RecordTypeNewOrder,
			EntityID:      primitive.NewObjectID().Hex(),
		},
		{
			RemarkMsg:     "ping",
			SalesExecCode: "S2",
			ClientCode:    "C2",
			EntityType:    models.RecordTypeNewOrder,
			EntityID:      primitive.NewObjectID().Hex(),
		},
	}

	docs := RemarkDocs(inputs, now)
	require.Len(t, docs, 2)

	first, ok := docs[0].(models.Remark)
	require.True(t, ok)
	assert.Equal(t, "ping", first.RemarkMsg)
	assert.Equal(t, now, first.CreatedAt)

	// ids are assigned up front and distinct, so a re-run of the same
	// insert is rejected as a duplicate instead of landing twice
	second := docs[1].(models.Remark)
	assert.False(t, first.ID.IsZero())
	assert.False(t, second.ID.IsZero())
	assert.NotEqual(t, first.ID, second.ID)
}
