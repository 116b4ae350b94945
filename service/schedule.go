package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dhruvika404/jewel-ai-sub000/models"
	"github.com/dhruvika404/jewel-ai-sub000/repository"
	"github.com/dhruvika404/jewel-ai-sub000/utils"
)

// ScheduleDailyTaskAt runs a task every day at the given wall-clock time.
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(next.Sub(now))
			task()
		}
	}()
}

// RefreshFollowupMirrors recomputes each record's denormalized follow-up
// state from its history. The history is authoritative; the mirror can drift
// after partial writes, so this pass repairs it nightly.
func RefreshFollowupMirrors() {
	ctx := repository.GetContext()

	for recordType, collName := range repository.RecordCollections {
		coll := repository.Collection(collName)

		cursor, err := coll.Find(ctx, bson.M{"followUps.0": bson.M{"$exists": true}})
		if err != nil {
			utils.LogError(err, map[string]interface{}{
				"collection": collName,
			}, "mirror refresh query failed")
			continue
		}

		var docs []struct {
			ID               interface{}            `bson:"_id"`
			Status           models.Status          `bson:"status"`
			NextFollowUpDate *time.Time             `bson:"nextFollowUpDate"`
			LastFollowUpBy   string                 `bson:"lastFollowUpBy"`
			FollowUps        []models.FollowUpEntry `bson:"followUps"`
		}
		if err := cursor.All(ctx, &docs); err != nil {
			utils.LogError(err, map[string]interface{}{
				"collection": collName,
			}, "mirror refresh decode failed")
			continue
		}

		repaired := 0
		for _, doc := range docs {
			latest := doc.FollowUps[len(doc.FollowUps)-1]

			stale := models.NormalizeStatus(doc.Status) != models.NormalizeStatus(latest.Status) ||
				doc.LastFollowUpBy != latest.TakenBy ||
				!equalDatePtr(doc.NextFollowUpDate, latest.NextFollowUpDate)
			if !stale {
				continue
			}

			update := bson.M{"$set": bson.M{
				"status":           models.NormalizeStatus(latest.Status),
				"nextFollowUpDate": latest.NextFollowUpDate,
				"lastFollowUpDate": latest.CreatedAt,
				"lastFollowUpBy":   latest.TakenBy,
				"updatedAt":        time.Now(),
			}}
			if _, err := coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, update); err != nil {
				utils.LogError(err, map[string]interface{}{
					"collection": collName,
					"recordId":   doc.ID,
				}, "mirror refresh update failed")
				continue
			}
			repaired++
		}

		utils.LogInfo(map[string]interface{}{
			"entityType": recordType,
			"checked":    len(docs),
			"repaired":   repaired,
		}, "follow-up mirror refresh done")
	}
}

func equalDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return TruncateToUTCDay(*a).Equal(TruncateToUTCDay(*b))
}
