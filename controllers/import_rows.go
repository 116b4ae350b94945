package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvika404/jewel-ai-sub000/models"
)

// importDateFormats are the date renderings accepted in uploaded sheets.
var importDateFormats = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

// parseImportDate parses an optional date cell.
func parseImportDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range importDateFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable date %q", value)
}

// parseImportInt parses an optional integer cell.
func parseImportInt(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	// sheets often store integers as floats
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q", value)
	}
	return int(f), nil
}

// parseImportFloat parses an optional decimal cell.
func parseImportFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable number %q", value)
	}
	return f, nil
}

// importBase maps the columns shared by every record variant. Client Code
// is the only hard requirement; status defaults to pending. The id is
// assigned here so re-running an insert cannot duplicate the row.
func importBase(row map[string]string, batchID string, now time.Time) (models.FollowupBase, error) {
	clientCode := strings.TrimSpace(row["Client Code"])
	if clientCode == "" {
		return models.FollowupBase{}, fmt.Errorf("missing Client Code")
	}

	next, err := parseImportDate(row["Next Follow Up Date"])
	if err != nil {
		return models.FollowupBase{}, err
	}

	return models.FollowupBase{
		ID:               primitive.NewObjectID(),
		ClientCode:       clientCode,
		ClientName:       strings.TrimSpace(row["Client Name"]),
		SalesExecCode:    strings.TrimSpace(row["Sales Exec"]),
		Status:           models.NormalizeStatus(models.Status(strings.TrimSpace(row["Status"]))),
		NextFollowUpDate: next,
		Remark:           strings.TrimSpace(row["Remark"]),
		ImportBatchID:    batchID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
