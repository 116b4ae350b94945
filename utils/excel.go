package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReadExcelFile reads an uploaded .xlsx/.xls file into header-keyed row maps.
// The first row is treated as the header; fully blank rows are skipped.
func ReadExcelFile(c *gin.Context, formFieldName, sheetName string) ([]map[string]string, string, error) {
	file, err := c.FormFile(formFieldName)
	if err != nil {
		return nil, "", fmt.Errorf("file upload error: %w", err)
	}
	fileName := file.Filename

	lower := strings.ToLower(fileName)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		return nil, fileName, errors.New("only .xlsx and .xls files are supported")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer xlsx.Close()

	if sheetName == "" {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, fileName, errors.New("no sheet found in the Excel file")
		}
		sheetName = sheets[0]
	}

	rows, err := xlsx.GetRows(sheetName)
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to read rows from sheet: %w", err)
	}

	if len(rows) < 2 {
		return nil, fileName, errors.New("no data found in the Excel file")
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var results []map[string]string
	for _, row := range rows[1:] {
		record := make(map[string]string)
		empty := true
		for j := range headers {
			if headers[j] == "" {
				continue
			}
			if j < len(row) && strings.TrimSpace(row[j]) != "" {
				record[headers[j]] = strings.TrimSpace(row[j])
				empty = false
			}
		}
		if !empty {
			results = append(results, record)
		}
	}

	return results, fileName, nil
}
