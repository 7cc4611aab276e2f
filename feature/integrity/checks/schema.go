package checks

import (
	"fmt"
	"reflect"
	"strings"

	"levelcode/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing live tables with their models.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"`
}

type tabler interface {
	TableName() string
}

// CheckSchema verifies each model's table using its gorm tags as the source
// of truth. Columns are checked for presence; types only when the tag names one.
func CheckSchema(db *gorm.DB, models ...tabler) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		tableName := model.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(reflect.TypeOf(model), actualCols)
		if tbl.Status != StatusOK {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

func compareTable(model reflect.Type, actualCols []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         StatusOK,
	}

	if len(actualCols) == 0 {
		tbl.Status = StatusError
	}

	actual := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actual[col.Field] = col
	}

	for model.Kind() == reflect.Ptr {
		model = model.Elem()
	}
	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")
		colName := gormSetting(tag, "column")
		if colName == "" {
			continue
		}

		col, ok := actual[colName]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = StatusError
			continue
		}

		expType := strings.ToLower(gormSetting(tag, "type"))
		if expType != "" && !strings.Contains(col.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			tbl.Status = StatusError
		}
	}
	return tbl
}

// gormSetting returns the value of key in a `gorm:"k:v;..."` tag.
func gormSetting(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
