package checks

import (
	"fmt"
	"reflect"
	"strings"

	"shadow-sync/core/database"
	"shadow-sync/core/shadow"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the shadows table with its model.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the shadows table using the gorm model as the source
// of truth. Inspection failures are reported, not returned.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := shadow.Record{}
	report := &SchemaReport{
		Table:          model.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	actual, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}
	if len(actual) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("table %s does not exist", report.Table))
		report.Matched = false
		return report, nil
	}

	expected := expectedColumns(reflect.TypeOf(model))
	names := make([]string, 0, len(expected))
	for _, col := range expected {
		names = append(names, col.name)
	}
	if missing := database.MissingColumns(actual, names); len(missing) > 0 {
		report.MissingColumns = missing
		report.Matched = false
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}
	for _, col := range expected {
		act, ok := actualMap[col.name]
		if !ok || col.typ == "" {
			continue
		}
		// Soft check: bigint matches bigint(20), json matches json.
		if !strings.Contains(act.Type, col.typ) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", col.name, col.typ, act.Type))
			report.Matched = false
		}
	}

	return report, nil
}

type column struct {
	name string
	typ  string
}

func expectedColumns(t reflect.Type) []column {
	var out []column
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		name := parseGormColumn(tag)
		if name == "" {
			continue
		}
		out = append(out, column{name: name, typ: strings.ToLower(parseGormType(tag))})
	}
	return out
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
