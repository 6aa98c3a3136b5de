package checks

import (
	"fmt"

	"gorm.io/gorm"
)

// DatabaseReport strictly types the result of a database check.
type DatabaseReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
}

type TableReport struct {
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckDatabase verifies the schema using GORM models as the source of truth.
func CheckDatabase(db *gorm.DB, models ...any) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &DatabaseReport{Matched: true, Tables: make(map[string]TableReport)}
	migrator := db.Migrator()

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		tbl := TableReport{MissingColumns: []string{}, Status: "ok"}
		if !migrator.HasTable(model) {
			tbl.Status = "error"
			report.Matched = false
			report.Tables[table] = tbl
			continue
		}
		tbl.Exists = true

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			if !migrator.HasColumn(model, field.DBName) {
				tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
				tbl.Status = "error"
				report.Matched = false
			}
		}
		report.Tables[table] = tbl
	}

	return report, nil
}
