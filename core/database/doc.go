// Package database handles database connections and schema inspection.
//
// Connect wraps GORM and opens either MySQL or a SQLite file depending on the
// configured driver. The database only backs user-defined level codes, so
// the server keeps running without it.
//
// GetTableColumns reads a table's live column definitions (SHOW COLUMNS on
// MySQL, pragma_table_info on SQLite) for the schema integrity check.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "custom_levels")
package database
