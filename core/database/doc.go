// Package database handles SQLite connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) and the
// go-sqlite3 driver, configured for a single writer on a browser profile file.
//
// # Connect
//
// Connect opens the file named by Config.Path. The default "rw" mode refuses to
// create a missing file, so a typo in a profile path fails instead of producing
// an empty database. The busy timeout makes statements wait on a lock held by
// another process rather than fail at once.
//
// # Schema Inspection
//
// GetTableColumns and TableExists read PRAGMA table_info and sqlite_master. The
// browser store uses them to check the cookie table before writing to it.
//
// # Usage
//
//	db, err := database.Connect(database.Config{Path: dbPath, Mode: "rw", BusyTimeoutMS: 5000})
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "moz_cookies")
package database
