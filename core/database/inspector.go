package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one row of PRAGMA table_info.
type ColumnInfo struct {
	Field      string
	Type       string
	NotNull    bool
	PrimaryKey bool
}

// GetTableColumns retrieves the column definitions for a given table.
// A missing table yields no columns and no error.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid       int
		Name      string
		Type      string
		Notnull   int
		DfltValue *string
		Pk        int
	}

	var rows []sqliteColumn
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}

	columns := make([]ColumnInfo, 0, len(rows))
	for _, col := range rows {
		columns = append(columns, ColumnInfo{
			Field:      col.Name,
			Type:       strings.ToLower(col.Type),
			NotNull:    col.Notnull != 0,
			PrimaryKey: col.Pk != 0,
		})
	}
	return columns, nil
}

// TableExists reports whether sqlite_master lists a table named tableName.
func TableExists(db *gorm.DB, tableName string) (bool, error) {
	var count int64
	err := db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", tableName).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", tableName, err)
	}
	return count > 0, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
