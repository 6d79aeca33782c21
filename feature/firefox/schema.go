package firefox

import (
	"errors"
	"fmt"
	"strings"

	"cookie-importer/core/database"
	"cookie-importer/feature/firefox/models"

	"gorm.io/gorm"
)

// ErrMissingTable is returned when a database has no moz_cookies table.
var ErrMissingTable = errors.New("moz_cookies table not found")

// SchemaError lists the expected columns a moz_cookies table lacks.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("moz_cookies is missing columns: %s", strings.Join(e.Missing, ", "))
}

// VerifySchema checks that db holds a moz_cookies table with every column the
// importer writes.
func VerifySchema(db *gorm.DB) error {
	exists, err := database.TableExists(db, models.TableName)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMissingTable
	}

	columns, err := database.GetTableColumns(db, models.TableName)
	if err != nil {
		return err
	}

	present := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		present[strings.ToLower(col.Field)] = struct{}{}
	}

	var missing []string
	for _, want := range models.Columns() {
		if _, ok := present[strings.ToLower(want)]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
