package firefox

import (
	"path/filepath"
	"testing"

	"cookie-importer/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySchema(t *testing.T) {
	tests := []struct {
		name    string
		ddl     string
		wantErr error
		missing []string
	}{
		{
			name:    "Missing table",
			ddl:     "CREATE TABLE unrelated (id INTEGER)",
			wantErr: ErrMissingTable,
		},
		{
			name:    "Old schema",
			ddl:     "CREATE TABLE moz_cookies (id INTEGER PRIMARY KEY, originAttributes TEXT, name TEXT, value TEXT, host TEXT, path TEXT, expiry INTEGER, lastAccessed INTEGER, creationTime INTEGER, isSecure INTEGER, isHttpOnly INTEGER, inBrowserElement INTEGER, sameSite INTEGER)",
			missing: []string{"schemeMap", "isPartitionedAttributeSet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := database.Connect(database.Config{Path: filepath.Join(t.TempDir(), "c.sqlite"), Mode: "rwc"})
			require.NoError(t, err)
			t.Cleanup(func() { _ = database.Close(db) })
			require.NoError(t, db.Exec(tt.ddl).Error)

			err = VerifySchema(db)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.missing, schemaErr.Missing)
		})
	}
}

func TestVerifySchema_CurrentFirefox(t *testing.T) {
	db, err := database.Connect(database.Config{Path: newProfileDB(t), Mode: "rw"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	assert.NoError(t, VerifySchema(db))
}
