package models

import "cookie-importer/core/cookie"

// TableName is the cookie table of a Firefox profile.
const TableName = "moz_cookies"

// MozCookie represents one row of 'moz_cookies'. Flags are stored as 0/1 integers.
type MozCookie struct {
	ID                        int64  `gorm:"column:id;primaryKey"`
	OriginAttributes          string `gorm:"column:originAttributes"`
	Name                      string `gorm:"column:name"`
	Value                     string `gorm:"column:value"`
	Host                      string `gorm:"column:host"`
	Path                      string `gorm:"column:path"`
	Expiry                    int64  `gorm:"column:expiry"`
	LastAccessed              int64  `gorm:"column:lastAccessed"` // µs
	CreationTime              int64  `gorm:"column:creationTime"` // µs
	IsSecure                  int    `gorm:"column:isSecure"`
	IsHttpOnly                int    `gorm:"column:isHttpOnly"`
	InBrowserElement          int    `gorm:"column:inBrowserElement"`
	SameSite                  int    `gorm:"column:sameSite"`
	SchemeMap                 int    `gorm:"column:schemeMap"`
	IsPartitionedAttributeSet int    `gorm:"column:isPartitionedAttributeSet"`
}

// TableName overrides the table name.
func (MozCookie) TableName() string {
	return TableName
}

// Columns lists the columns the importer reads or writes.
func Columns() []string {
	return []string{
		"id", "originAttributes", "name", "value", "host", "path",
		"expiry", "lastAccessed", "creationTime", "isSecure", "isHttpOnly",
		"inBrowserElement", "sameSite", "schemeMap", "isPartitionedAttributeSet",
	}
}

// NewMozCookie builds a fresh row for c. expiry is already in the store's unit.
func NewMozCookie(c cookie.Cookie, expiry, now int64) MozCookie {
	return MozCookie{
		OriginAttributes:          "",
		Name:                      c.Name,
		Value:                     c.Value,
		Host:                      c.Domain,
		Path:                      c.Path,
		Expiry:                    expiry,
		LastAccessed:              now,
		CreationTime:              now,
		IsSecure:                  cookie.BoolInt(c.Secure),
		IsHttpOnly:                cookie.BoolInt(c.HTTPOnly),
		InBrowserElement:          0,
		SameSite:                  c.SameSite,
		SchemeMap:                 c.SchemeMap(),
		IsPartitionedAttributeSet: 0,
	}
}

// UpdateColumns returns the columns overwritten when c replaces an existing row.
// creationTime and originAttributes are left alone.
func UpdateColumns(c cookie.Cookie, expiry, now int64) map[string]any {
	return map[string]any{
		"value":        c.Value,
		"expiry":       expiry,
		"lastAccessed": now,
		"isSecure":     cookie.BoolInt(c.Secure),
		"isHttpOnly":   cookie.BoolInt(c.HTTPOnly),
		"sameSite":     c.SameSite,
		"schemeMap":    c.SchemeMap(),
	}
}

// CreateTableSQL is the moz_cookies definition of current Firefox releases.
const CreateTableSQL = `CREATE TABLE moz_cookies (
	id INTEGER PRIMARY KEY,
	originAttributes TEXT NOT NULL DEFAULT '',
	name TEXT,
	value TEXT,
	host TEXT,
	path TEXT,
	expiry INTEGER,
	lastAccessed INTEGER,
	creationTime INTEGER,
	isSecure INTEGER,
	isHttpOnly INTEGER,
	inBrowserElement INTEGER DEFAULT 0,
	sameSite INTEGER DEFAULT 0,
	rawSameSite INTEGER DEFAULT 0,
	schemeMap INTEGER DEFAULT 0,
	isPartitionedAttributeSet INTEGER DEFAULT 0,
	CONSTRAINT moz_uniqueid UNIQUE (name, host, path, originAttributes)
)`
