// Package models contains the gorm model of the Firefox cookie table.
package models
