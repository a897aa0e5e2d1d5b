package db_models

import "github.com/lib/pq"

// Package is a service tier athletes book, e.g. "Iron" or "Gold".
// Inclusions lists the deliverable types the tier covers; it is catalog
// information only and does not constrain edit-task creation.
type Package struct {
	BaseModel
	Name        string
	Description string
	Inclusions  pq.StringArray `gorm:"type:text[]"`
}
