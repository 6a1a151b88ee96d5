package model

import "time"

// TravelDegradation records one lookup where the travel API could not answer
// and the default estimate was substituted. The substitution is silent toward
// the caller, so this table is the only place the failure rate is visible.
type TravelDegradation struct {
	ID          int64     `gorm:"autoIncrement;primaryKey"`
	Origin      string    `gorm:"size:512;not null"`
	Destination string    `gorm:"size:512;not null"`
	Cause       string    `gorm:"size:512;not null"`
	ObservedAt  time.Time `gorm:"not null;index"`
}
