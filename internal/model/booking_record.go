package model

import "time"

// BookingRecord is the audit trail of a successfully created booking. The
// calendar remains the source of truth for the schedule; these rows exist so
// booking activity can be reviewed without calendar access.
type BookingRecord struct {
	ID        int64     `gorm:"autoIncrement;primaryKey"`
	Name      string    `gorm:"size:256;not null"`
	Phone     string    `gorm:"size:64;not null"`
	Email     string    `gorm:"size:256"`
	Address   string    `gorm:"size:512;not null"`
	JobType   string    `gorm:"size:128;not null"`
	SlotStart time.Time `gorm:"not null;index"`
	SlotEnd   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
