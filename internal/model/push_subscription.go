package model

import "time"

// PushSubscription holds the information for a staff browser push
// subscription. Every stored subscription is notified on each new booking.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	Label     string    `gorm:"size:128"`
	CreatedAt time.Time `gorm:"not null"`
}
