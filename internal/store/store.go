package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estimate-booking-backend/internal/model"
)

// Store defines the interface for all database operations. The availability
// engine itself persists nothing; this layer only holds staff push
// subscriptions, the booking audit trail, and travel degradation records.
type Store interface {
	SaveSubscription(ctx context.Context, sub model.PushSubscription) error
	GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
	ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error)
	RecordBooking(ctx context.Context, record model.BookingRecord) error
	RecordDegradation(ctx context.Context, origin, destination, cause string)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// SaveSubscription inserts a subscription, replacing the keys of an existing
// one with the same endpoint.
func (s *gormStore) SaveSubscription(ctx context.Context, sub model.PushSubscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "label"}),
	}).Create(&sub).Error
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// GetSubscription fetches one subscription by endpoint.
func (s *gormStore) GetSubscription(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	var sub model.PushSubscription
	err := s.db.WithContext(ctx).First(&sub, "endpoint = ?", endpoint).Error
	return sub, err
}

// DeleteSubscription removes a subscription by endpoint. Deleting a
// subscription that does not exist is not an error.
func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns all stored staff subscriptions.
func (s *gormStore) ListSubscriptions(ctx context.Context) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := s.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// RecordBooking appends one row to the booking audit trail.
func (s *gormStore) RecordBooking(ctx context.Context, record model.BookingRecord) error {
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record booking: %w", err)
	}
	return nil
}

// RecordDegradation appends one travel degradation record. Failures are
// logged and swallowed: observability writes must never affect a lookup.
func (s *gormStore) RecordDegradation(ctx context.Context, origin, destination, cause string) {
	record := model.TravelDegradation{
		Origin:      origin,
		Destination: destination,
		Cause:       cause,
		ObservedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		log.Printf("Error recording travel degradation: %v", err)
	}
}
