package notification

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"estimate-booking-backend/internal/store"
)

// BookingAlert is one notification job: a new booking staff should hear about.
type BookingAlert struct {
	Name      string
	JobType   string
	Address   string
	SlotStart time.Time
}

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is the real implementation of Sender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers for sending booking notifications.
type WorkerPool struct {
	size    int
	jobs    chan BookingAlert
	store   store.Store
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, st store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan BookingAlert, size),
		store:   st,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Notification worker %d started", id)
	for {
		select {
		case alert := <-wp.jobs:
			log.Printf("Notification worker %d processing booking for %q", id, alert.Name)
			wp.notifyStaff(ctx, alert)
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(alert BookingAlert) {
	wp.jobs <- alert
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan BookingAlert {
	return wp.jobs
}

// notifyStaff pushes the alert to every stored staff subscription, pruning
// subscriptions the push service reports as gone.
func (wp *WorkerPool) notifyStaff(ctx context.Context, alert BookingAlert) {
	subscriptions, err := wp.store.ListSubscriptions(ctx)
	if err != nil {
		log.Printf("Error fetching staff subscriptions: %v", err)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"title": "New estimate booked",
		"body":  alert.Name + " - " + alert.JobType + " at " + alert.Address + ", " + alert.SlotStart.Format("Mon Jan 2 3:04 PM"),
	})
	if err != nil {
		log.Printf("Error marshaling notification payload: %v", err)
		return
	}

	for _, sub := range subscriptions {
		target := &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256DH,
				Auth:   sub.Auth,
			},
		}

		resp, err := wp.sender.Send(payload, target, wp.webpush)
		if err != nil {
			log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			log.Printf("Subscription %s is gone, removing", sub.Endpoint)
			if err := wp.store.DeleteSubscription(ctx, sub.Endpoint); err != nil {
				log.Printf("Error removing dead subscription: %v", err)
			}
		}
	}
}
