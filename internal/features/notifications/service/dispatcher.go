package service

import (
	"context"
	"sync"
	"time"

	"sge-logistics/internal/core/logger"
	contactdomain "sge-logistics/internal/features/contact/domain"
	"sge-logistics/internal/features/notifications/domain"
	"sge-logistics/internal/features/notifications/ports"
	shipmentdomain "sge-logistics/internal/features/shipments/domain"

	"go.uber.org/zap"
)

const (
	queueSize   = 256
	sendTimeout = 15 * time.Second
)

// Dispatcher delivers notifications in the background. Enqueueing never
// blocks and delivery failures are logged and dropped, so a slow or broken
// mail provider cannot affect request handling.
//
// It implements the shipments and contact Notifier ports.
type Dispatcher struct {
	mailer     ports.Mailer
	adminEmail string

	queue chan domain.Message
	done  chan struct{}
	once  sync.Once
}

// NewDispatcher creates a Dispatcher and starts its delivery worker.
func NewDispatcher(mailer ports.Mailer, adminEmail string) *Dispatcher {
	d := &Dispatcher{
		mailer:     mailer,
		adminEmail: adminEmail,
		queue:      make(chan domain.Message, queueSize),
		done:       make(chan struct{}),
	}
	go d.run()
	return d
}

// ShipmentCreated queues the shipment registration notifications.
func (d *Dispatcher) ShipmentCreated(shipment *shipmentdomain.Shipment) {
	d.enqueue(domain.ShipmentCreatedMessages(shipment, d.adminEmail)...)
}

// ShipmentUpdated queues the status change notification.
func (d *Dispatcher) ShipmentUpdated(shipment *shipmentdomain.Shipment, event *shipmentdomain.TrackingEvent) {
	d.enqueue(domain.ShipmentUpdatedMessages(shipment, event)...)
}

// ContactReceived queues the admin notification for a contact submission.
func (d *Dispatcher) ContactReceived(msg *contactdomain.ContactMessage) {
	d.enqueue(domain.ContactReceivedMessages(msg, d.adminEmail)...)
}

// Close stops accepting messages and waits for queued ones to be delivered.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) enqueue(messages ...domain.Message) {
	for _, msg := range messages {
		select {
		case d.queue <- msg:
		default:
			logger.Get().Warn("Notification queue full, dropping message",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
			)
		}
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.mailer.Send(ctx, msg)
		cancel()

		if err != nil {
			logger.Get().Warn("Notification delivery failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			continue
		}

		logger.Get().Debug("Notification delivered",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}
