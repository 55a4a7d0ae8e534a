package domain

import (
	"fmt"
	"time"

	contactdomain "sge-logistics/internal/features/contact/domain"
	shipmentdomain "sge-logistics/internal/features/shipments/domain"
)

// Message is one outbound email notification.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ShipmentCreatedMessages builds the notifications sent when a shipment is
// registered: one confirmation to the sender, one heads-up to the admin inbox.
func ShipmentCreatedMessages(shipment *shipmentdomain.Shipment, adminEmail string) []Message {
	body := fmt.Sprintf(
		"Your shipment to %s has been registered.\n\n"+
			"Tracking number: %s\n"+
			"Reference code: %s\n"+
			"Estimated delivery: %s\n\n"+
			"Track it any time at https://sgelogistics.com/track/%s",
		shipment.RecipientName,
		shipment.TrackingNumber,
		shipment.ReferenceCode,
		shipment.EstimatedDelivery.Format("Monday, 2 January 2006"),
		shipment.TrackingNumber,
	)

	messages := []Message{{
		To:      shipment.SenderEmail,
		Subject: fmt.Sprintf("Shipment %s registered", shipment.TrackingNumber),
		Body:    body,
	}}

	if adminEmail != "" {
		messages = append(messages, Message{
			To:      adminEmail,
			Subject: fmt.Sprintf("New shipment %s", shipment.TrackingNumber),
			Body: fmt.Sprintf("Shipment %s from %s to %s was created.",
				shipment.TrackingNumber, shipment.SenderName, shipment.RecipientName),
		})
	}

	return messages
}

// ShipmentUpdatedMessages builds the notification sent when a shipment
// changes status.
func ShipmentUpdatedMessages(shipment *shipmentdomain.Shipment, event *shipmentdomain.TrackingEvent) []Message {
	if shipment.SenderEmail == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Your shipment %s is now: %s\n\n%s\n\nProgress: %d%%",
		shipment.TrackingNumber,
		event.Status,
		event.Description,
		event.Progress,
	)
	if event.Location != "" {
		body += fmt.Sprintf("\nLocation: %s", event.Location)
	}

	return []Message{{
		To:      shipment.SenderEmail,
		Subject: fmt.Sprintf("Shipment %s update: %s", shipment.TrackingNumber, event.Status),
		Body:    body,
	}}
}

// ContactReceivedMessages builds the admin notification for a contact-form
// submission.
func ContactReceivedMessages(msg *contactdomain.ContactMessage, adminEmail string) []Message {
	if adminEmail == "" {
		return nil
	}

	subject := msg.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	return []Message{{
		To:      adminEmail,
		Subject: fmt.Sprintf("Contact form: %s", subject),
		Body: fmt.Sprintf(
			"From: %s <%s>\nPhone: %s\nReceived: %s\n\n%s",
			msg.Name,
			msg.Email,
			msg.Phone,
			msg.CreatedAt.Format(time.RFC1123),
			msg.Message,
		),
	}}
}
