package consumer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/adeyemi-o/hotel-management/internal/export"
	"github.com/adeyemi-o/hotel-management/internal/mailer"
	"github.com/adeyemi-o/hotel-management/internal/service"
)

// EmailConsumer turns booking.* events into transactional email. It runs
// out-of-band from the request that committed the booking, so a provider
// outage never blocks or fails a booking operation.
type EmailConsumer struct {
	mailer *mailer.Mailer
}

func NewEmailConsumer(m *mailer.Mailer) *EmailConsumer {
	return &EmailConsumer{mailer: m}
}

func (ec *EmailConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ec.handleMessage(msg)
		}
		logrus.Info("booking event channel closed, stopping mail consumer")
	}()
}

func (ec *EmailConsumer) handleMessage(msg amqp.Delivery) {
	var event service.BookingEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logrus.WithError(err).Warn("failed to unmarshal booking event")
		msg.Nack(false, false)
		return
	}

	var err error
	switch msg.RoutingKey {
	case service.EventBookingCreated:
		err = ec.sendConfirmation(event)
	case service.EventBookingCancelled:
		err = ec.mailer.Send(
			event.CustomerEmail,
			fmt.Sprintf("Booking %s cancelled", event.BookingNumber),
			mailer.CancellationHTML(event.CustomerName, event.BookingNumber),
			"",
		)
	case service.EventBookingCheckedIn:
		err = ec.mailer.Send(
			event.CustomerEmail,
			"Welcome to your stay",
			mailer.WelcomeHTML(event.CustomerName, event.RoomNumber, event.CheckOutDate),
			"",
		)
	}

	// Email is best-effort: a failed send is logged and the message acked,
	// never requeued into a retry loop.
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":   msg.RoutingKey,
			"booking": event.BookingNumber,
		}).Warn("failed to send booking email")
	}
	msg.Ack(false)
}

func (ec *EmailConsumer) sendConfirmation(event service.BookingEvent) error {
	var atts []mailer.Attachment
	if receipt, err := export.BookingReceiptPDF(event); err == nil {
		atts = append(atts, mailer.Attachment{
			Filename: fmt.Sprintf("receipt-%s.pdf", event.BookingNumber),
			Content:  base64.StdEncoding.EncodeToString(receipt),
		})
	} else {
		logrus.WithError(err).WithField("booking", event.BookingNumber).
			Warn("failed to render receipt pdf")
	}

	return ec.mailer.Send(
		event.CustomerEmail,
		fmt.Sprintf("Booking confirmed: %s", event.BookingNumber),
		mailer.ConfirmationHTML(
			event.CustomerName, event.BookingNumber, event.RoomNumber,
			event.CheckInDate, event.CheckOutDate, event.TotalAmount,
		),
		"",
		atts...,
	)
}
