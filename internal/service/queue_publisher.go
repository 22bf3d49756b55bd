// Package queue_publisher publishes notification notices to RabbitMQ.
// Errors are logged and returned so callers can ignore failures without
// interrupting the request flow: a booking is accepted even when the
// notification cannot be queued.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/netandpro/booking-api/internal/queue"
)

// PublishBookingRequested publishes a BookingRequestedNotice to the
// booking.requested queue. Messages are marked persistent so they survive
// broker restarts until the mailer drains them.
func PublishBookingRequested(ctx context.Context, notice q.BookingRequestedNotice) error {
	return publish(ctx, q.BookingQueue, notice)
}

// PublishContactReceived publishes a ContactReceivedNotice to the
// contact.received queue.
func PublishContactReceived(ctx context.Context, notice q.ContactReceivedNotice) error {
	return publish(ctx, q.ContactQueue, notice)
}

// publish opens a short-lived connection, declares the queue (idempotent,
// durable) and sends one persistent JSON message on the default exchange.
func publish(ctx context.Context, queueName string, payload any) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("rabbitmq: marshal notice failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
