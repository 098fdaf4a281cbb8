// Package alerts publishes critical-error events to RabbitMQ. The queue
// is an out-of-band side channel: failures to publish are logged, never
// surfaced to the request that triggered the alert.
package alerts

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

const queueName = "critical_alerts"

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Event is the payload published for one critical error.
type Event struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewClient connects to RabbitMQ and declares the durable alert queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", queueName, err)
	}

	logrus.Infof("RabbitMQ client connected, %s queue declared", queueName)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during alerts client close: %v", errs)
	}
	return nil
}

// NotifyCriticalError publishes one critical-error event. Publish errors
// are logged and swallowed so the side channel never affects the caller.
func (c *Client) NotifyCriticalError(source, message string) {
	if c == nil || c.channel == nil {
		return
	}

	event := Event{
		ID:         uuid.New().String(),
		Source:     source,
		Message:    message,
		OccurredAt: time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("Failed to marshal critical alert event: %v", err)
		return
	}

	err = c.channel.Publish(
		"",        // default exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		logrus.Errorf("Failed to publish critical alert %s: %v", event.ID, err)
		return
	}

	logrus.Warnf("Published critical alert %s from %s", event.ID, source)
}
