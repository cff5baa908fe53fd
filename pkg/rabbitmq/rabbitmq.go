package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"akbstore/internal/models"

	amqp "github.com/streadway/amqp"
)

// DefaultQueue receives cart events when Config.Queue is empty.
const DefaultQueue = "cart_events"

// CartItemAddedType is the AMQP type of a cart addition event.
const CartItemAddedType = "cart.item_added"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex // amqp.Channel is not safe for concurrent publishes
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the durable
// event queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

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
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
	}

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

// Queue returns the name of the declared event queue.
func (c *Client) Queue() string {
	return c.queue
}

// Close closes the RabbitMQ connection and channel.
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
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishCartItemAdded publishes event as persistent JSON on the event queue.
func (c *Client) PublishCartItemAdded(ctx context.Context, event models.CartItemAddedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cart event: %w", err)
	}
	return c.publish(newPublishing(CartItemAddedType, event.EventID, body))
}

func (c *Client) publish(msg amqp.Publishing) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func newPublishing(eventType, messageID string, body []byte) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         eventType,
		MessageId:    messageID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}
}
