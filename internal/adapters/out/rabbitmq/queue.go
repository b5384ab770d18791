// Package rabbitmq implements the work queue port on RabbitMQ: one durable
// queue of order job descriptors with persistent messages and manual acks,
// giving the pipeline its at-least-once delivery guarantee.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cafeteria/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueName is the durable queue holding order job descriptors.
const QueueName = "order_jobs"

// OrderQueue implements ports.WorkQueue over a RabbitMQ connection.
// Publishing and consuming use separate channels so a worker's Qos setting
// never throttles the submission path.
type OrderQueue struct {
	conn       *amqp.Connection
	pubChannel *amqp.Channel
	logger     *slog.Logger
}

// NewOrderQueue connects to the broker at url, declares the durable job
// queue, and returns a queue ready for publishing and consuming.
func NewOrderQueue(url string, logger *slog.Logger) (*OrderQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	pubChannel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = pubChannel.QueueDeclare(
		QueueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		pubChannel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", QueueName, err)
	}

	return &OrderQueue{
		conn:       conn,
		pubChannel: pubChannel,
		logger:     logger.With("component", "rabbitmq"),
	}, nil
}

// Enqueue publishes a job as a persistent JSON message. The job survives a
// broker restart once the publish returns without error.
func (q *OrderQueue) Enqueue(ctx context.Context, job ports.Job) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	err = q.pubChannel.PublishWithContext(ctx,
		"",        // exchange: default, routes by queue name
		QueueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish job: %w", err)
	}

	return nil
}

// Consume opens a delivery stream with manual acknowledgement and a prefetch
// of one, so a busy worker never hoards jobs another idle worker could take.
// Malformed messages are dropped without requeue; redelivering them could
// never succeed.
func (q *OrderQueue) Consume(ctx context.Context) (<-chan ports.Delivery, error) {
	channel, err := q.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consumer channel: %w", err)
	}

	if err = channel.Qos(1, 0, false); err != nil {
		channel.Close()
		return nil, fmt.Errorf("set prefetch: %w", err)
	}

	messages, err := channel.Consume(
		QueueName, // queue
		"",        // consumer: server-generated tag
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("start consuming: %w", err)
	}

	deliveries := make(chan ports.Delivery)
	go func() {
		defer close(deliveries)
		defer channel.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var job ports.Job
				if err := json.Unmarshal(msg.Body, &job); err != nil {
					q.logger.Error("dropping malformed job message", "error", err)
					_ = msg.Nack(false, false)
					continue
				}

				select {
				case deliveries <- &amqpDelivery{msg: msg, job: job}:
				case <-ctx.Done():
					_ = msg.Nack(false, true)
					return
				}
			}
		}
	}()

	return deliveries, nil
}

// Close releases the publisher channel and the broker connection.
func (q *OrderQueue) Close() error {
	if err := q.pubChannel.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}

// amqpDelivery adapts an amqp delivery to the ports.Delivery contract.
type amqpDelivery struct {
	msg amqp.Delivery
	job ports.Job
}

func (d *amqpDelivery) Job() ports.Job {
	return d.job
}

func (d *amqpDelivery) Ack() error {
	return d.msg.Ack(false)
}

func (d *amqpDelivery) Nack(requeue bool) error {
	return d.msg.Nack(false, requeue)
}
