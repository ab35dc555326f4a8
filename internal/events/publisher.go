package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// channel часть *amqp.Channel, используемая публикатором
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события бронирований в topic exchange RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	timeout  time.Duration
	log      Logger

	mu sync.Mutex // amqp.Channel не потокобезопасен для публикации
}

// NewPublisher подключается к RabbitMQ и объявляет exchange
func NewPublisher(url, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, timeout: timeout, log: log}, nil
}

func newPublisherWithChannel(ch channel, exchange string, timeout time.Duration, log Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, timeout: timeout, log: log}
}

// PublishBookingCreated публикует booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, BookingCreated(b, time.Now()))
}

// PublishBookingCancelled публикует booking.cancelled с данными возврата
func (p *Publisher) PublishBookingCancelled(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, BookingCancelled(b, time.Now()))
}

func (p *Publisher) publish(ctx context.Context, event Envelope) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventType, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, event.EventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         event.EventType,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType, err)
	}

	p.log.Info("Published event %s id=%s", event.EventType, event.EventID)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher используется, когда RabbitMQ отключён в конфигурации
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, *domain.Booking) error   { return nil }
func (NoopPublisher) PublishBookingCancelled(context.Context, *domain.Booking) error { return nil }
func (NoopPublisher) Close() error                                                   { return nil }
