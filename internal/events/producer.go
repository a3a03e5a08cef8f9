// Package events publishes entity lifecycle events to Kafka. Production is
// fire-and-forget: events are queued on a buffered channel and dropped with
// a warning when the queue is full, so a slow broker never stalls a request.
package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

type EventType string

const (
	CompanyCreated EventType = "company_created"
	CompanyUpdated EventType = "company_updated"
	CompanyDeleted EventType = "company_deleted"

	CustomerCreated EventType = "customer_created"
	CustomerUpdated EventType = "customer_updated"
	CustomerDeleted EventType = "customer_deleted"

	ProductCreated EventType = "product_created"
	ProductUpdated EventType = "product_updated"
	ProductDeleted EventType = "product_deleted"

	SaleCreated       EventType = "sale_created"
	SaleUpdated       EventType = "sale_updated"
	SaleDeleted       EventType = "sale_deleted"
	SaleStatusChanged EventType = "sale_status_changed"

	CompanyUserCreated EventType = "company_user_created"
	CompanyUserDeleted EventType = "company_user_deleted"
)

// Event is the published envelope. Payload is a snapshot of the resource at
// the time of the event.
type Event struct {
	Type       EventType `json:"type"`
	ResourceID string    `json:"resourceId"`
	Payload    any       `json:"payload,omitempty"`
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}
	if err := conn.CreateTopics(topicConfigs...); err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}

	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

// Produce enqueues an event without blocking the caller.
func (p *Producer) Produce(eventType EventType, resourceID string, payload any) {
	select {
	case p.events <- Event{Type: eventType, ResourceID: resourceID, Payload: payload}:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.String("resource_id", resourceID),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("resource_id", event.ResourceID),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ResourceID),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("resource_id", event.ResourceID),
		)
		return
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}
