package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher emits booking events. Publishing is best-effort: a broker
// failure is logged and never fails the request that triggered it. With a
// nil connection every method is a no-op, which is how the service runs
// when no broker is configured.
type Publisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

func NewPublisher(conn *amqp.Connection, logger *zap.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

func (p *Publisher) BookingCreated(msg BookingCreatedMessage) {
	p.publish(BookingCreatedQueue, msg)
}

func (p *Publisher) ShowingsPurged(msg ShowingsPurgedMessage) {
	p.publish(ShowingsPurgedQueue, msg)
}

func (p *Publisher) publish(queueName string, message any) {
	if p == nil || p.conn == nil {
		return
	}

	ch, err := NewChannel(p.conn)
	if err != nil {
		p.logger.Warn("mq: open channel", zap.String("queue", queueName), zap.Error(err))
		return
	}
	defer ch.Close()

	if err := SendImmediateMessage(ch, queueName, message); err != nil {
		p.logger.Warn("mq: publish", zap.String("queue", queueName), zap.Error(err))
	}
}
