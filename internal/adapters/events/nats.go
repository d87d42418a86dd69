// Package events publishes order lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"tradeup/internal/ports"
)

const (
	SubjectOrderSubmitted = ports.SubjectOrderSubmitted
	SubjectOrderStatus    = ports.SubjectOrderStatus
)

// Envelope wraps every payload published by this service.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Subject    string          `json:"subject"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

func envelope(subject string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
}

// headerCarrier lets the otel propagator read and write nats.Msg headers.
type headerCarrier nats.Msg

func (c *headerCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *headerCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}

// NATSPublisher publishes JSON envelopes on a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

func ConnectNATS(url string, log *logrus.Entry) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("tradeup"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.WithField("url", c.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{conn: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := envelope(subject, payload)
	if err != nil {
		return err
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	otel.GetTextMapPropagator().Inject(ctx, (*headerCarrier)(msg))
	return p.conn.PublishMsg(msg)
}

func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// LogPublisher writes events to the log when no broker is configured.
type LogPublisher struct {
	Log *logrus.Entry
}

func (p LogPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := envelope(subject, payload)
	if err != nil {
		return err
	}
	p.Log.WithField("subject", subject).WithField("event", string(data)).Info("event")
	return nil
}
