package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestEnvelopeWrapsPayload(t *testing.T) {
	raw, err := envelope(SubjectOrderSubmitted, map[string]string{"order_id": "o-1"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, SubjectOrderSubmitted, env.Subject)
	assert.NotEmpty(t, env.EventID)
	assert.False(t, env.OccurredAt.IsZero())
	assert.JSONEq(t, `{"order_id":"o-1"}`, string(env.Data))
}

func TestLogPublisher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	p := LogPublisher{Log: logrus.NewEntry(logger)}

	require.NoError(t, p.Publish(context.Background(), SubjectOrderStatus, map[string]string{"status": "received"}))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, SubjectOrderStatus, hook.LastEntry().Data["subject"])
}

func TestHeaderCarrierRoundTripsTraceContext(t *testing.T) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
		SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	msg := nats.NewMsg(SubjectOrderSubmitted)
	prop := propagation.TraceContext{}
	prop.Inject(ctx, (*headerCarrier)(msg))
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", msg.Header.Get("traceparent"))
	assert.Contains(t, (*headerCarrier)(msg).Keys(), "traceparent")

	got := trace.SpanContextFromContext(prop.Extract(context.Background(), (*headerCarrier)(msg)))
	assert.Equal(t, sc.TraceID(), got.TraceID())
	assert.Equal(t, sc.SpanID(), got.SpanID())
}
