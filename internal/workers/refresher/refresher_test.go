package refresher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStartRunsImmediatelyAndOnInterval(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var fast, failing atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Start(ctx, logrus.NewEntry(logger),
			Task{Name: "fast", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
				fast.Add(1)
				return nil
			}},
			Task{Name: "slow", Interval: time.Hour, Run: func(context.Context) error {
				failing.Add(1)
				return errors.New("upstream down")
			}},
			Task{Name: "disabled", Interval: 0, Run: func(context.Context) error {
				t.Error("disabled task ran")
				return nil
			}},
		)
		close(done)
	}()

	require.Eventually(t, func() bool { return fast.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	assert.Equal(t, int32(1), failing.Load())
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["task"] == "slow" {
			warned = true
		}
	}
	assert.True(t, warned)
}
