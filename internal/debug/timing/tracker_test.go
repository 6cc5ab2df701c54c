package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerRecordsDurations(t *testing.T) {
	tt := NewTracker()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tt.now = func() time.Time { return clock }

	ctx := tt.StartTiming(context.Background(), "draw")
	clock = clock.Add(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, tt.EndTiming(ctx))

	ctx = tt.StartTiming(context.Background(), "draw")
	clock = clock.Add(40 * time.Millisecond)
	tt.EndTiming(ctx)

	assert.Equal(t, []time.Duration{20 * time.Millisecond, 40 * time.Millisecond}, tt.GetTimings("draw"))
	assert.Equal(t, 30*time.Millisecond, tt.GetAverageTime("draw"))
	assert.Nil(t, tt.GetTimings("load"))
	assert.Zero(t, tt.GetAverageTime("load"))
}

func TestTrackerDisabledAndReset(t *testing.T) {
	tt := NewTracker()
	tt.SetEnabled(false)

	ctx := tt.StartTiming(context.Background(), "draw")
	assert.Zero(t, tt.EndTiming(ctx))
	assert.Nil(t, tt.GetTimings("draw"))

	tt.SetEnabled(true)
	tt.EndTiming(tt.StartTiming(context.Background(), "draw"))
	tt.EndTiming(tt.StartTiming(context.Background(), "load"))
	tt.Reset("draw")
	assert.Nil(t, tt.GetTimings("draw"))
	assert.Len(t, tt.GetTimings("load"), 1)

	tt.Reset("")
	assert.Nil(t, tt.GetTimings("load"))
}
