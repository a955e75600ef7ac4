package reminder

import (
	"testing"
	"time"

	"github.com/eventra/eventra/pkg/event"
	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		expected int
	}{
		{"exactly 3 days ahead", now.Add(72 * time.Hour), 3},
		{"just under 3 days rounds up", now.Add(72*time.Hour - time.Minute), 3},
		{"exactly 2 days ahead", now.Add(48 * time.Hour), 2},
		{"12 hours ahead is tomorrow", now.Add(12 * time.Hour), 1},
		{"one minute ahead is tomorrow", now.Add(time.Minute), 1},
		{"already started", now.Add(-time.Hour), 0},
		{"long past", now.Add(-80 * time.Hour), -3},
		{"four days ahead", now.Add(96 * time.Hour), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysUntil(now, tt.start))
		})
	}
}

func TestComputeNotices(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("emits one notice per event within thresholds", func(t *testing.T) {
		events := []event.Event{
			{ID: 1, Name: "Conference", StartTime: now.Add(72 * time.Hour)},
			{ID: 2, Name: "Training", StartTime: now.Add(48 * time.Hour)},
			{ID: 3, Name: "Launch", StartTime: now.Add(12 * time.Hour)},
		}

		notices := ComputeNotices(events, now)

		assert.Len(t, notices, 3)
		assert.Equal(t, 3, notices[0].DaysLeft)
		assert.Equal(t, `"Conference" in 3 days!`, notices[0].Message)
		assert.Equal(t, 2, notices[1].DaysLeft)
		assert.Equal(t, `"Training" in 2 days!`, notices[1].Message)
		assert.Equal(t, 1, notices[2].DaysLeft)
		assert.Equal(t, `"Launch" starts TOMORROW!`, notices[2].Message)
	})

	t.Run("skips past events and events farther out", func(t *testing.T) {
		events := []event.Event{
			{ID: 1, Name: "Started", StartTime: now.Add(-time.Hour)},
			{ID: 2, Name: "Far away", StartTime: now.Add(10 * 24 * time.Hour)},
			{ID: 3, Name: "Four days", StartTime: now.Add(96 * time.Hour)},
		}

		assert.Empty(t, ComputeNotices(events, now))
	})

	t.Run("is pure: same input produces identical notices", func(t *testing.T) {
		events := []event.Event{
			{ID: 5, Name: "Conference", StartTime: now.Add(72 * time.Hour)},
		}

		first := ComputeNotices(events, now)
		second := ComputeNotices(events, now)

		assert.Equal(t, first, second)
	})

	t.Run("tracks the approaching start across days", func(t *testing.T) {
		start := now.Add(72 * time.Hour)
		events := []event.Event{{ID: 5, Name: "X", StartTime: start}}

		notices := ComputeNotices(events, now)
		assert.Len(t, notices, 1)
		assert.Equal(t, 3, notices[0].DaysLeft)
		assert.Equal(t, `"X" in 3 days!`, notices[0].Message)

		notices = ComputeNotices(events, now.Add(24*time.Hour))
		assert.Len(t, notices, 1)
		assert.Equal(t, 2, notices[0].DaysLeft)
		assert.Equal(t, `"X" in 2 days!`, notices[0].Message)

		notices = ComputeNotices(events, start.Add(-12*time.Hour))
		assert.Len(t, notices, 1)
		assert.Equal(t, 1, notices[0].DaysLeft)
		assert.Equal(t, `"X" starts TOMORROW!`, notices[0].Message)

		notices = ComputeNotices(events, start.Add(time.Hour))
		assert.Empty(t, notices)
	})
}

func TestNoticeMessageFallback(t *testing.T) {
	// Reachable only if the threshold set is reconfigured.
	assert.Equal(t, `"X" in 7 days!`, noticeMessage("X", 7))
}
