package reminder

import (
	"fmt"
	"time"

	"github.com/eventra/eventra/pkg/event"
)

// Notice is an ephemeral reminder message. It is never persisted; the
// scheduler rebuilds the full set from event state on every run, so the same
// notice can legitimately be delivered more than once across runs.
type Notice struct {
	EventID   int       `json:"eventId"`
	EventName string    `json:"eventName"`
	StartTime time.Time `json:"startTime"`
	DaysLeft  int       `json:"daysLeft"`
	Message   string    `json:"message"`
}

// Thresholds are the day offsets at which a reminder fires for an approved
// upcoming event.
var Thresholds = []int{1, 2, 3}

var phrases = map[int]string{
	1: `"%s" starts TOMORROW!`,
	2: `"%s" in 2 days!`,
	3: `"%s" in 3 days!`,
}

const day = 24 * time.Hour

// DaysUntil returns the number of whole days from now until start, rounding
// any partial day up. An event 12 hours away is 1 day out.
func DaysUntil(now, start time.Time) int {
	diff := start.Sub(now)
	if diff <= 0 {
		return int(diff / day)
	}
	return int((diff + day - 1) / day)
}

func noticeMessage(name string, daysLeft int) string {
	if phrase, ok := phrases[daysLeft]; ok {
		return fmt.Sprintf(phrase, name)
	}
	return fmt.Sprintf(`"%s" in %d days!`, name, daysLeft)
}

// ComputeNotices derives the reminder set for the given events at the given
// time. Events starting in the past or farther out than the largest threshold
// produce nothing. Pure: same inputs, same notices.
func ComputeNotices(events []event.Event, now time.Time) []Notice {
	var notices []Notice
	for _, e := range events {
		daysLeft := DaysUntil(now, e.StartTime)
		if !isThreshold(daysLeft) {
			continue
		}
		notices = append(notices, Notice{
			EventID:   e.ID,
			EventName: e.Name,
			StartTime: e.StartTime,
			DaysLeft:  daysLeft,
			Message:   noticeMessage(e.Name, daysLeft),
		})
	}
	return notices
}

func isThreshold(daysLeft int) bool {
	for _, t := range Thresholds {
		if daysLeft == t {
			return true
		}
	}
	return false
}
