package present

import (
	"math"
	"time"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// maxScheduleMinutes is the longest phase a time.Duration can hold.
const maxScheduleMinutes = float64(math.MaxInt64 / int64(time.Minute))

// Phase is one step of the timeline. End is zero when no start time is known.
type Phase struct {
	Label string
	Hours float64
	End   time.Time

	// optional phases get no end time when empty.
	optional bool
}

// HasEnd reports whether an end time was computed.
func (p Phase) HasEnd() bool {
	return !p.End.IsZero()
}

// ParseStart resolves a "HH:MM" start on the day of now. An empty value
// means now. ok is false when s is not a valid clock time.
func ParseStart(s string, now time.Time) (start time.Time, ok bool) {
	if s == "" {
		return now, true
	}
	t, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location()), true
}

// Schedule lists the timeline phases in order. Fridge and warmup appear
// only when the fridge is used. With a non-zero start every phase gets
// the end time of its cumulative duration, each step rounded to whole
// minutes. An empty warmup has no end time.
func Schedule(tl domain.TimelineResult, start time.Time) []Phase {
	phases := []Phase{{Label: "Bulk rise (whole dough)", Hours: tl.BulkHours}}
	if tl.FridgeHours > 0 {
		phases = append(phases,
			Phase{Label: "Fridge (covered)", Hours: tl.FridgeHours, optional: true},
			Phase{Label: "Warmup (bench rest)", Hours: tl.WarmupHours, optional: true},
		)
	}
	phases = append(phases, Phase{Label: "Final proof (balls)", Hours: tl.ProofHours})

	if start.IsZero() {
		return phases
	}
	clock := start
	for i := range phases {
		if phases[i].optional && phases[i].Hours <= 0 {
			continue
		}
		minutes := math.Round(phases[i].Hours * 60)
		if math.IsNaN(minutes) || minutes > maxScheduleMinutes || minutes < -maxScheduleMinutes {
			// Beyond time.Duration; later ends would be wrong too.
			break
		}
		clock = clock.Add(time.Duration(minutes) * time.Minute)
		phases[i].End = clock
	}
	return phases
}
