package service

import (
	"sort"
	"time"

	"github.com/devfolio/stats-service/internal/core/domain/entities"
)

// ComputeStreakStats walks the distinct calendar days that contain at least
// one push event, newest first, and measures consecutive-day runs. A day with
// several pushes appears once. The current streak is reported only when the
// newest run chains to today or yesterday relative to now; otherwise it is
// zero. No push events means both counts are zero.
func ComputeStreakStats(events []entities.Event, now time.Time) entities.StreakStats {
	seen := make(map[string]struct{})
	var days []time.Time

	for _, event := range events {
		if event.Type != entities.EventTypePush {
			continue
		}
		key := DayKey(event.CreatedAt)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		day, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}

	if len(days) == 0 {
		return entities.StreakStats{}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	current := 0
	today, _ := time.Parse(dayKeyLayout, DayKey(now))
	if gap := today.Sub(days[0]); gap == 0 || gap == 24*time.Hour {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i-1].Sub(days[i]) != 24*time.Hour {
				break
			}
			current++
		}
	}

	return entities.StreakStats{Current: current, Longest: longest}
}
