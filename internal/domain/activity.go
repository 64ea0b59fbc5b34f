package domain

import (
	"fmt"
	"sort"
	"time"
)

const (
	// UnlockTarget is the streak length either signal must reach.
	UnlockTarget = 7

	// MaxInteractionDates caps how many calendar dates are retained per user.
	MaxInteractionDates = 14

	// DateLayout is the calendar-date encoding used for interaction dates.
	DateLayout = "2006-01-02"
)

// ActivityRecord is a user's recorded platform interactions: a deduplicated,
// ascending set of calendar dates capped to the most recent MaxInteractionDates.
type ActivityRecord struct {
	UserID           string
	InteractionDates []string
	UpdatedAt        time.Time
}

// StudyStreak is the externally maintained check-in counter. This package
// only reads it; the increment path lives outside the unlock decision.
type StudyStreak struct {
	UserID      string
	Current     int
	Longest     int
	LastCheckIn string
}

// UnlockReason identifies which consistency signal drove the decision.
type UnlockReason string

const (
	ReasonBoth              UnlockReason = "both"
	ReasonStudyStreak       UnlockReason = "study_streak"
	ReasonInteractionStreak UnlockReason = "interaction_streak"
	ReasonNone              UnlockReason = "none"
)

// UnlockStatus is derived on every query and never stored.
type UnlockStatus struct {
	Unlocked bool
	Progress int
	Target   int
	Message  string
	Reason   UnlockReason
}

// AppendInteractionDate records today's date into the set. Re-recording the
// same date is a no-op; the returned slice is sorted ascending and trimmed to
// the most recent MaxInteractionDates entries.
func AppendInteractionDate(dates []string, today time.Time) []string {
	day := today.Format(DateLayout)
	for _, d := range dates {
		if d == day {
			return dates
		}
	}
	out := make([]string, 0, len(dates)+1)
	out = append(out, dates...)
	out = append(out, day)
	sort.Strings(out)
	if len(out) > MaxInteractionDates {
		out = out[len(out)-MaxInteractionDates:]
	}
	return out
}

// InteractionStreak counts consecutive calendar days present in dates,
// walking backward from today. The count starts only if today itself is
// present; otherwise it is 0 regardless of older dates. Capped at
// UnlockTarget.
func InteractionStreak(dates []string, today time.Time) int {
	present := make(map[string]bool, len(dates))
	for _, d := range dates {
		present[d] = true
	}

	streak := 0
	day := today
	for streak < UnlockTarget {
		if !present[day.Format(DateLayout)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ComputeUnlockStatus applies the unlock gate: either streak signal reaching
// UnlockTarget unlocks the feature. Today is injected so the calculation is
// testable and timezone-stable.
func ComputeUnlockStatus(currentStudyStreak int, dates []string, today time.Time) UnlockStatus {
	interaction := InteractionStreak(dates, today)
	studyMet := currentStudyStreak >= UnlockTarget
	interactionMet := interaction >= UnlockTarget

	switch {
	case studyMet && interactionMet:
		return UnlockStatus{
			Unlocked: true,
			Progress: UnlockTarget,
			Target:   UnlockTarget,
			Reason:   ReasonBoth,
			Message: fmt.Sprintf("Amazing! Both your %d-day study streak and daily activity unlocked this feature.",
				currentStudyStreak),
		}
	case studyMet:
		return UnlockStatus{
			Unlocked: true,
			Progress: UnlockTarget,
			Target:   UnlockTarget,
			Reason:   ReasonStudyStreak,
			Message: fmt.Sprintf("Unlocked by your %d-day study streak. Keep it going!",
				currentStudyStreak),
		}
	case interactionMet:
		return UnlockStatus{
			Unlocked: true,
			Progress: UnlockTarget,
			Target:   UnlockTarget,
			Reason:   ReasonInteractionStreak,
			Message: fmt.Sprintf("Unlocked by %d consecutive days of activity. Keep showing up!",
				interaction),
		}
	default:
		progress := currentStudyStreak
		if interaction > progress {
			progress = interaction
		}
		if progress > UnlockTarget {
			progress = UnlockTarget
		}
		return UnlockStatus{
			Unlocked: false,
			Progress: progress,
			Target:   UnlockTarget,
			Reason:   ReasonNone,
			Message: fmt.Sprintf("Stay consistent for %d days to unlock. Progress: %d/%d.",
				UnlockTarget, progress, UnlockTarget),
		}
	}
}

// LockedUnlockStatus is the fail-closed result used when the activity store
// cannot be read. It never reveals partial progress.
func LockedUnlockStatus() UnlockStatus {
	return UnlockStatus{
		Unlocked: false,
		Progress: 0,
		Target:   UnlockTarget,
		Reason:   ReasonNone,
		Message:  "We couldn't load your activity right now. Please try again shortly.",
	}
}
