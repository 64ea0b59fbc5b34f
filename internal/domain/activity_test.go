package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAppendInteractionDate(t *testing.T) {
	today := day("2025-03-10")

	t.Run("appends a new date sorted ascending", func(t *testing.T) {
		out := AppendInteractionDate([]string{"2025-03-08", "2025-03-11"}, today)
		assert.Equal(t, []string{"2025-03-08", "2025-03-10", "2025-03-11"}, out)
	})

	t.Run("is idempotent for an already recorded date", func(t *testing.T) {
		dates := []string{"2025-03-09", "2025-03-10"}
		out := AppendInteractionDate(dates, today)
		assert.Equal(t, dates, out)

		again := AppendInteractionDate(out, today)
		assert.Equal(t, out, again)
	})

	t.Run("trims to the most recent dates", func(t *testing.T) {
		dates := make([]string, 0, MaxInteractionDates)
		start := day("2025-02-01")
		for i := 0; i < MaxInteractionDates; i++ {
			dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
		}

		out := AppendInteractionDate(dates, today)
		assert.Len(t, out, MaxInteractionDates)
		assert.Equal(t, "2025-03-10", out[len(out)-1])
		assert.NotContains(t, out, "2025-02-01")
	})
}

func TestInteractionStreak(t *testing.T) {
	today := day("2025-03-10")

	t.Run("zero when today is absent", func(t *testing.T) {
		// A long historical run means nothing without today.
		dates := []string{
			"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06",
			"2025-03-07", "2025-03-08", "2025-03-09",
		}
		assert.Equal(t, 0, InteractionStreak(dates, today))
	})

	t.Run("zero for no dates", func(t *testing.T) {
		assert.Equal(t, 0, InteractionStreak(nil, today))
	})

	t.Run("counts consecutive days ending today", func(t *testing.T) {
		dates := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
		assert.Equal(t, 3, InteractionStreak(dates, today))
	})

	t.Run("a gap stops the walk", func(t *testing.T) {
		dates := []string{"2025-03-06", "2025-03-07", "2025-03-09", "2025-03-10"}
		assert.Equal(t, 2, InteractionStreak(dates, today))
	})

	t.Run("caps at the unlock target", func(t *testing.T) {
		dates := make([]string, 0, 10)
		for i := 9; i >= 0; i-- {
			dates = append(dates, today.AddDate(0, 0, -i).Format(DateLayout))
		}
		assert.Equal(t, UnlockTarget, InteractionStreak(dates, today))
	})

	t.Run("removing today resets the streak to zero", func(t *testing.T) {
		dates := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
		assert.Equal(t, 3, InteractionStreak(dates, today))
		assert.Equal(t, 0, InteractionStreak(dates[:2], today))
	})
}

func TestComputeUnlockStatus(t *testing.T) {
	today := day("2025-03-10")

	sevenDays := func() []string {
		dates := make([]string, 0, UnlockTarget)
		for i := UnlockTarget - 1; i >= 0; i-- {
			dates = append(dates, today.AddDate(0, 0, -i).Format(DateLayout))
		}
		return dates
	}

	t.Run("study streak alone unlocks", func(t *testing.T) {
		status := ComputeUnlockStatus(7, []string{today.Format(DateLayout)}, today)
		assert.True(t, status.Unlocked)
		assert.Equal(t, ReasonStudyStreak, status.Reason)
		assert.Equal(t, UnlockTarget, status.Progress)
	})

	t.Run("interaction streak alone unlocks", func(t *testing.T) {
		status := ComputeUnlockStatus(3, sevenDays(), today)
		assert.True(t, status.Unlocked)
		assert.Equal(t, ReasonInteractionStreak, status.Reason)
		assert.Equal(t, UnlockTarget, status.Progress)
	})

	t.Run("both signals met reports both", func(t *testing.T) {
		status := ComputeUnlockStatus(9, sevenDays(), today)
		assert.True(t, status.Unlocked)
		assert.Equal(t, ReasonBoth, status.Reason)
	})

	t.Run("neither met is locked with max progress", func(t *testing.T) {
		dates := []string{"2025-03-09", "2025-03-10"}
		status := ComputeUnlockStatus(4, dates, today)
		assert.False(t, status.Unlocked)
		assert.Equal(t, ReasonNone, status.Reason)
		assert.Equal(t, 4, status.Progress)
		assert.Equal(t, UnlockTarget, status.Target)
	})

	t.Run("interaction streak drives progress when larger", func(t *testing.T) {
		dates := []string{"2025-03-08", "2025-03-09", "2025-03-10"}
		status := ComputeUnlockStatus(1, dates, today)
		assert.False(t, status.Unlocked)
		assert.Equal(t, 3, status.Progress)
	})

	t.Run("no activity at all", func(t *testing.T) {
		status := ComputeUnlockStatus(0, nil, today)
		assert.False(t, status.Unlocked)
		assert.Equal(t, 0, status.Progress)
		assert.Equal(t, ReasonNone, status.Reason)
	})

	t.Run("progress never exceeds target while locked", func(t *testing.T) {
		status := ComputeUnlockStatus(6, nil, today)
		assert.False(t, status.Unlocked)
		assert.Equal(t, 6, status.Progress)
	})
}

func TestLockedUnlockStatus(t *testing.T) {
	status := LockedUnlockStatus()
	assert.False(t, status.Unlocked)
	assert.Equal(t, 0, status.Progress)
	assert.Equal(t, UnlockTarget, status.Target)
	assert.Equal(t, ReasonNone, status.Reason)
	assert.NotEmpty(t, status.Message)
}
