package progression

import (
	"ascend/internal/domain/entity"
)

// Attribute identifiers. Each attribute is derived from a different signal
// mix; all land on a 0-100 integer scale.
const (
	AttributeDiscipline  = "Disciplina"  // Goal completion ratio blended with XP ratio.
	AttributeVitality    = "Vitalidad"   // Rolling average of recent sleep quality.
	AttributeConsistency = "Constancia"  // Habit completion ratio plus normalized streaks.
	AttributeWisdom      = "Sabiduría"   // Fallback: XP ratio against the top rank threshold.
)

// streakNormalizer is the streak length treated as a "full" streak when
// normalizing the consistency signal.
const streakNormalizer = 30.0

// vitalityWindow is how many of the most recent sleep logs feed the rolling
// quality average.
const vitalityWindow = 7

// AttributeInputs carries the raw counters the attribute derivation reads.
// The derivation is a full recomputation every time; values are never
// patched incrementally, which keeps them drift-free by construction.
type AttributeInputs struct {
	XP             int
	MaxXPThreshold int
	Habits         []entity.Habit
	Goals          []entity.Goal
	SleepLogs      []entity.SleepLog // Expected in creation order; the newest logs weigh in.
}

// Attributes derives all attribute values from the inputs.
func Attributes(in AttributeInputs) map[string]int {
	return map[string]int{
		AttributeDiscipline:  disciplineScore(in),
		AttributeVitality:    vitalityScore(in.SleepLogs),
		AttributeConsistency: consistencyScore(in.Habits),
		AttributeWisdom:      wisdomScore(in.XP, in.MaxXPThreshold),
	}
}

func disciplineScore(in AttributeInputs) int {
	completionRatio := 0.0
	if len(in.Goals) > 0 {
		completed := 0
		for _, g := range in.Goals {
			if g.IsCompleted {
				completed++
			}
		}
		completionRatio = float64(completed) / float64(len(in.Goals))
	}

	return clampRound((completionRatio*0.5 + xpRatio(in.XP, in.MaxXPThreshold)*0.5) * 100)
}

func vitalityScore(logs []entity.SleepLog) int {
	if len(logs) == 0 {
		return 0
	}

	window := logs
	if len(window) > vitalityWindow {
		window = window[len(window)-vitalityWindow:]
	}

	total := 0
	for _, l := range window {
		total += l.Quality.Score()
	}

	return clampRound(float64(total) / float64(len(window)))
}

func consistencyScore(habits []entity.Habit) int {
	if len(habits) == 0 {
		return 0
	}

	completed := 0
	streakSum := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
		streakSum += h.Streak
	}

	completionRatio := float64(completed) / float64(len(habits))
	avgStreak := float64(streakSum) / float64(len(habits))
	streakRatio := avgStreak / streakNormalizer
	if streakRatio > 1 {
		streakRatio = 1
	}

	return clampRound((completionRatio*0.6 + streakRatio*0.4) * 100)
}

func wisdomScore(xp, maxThreshold int) int {
	return clampRound(xpRatio(xp, maxThreshold) * 100)
}

func xpRatio(xp, maxThreshold int) float64 {
	if maxThreshold <= 0 {
		return 0
	}
	ratio := float64(xp) / float64(maxThreshold)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}

	return ratio
}
