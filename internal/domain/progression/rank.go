// Package progression contains the pure derivation rules of the game:
// rank resolution, attribute scoring and the era transition predicates.
// Everything here is a function of its inputs; no state, no I/O.
package progression

import (
	"math"

	"ascend/internal/domain/entity"
)

// RankStatus is the resolved rank position for an XP total.
type RankStatus struct {
	Current         entity.RankTier
	Next            *entity.RankTier
	ProgressPercent int
}

// RankFor resolves the current and next rank for the given XP against an
// ascending ladder. The ladder must hold at least one tier; on duplicate
// thresholds the earlier tier wins. Progress toward the next tier is clamped
// to [0,100] and reads 100 once the ladder is exhausted.
func RankFor(xp int, ladder []entity.RankTier) RankStatus {
	if len(ladder) == 0 {
		panic("progression: rank ladder must contain at least one tier")
	}
	if xp < 0 {
		xp = 0
	}

	currentIdx := 0
	for i, tier := range ladder {
		if tier.XPRequired <= xp && tier.XPRequired > ladder[currentIdx].XPRequired {
			currentIdx = i
		}
	}

	status := RankStatus{Current: ladder[currentIdx]}

	if currentIdx+1 < len(ladder) {
		next := ladder[currentIdx+1]
		status.Next = &next

		span := next.XPRequired - status.Current.XPRequired
		if span < 1 {
			span = 1
		}
		progress := float64(xp-status.Current.XPRequired) / float64(span) * 100
		status.ProgressPercent = clampRound(progress)

		return status
	}

	status.ProgressPercent = 100

	return status
}

// clampRound clamps to [0,100] and rounds to the nearest integer.
func clampRound(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return int(math.Round(v))
}
