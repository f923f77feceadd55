package catalog

import (
	"ascend/internal/domain/entity"
)

// rankLadder is the ascending XP ladder. The first tier must sit at zero so
// every non-negative XP value resolves to a rank.
var rankLadder = []entity.RankTier{
	{Name: "Novato", XPRequired: 0},
	{Name: "Aprendiz", XPRequired: 100},
	{Name: "Adepto", XPRequired: 250},
	{Name: "Disciplinado", XPRequired: 500},
	{Name: "Experto", XPRequired: 1000},
	{Name: "Maestro", XPRequired: 2000},
	{Name: "Gran Maestro", XPRequired: 3500},
	{Name: "Leyenda", XPRequired: 5000},
}

// RankLadder returns the static rank ladder in ascending threshold order.
func RankLadder() []entity.RankTier {
	return rankLadder
}

// MaxRankThreshold returns the XP threshold of the highest tier, used as the
// normalization ceiling for XP-ratio attribute signals.
func MaxRankThreshold() int {
	return rankLadder[len(rankLadder)-1].XPRequired
}
