package entity

// PassiveSkill is a static catalog entry for a one-time, XP-purchased
// permanent unlock. Per-user unlock state lives on the profile as set
// membership, the skill itself carries no mutable state.
type PassiveSkill struct {
	ID                string
	Name              string
	Cost              int
	Category          string
	EffectDescription string
}

// RankTier is one rung of the static rank ladder. Tiers are ordered by
// ascending XPRequired; the first tier is expected to start at zero.
type RankTier struct {
	Name       string
	XPRequired int
}
