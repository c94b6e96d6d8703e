package game

import (
	"sort"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// ResultPolicy chooses the gameMessage texture for a final score.
type ResultPolicy interface {
	ResultAsset(score int) string
}

// Tier maps scores strictly below Below to Asset.
type Tier struct {
	Below int
	Asset string
}

// TieredPolicy picks the first tier whose bound exceeds the score,
// falling back to Top.
type TieredPolicy struct {
	Tiers []Tier // Ascending by Below
	Top   string
}

// NewTieredPolicy builds a policy from config tiers, sorting them by bound.
func NewTieredPolicy(cfg config.ResultConfig) TieredPolicy {
	tiers := make([]Tier, 0, len(cfg.Tiers))
	for _, t := range cfg.Tiers {
		tiers = append(tiers, Tier{Below: t.Below, Asset: t.Asset})
	}
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Below < tiers[j].Below })

	top := cfg.TopAsset
	if top == "" {
		top = scene.TextureGameOver
	}
	return TieredPolicy{Tiers: tiers, Top: top}
}

// ResultAsset returns the texture for score.
func (p TieredPolicy) ResultAsset(score int) string {
	for _, t := range p.Tiers {
		if score < t.Below {
			return t.Asset
		}
	}
	return p.Top
}

// FixedPolicy always returns the same texture.
type FixedPolicy string

// ResultAsset returns the fixed texture.
func (p FixedPolicy) ResultAsset(int) string {
	if p == "" {
		return scene.TextureGameOver
	}
	return string(p)
}
