package game

import (
	"github.com/vovakirdan/bamboo-breakout/internal/config"
	"github.com/vovakirdan/bamboo-breakout/internal/registry"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// Variant IDs.
const (
	VariantClassic = "classic"
	VariantTiered  = "tiered"
)

// Register variants on package load
func init() {
	registry.Register(VariantClassic, func() registry.Variant { return classicVariant{} })
	registry.Register(VariantTiered, func() registry.Variant { return tieredVariant{} })
}

type classicVariant struct{}

func (classicVariant) ID() string    { return VariantClassic }
func (classicVariant) Title() string { return "Bamboo Breakout (Classic)" }
func (classicVariant) Policy(config.ResultConfig) registry.ResultPolicy {
	return FixedPolicy(scene.TextureGameOver)
}

type tieredVariant struct{}

func (tieredVariant) ID() string    { return VariantTiered }
func (tieredVariant) Title() string { return "Bamboo Breakout" }
func (tieredVariant) Policy(cfg config.ResultConfig) registry.ResultPolicy {
	return NewTieredPolicy(cfg)
}

// PolicyFor looks up the variant and builds its policy.
func PolicyFor(variant string, cfg config.ResultConfig) (ResultPolicy, error) {
	v, err := registry.Create(variant)
	if err != nil {
		return nil, err
	}
	return v.Policy(cfg), nil
}
