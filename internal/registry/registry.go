// Package registry provides a global registry for scene variants.
// Variants register themselves in init() functions, allowing the CLI
// and hosts to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

// ResultPolicy chooses the texture shown on the game message when a session ends.
type ResultPolicy interface {
	ResultAsset(score int) string
}

// Variant describes one way of playing a scene.
// Variants differ only in how the final score is presented.
type Variant interface {
	// ID returns a unique identifier for this variant (e.g., "classic", "tiered").
	// Used for CLI flags and score history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Policy builds the result policy from the result section of the config.
	Policy(cfg config.ResultConfig) ResultPolicy
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
func Create(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
