// Package registry provides game registration and discovery.
// Game packages register themselves in init(), so importing a game package
// is all it takes to make it playable.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Game is the interface every playable simulation implements.
// The platform drives the loop: Reset once, then Step each tick with the
// frame's input, Render into a screen buffer, and State to check progress.
type Game interface {
	// ID returns the unique identifier used on the command line.
	ID() string

	// Title returns the human-readable display name.
	Title() string

	// Reset initializes or restarts the game with the given config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(input core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(screen *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory under the given ID.
// Panics on duplicate registration, which indicates a programming error.
func Register(id string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q registered twice", id))
	}
	factories[id] = factory
}

// Get creates a new instance of the game with the given ID.
func Get(id string) (Game, error) {
	mu.RLock()
	factory, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return factory(), nil
}

// List returns all registered game IDs in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
