// Package registry maps mode IDs ("wordhunt", "wordhunt_endless") to game
// factories. Modes register from init, so the CLI, the menu and the SSH
// server can create a run by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wordhunt/internal/core"
)

// Game is a playable mode driven by the terminal host. It sees input as
// actions and draws into a core.Screen; the host owns keys, ticks and I/O.
type Game interface {
	// ID is the mode ID, also the key scores are stored under.
	ID() string

	// Title is shown in menus and the scoreboard.
	Title() string

	// Reset starts a new run at the configured level with the given
	// terminal size and seed. It is also called on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies the tick's input and advances session time by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into a cleared screen.
	Render(dst *core.Screen)

	// State reports score, game over and pause.
	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size without
// restarting. The platform calls Reset instead for games that don't.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered mode for `wordhunt modes`.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates an unconfigured game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns the registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a new game for a mode ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a mode ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
