// Package hotkeys binds global key chords to controller actions.
package hotkeys

import (
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
	"github.com/rs/zerolog"
)

// Actions are the controller operations exposed through hotkeys.
type Actions interface {
	ToggleClick() bool
	ToggleGripMode() bool
}

// Binding runs Action whenever every key in Keys is held down.
type Binding struct {
	Keys        []string
	Description string
	Action      func()
}

// DefaultBindings maps ctrl+shift+c, ctrl+shift+g and ctrl+shift+q to
// toggling clicks, toggling grip mode and quit.
func DefaultBindings(a Actions, quit func()) []Binding {
	return []Binding{
		{
			Keys:        []string{"c", "ctrl", "shift"},
			Description: "toggle clicking",
			Action:      func() { a.ToggleClick() },
		},
		{
			Keys:        []string{"g", "ctrl", "shift"},
			Description: "toggle grip mode",
			Action:      func() { a.ToggleGripMode() },
		},
		{
			Keys:        []string{"q", "ctrl", "shift"},
			Description: "quit",
			Action:      quit,
		},
	}
}

// Listener owns the global keyboard hook.
type Listener struct {
	logger   zerolog.Logger
	bindings []Binding

	mu      sync.Mutex
	running bool
	done    chan struct{}
}

func NewListener(logger zerolog.Logger, bindings ...Binding) *Listener {
	return &Listener{logger: logger, bindings: bindings}
}

// Start registers the bindings and begins processing key events in the
// background.
func (l *Listener) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}

	for _, b := range l.bindings {
		b := b
		hook.Register(hook.KeyDown, b.Keys, func(hook.Event) {
			l.logger.Debug().Str("action", b.Description).Msg("hotkey")
			b.Action()
		})
		l.logger.Info().Str("keys", strings.Join(b.Keys, "+")).Str("action", b.Description).Msg("hotkey registered")
	}

	s := hook.Start()
	l.done = make(chan struct{})
	l.running = true

	go func(done chan struct{}) {
		defer close(done)
		<-hook.Process(s)
	}(l.done)
}

// Stop ends the hook. It is safe to call when not started.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false

	hook.End()
	<-l.done
	l.logger.Info().Msg("hotkey listener stopped")
}
