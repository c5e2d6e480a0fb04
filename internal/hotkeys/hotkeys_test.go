package hotkeys

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActions struct {
	clickToggles int
	gripToggles  int
}

func (f *fakeActions) ToggleClick() bool {
	f.clickToggles++
	return f.clickToggles%2 == 0
}

func (f *fakeActions) ToggleGripMode() bool {
	f.gripToggles++
	return f.gripToggles%2 == 1
}

func TestDefaultBindings(t *testing.T) {
	a := &fakeActions{}
	quit := 0
	bindings := DefaultBindings(a, func() { quit++ })
	require.Len(t, bindings, 3)

	byKey := map[string]Binding{}
	for _, b := range bindings {
		assert.Contains(t, b.Keys, "ctrl")
		assert.Contains(t, b.Keys, "shift")
		assert.NotEmpty(t, b.Description)
		byKey[b.Keys[0]] = b
	}

	byKey["c"].Action()
	byKey["g"].Action()
	byKey["g"].Action()
	byKey["q"].Action()

	assert.Equal(t, 1, a.clickToggles)
	assert.Equal(t, 2, a.gripToggles)
	assert.Equal(t, 1, quit)
}

func TestListener_StopWithoutStart(t *testing.T) {
	l := NewListener(zerolog.Nop())
	l.Stop()
	l.Stop()
}
