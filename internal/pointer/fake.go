package pointer

import "sync"

// Event kinds recorded by Fake.
const (
	EventDown  = "down"
	EventUp    = "up"
	EventClick = "click"
)

// Fake is an in-memory Pointer that records what was injected.
type Fake struct {
	mu     sync.Mutex
	x, y   int
	width  int
	height int
	moves  [][2]int
	events []string

	// DownErr and UpErr are returned from LeftDown and LeftUp when set.
	DownErr error
	UpErr   error
}

// NewFake returns a Fake with the given screen size and the cursor at the
// origin.
func NewFake(width, height int) *Fake {
	return &Fake{width: width, height: height}
}

func (f *Fake) Location() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.x, f.y
}

// SetLocation places the cursor without recording a move, as a user moving
// the physical mouse would.
func (f *Fake) SetLocation(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
}

func (f *Fake) Move(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.x, f.y = x, y
	f.moves = append(f.moves, [2]int{x, y})
}

func (f *Fake) LeftDown() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, EventDown)
	return f.DownErr
}

func (f *Fake) LeftUp() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, EventUp)
	return f.UpErr
}

func (f *Fake) Click() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, EventClick)
}

func (f *Fake) ScreenSize() (int, int) {
	return f.width, f.height
}

// Moves returns every position passed to Move.
func (f *Fake) Moves() [][2]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][2]int(nil), f.moves...)
}

// Events returns the button events in injection order.
func (f *Fake) Events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}
