package sensor

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrSensorUnavailable is returned by Fake.Open when Unavailable is set.
var ErrSensorUnavailable = errors.New("sensor unavailable")

// Fake is a Sensor whose frames are pushed by the caller.
type Fake struct {
	mu          sync.Mutex
	bodyCount   int
	bodies      []Body
	hasFrame    bool
	opened      bool
	openCalls   int
	closeCalls  int
	acquired    int
	released    int
	Unavailable bool

	arrived chan struct{}
}

// NewFake returns a Fake reporting bodyCount bodies per frame.
func NewFake(bodyCount int) *Fake {
	return &Fake{bodyCount: bodyCount, arrived: make(chan struct{}, 1)}
}

func (f *Fake) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openCalls++
	if f.Unavailable {
		return ErrSensorUnavailable
	}
	f.opened = true
	return nil
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	f.opened = false
	return nil
}

func (f *Fake) BodyCount() int { return f.bodyCount }

func (f *Fake) FrameArrived() <-chan struct{} { return f.arrived }

// SetFrame makes bodies the current frame without notifying.
func (f *Fake) SetFrame(bodies ...Body) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append([]Body(nil), bodies...)
	f.hasFrame = true
}

// ClearFrame makes the next AcquireFrame report no frame.
func (f *Fake) ClearFrame() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = nil
	f.hasFrame = false
}

// Notify signals a frame arrival, blocking until the previous one was taken.
func (f *Fake) Notify() {
	f.arrived <- struct{}{}
}

func (f *Fake) AcquireFrame() (Frame, func(), bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acquired++
	release := func() {
		f.mu.Lock()
		f.released++
		f.mu.Unlock()
	}
	if !f.hasFrame {
		return nil, release, false
	}
	return replayFrame(append([]Body(nil), f.bodies...)), release, true
}

// Stats reports how often frames were acquired and released and how often
// the sensor was opened and closed.
func (f *Fake) Stats() (acquired, released, opens, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquired, f.released, f.openCalls, f.closeCalls
}

// Opened reports whether the sensor is currently open.
func (f *Fake) Opened() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened
}
