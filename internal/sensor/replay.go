package sensor

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/vedantwpatil/hand-cursor/internal/timeutil"
)

// DefaultBodyCount matches the six skeletons a Kinect v2 reports per frame.
const DefaultBodyCount = 6

// ErrNoFrames is returned by Open when a recording holds no lines.
var ErrNoFrames = errors.New("recording contains no frames")

type recordedBody struct {
	Tracked        bool    `json:"tracked"`
	SpineBase      Point3D `json:"spineBase"`
	HandLeft       Point3D `json:"handLeft"`
	HandRight      Point3D `json:"handRight"`
	LeftHandState  string  `json:"leftHandState"`
	RightHandState string  `json:"rightHandState"`
}

type recordedFrame struct {
	Bodies []recordedBody `json:"bodies"`
}

// ReplayOptions configures a Replay sensor.
type ReplayOptions struct {
	Path      string
	FrameRate int
	BodyCount int
	Loop      bool
	Clock     timeutil.Clock
	Logger    zerolog.Logger
}

// Replay plays back a JSON Lines body recording. Each line is one frame of
// the form {"bodies":[...]}; a blank line or null is a frame with no data.
type Replay struct {
	opts   ReplayOptions
	reader io.Reader

	mu      sync.Mutex
	frames  [][]Body
	current int
	opened  bool

	arrived chan struct{}
	stop    chan struct{}
	done    chan struct{}
}

// NewReplay builds a replay sensor reading opts.Path on Open.
func NewReplay(opts ReplayOptions) *Replay {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}
	if opts.BodyCount <= 0 {
		opts.BodyCount = DefaultBodyCount
	}
	if opts.Clock == nil {
		opts.Clock = timeutil.RealClock{}
	}
	return &Replay{
		opts:    opts,
		current: -1,
		arrived: make(chan struct{}, 1),
	}
}

// NewReplayFromReader is NewReplay for an in-memory recording; opts.Path is
// ignored.
func NewReplayFromReader(r io.Reader, opts ReplayOptions) *Replay {
	rp := NewReplay(opts)
	rp.reader = r
	return rp
}

func parseRecording(r io.Reader, bodyCount int) ([][]Body, error) {
	var frames [][]Body
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			frames = append(frames, nil)
			continue
		}

		var rf recordedFrame
		if err := json.Unmarshal(raw, &rf); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(rf.Bodies) > bodyCount {
			return nil, errors.Errorf("line %d: %d bodies exceeds body count %d", line, len(rf.Bodies), bodyCount)
		}

		bodies := make([]Body, len(rf.Bodies))
		for i, rb := range rf.Bodies {
			bodies[i].Tracked = rb.Tracked
			bodies[i].Joints[JointSpineBase] = rb.SpineBase
			bodies[i].Joints[JointHandLeft] = rb.HandLeft
			bodies[i].Joints[JointHandRight] = rb.HandRight
			bodies[i].LeftHand = ParseHandState(rb.LeftHandState)
			bodies[i].RightHand = ParseHandState(rb.RightHandState)
		}
		frames = append(frames, bodies)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}

// Open loads the recording and starts delivering frames.
func (r *Replay) Open() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.opened {
		return nil
	}

	src := r.reader
	if src == nil {
		f, err := os.Open(r.opts.Path)
		if err != nil {
			return errors.Wrap(err, "open recording")
		}
		defer f.Close()
		src = f
	}

	frames, err := parseRecording(src, r.opts.BodyCount)
	if err != nil {
		return errors.Wrap(err, "parse recording")
	}
	r.frames = frames
	r.current = -1
	r.opened = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	r.opts.Logger.Info().Int("frames", len(frames)).Int("fps", r.opts.FrameRate).Msg("replay sensor opened")

	go r.run(r.opts.Clock.NewTicker(time.Second/time.Duration(r.opts.FrameRate)), r.stop, r.done)
	return nil
}

func (r *Replay) run(ticker timeutil.Ticker, stop, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !r.advance() {
				r.opts.Logger.Info().Msg("replay finished")
				return
			}
			select {
			case r.arrived <- struct{}{}:
			default:
			}
		}
	}
}

func (r *Replay) advance() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.current + 1
	if next >= len(r.frames) {
		if !r.opts.Loop {
			return false
		}
		next = 0
	}
	r.current = next
	return true
}

// Close stops delivery. It is safe to call more than once.
func (r *Replay) Close() error {
	r.mu.Lock()
	if !r.opened {
		r.mu.Unlock()
		return nil
	}
	r.opened = false
	stop, done := r.stop, r.done
	r.mu.Unlock()

	close(stop)
	<-done
	return nil
}

func (r *Replay) BodyCount() int { return r.opts.BodyCount }

func (r *Replay) FrameArrived() <-chan struct{} { return r.arrived }

func (r *Replay) AcquireFrame() (Frame, func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current < 0 || r.current >= len(r.frames) || r.frames[r.current] == nil {
		return nil, func() {}, false
	}
	return replayFrame(r.frames[r.current]), func() {}, true
}

type replayFrame []Body

func (f replayFrame) CopyBodies(dst []Body) int {
	n := copy(dst, f)
	for i := n; i < len(dst); i++ {
		dst[i] = Body{}
	}
	return n
}
