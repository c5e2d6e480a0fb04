// Package sensor describes the body-tracking depth sensor consumed by the
// cursor controller and provides a file-backed replay implementation.
package sensor

// Point3D is a joint position in sensor space. Y grows upward and Z grows
// away from the sensor, both in metres.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// JointType indexes Body.Joints.
type JointType int

const (
	JointSpineBase JointType = iota
	JointHandLeft
	JointHandRight

	JointCount
)

// HandState is the open/closed reading the sensor reports for a hand.
type HandState int

const (
	HandUnknown HandState = iota
	HandNotTracked
	HandOpen
	HandClosed
	HandLasso
)

func (s HandState) String() string {
	switch s {
	case HandNotTracked:
		return "not_tracked"
	case HandOpen:
		return "open"
	case HandClosed:
		return "closed"
	case HandLasso:
		return "lasso"
	default:
		return "unknown"
	}
}

// ParseHandState is the inverse of HandState.String. Anything it does not
// recognise is HandUnknown.
func ParseHandState(s string) HandState {
	switch s {
	case "not_tracked":
		return HandNotTracked
	case "open":
		return HandOpen
	case "closed":
		return HandClosed
	case "lasso":
		return HandLasso
	default:
		return HandUnknown
	}
}

// Hand identifies the left or right hand of a body.
type Hand int

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandRight {
		return "right"
	}
	return "left"
}

// Joint returns the joint tracking this hand.
func (h Hand) Joint() JointType {
	if h == HandRight {
		return JointHandRight
	}
	return JointHandLeft
}

// Body is one candidate skeleton from a frame.
type Body struct {
	Tracked   bool
	Joints    [JointCount]Point3D
	LeftHand  HandState
	RightHand HandState
}

// Joint returns the position of joint j.
func (b *Body) Joint(j JointType) Point3D {
	return b.Joints[j]
}

// HandState returns the grip reading for hand h.
func (b *Body) HandState(h Hand) HandState {
	if h == HandRight {
		return b.RightHand
	}
	return b.LeftHand
}

// Frame is a body-tracking frame held open between AcquireFrame and its
// release func.
type Frame interface {
	// CopyBodies overwrites dst with the frame's bodies and returns how many
	// entries were written.
	CopyBodies(dst []Body) int
}

// Sensor is a body-tracking source.
type Sensor interface {
	Open() error
	Close() error

	// BodyCount is the maximum number of bodies a frame can carry.
	BodyCount() int

	// FrameArrived delivers one notification per frame the sensor produces.
	FrameArrived() <-chan struct{}

	// AcquireFrame returns the latest frame together with a func that must be
	// called once the caller is done with it. ok is false when no frame is
	// available, in which case release is a no-op.
	AcquireFrame() (frame Frame, release func(), ok bool)
}
