package cu2qu

import (
	"errors"
	"fmt"
)

var (
	// ErrContourOpen is returned when starting a contour or adding a
	// component while a contour is still open.
	ErrContourOpen = errors.New("contour already open")
	// ErrNoContour is returned for drawing calls made outside of a contour.
	ErrNoContour = errors.New("no open contour")
	// ErrPointCount is returned for calls with an illegal number of points.
	ErrPointCount = errors.New("illegal point count")
	// ErrMasterCount is returned when parallel per-master arguments don't
	// have one entry per master.
	ErrMasterCount = errors.New("wrong number of masters")
	// ErrSegmentType is returned for point contours that use a segment type
	// in a position where it is not allowed, such as a move in the middle of
	// a contour.
	ErrSegmentType = errors.New("illegal segment type")
	// ErrEmptyGroup is returned when creating a curve group without curves.
	ErrEmptyGroup = errors.New("empty curve group")
)

// ProtocolError describes a call that violates the drawing protocol. Err is
// one of the sentinel errors of this package.
type ProtocolError struct {
	Op  string
	Err error
	// Count is the offending number of points or masters, if relevant.
	Count int
}

func (e *ProtocolError) Error() string {
	switch {
	case errors.Is(e.Err, ErrPointCount), errors.Is(e.Err, ErrMasterCount):
		return fmt.Sprintf("cu2qu: %s: %s: %d", e.Op, e.Err, e.Count)
	default:
		return fmt.Sprintf("cu2qu: %s: %s", e.Op, e.Err)
	}
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func protocolError(op string, err error) error {
	return &ProtocolError{Op: op, Err: err}
}

func countError(op string, err error, n int) error {
	return &ProtocolError{Op: op, Err: err, Count: n}
}

// IncompatibleError reports that masters which have to be converted together
// don't share the same structure. Master is the index of the first master
// that differs from master 0, and Index is the position of the differing
// segment in the outline.
type IncompatibleError struct {
	Glyph  string
	Master int
	Index  int
	Reason string
}

func (e *IncompatibleError) Error() string {
	if e.Glyph != "" {
		return fmt.Sprintf("cu2qu: incompatible glyph %q: master %d, segment %d: %s", e.Glyph, e.Master, e.Index, e.Reason)
	}
	return fmt.Sprintf("cu2qu: incompatible masters: master %d, segment %d: %s", e.Master, e.Index, e.Reason)
}
