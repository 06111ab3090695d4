package cu2qu

import (
	"fmt"
	"slices"
	"strings"
)

// PenOp identifies a pen method.
type PenOp uint8

const (
	OpMoveTo PenOp = iota + 1
	OpLineTo
	OpCurveTo
	OpQCurveTo
	OpClosePath
	OpEndPath
	OpAddComponent
	OpBeginPath
	OpAddPoint
)

func (op PenOp) String() string {
	switch op {
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpCurveTo:
		return "curveTo"
	case OpQCurveTo:
		return "qCurveTo"
	case OpClosePath:
		return "closePath"
	case OpEndPath:
		return "endPath"
	case OpAddComponent:
		return "addComponent"
	case OpBeginPath:
		return "beginPath"
	case OpAddPoint:
		return "addPoint"
	default:
		return fmt.Sprintf("PenOp(%d)", op)
	}
}

// PenCall is a single recorded call on a [Pen].
type PenCall struct {
	Op     PenOp
	Points []Point
	// Component name and transformation, for OpAddComponent.
	Name      string
	Transform Affine
}

func (c PenCall) String() string {
	switch c.Op {
	case OpAddComponent:
		return fmt.Sprintf("pen.addComponent('%s', %s)", c.Name, c.Transform)
	default:
		args := make([]string, len(c.Points))
		for i, pt := range c.Points {
			args[i] = pt.String()
		}
		return fmt.Sprintf("pen.%s(%s)", c.Op, strings.Join(args, ", "))
	}
}

// RecordingPen is a [Pen] that records all calls made to it, without
// validating them.
type RecordingPen struct {
	Calls []PenCall
}

var _ Pen = (*RecordingPen)(nil)

func (pen *RecordingPen) record(op PenOp, pts ...Point) error {
	pen.Calls = append(pen.Calls, PenCall{Op: op, Points: slices.Clone(pts)})
	return nil
}

func (pen *RecordingPen) MoveTo(pt Point) error       { return pen.record(OpMoveTo, pt) }
func (pen *RecordingPen) LineTo(pt Point) error       { return pen.record(OpLineTo, pt) }
func (pen *RecordingPen) CurveTo(pts ...Point) error  { return pen.record(OpCurveTo, pts...) }
func (pen *RecordingPen) QCurveTo(pts ...Point) error { return pen.record(OpQCurveTo, pts...) }
func (pen *RecordingPen) ClosePath() error            { return pen.record(OpClosePath) }
func (pen *RecordingPen) EndPath() error              { return pen.record(OpEndPath) }

func (pen *RecordingPen) AddComponent(name string, transform Affine) error {
	pen.Calls = append(pen.Calls, PenCall{Op: OpAddComponent, Name: name, Transform: transform})
	return nil
}

// Reset discards all recorded calls.
func (pen *RecordingPen) Reset() { pen.Calls = pen.Calls[:0] }

// Replay draws the recorded calls into out, stopping at the first error.
func (pen *RecordingPen) Replay(out Pen) error {
	for _, c := range pen.Calls {
		if err := replayCall(out, c); err != nil {
			return err
		}
	}
	return nil
}

// Draw implements [Drawer] by replaying the recording.
func (pen *RecordingPen) Draw(out Pen) error { return pen.Replay(out) }

func replayCall(out Pen, c PenCall) error {
	switch c.Op {
	case OpMoveTo:
		return out.MoveTo(c.Points[0])
	case OpLineTo:
		return out.LineTo(c.Points[0])
	case OpCurveTo:
		return out.CurveTo(c.Points...)
	case OpQCurveTo:
		return out.QCurveTo(c.Points...)
	case OpClosePath:
		return out.ClosePath()
	case OpEndPath:
		return out.EndPath()
	case OpAddComponent:
		return out.AddComponent(c.Name, c.Transform)
	default:
		return fmt.Errorf("cu2qu: can't replay %s on a segment pen", c.Op)
	}
}

// String returns the recorded calls, one per line.
func (pen *RecordingPen) String() string {
	var sb strings.Builder
	for _, c := range pen.Calls {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PointPenCall is a single recorded call on a [PointPen].
type PointPenCall struct {
	Op PenOp
	// Point is set for OpAddPoint.
	Point ContourPoint
	// Component name and transformation, for OpAddComponent.
	Name      string
	Transform Affine
}

func (c PointPenCall) String() string {
	switch c.Op {
	case OpAddPoint:
		var sb strings.Builder
		fmt.Fprintf(&sb, "pen.addPoint(%s", c.Point.Pt)
		if c.Point.Type != OffCurve {
			fmt.Fprintf(&sb, ", segmentType='%s'", c.Point.Type)
		}
		if c.Point.Smooth {
			sb.WriteString(", smooth=True")
		}
		if c.Point.Name != "" {
			fmt.Fprintf(&sb, ", name='%s'", c.Point.Name)
		}
		sb.WriteString(")")
		return sb.String()
	case OpAddComponent:
		return fmt.Sprintf("pen.addComponent('%s', %s)", c.Name, c.Transform)
	default:
		return fmt.Sprintf("pen.%s()", c.Op)
	}
}

// RecordingPointPen is a [PointPen] that records all calls made to it,
// without validating them.
type RecordingPointPen struct {
	Calls []PointPenCall
}

var _ PointPen = (*RecordingPointPen)(nil)

func (pen *RecordingPointPen) BeginPath() error {
	pen.Calls = append(pen.Calls, PointPenCall{Op: OpBeginPath})
	return nil
}

func (pen *RecordingPointPen) AddPoint(pt Point, typ SegmentType, smooth bool, name string) error {
	pen.Calls = append(pen.Calls, PointPenCall{Op: OpAddPoint, Point: ContourPoint{pt, typ, smooth, name}})
	return nil
}

func (pen *RecordingPointPen) EndPath() error {
	pen.Calls = append(pen.Calls, PointPenCall{Op: OpEndPath})
	return nil
}

func (pen *RecordingPointPen) AddComponent(name string, transform Affine) error {
	pen.Calls = append(pen.Calls, PointPenCall{Op: OpAddComponent, Name: name, Transform: transform})
	return nil
}

// Replay draws the recorded calls into out, stopping at the first error.
func (pen *RecordingPointPen) Replay(out PointPen) error {
	for _, c := range pen.Calls {
		var err error
		switch c.Op {
		case OpBeginPath:
			err = out.BeginPath()
		case OpAddPoint:
			err = out.AddPoint(c.Point.Pt, c.Point.Type, c.Point.Smooth, c.Point.Name)
		case OpEndPath:
			err = out.EndPath()
		case OpAddComponent:
			err = out.AddComponent(c.Name, c.Transform)
		default:
			err = fmt.Errorf("cu2qu: can't replay %s on a point pen", c.Op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns the recorded calls, one per line.
func (pen *RecordingPointPen) String() string {
	var sb strings.Builder
	for _, c := range pen.Calls {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
