// Package geompen converts between cu2qu pens and the paths of
// seehuhn.de/go/geom.
package geompen

import (
	"fmt"

	"honnef.co/go/cu2qu"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func point(v vec.Vec2) cu2qu.Point { return cu2qu.Pt(v.X, v.Y) }
func vec2(p cu2qu.Point) vec.Vec2  { return vec.Vec2{X: p.X, Y: p.Y} }

// Path adapts a geom path iterator to [cu2qu.Drawer].
type Path path.Path

func (p Path) Draw(pen cu2qu.Pen) error { return DrawPath(pen, path.Path(p)) }

// Data adapts geom path data to [cu2qu.Drawer].
type Data struct{ *path.Data }

func (d Data) Draw(pen cu2qu.Pen) error { return DrawData(pen, d.Data) }

// drawer tracks whether a contour is open, since geom paths don't have to
// close their subpaths.
type drawer struct {
	pen  cu2qu.Pen
	open bool
}

func (d *drawer) cmd(cmd path.Command, pts []vec.Vec2) error {
	switch cmd {
	case path.CmdMoveTo:
		if err := d.end(); err != nil {
			return err
		}
		d.open = true
		return d.pen.MoveTo(point(pts[0]))
	case path.CmdLineTo:
		return d.pen.LineTo(point(pts[0]))
	case path.CmdQuadTo:
		return d.pen.QCurveTo(point(pts[0]), point(pts[1]))
	case path.CmdCubeTo:
		return d.pen.CurveTo(point(pts[0]), point(pts[1]), point(pts[2]))
	case path.CmdClose:
		if !d.open {
			return nil
		}
		d.open = false
		return d.pen.ClosePath()
	default:
		return fmt.Errorf("geompen: unknown path command %v", cmd)
	}
}

// end ends the current subpath, if it wasn't closed.
func (d *drawer) end() error {
	if !d.open {
		return nil
	}
	d.open = false
	return d.pen.EndPath()
}

// DrawPath draws p into pen. Subpaths that aren't closed are ended with
// EndPath.
func DrawPath(pen cu2qu.Pen, p path.Path) error {
	d := drawer{pen: pen}
	var err error
	for cmd, pts := range p {
		if err = d.cmd(cmd, pts); err != nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return d.end()
}

// DrawData draws the path stored in data into pen.
func DrawData(pen cu2qu.Pen, data *path.Data) error {
	d := drawer{pen: pen}
	i := 0
	for _, cmd := range data.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		if err := d.cmd(cmd, data.Coords[i:i+n]); err != nil {
			return err
		}
		i += n
	}
	return d.end()
}

// PathPen is a [cu2qu.Pen] that builds geom path data. Quadratic splines
// become sequences of quadratic Béziers. Components are ignored.
type PathPen struct {
	Data *path.Data
	cur  cu2qu.Point
}

var _ cu2qu.Pen = (*PathPen)(nil)

// NewPathPen returns a pen drawing into an empty path.
func NewPathPen() *PathPen {
	return &PathPen{Data: &path.Data{}}
}

func (pen *PathPen) MoveTo(pt cu2qu.Point) error {
	pen.Data.MoveTo(vec2(pt))
	pen.cur = pt
	return nil
}

func (pen *PathPen) LineTo(pt cu2qu.Point) error {
	pen.Data.LineTo(vec2(pt))
	pen.cur = pt
	return nil
}

func (pen *PathPen) QCurveTo(pts ...cu2qu.Point) error {
	switch len(pts) {
	case 0:
		return fmt.Errorf("geompen: qCurveTo: %w", cu2qu.ErrPointCount)
	case 1:
		return pen.LineTo(pts[0])
	}
	spline := append(cu2qu.QuadBSpline{pen.cur}, pts...)
	for q := range spline.Quads() {
		pen.Data.QuadTo(vec2(q.P1), vec2(q.P2))
	}
	pen.cur = pts[len(pts)-1]
	return nil
}

func (pen *PathPen) CurveTo(pts ...cu2qu.Point) error {
	switch len(pts) {
	case 0:
		return fmt.Errorf("geompen: curveTo: %w", cu2qu.ErrPointCount)
	case 1:
		return pen.LineTo(pts[0])
	case 2:
		return pen.QCurveTo(pts...)
	}
	for _, c := range cu2qu.DecomposeSuperBezier(pts) {
		pen.Data.CubeTo(vec2(c[0]), vec2(c[1]), vec2(c[2]))
	}
	pen.cur = pts[len(pts)-1]
	return nil
}

func (pen *PathPen) ClosePath() error {
	pen.Data.Close()
	return nil
}

func (pen *PathPen) EndPath() error                          { return nil }
func (pen *PathPen) AddComponent(string, cu2qu.Affine) error { return nil }
