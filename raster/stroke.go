// seehuhn.de/go/genart - generative art from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened path segment in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated 90° counter-clockwise
	L    float64  // length
}

// Stroke paints a solid outline of p, using Width, Cap, Join and
// MiterLimit.  The outline polygons of all subpaths are filled together
// with the nonzero rule, so pixels covered by several outlines are
// painted only once.  On the inside of a corner the outline follows the
// intersection of the two offset lines, so that the outline of a single
// subpath does not overlap itself there.  Only where a segment is too
// short for this do partially covered pixels near the corner receive too
// much coverage.
func (r *Rasterizer) Stroke(p path.Path, emit EmitFunc) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.dots) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Subpaths without direction only show up with round or square caps.
	d := r.Width / 2
	for _, c := range r.dots {
		switch r.Cap {
		case graphics.LineCapRound:
			r.beginPolygon()
			r.addArc(c, d, vec.Vec2{X: 1}, 2*math.Pi)
		case graphics.LineCapSquare:
			r.beginPolygon()
			r.stroke = append(r.stroke,
				vec.Vec2{X: c.X - d, Y: c.Y - d}, vec.Vec2{X: c.X + d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y + d}, vec.Vec2{X: c.X - d, Y: c.Y + d})
		}
	}

	for i := range r.segsOffsets {
		segs := r.subpathSegments(i)
		if r.subpathClosed[i] {
			r.strokeClosed(segs, d)
		} else {
			r.strokeOpen(segs, d)
		}
	}

	r.beginEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	r.sweep(xMin, xMax, yMin, yMax, fillNonZero, emit)
}

func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath splits p into subpaths of line segments.  Subpaths which
// consist of a single point are collected in r.dots.
func (r *Rasterizer) flattenPath(p path.Path) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur, start = pts[0], pts[0]
			first = len(r.segs)
			open, drawn = true, false

		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addSegment(cur, pts[0])
			cur = pts[0]

		case path.CmdQuadTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenQuadratic(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]

		case path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]

		case path.CmdClose:
			if !open {
				continue
			}
			if cur != start {
				r.addSegment(cur, start)
			}
			finish(true)
			cur = start
			first = len(r.segs)
			open, drawn = false, false
		}
	}
	if open && drawn {
		finish(false)
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}, L: l})
}

// beginPolygon starts a new outline polygon in r.stroke.
func (r *Rasterizer) beginPolygon() {
	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
}

// strokeOpen appends the outline of an open subpath as one polygon: the
// left side walking forward, the end cap, the right side walking
// backward and the start cap.
func (r *Rasterizer) strokeOpen(segs []strokeSegment, d float64) {
	n := len(segs)
	first, last := &segs[0], &segs[n-1]

	r.beginPolygon()
	r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
	for i := 0; i < n-1; i++ {
		a, b := &segs[i], &segs[i+1]
		r.corner(a.B, a.T, b.T, a.N, b.N, d, min(a.L, b.L)/2)
	}
	r.stroke = append(r.stroke, last.B.Add(last.N.Mul(d)))
	r.addCap(last.B, last.T, d)

	// Walking backward, the right side is the left side of the reversed
	// segments.
	r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
	for i := n - 1; i > 0; i-- {
		a, b := &segs[i], &segs[i-1]
		r.corner(a.A, a.T.Mul(-1), b.T.Mul(-1), a.N.Mul(-1), b.N.Mul(-1), d, min(a.L, b.L)/2)
	}
	r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
	r.addCap(first.A, first.T.Mul(-1), d)
}

// strokeClosed appends the outline of a closed subpath as two polygons
// of opposite orientation, so that the nonzero rule leaves the inside of
// the subpath empty.
func (r *Rasterizer) strokeClosed(segs []strokeSegment, d float64) {
	n := len(segs)

	r.beginPolygon()
	for i := range n {
		a, b := &segs[i], &segs[(i+1)%n]
		r.corner(a.B, a.T, b.T, a.N, b.N, d, min(a.L, b.L)/2)
	}

	r.beginPolygon()
	for i := n - 1; i >= 0; i-- {
		a, b := &segs[i], &segs[(i+n-1)%n]
		r.corner(a.A, a.T.Mul(-1), b.T.Mul(-1), a.N.Mul(-1), b.N.Mul(-1), d, min(a.L, b.L)/2)
	}
}

// corner appends the left hand outline at the vertex P, where the path
// turns from tangent T1 to T2.  The points run from P+d·N1 to P+d·N2.
// On the inside of a turn, the offset lines are cut at their
// intersection if it lies within reach of P along both segments.
func (r *Rasterizer) corner(P, T1, T2, N1, N2 vec.Vec2, d, reach float64) {
	s := T1.X*T2.Y - T1.Y*T2.X
	c := T1.Dot(T2)
	from := P.Add(N1.Mul(d))
	to := P.Add(N2.Mul(d))

	if math.Abs(s) < collinearityThreshold && c > 0 {
		r.stroke = append(r.stroke, from)
		return
	}
	if s > 0 && c > cuspCosineThreshold {
		// Inner side of a left turn.  The offset lines meet at distance
		// d·tan(θ/2) from P along both segments.
		half := math.Sqrt((1 + c) / 2)
		bisector := N1.Add(N2)
		l := bisector.Length()
		if l > zeroLengthThreshold && d*math.Sqrt((1-c)/(1+c)) <= reach {
			r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(half*l))))
			return
		}
		// Passing through P keeps the polygon inside the two segment
		// bodies, however short they are.
		r.stroke = append(r.stroke, from, P, to)
		return
	}

	r.stroke = append(r.stroke, from)
	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(P, d, N1, math.Atan2(s, c))
		return
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		half := math.Sqrt((1 + c) / 2)
		bisector := N1.Add(N2)
		if l := bisector.Length(); half > 0 && l > zeroLengthThreshold && 1/half <= r.MiterLimit {
			r.stroke = append(r.stroke, P.Add(bisector.Mul(d/(half*l))))
		}
	}
	r.stroke = append(r.stroke, to)
}

// addCap appends the cap at P, where T is the unit tangent pointing away
// from the line.  The cap runs from the left side to the right side; the
// end points themselves are added by the caller.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi)
	}
}

// addArc appends points on a circular arc around center.  startDir is a
// unit vector pointing to the start of the arc and sweep is the signed
// angle.  The start point itself is not added.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)

	n := 4
	if devRadius > r.Flatness {
		// chord deviation r(1-cos(θ/2)) equals the flatness
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
	}

	for i := 1; i <= n; i++ {
		a := sweep * float64(i) / float64(n)
		c, s := math.Cos(a), math.Sin(a)
		dir := vec.Vec2{X: startDir.X*c - startDir.Y*s, Y: startDir.X*s + startDir.Y*c}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}
