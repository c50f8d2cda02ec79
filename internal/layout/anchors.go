// Package layout decides where connection endpoints go when the shapes they
// are attached to move or change size, and computes fresh waypoints for a
// connection.
package layout

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

// MovedSourceAnchor returns the new start point of conn after its source
// shape was moved by delta. source already carries the new position.
func MovedSourceAnchor(conn *diagram.Connection, source *diagram.Shape, delta geometry.Delta) geometry.Point {
	oldBounds := source.Bounds.Translate(delta.Negate())
	anchor, ok := firstWaypoint(conn)
	if !ok {
		return source.Center()
	}
	return NewAttachPoint(anchor, oldBounds, source.Bounds)
}

// MovedTargetAnchor is the end-point counterpart of MovedSourceAnchor.
func MovedTargetAnchor(conn *diagram.Connection, target *diagram.Shape, delta geometry.Delta) geometry.Point {
	oldBounds := target.Bounds.Translate(delta.Negate())
	anchor, ok := lastWaypoint(conn)
	if !ok {
		return target.Center()
	}
	return NewAttachPoint(anchor, oldBounds, target.Bounds)
}

// ResizedSourceAnchor returns the new start point of conn after source was
// resized from oldBounds. The last waypoint still enclosed by the new bounds
// wins; otherwise the old anchor is scaled into the new box.
func ResizedSourceAnchor(conn *diagram.Connection, source *diagram.Shape, oldBounds geometry.Bounds) geometry.Point {
	if inside := waypointsInside(conn.Waypoints, source.Bounds); len(inside) > 0 {
		return inside[len(inside)-1]
	}
	anchor, ok := firstWaypoint(conn)
	if !ok {
		return source.Center()
	}
	return NewAttachPoint(anchor, oldBounds, source.Bounds)
}

// ResizedTargetAnchor is the end-point counterpart of ResizedSourceAnchor;
// the first enclosed waypoint wins.
func ResizedTargetAnchor(conn *diagram.Connection, target *diagram.Shape, oldBounds geometry.Bounds) geometry.Point {
	if inside := waypointsInside(conn.Waypoints, target.Bounds); len(inside) > 0 {
		return inside[0]
	}
	anchor, ok := lastWaypoint(conn)
	if !ok {
		return target.Center()
	}
	return NewAttachPoint(anchor, oldBounds, target.Bounds)
}

// NewAttachPoint maps point, given relative to oldBounds, onto newBounds:
// its offset from the centre is scaled by the change in extent.
func NewAttachPoint(point geometry.Point, oldBounds, newBounds geometry.Bounds) geometry.Point {
	oldCenter := oldBounds.Center()
	newCenter := newBounds.Center()
	offset := point.Sub(oldCenter)

	return geometry.Point{
		X: newCenter.X + offset.X*ratio(newBounds.Width, oldBounds.Width),
		Y: newCenter.Y + offset.Y*ratio(newBounds.Height, oldBounds.Height),
	}
}

func ratio(now, before float64) float64 {
	if before == 0 {
		return 1
	}
	return now / before
}

func firstWaypoint(conn *diagram.Connection) (geometry.Point, bool) {
	if len(conn.Waypoints) == 0 {
		return geometry.Point{}, false
	}
	return conn.Waypoints[0], true
}

func lastWaypoint(conn *diagram.Connection) (geometry.Point, bool) {
	if len(conn.Waypoints) == 0 {
		return geometry.Point{}, false
	}
	return conn.Waypoints[len(conn.Waypoints)-1], true
}

func waypointsInside(points []geometry.Point, b geometry.Bounds) []geometry.Point {
	var out []geometry.Point
	for _, p := range points {
		if b.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
