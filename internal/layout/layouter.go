package layout

import (
	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
)

// Hints pins either end of a connection during layout. A nil end keeps the
// connection's current end point, or the centre of the attached shape when
// the connection has no waypoints yet.
type Hints struct {
	Start *geometry.Point
	End   *geometry.Point
}

// Straight returns a two-point route from the source anchor to the target
// anchor. Bend points are not preserved.
func Straight(d *diagram.Diagram, conn *diagram.Connection, hints Hints) []geometry.Point {
	first, hasFirst := firstWaypoint(conn)
	last, hasLast := lastWaypoint(conn)
	return []geometry.Point{
		endpoint(hints.Start, first, hasFirst, d.Shape(conn.Source)),
		endpoint(hints.End, last, hasLast, d.Shape(conn.Target)),
	}
}

func endpoint(pinned *geometry.Point, current geometry.Point, hasCurrent bool, shape *diagram.Shape) geometry.Point {
	if pinned != nil {
		return *pinned
	}
	if hasCurrent {
		return current
	}
	if shape == nil {
		return geometry.Point{}
	}
	return shape.Center()
}
