package tui

import (
	"math"

	"github.com/bethropolis/drift/internal/diagram"
	"github.com/bethropolis/drift/internal/geometry"
	"github.com/bethropolis/drift/internal/logger"
	"github.com/bethropolis/drift/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// View maps canvas coordinates to screen cells. One canvas unit is one
// cell; Offset is the canvas point drawn at the top-left cell.
type View struct {
	OffsetX, OffsetY float64
	Width, Height    int // drawable area, status bar excluded
}

type cell struct{ x, y int }

func (v View) toCell(p geometry.Point) cell {
	return cell{
		x: int(math.Round(p.X - v.OffsetX)),
		y: int(math.Round(p.Y - v.OffsetY)),
	}
}

func (v View) visible(c cell) bool {
	return c.x >= 0 && c.y >= 0 && c.x < v.Width && c.y < v.Height
}

// rect is a shape's footprint in cells, inclusive.
type rect struct{ x0, y0, x1, y1 int }

func (v View) toRect(b geometry.Bounds) rect {
	tl := v.toCell(geometry.Point{X: b.X, Y: b.Y})
	br := v.toCell(geometry.Point{X: b.Right(), Y: b.Bottom()})
	r := rect{x0: tl.x, y0: tl.y, x1: br.x - 1, y1: br.y - 1}
	if r.x1 < r.x0 {
		r.x1 = r.x0
	}
	if r.y1 < r.y0 {
		r.y1 = r.y0
	}
	return r
}

func (r rect) contains(c cell) bool {
	return c.x >= r.x0 && c.x <= r.x1 && c.y >= r.y0 && c.y <= r.y1
}

// SpaceLine is the crosshair of the space tool, in canvas coordinates.
type SpaceLine struct {
	At geometry.Point
}

// DrawOptions control what DrawDiagram highlights.
type DrawOptions struct {
	View      View
	Selected  diagram.ID
	SpaceLine *SpaceLine
}

// DrawDiagram paints d: container and plain shapes parents first, then
// connections, then labels, then the space line.
func DrawDiagram(t *TUI, d *diagram.Diagram, th *theme.Theme, opts DrawOptions) {
	screen := t.screen
	view := opts.View
	if view.Width <= 0 || view.Height <= 0 {
		return
	}

	base := th.GetStyle(theme.StyleDefault)
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			screen.SetContent(x, y, ' ', nil, base)
		}
	}

	var connections []*diagram.Connection
	var labels []*diagram.Shape
	shapes := 0

	d.Walk(func(el diagram.Element) bool {
		switch el := el.(type) {
		case *diagram.Connection:
			connections = append(connections, el)
		case *diagram.Shape:
			if d.IsRoot(el) {
				return true
			}
			if el.IsLabel() {
				labels = append(labels, el)
				return true
			}
			drawBox(screen, view, el, shapeStyle(th, el, opts.Selected))
			shapes++
		}
		return true
	})

	for _, c := range connections {
		style := th.GetStyle(theme.StyleConnection)
		if c.ID == opts.Selected {
			style = th.GetStyle(theme.StyleConnectionSelected)
		}
		drawConnection(screen, view, d, c, style)
	}

	for _, l := range labels {
		style := th.GetStyle(theme.StyleLabel)
		if l.ID == opts.Selected {
			style = style.Reverse(true)
		}
		drawLabel(screen, view, l, style)
	}

	if opts.SpaceLine != nil {
		drawSpaceLine(screen, view, *opts.SpaceLine, th.GetStyle(theme.StyleSpaceLine))
	}

	logger.DebugTagf("draw", "drew %d shape(s), %d connection(s), %d label(s)", shapes, len(connections), len(labels))
}

func shapeStyle(th *theme.Theme, s *diagram.Shape, selected diagram.ID) tcell.Style {
	name := theme.StyleShape
	if s.HasChildren() {
		name = theme.StyleContainer
	}
	if s.ID == selected {
		name += ".selected"
	}
	return th.GetStyle(name)
}

func setCell(screen tcell.Screen, view View, c cell, r rune, style tcell.Style) {
	if view.visible(c) {
		screen.SetContent(c.x, c.y, r, nil, style)
	}
}

// drawBox draws the border of s, blanks its interior and writes its ID
// into the top edge.
func drawBox(screen tcell.Screen, view View, s *diagram.Shape, style tcell.Style) {
	r := view.toRect(s.Bounds)
	_, bg, _ := style.Decompose()
	fill := tcell.StyleDefault.Background(bg)

	for y := r.y0; y <= r.y1; y++ {
		for x := r.x0; x <= r.x1; x++ {
			ch := ' '
			st := fill
			switch {
			case y == r.y0 && x == r.x0:
				ch, st = tcell.RuneULCorner, style
			case y == r.y0 && x == r.x1:
				ch, st = tcell.RuneURCorner, style
			case y == r.y1 && x == r.x0:
				ch, st = tcell.RuneLLCorner, style
			case y == r.y1 && x == r.x1:
				ch, st = tcell.RuneLRCorner, style
			case y == r.y0 || y == r.y1:
				ch, st = tcell.RuneHLine, style
			case x == r.x0 || x == r.x1:
				ch, st = tcell.RuneVLine, style
			}
			setCell(screen, view, cell{x, y}, ch, st)
		}
	}

	title := Truncate(string(s.ID), r.x1-r.x0-1)
	if title == "" || r.y0 < 0 || r.y0 >= view.Height {
		return
	}
	x := r.x0 + 1
	if x < 0 {
		return
	}
	DrawText(screen, x, r.y0, min(view.Width-x, r.x1-r.x0-1), title, style)
}

func drawLabel(screen tcell.Screen, view View, l *diagram.Shape, style tcell.Style) {
	r := view.toRect(l.Bounds)
	if r.y0 < 0 || r.y0 >= view.Height || r.x0 < 0 {
		return
	}
	text := Truncate(string(l.ID), r.x1-r.x0+1)
	DrawText(screen, r.x0, r.y0, view.Width-r.x0, text, style)
}

// drawConnection routes each waypoint segment horizontally first, then
// vertically. Cells inside the source or target box are skipped so the
// line meets their borders, and the last visible cell gets an arrowhead.
func drawConnection(screen tcell.Screen, view View, d *diagram.Diagram, c *diagram.Connection, style tcell.Style) {
	if len(c.Waypoints) < 2 {
		return
	}

	var path []cell
	for i := 0; i+1 < len(c.Waypoints); i++ {
		seg := route(view.toCell(c.Waypoints[i]), view.toCell(c.Waypoints[i+1]))
		if i > 0 && len(seg) > 0 {
			seg = seg[1:]
		}
		path = append(path, seg...)
	}

	var hide []rect
	for _, id := range []diagram.ID{c.Source, c.Target} {
		if s := d.Shape(id); s != nil {
			hide = append(hide, view.toRect(s.Bounds))
		}
	}
	hidden := func(p cell) bool {
		for _, r := range hide {
			if r.contains(p) {
				return true
			}
		}
		return false
	}

	last := -1
	for i, p := range path {
		if hidden(p) {
			continue
		}
		setCell(screen, view, p, pathRune(path, i), style)
		last = i
	}
	if last > 0 {
		setCell(screen, view, path[last], arrowRune(path[last-1], path[last]), style)
	}
}

// route returns the cells from a to b inclusive, horizontal leg first.
func route(a, b cell) []cell {
	out := []cell{a}
	cur := a
	for cur.x != b.x {
		cur.x += sign(b.x - cur.x)
		out = append(out, cur)
	}
	for cur.y != b.y {
		cur.y += sign(b.y - cur.y)
		out = append(out, cur)
	}
	return out
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// pathRune picks a line or corner rune from the neighbours of path[i].
func pathRune(path []cell, i int) rune {
	var in, out cell
	if i > 0 {
		in = cell{path[i].x - path[i-1].x, path[i].y - path[i-1].y}
	}
	if i+1 < len(path) {
		out = cell{path[i+1].x - path[i].x, path[i+1].y - path[i].y}
	}
	if in == (cell{}) {
		in = out
	}
	if out == (cell{}) {
		out = in
	}

	switch {
	case in.y == 0 && out.y == 0:
		return tcell.RuneHLine
	case in.x == 0 && out.x == 0:
		return tcell.RuneVLine
	case in.x > 0 && out.y > 0, in.y < 0 && out.x < 0:
		return tcell.RuneURCorner
	case in.x > 0 && out.y < 0, in.y > 0 && out.x < 0:
		return tcell.RuneLRCorner
	case in.x < 0 && out.y > 0, in.y < 0 && out.x > 0:
		return tcell.RuneULCorner
	default:
		return tcell.RuneLLCorner
	}
}

func arrowRune(from, to cell) rune {
	switch {
	case to.x > from.x:
		return '>'
	case to.x < from.x:
		return '<'
	case to.y > from.y:
		return 'v'
	}
	return '^'
}

func drawSpaceLine(screen tcell.Screen, view View, line SpaceLine, style tcell.Style) {
	at := view.toCell(line.At)
	if at.x >= 0 && at.x < view.Width {
		for y := 0; y < view.Height; y++ {
			screen.SetContent(at.x, y, '┊', nil, style)
		}
	}
	if at.y >= 0 && at.y < view.Height {
		for x := 0; x < view.Width; x++ {
			ch := '┄'
			if x == at.x {
				ch = '┼'
			}
			screen.SetContent(x, at.y, ch, nil, style)
		}
	}
}
