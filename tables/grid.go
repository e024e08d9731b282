package tables

import (
	"math"
	"sort"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Reconstructor rebuilds a table grid from the thin filled rectangles
// that render its ruling lines.
type Reconstructor struct {
	// Tolerance for considering coordinates aligned (in page units)
	Tolerance float64

	// Minimum ruling length; shorter rectangles are decoration
	MinRulingLength float64
}

// NewReconstructor creates a reconstructor with default settings.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		Tolerance:       model.Tolerance,
		MinRulingLength: 10.0,
	}
}

// Reconstruct classifies the rectangles into rulings, derives the
// canonical point set of the grid, and emits one cell per point that has
// both a right and a down neighbour. Cells come back sorted by Y bucket
// then X.
//
// The grid is reconstructed as the transitive closure of alignment, not
// by assuming a rectangular matrix, so ragged tables still resolve.
// Near-duplicate cells from coordinate noise are tolerated; the element
// binder disambiguates them.
func (r *Reconstructor) Reconstruct(rects []model.Rect) []model.Cell {
	horizontals, verticals := r.classify(rects)
	if len(horizontals) == 0 || len(verticals) == 0 {
		return nil
	}

	points := r.seedPoints(horizontals, verticals)
	points = r.addIntersections(points, horizontals, verticals)

	cells := r.buildCells(points)
	SortCells(cells, r.Tolerance)
	return cells
}

// classify splits rectangles into horizontal and vertical rulings. A
// ruling is thin in one dimension and at least MinRulingLength in the
// other; everything else is stray decoration and dropped.
func (r *Reconstructor) classify(rects []model.Rect) (horizontals, verticals []model.Line) {
	for _, rect := range rects {
		switch {
		case rect.Height <= r.Tolerance && rect.Width >= r.MinRulingLength:
			horizontals = append(horizontals, model.Line{
				Start: model.Point{X: rect.X, Y: rect.Y},
				End:   model.Point{X: rect.X + rect.Width, Y: rect.Y},
			})
		case rect.Width <= r.Tolerance && rect.Height >= r.MinRulingLength:
			verticals = append(verticals, model.Line{
				Start: model.Point{X: rect.X, Y: rect.Y},
				End:   model.Point{X: rect.X, Y: rect.Y + rect.Height},
			})
		}
	}

	sort.Slice(horizontals, func(i, j int) bool {
		return horizontals[i].Start.Y < horizontals[j].Start.Y
	})
	sort.Slice(verticals, func(i, j int) bool {
		return verticals[i].Start.X < verticals[j].Start.X
	})

	return horizontals, verticals
}

// seedPoints collects ruling endpoints, collapsing near-duplicates.
func (r *Reconstructor) seedPoints(horizontals, verticals []model.Line) []model.Point {
	var points []model.Point
	for _, h := range horizontals {
		points = r.addPoint(points, h.Start)
		points = r.addPoint(points, h.End)
	}
	for _, v := range verticals {
		points = r.addPoint(points, v.Start)
		points = r.addPoint(points, v.End)
	}
	return points
}

// addIntersections adds every horizontal/vertical crossing to the point
// set, with the same near-duplicate suppression as the endpoints.
func (r *Reconstructor) addIntersections(points []model.Point, horizontals, verticals []model.Line) []model.Point {
	for _, h := range horizontals {
		for _, v := range verticals {
			if p, ok := model.IntersectLines(h, v); ok {
				points = r.addPoint(points, p)
			}
		}
	}
	return points
}

// addPoint appends the candidate unless an existing point lies within
// Tolerance of it. Linear scan; grids stay small enough that a spatial
// index is not worth the bookkeeping.
func (r *Reconstructor) addPoint(points []model.Point, candidate model.Point) []model.Point {
	for _, p := range points {
		if p.Distance(candidate) < r.Tolerance {
			return points
		}
	}
	return append(points, candidate)
}

// buildCells emits a cell for every point that has a nearest aligned
// neighbour both to the right and below.
func (r *Reconstructor) buildCells(points []model.Point) []model.Cell {
	var cells []model.Cell

	for _, p := range points {
		right, hasRight := r.closestRight(points, p)
		down, hasDown := r.closestDown(points, p)
		if !hasRight || !hasDown {
			continue
		}

		cells = append(cells, model.Cell{
			Rect: model.Rect{
				X:      p.X,
				Y:      p.Y,
				Width:  right.X - p.X,
				Height: down.Y - p.Y,
			},
		})
	}

	return cells
}

// closestRight finds the point with the smallest X greater than p.X
// among points whose Y is within Tolerance of p.Y.
func (r *Reconstructor) closestRight(points []model.Point, p model.Point) (model.Point, bool) {
	var best model.Point
	found := false
	for _, q := range points {
		if q.X <= p.X || math.Abs(q.Y-p.Y) >= r.Tolerance {
			continue
		}
		if !found || q.X < best.X {
			best = q
			found = true
		}
	}
	return best, found
}

// closestDown finds the point with the smallest Y greater than p.Y
// among points whose X is within Tolerance of p.X.
func (r *Reconstructor) closestDown(points []model.Point, p model.Point) (model.Point, bool) {
	var best model.Point
	found := false
	for _, q := range points {
		if q.Y <= p.Y || math.Abs(q.X-p.X) >= r.Tolerance {
			continue
		}
		if !found || q.Y < best.Y {
			best = q
			found = true
		}
	}
	return best, found
}

// SortCells orders cells by Y in buckets of the given tolerance, then by X.
func SortCells(cells []model.Cell, tolerance float64) {
	sort.SliceStable(cells, func(i, j int) bool {
		if math.Abs(cells[i].Y-cells[j].Y) >= tolerance {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}

// SortElements orders elements the same way as cells so that binding
// preserves reading order within a cell.
func SortElements(elements []model.Element, tolerance float64) {
	sort.SliceStable(elements, func(i, j int) bool {
		if math.Abs(elements[i].Y-elements[j].Y) >= tolerance {
			return elements[i].Y < elements[j].Y
		}
		return elements[i].X < elements[j].X
	})
}
