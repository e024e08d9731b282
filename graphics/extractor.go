package graphics

import (
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/contentstream"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Extractor recovers filled axis-aligned rectangles from a page's
// content stream operations. Register grids draw their ruling lines as
// thin filled rectangles, so only rectangle subpaths committed by a fill
// operator are collected; stroked paths and curves are ignored.
type Extractor struct {
	ctm     model.Matrix
	stack   []model.Matrix
	pending *model.Rect
	rects   []model.Rect
}

// NewExtractor creates an extractor with an identity transform.
func NewExtractor() *Extractor {
	return &Extractor{ctm: model.Identity()}
}

// Extract processes the operations in order and returns the filled
// rectangles in page coordinates. Malformed operations are dropped
// silently; extraction never aborts.
func (e *Extractor) Extract(ops []contentstream.Operation) []model.Rect {
	for _, op := range ops {
		e.apply(op)
	}
	return e.rects
}

func (e *Extractor) apply(op contentstream.Operation) {
	switch op.Operator {
	case "q":
		e.stack = append(e.stack, e.ctm)

	case "Q":
		// underflow tolerated: keep the current transform
		if n := len(e.stack); n > 0 {
			e.ctm = e.stack[n-1]
			e.stack = e.stack[:n-1]
		}

	case "cm":
		if m, ok := toMatrix(op.Operands); ok {
			e.ctm = m.Multiply(e.ctm)
		}

	case "re":
		if len(op.Operands) < 4 {
			return
		}
		x, ok1 := toFloat(op.Operands[0])
		y, ok2 := toFloat(op.Operands[1])
		w, ok3 := toFloat(op.Operands[2])
		h, ok4 := toFloat(op.Operands[3])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}
		p1 := e.ctm.Transform(model.Point{X: x, Y: y})
		p2 := e.ctm.Transform(model.Point{X: x + w, Y: y + h})
		r := model.NewRectFromPoints(p1, p2)
		// only the most recent rectangle survives to the fill
		e.pending = &r

	case "f", "F", "f*":
		if e.pending != nil {
			e.rects = append(e.rects, *e.pending)
			e.pending = nil
		}
	}
}

func toFloat(obj contentstream.Object) (float64, bool) {
	if r, ok := obj.(contentstream.Real); ok {
		return float64(r), true
	}
	return 0, false
}

func toMatrix(operands []contentstream.Object) (model.Matrix, bool) {
	if len(operands) < 6 {
		return model.Identity(), false
	}
	var m model.Matrix
	for i := 0; i < 6; i++ {
		v, ok := toFloat(operands[i])
		if !ok {
			return model.Identity(), false
		}
		m[i] = v
	}
	return m, true
}
