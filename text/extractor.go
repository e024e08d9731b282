package text

import (
	"math"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// ToElements converts shown items into positioned page elements.
//
// The height reported alongside a glyph run is inflated by the line
// leading, so the vertical scale of the text transform, sqrt(c*c + d*d),
// is used instead. This corrected height feeds the cell-containment test
// and must not be skipped.
func ToElements(items []Item) []model.Element {
	elements := make([]model.Element, 0, len(items))

	for _, item := range items {
		m := item.Transform
		elements = append(elements, model.Element{
			Rect: model.Rect{
				X:      m[4],
				Y:      m[5],
				Width:  item.Width,
				Height: math.Hypot(m[2], m[3]),
			},
			Text: item.Str,
		})
	}

	return elements
}
