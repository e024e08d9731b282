package tables

import "github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"

// Bind assigns each element to the first cell, in sorted order, that
// contains more than half of the element's area. Elements no cell owns
// are dropped. Elements are sorted first so that multi-line cell content
// accumulates in reading order.
func Bind(cells []model.Cell, elements []model.Element, tolerance float64) {
	SortElements(elements, tolerance)

	for _, el := range elements {
		for i := range cells {
			if model.PercentOfIn(el.Rect, cells[i].Rect) > 50 {
				cells[i].Elements = append(cells[i].Elements, el)
				break
			}
		}
	}
}
