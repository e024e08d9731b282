package tables

import "github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"

// Normalize converts cells and elements from PDF bottom-up coordinates
// to top-down (larger Y is visually lower) and applies the page's
// declared rotation, then re-sorts both into the top-down order every
// comparator downstream assumes. This step is not optional.
//
// Only 0 and 90 degree rotations are handled; 180 and 270 pass through
// and typically yield an empty extraction.
func Normalize(cells []model.Cell, elements []model.Element, rotate int) {
	for i := range cells {
		cells[i].Rect = flipY(cells[i].Rect)
	}
	for i := range elements {
		elements[i].Rect = flipY(elements[i].Rect)
	}

	if rotate == 90 {
		for i := range cells {
			cells[i].Rect = cells[i].Rect.Rotate90()
		}
		for i := range elements {
			r := elements[i].Rect.Rotate90()
			// glyph runs emitted under the rotated font transform land
			// shifted by their glyph height (the rotated rectangle's
			// width) with width and height swapped; found by
			// experimentation against rotated registers
			r.Y -= r.Width
			r.Width, r.Height = r.Height, r.Width
			elements[i].Rect = r
		}
	}

	SortCells(cells, model.Tolerance)
	SortElements(elements, model.Tolerance)
}

func flipY(r model.Rect) model.Rect {
	r.Y = -(r.Y + r.Height)
	return r
}
