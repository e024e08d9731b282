package tables

import (
	"math"
	"sort"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Rows groups cells into rows. A cell joins the first existing row whose
// representative Y is within the tolerance of its own; otherwise it
// starts a new row. Cells must already be in sorted order, so rows come
// out top to bottom with each row sorted left to right.
func Rows(cells []model.Cell, tolerance float64) [][]model.Cell {
	var rows [][]model.Cell

	for _, cell := range cells {
		placed := false
		for i := range rows {
			if math.Abs(rows[i][0].Y-cell.Y) < tolerance {
				rows[i] = append(rows[i], cell)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []model.Cell{cell})
		}
	}

	for i := range rows {
		sort.SliceStable(rows[i], func(a, b int) bool {
			return rows[i][a].X < rows[i][b].X
		})
	}

	return rows
}

// CellForColumn returns the first cell in the row whose horizontal
// overlap with the heading cell exceeds 90 percent, or nil when the row
// has no cell under that column.
func CellForColumn(row []model.Cell, heading *model.Cell) *model.Cell {
	if heading == nil {
		return nil
	}
	for i := range row {
		if model.HorizontalOverlapPercent(heading.Rect, row[i].Rect) > 90 {
			return &row[i]
		}
	}
	return nil
}
