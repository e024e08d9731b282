package tables

import (
	"testing"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

func TestRowsGroupsByY(t *testing.T) {
	cells := []model.Cell{
		{Rect: model.NewRect(0, 10, 50, 20)},
		{Rect: model.NewRect(50, 11, 50, 20)},
		{Rect: model.NewRect(0, 40, 50, 20)},
		{Rect: model.NewRect(50, 40, 50, 20)},
	}

	rows := Rows(cells, model.Tolerance)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len(rows[0]) != 2 || len(rows[1]) != 2 {
		t.Errorf("row sizes = %d, %d, want 2, 2", len(rows[0]), len(rows[1]))
	}
}

func TestRowsSortedWithinRow(t *testing.T) {
	cells := []model.Cell{
		{Rect: model.NewRect(100, 10, 50, 20)},
		{Rect: model.NewRect(0, 10, 50, 20)},
	}

	rows := Rows(cells, model.Tolerance)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0][0].X != 0 || rows[0][1].X != 100 {
		t.Errorf("row not sorted by X: %+v", rows[0])
	}
}

func TestRowsBoundaryAtTolerance(t *testing.T) {
	cells := []model.Cell{
		{Rect: model.NewRect(0, 10, 50, 20)},
		{Rect: model.NewRect(50, 13, 50, 20)},
	}

	// a 3-unit difference is not within the tolerance
	rows := Rows(cells, model.Tolerance)
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2 at the tolerance boundary", len(rows))
	}
}

func TestCellForColumn(t *testing.T) {
	heading := &model.Cell{Rect: model.NewRect(100, 0, 100, 20)}
	row := []model.Cell{
		{Rect: model.NewRect(0, 50, 100, 20)},
		{Rect: model.NewRect(100, 50, 100, 20)},
		{Rect: model.NewRect(200, 50, 100, 20)},
	}

	got := CellForColumn(row, heading)
	if got == nil {
		t.Fatal("expected a cell under the heading")
	}
	if got.X != 100 {
		t.Errorf("cell at x=%f, want 100", got.X)
	}
}

func TestCellForColumnRequiresStrongOverlap(t *testing.T) {
	heading := &model.Cell{Rect: model.NewRect(0, 0, 100, 20)}
	// shifted half a column: overlap well under 90%
	row := []model.Cell{
		{Rect: model.NewRect(50, 50, 100, 20)},
	}

	if got := CellForColumn(row, heading); got != nil {
		t.Errorf("expected no column cell, got %+v", got)
	}
}

func TestCellForColumnNilHeading(t *testing.T) {
	row := []model.Cell{{Rect: model.NewRect(0, 0, 100, 20)}}

	if got := CellForColumn(row, nil); got != nil {
		t.Errorf("expected nil for unbound heading, got %+v", got)
	}
}
