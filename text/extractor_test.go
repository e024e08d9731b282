package text

import (
	"math"
	"testing"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/contentstream"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

func elements(t *testing.T, stream string) []model.Element {
	t.Helper()
	ops := contentstream.NewParser([]byte(stream)).Parse()
	return ToElements(ExtractItems(ops))
}

func TestExtractSingleRun(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 1 0 0 1 40 700 Tm (Hello) Tj ET")

	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	el := els[0]
	if el.Text != "Hello" {
		t.Errorf("text = %q", el.Text)
	}
	if el.X != 40 || el.Y != 700 {
		t.Errorf("position = (%f, %f), want (40, 700)", el.X, el.Y)
	}
	if el.Height != 10 {
		t.Errorf("height = %f, want 10", el.Height)
	}
	if el.Width <= 0 {
		t.Errorf("width = %f, want positive", el.Width)
	}
}

func TestHeightFromTransformNotFontSize(t *testing.T) {
	// the text matrix carries the real vertical scale; font size is 1
	els := elements(t, "BT /F1 1 Tf 12 0 0 12 100 100 Tm (x) Tj ET")

	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	if els[0].Height != 12 {
		t.Errorf("height = %f, want 12", els[0].Height)
	}
}

func TestHeightUnderRotatedTransform(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 0 1 -1 0 100 100 Tm (x) Tj ET")

	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	// sqrt(c^2 + d^2) with c = -10, d = 0
	if math.Abs(els[0].Height-10) > 1e-9 {
		t.Errorf("height = %f, want 10", els[0].Height)
	}
}

func TestRunsAdvanceAlongBaseline(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 1 0 0 1 0 0 Tm (ab) Tj (cd) Tj ET")

	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[1].X <= els[0].X {
		t.Errorf("second run at x=%f did not advance past first at x=%f", els[1].X, els[0].X)
	}
	if math.Abs(els[1].X-(els[0].X+els[0].Width)) > 1e-9 {
		t.Errorf("second run starts at %f, want %f", els[1].X, els[0].X+els[0].Width)
	}
}

func TestTJArrayAdjustments(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 1 0 0 1 0 0 Tm [(6) -500 (9)] TJ ET")

	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	// -500 thousandths widens the gap by 5 units at 10pt
	gap := els[1].X - (els[0].X + els[0].Width)
	if math.Abs(gap-5) > 1e-9 {
		t.Errorf("gap = %f, want 5", gap)
	}
}

func TestTdMovesLine(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 1 0 0 1 50 100 Tm (a) Tj 0 -12 Td (b) Tj ET")

	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[1].X != 50 || els[1].Y != 88 {
		t.Errorf("second line at (%f, %f), want (50, 88)", els[1].X, els[1].Y)
	}
}

func TestLeadingAndNextLine(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 14 TL 1 0 0 1 0 100 Tm (a) Tj T* (b) Tj ET")

	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[1].Y != 86 {
		t.Errorf("next line y = %f, want 86", els[1].Y)
	}
}

func TestQuoteShowsOnNextLine(t *testing.T) {
	els := elements(t, "BT /F1 10 Tf 12 TL 1 0 0 1 0 100 Tm (a) Tj (b) ' ET")

	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[1].Y != 88 {
		t.Errorf("quoted line y = %f, want 88", els[1].Y)
	}
}

func TestCTMAppliesToText(t *testing.T) {
	els := elements(t, "1 0 0 1 0 500 cm BT /F1 10 Tf 1 0 0 1 20 30 Tm (x) Tj ET")

	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1", len(els))
	}
	if els[0].X != 20 || els[0].Y != 530 {
		t.Errorf("position = (%f, %f), want (20, 530)", els[0].X, els[0].Y)
	}
}

func TestEmptyStream(t *testing.T) {
	if els := elements(t, ""); len(els) != 0 {
		t.Errorf("got %d elements from empty stream", len(els))
	}
}
