package text

import (
	"math"
	"strings"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/contentstream"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Item is one glyph run as shown by the content stream: its decoded
// string, estimated advance width in device units, and the full text
// transform in effect when it was shown.
type Item struct {
	Str       string
	Width     float64
	Transform model.Matrix
}

// textState tracks the graphics and text state needed to position glyph
// runs. Font resources are not resolved; glyph advances use
// per-character width-class estimates, which is accurate enough for the
// cell-containment test downstream.
type textState struct {
	ctm   model.Matrix
	stack []model.Matrix

	tm  model.Matrix // text matrix
	tlm model.Matrix // text line matrix

	size        float64
	leading     float64
	charSpacing float64
	wordSpacing float64
	hscale      float64 // percent
}

// ExtractItems walks the operations and returns one Item per shown
// string, in stream order.
func ExtractItems(ops []contentstream.Operation) []Item {
	st := &textState{
		ctm:    model.Identity(),
		tm:     model.Identity(),
		tlm:    model.Identity(),
		size:   12,
		hscale: 100,
	}

	var items []Item
	for _, op := range ops {
		items = st.apply(op, items)
	}
	return items
}

func (st *textState) apply(op contentstream.Operation, items []Item) []Item {
	switch op.Operator {
	case "q":
		st.stack = append(st.stack, st.ctm)
	case "Q":
		if n := len(st.stack); n > 0 {
			st.ctm = st.stack[n-1]
			st.stack = st.stack[:n-1]
		}
	case "cm":
		if m, ok := toMatrix(op.Operands); ok {
			st.ctm = m.Multiply(st.ctm)
		}

	case "BT":
		st.tm = model.Identity()
		st.tlm = model.Identity()

	case "Tf":
		if len(op.Operands) >= 2 {
			if size, ok := toFloat(op.Operands[1]); ok {
				st.size = size
			}
		}
	case "Tz":
		if v, ok := firstFloat(op.Operands); ok {
			st.hscale = v
		}
	case "Tc":
		if v, ok := firstFloat(op.Operands); ok {
			st.charSpacing = v
		}
	case "Tw":
		if v, ok := firstFloat(op.Operands); ok {
			st.wordSpacing = v
		}
	case "TL":
		if v, ok := firstFloat(op.Operands); ok {
			st.leading = v
		}

	case "Tm":
		if m, ok := toMatrix(op.Operands); ok {
			st.tm = m
			st.tlm = m
		}
	case "Td":
		if len(op.Operands) >= 2 {
			tx, ok1 := toFloat(op.Operands[0])
			ty, ok2 := toFloat(op.Operands[1])
			if ok1 && ok2 {
				st.nextLine(tx, ty)
			}
		}
	case "TD":
		if len(op.Operands) >= 2 {
			tx, ok1 := toFloat(op.Operands[0])
			ty, ok2 := toFloat(op.Operands[1])
			if ok1 && ok2 {
				st.leading = -ty
				st.nextLine(tx, ty)
			}
		}
	case "T*":
		st.nextLine(0, -st.leading)

	case "Tj":
		if s, ok := firstString(op.Operands); ok {
			items = append(items, st.show(s))
		}
	case "'":
		st.nextLine(0, -st.leading)
		if s, ok := firstString(op.Operands); ok {
			items = append(items, st.show(s))
		}
	case "\"":
		if len(op.Operands) >= 3 {
			if aw, ok := toFloat(op.Operands[0]); ok {
				st.wordSpacing = aw
			}
			if ac, ok := toFloat(op.Operands[1]); ok {
				st.charSpacing = ac
			}
			st.nextLine(0, -st.leading)
			if s, ok := toString(op.Operands[2]); ok {
				items = append(items, st.show(s))
			}
		}
	case "TJ":
		if len(op.Operands) >= 1 {
			if arr, ok := op.Operands[0].(contentstream.Array); ok {
				for _, el := range arr {
					switch v := el.(type) {
					case contentstream.String:
						items = append(items, st.show(string(v)))
					case contentstream.Real:
						// adjustment in thousandths of text space
						st.advance(-float64(v) / 1000 * st.size * st.hscale / 100)
					}
				}
			}
		}
	}

	return items
}

func (st *textState) nextLine(tx, ty float64) {
	st.tlm = model.Translate(tx, ty).Multiply(st.tlm)
	st.tm = st.tlm
}

// advance moves the text matrix along the baseline by tx text-space units.
func (st *textState) advance(tx float64) {
	st.tm[4] += tx * st.tm[0]
	st.tm[5] += tx * st.tm[1]
}

// show builds the item for a shown string and advances the text matrix
// past it.
func (st *textState) show(s string) Item {
	trm := model.Scale(st.size*st.hscale/100, st.size).Multiply(st.tm).Multiply(st.ctm)

	adv := st.advanceFor(s)
	dev := st.tm.Multiply(st.ctm)
	scale := math.Hypot(dev[0], dev[1])

	item := Item{Str: s, Width: adv * scale, Transform: trm}
	st.advance(adv)
	return item
}

// advanceFor estimates the advance of a string in text-space units.
func (st *textState) advanceFor(s string) float64 {
	var w float64
	for _, r := range s {
		w += widthClass(r) * st.size
		w += st.charSpacing
		if r == ' ' {
			w += st.wordSpacing
		}
	}
	return w * st.hscale / 100
}

// widthClass approximates a glyph's advance as a fraction of the font
// size.
func widthClass(r rune) float64 {
	switch {
	case r == ' ':
		return 0.25
	case strings.ContainsRune("iIl!|.,;:'`", r):
		return 0.3
	case strings.ContainsRune("mMwW", r):
		return 0.8
	default:
		return 0.5
	}
}

func toFloat(obj contentstream.Object) (float64, bool) {
	if r, ok := obj.(contentstream.Real); ok {
		return float64(r), true
	}
	return 0, false
}

func firstFloat(operands []contentstream.Object) (float64, bool) {
	if len(operands) == 0 {
		return 0, false
	}
	return toFloat(operands[0])
}

func toString(obj contentstream.Object) (string, bool) {
	if s, ok := obj.(contentstream.String); ok {
		return string(s), true
	}
	return "", false
}

func firstString(operands []contentstream.Object) (string, bool) {
	if len(operands) == 0 {
		return "", false
	}
	return toString(operands[0])
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
