// Package text turns a page's content stream operations into positioned
// text elements: a text state machine emits one item per shown glyph
// run, and ToElements converts items into page-space rectangles with
// transform-derived heights.
package text
