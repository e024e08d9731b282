// Package model defines the geometric primitives and document types
// shared by the extraction pipeline: points, rectangles, lines and
// affine transforms, plus the element, cell and record types built from
// them.
//
// All geometric operations are pure and allocate nothing beyond their
// return values.
package model
