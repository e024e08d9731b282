// Package tables reconstructs logical tables from a page's geometry.
//
// PDFs carry no table structure; what a register page provides is a set
// of thin filled rectangles (the ruling lines) and independently
// positioned text runs. The pipeline here recovers the table in four
// steps:
//
//  1. [Reconstructor.Reconstruct] classifies the rectangles into
//     horizontal and vertical rulings, collapses their endpoints and
//     crossings into a canonical point set, and emits a cell for every
//     point with an aligned neighbour to the right and below.
//  2. [Normalize] flips the PDF Y axis into the top-down convention the
//     comparators assume, and applies a declared 90 degree rotation.
//  3. [Bind] gives each text element to the cell owning the majority of
//     its area.
//  4. [Rows] buckets cells into rows and [CellForColumn] projects a
//     row's cells onto a heading column by horizontal overlap.
//
// All alignment comparisons share a single tolerance, model.Tolerance.
package tables
