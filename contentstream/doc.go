// Package contentstream parses decoded PDF content streams into a flat
// sequence of operator/operand operations. It knows nothing about the
// surrounding document structure; callers hand it the already-decoded
// stream bytes for a page.
package contentstream
