// Package svg is an incremental builder for layered SVG documents.
//
// A [Document] owns a canvas, a tree of groups, and leaf shapes. Groups are
// stored in an arena of nodes addressed by [GroupHandle] indices with parent
// links; the StartGroup/EndGroup stack is a thin convenience over that arena,
// so the current attachment point is always explicit and an unmatched
// EndGroup is a safe no-op. Shapes attach to whichever group is current and
// keep their emission order, which is the document's z-order.
//
// The document also carries a running bounding box. Shape emission does not
// update it — callers call [Document.UpdateBounds] for every coordinate that
// should influence framing — and [Document.FitToContent] recomputes the
// viewport from whatever was recorded.
//
// All coordinates are serialized with a fixed, locale-independent decimal
// format of at most four fractional digits.
package svg
