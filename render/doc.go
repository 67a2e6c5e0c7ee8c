// Package render turns decoded drawing-view geometry into SVG document
// content.
//
// A [Renderer] is bound to a coordinate pipeline, an optional bill-of-
// materials lookup, and one or more target documents. When both a combined
// sheet document and a per-view document are registered, every emission is
// applied to each target independently; the documents share no state, so
// each tracks its own bounds and group nesting.
//
// Stroke styling follows the host's conventions: eight named line-weight
// levels (inch values converted to millimeters), per-style dash patterns
// scaled by [DashScale], and packed-BGR colors with a named-color default.
//
// Detail-circle arrowheads, non-circular balloon outlines, and section lines
// are decoded but not drawn; they are extension points.
package render
