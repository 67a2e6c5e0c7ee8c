// Package geom provides the geometric primitives and coordinate transforms
// used when flattening drawing-view geometry onto an output sheet.
//
// # Coordinate spaces
//
// Three spaces are involved:
//
//   - model space: the local coordinate system of one drawing view, in meters
//   - sheet space: the shared coordinate system of the whole sheet
//   - output space: the final 2D document space, in millimeters, with the
//     Y axis flipped so that Y grows downward
//
// A [Placement] carries a view's scale and anchor and maps model space onto
// the sheet. [Pipeline] composes placement, unit conversion, and the vertical
// flip into single calls.
//
// # Bounds
//
// [Bounds] is a running min/max box over individual points. Its zero value is
// empty; the first Update defines the box and later updates only expand it.
package geom
