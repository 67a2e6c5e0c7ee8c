// Package record decodes the flat numeric buffers handed over by the CAD
// host into structured geometry records.
//
// Every buffer is an ordered run of float64 values holding variable-length
// records back to back, optionally followed by trailing padding. The layouts
// are self-describing but undocumented, so decoding is defensive throughout:
// a read that would overrun the buffer, an out-of-range type tag, or a
// padding run all terminate decoding quietly, keeping whatever records were
// already complete. Decoders never return errors and never panic on
// malformed input.
//
// Three record families are supported:
//
//   - tessellated polylines and arcs ([DecodePolylines])
//   - break lines in five style variants ([DecodeBreakLines])
//   - detail-view reference circles with arrowheads ([DecodeDetailCircles])
package record
