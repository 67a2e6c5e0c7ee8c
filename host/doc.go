// Package host defines the boundary to the CAD application that owns the
// drawing being exported.
//
// The host is treated purely as a data provider: the interfaces here expose
// per-view flat geometry buffers (decoded by package record), view placement
// accessors, annotation objects, and generic tables. Everything behind these
// interfaces — the application object model, UI, file handling — is outside
// this module.
//
// Implementations are expected to be cheap, synchronous accessors over data
// the host has already materialized; none of the methods take a context or
// return errors.
package host
