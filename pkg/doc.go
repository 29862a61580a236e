// Package pkg provides the core libraries for pitchplot soccer visualization.
//
// # Overview
//
// Pitchplot draws soccer pitches and overlays match event data as shot maps
// and arrow maps. The pkg directory is organized into four main areas:
//
//  1. [pitch] - Pitch drawing: coordinate presets, themes, markings, overlays
//  2. [quiver] - Arrow fields for directional event data
//  3. [marker] - Extra glyph shapes and per-glyph rotation
//  4. [pipeline] - Orchestration (compose → export) with caching
//
// Supporting packages: [cache] (artifact cache backends), [io] (event import
// and figure export), [errors] (structured error codes), [observability]
// (instrumentation hooks), [buildinfo] (version information).
//
// # Architecture
//
// The typical data flow through pitchplot:
//
//	Event File (JSON)
//	         ↓
//	io.ImportJSON
//	         ↓
//	pipeline.Compose  →  pitch.Draw + Scatter/Arrows overlays
//	         ↓
//	io.Write (PNG/SVG/PDF)
//	         ↓
//	Artifact (cached by content hash)
//
// The library layers are usable on their own: pitch and quiver work directly
// against gonum/plot for programmatic figure building, while pipeline adds
// the caching and option plumbing shared by the CLI and the render service.
package pkg
