// Package vscene provides a retained-mode vector-path scene entity for Go.
//
// # Overview
//
// vscene manages the geometry, paint state, and spatial queries of drawable
// path primitives inside a 2D scene graph. A Shape owns a recorded geometry
// buffer that is rebuilt only when its shape parameters actually changed and
// replayed from cache otherwise, keeps a memoized stroke-inclusive bounding
// rectangle, and answers transform-aware hit tests.
//
// # Quick Start
//
//	import "github.com/gogpu/vscene"
//
//	rect := vscene.NewRect(vscene.Options{
//	    Shape: vscene.ShapeParams{"x": 0.0, "y": 0.0, "width": 10.0, "height": 10.0},
//	    Style: vscene.StyleParams{"fill": "red"},
//	})
//
//	rect.Contains(5, 5) // true
//	rect.Paint(surface) // draw onto any Surface implementation
//
// # Shape Kinds
//
// New shape kinds are derived declaratively: supply a geometry-building
// function and default parameter tables to Extend, and the generic caching,
// painting, and hit-testing machinery is inherited unchanged.
//
//	NewStar := vscene.Extend(vscene.Kind{
//	    Name:         "star",
//	    Build:        func(p *vscene.Path, shape vscene.ShapeParams) { /* ... */ },
//	    DefaultShape: vscene.ShapeParams{"points": 5.0, "r": 10.0},
//	})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Shape, Kind, Path, Style, Matrix, Brush
//   - Geometry: recorded path buffer with replay, bounds, and containment
//   - label: text-label attachments measured via go-text/typesetting
//
// Rasterization is out of scope: drawing is delegated to the Surface
// interface, which any backend (software, GPU, vector export) can implement.
package vscene
