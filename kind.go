package vscene

// ShapeParams maps geometry-parameter names to values. The semantics of
// each key are defined by the shape kind; unknown keys are stored without
// validation and ignored by the built-in builders.
type ShapeParams map[string]any

// Float returns the parameter under key coerced to float64, or def when
// the key is absent or not numeric.
func (sp ShapeParams) Float(key string, def float64) float64 {
	if v, ok := sp[key]; ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return def
}

// Points returns the parameter under key as a point slice, or nil.
func (sp ShapeParams) Points(key string) []Point {
	if v, ok := sp[key]; ok {
		if pts, ok := v.([]Point); ok {
			return pts
		}
	}
	return nil
}

// Kind declares a shape kind: a geometry-building function plus default
// parameter tables. The generic caching, painting, and hit-testing
// machinery dispatches to Build; everything else is shared.
type Kind struct {
	// Name tags the kind, e.g. "rect" or "circle".
	Name string

	// Build records the kind's geometry into the buffer from the current
	// shape parameters. A nil Build yields empty geometry: nothing painted,
	// zero bounds, no error.
	Build func(p *Path, shape ShapeParams)

	// DefaultShape supplies shape parameters for keys the construction
	// options leave absent. Never overwrites explicitly supplied values.
	DefaultShape ShapeParams

	// DefaultStyle supplies style parameters for keys the construction
	// options leave absent.
	DefaultStyle StyleParams

	// Init, if set, runs after construction with the original options.
	Init func(sh *Shape, opts Options)
}

// Options are the construction-time parameters of a shape. Key presence in
// the Shape and Style tables records an explicit choice: kind defaults
// merge only into absent keys.
type Options struct {
	// Shape holds the initial geometry parameters.
	Shape ShapeParams

	// Style holds the initial style parameters (see StyleParams).
	Style StyleParams

	// Transform is the externally owned affine transform, nil for identity.
	Transform *Matrix
}

// Extend produces a constructor for a new shape kind from its declarative
// definition. The produced kinds are composed from the same caching,
// painting, and hit-testing machinery as the built-ins:
//
//	NewTriangle := vscene.Extend(vscene.Kind{
//	    Name: "triangle",
//	    Build: func(p *vscene.Path, shape vscene.ShapeParams) {
//	        s := shape.Float("size", 10)
//	        p.Polygon([]vscene.Point{{X: 0, Y: -s}, {X: s, Y: s}, {X: -s, Y: s}})
//	    },
//	    DefaultShape: vscene.ShapeParams{"size": 10.0},
//	})
//	tri := NewTriangle(vscene.Options{})
func Extend(k Kind) func(Options) *Shape {
	return func(opts Options) *Shape {
		return newShape(k, opts)
	}
}

// newShape runs the construction protocol: base state with an empty owned
// geometry buffer and dirty geometry, non-destructive default merge of
// shape and style tables, then the kind's init hook.
func newShape(k Kind, opts Options) *Shape {
	sh := &Shape{
		Style:     NewStyle(),
		kind:      k,
		geometry:  NewPath(),
		dirtyPath: true,
	}
	sh.Transform = opts.Transform

	// A shape table exists when either the options or the kind define one;
	// otherwise the variant is shape-less and SetShape is a no-op.
	if opts.Shape != nil || k.DefaultShape != nil {
		sh.shape = make(ShapeParams, len(opts.Shape)+len(k.DefaultShape))
		for key, value := range opts.Shape {
			sh.shape[key] = value
		}
		mergeIfAbsent(sh.shape, k.DefaultShape)
	}

	style := make(StyleParams, len(opts.Style)+len(k.DefaultStyle))
	for key, value := range opts.Style {
		style[key] = value
	}
	mergeIfAbsent(style, k.DefaultStyle)
	style.apply(sh.Style)

	if k.Init != nil {
		k.Init(sh, opts)
	}
	return sh
}

// mergeIfAbsent copies default entries into dst only for keys dst does not
// already have. Presence is the explicit was-this-key-set record, so a
// zero value supplied at construction still wins over a default.
func mergeIfAbsent[M ~map[string]any](dst, defaults M) {
	for key, value := range defaults {
		if _, ok := dst[key]; !ok {
			dst[key] = value
		}
	}
}
