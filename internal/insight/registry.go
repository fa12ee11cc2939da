package insight

// Modules is the fixed, ordered set of published insight tools. Definitions
// are read-only after process start; concurrent evaluations share them
// safely because nothing mutates a Module.
var Modules = []*Module{
	acne,
	hairLoss,
	pigmentation,
	rosacea,
	eczema,
	psoriasis,
	whenToConsult,
}

// Get returns the module with the given slug, or nil when no such module is
// published. Callers decide how to surface the absence (typically a 404).
func Get(slug string) *Module {
	for _, m := range Modules {
		if m.Slug == slug {
			return m
		}
	}
	return nil
}
