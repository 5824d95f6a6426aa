package config

import "slices"

var builtinBlue = Theme{
	Name: "blue", Label: "Blue",
	Primary: "#667EEA", Secondary: "#4FACFE", Accent: "#00F2FE",
	Text: "#E6EDF7", Muted: "#5C6B8A",
}

// BuiltinThemes are always registered; a config file may replace them.
func BuiltinThemes() []Theme {
	return []Theme{
		builtinBlue,
		{Name: "purple", Label: "Purple", Primary: "#764BA2", Secondary: "#9D6FE0", Accent: "#F093FB", Text: "#EFE6F7", Muted: "#6B5A80"},
		{Name: "pink", Label: "Pink", Primary: "#F5576C", Secondary: "#F093FB", Accent: "#FFB3C6", Text: "#FBE9EE", Muted: "#8A5C68"},
		{Name: "green", Label: "Green", Primary: "#11998E", Secondary: "#38EF7D", Accent: "#A8FF78", Text: "#E6F7EE", Muted: "#4F7A66"},
		{Name: "orange", Label: "Orange", Primary: "#F7971E", Secondary: "#FFD200", Accent: "#FFE29F", Text: "#FBF1E2", Muted: "#8A7352"},
		{Name: "dark", Label: "Dark", Primary: "#434343", Secondary: "#6A6A6A", Accent: "#BBBBBB", Text: "#E0E0E0", Muted: "#5A5A5A"},
	}
}

// Registry is the ordered set of themes the preference store validates against.
type Registry struct {
	themes []Theme
}

func NewRegistry(themes ...Theme) *Registry {
	r := &Registry{}
	for _, th := range themes {
		r.Register(th)
	}
	return r
}

// Register adds th, replacing any theme with the same name in place.
func (r *Registry) Register(th Theme) {
	if i := slices.IndexFunc(r.themes, func(t Theme) bool { return t.Name == th.Name }); i >= 0 {
		r.themes[i] = th
		return
	}
	r.themes = append(r.themes, th)
}

func (r *Registry) Lookup(name string) (Theme, bool) {
	for _, th := range r.themes {
		if th.Name == name {
			return th, true
		}
	}
	return Theme{}, false
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.themes))
	for i, th := range r.themes {
		names[i] = th.Name
	}
	return names
}

// All returns the themes in registration order.
func (r *Registry) All() []Theme {
	return slices.Clone(r.themes)
}
