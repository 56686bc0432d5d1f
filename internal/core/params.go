package core

// Parameter describes a single tunable value exposed by a renderer.
type Parameter struct {
	Key         string
	Value       string
	Description string
}

// ParameterSnapshot captures the current set of tunables for display.
type ParameterSnapshot struct {
	Name   string
	Params []Parameter
}

// Lookup returns the value recorded under key.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
