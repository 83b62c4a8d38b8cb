package entities

// Concept is a logical UI element (e.g. "Login button") together with the
// ordered list of selectors that may locate it. Order encodes priority: the
// first selector that resolves to a visible element wins.
type Concept struct {
	Name      string   `json:"name" yaml:"name"`
	Selectors []string `json:"selectors" yaml:"selectors"`
}

// NewConcept - creates a concept with its own copy of the selectors
func NewConcept(name string, selectors ...string) Concept {
	sels := make([]string, len(selectors))
	copy(sels, selectors)
	return Concept{Name: name, Selectors: sels}
}

// IsEmpty reports whether the concept has no selectors to try.
func (c Concept) IsEmpty() bool {
	return len(c.Selectors) == 0
}
