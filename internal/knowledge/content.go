package knowledge

// Concept is one teachable idea within a subject.
type Concept struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// PoolExercise is a pre-authored exercise from a subject file.
type PoolExercise struct {
	Concept string `json:"concept"`
	Level   string `json:"level"`
	Prompt  string `json:"prompt"`
	Answer  string `json:"answer"`
}

// Content is the parsed form of <dataDir>/<subject>.json. It is never
// modified after load.
type Content struct {
	Concepts  []Concept      `json:"concepts"`
	Exercises []PoolExercise `json:"exercises"`
	Image     string         `json:"image,omitempty"`
}

// ConceptNames returns the concept names in file order.
func (c *Content) ConceptNames() []string {
	names := make([]string, 0, len(c.Concepts))
	for _, concept := range c.Concepts {
		names = append(names, concept.Name)
	}
	return names
}

// Concept returns the first concept with the given name.
func (c *Content) Concept(name string) (Concept, bool) {
	for _, concept := range c.Concepts {
		if concept.Name == name {
			return concept, true
		}
	}
	return Concept{}, false
}

// ExercisesFor returns pool exercises matching both concept and level
// exactly, in file order.
func (c *Content) ExercisesFor(concept, level string) []PoolExercise {
	var out []PoolExercise
	for _, ex := range c.Exercises {
		if ex.Concept == concept && ex.Level == level {
			out = append(out, ex)
		}
	}
	return out
}
