package model

// Disease is a single diagnosable condition loaded from the source tables.
// Records are built once by the loader and never mutated afterwards.
type Disease struct {
	Name        string              `json:"name"`
	Symptoms    map[string]struct{} `json:"-"`
	Advice      []string            `json:"advice"`
	Description string              `json:"description,omitempty"`
}

func NewDisease(name string) *Disease {
	return &Disease{
		Name:     name,
		Symptoms: make(map[string]struct{}),
	}
}

// AddSymptoms unions the given symptom identifiers into the disease's set.
// The source dataset repeats a disease across rows with different symptom
// combinations, so loading accumulates rather than overwrites.
func (d *Disease) AddSymptoms(symptoms ...string) {
	for _, s := range symptoms {
		d.Symptoms[s] = struct{}{}
	}
}

func (d *Disease) HasSymptom(symptom string) bool {
	_, ok := d.Symptoms[symptom]
	return ok
}
