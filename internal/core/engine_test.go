package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/housecall/medigraph/internal/core/graph"
	"github.com/housecall/medigraph/internal/core/model"
	"github.com/housecall/medigraph/internal/core/scoring"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	g := graph.New()
	g.AddVertex("headache", model.KindSymptom)
	g.AddVertex("fever", model.KindSymptom)
	g.AddVertex("Flu", model.KindDisease)
	g.AddVertex("Migraine", model.KindDisease)
	assert.NoError(t, g.AddEdge("Flu", "headache", 3))
	assert.NoError(t, g.AddEdge("Flu", "fever", 5))
	assert.NoError(t, g.AddEdge("Migraine", "headache", 2))

	flu := model.NewDisease("Flu")
	flu.AddSymptoms("headache", "fever")
	flu.Description = "A viral infection."
	flu.Advice = []string{"rest", "drink fluids"}

	migraine := model.NewDisease("Migraine")
	migraine.AddSymptoms("headache")

	return NewSnapshot(g,
		map[string]*model.Disease{"Flu": flu, "Migraine": migraine},
		[]string{"headache", "fever"})
}

func TestEngine_Diagnose(t *testing.T) {
	e := NewEngine(testSnapshot(t))

	result, err := e.Diagnose([]string{"headache"})
	assert.NoError(t, err)
	assert.Contains(t, result, "Flu")
	assert.Contains(t, result, "Migraine")
	assert.Greater(t, result["Migraine"], result["Flu"])

	_, err = e.Diagnose(nil)
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)

	_, err = e.Diagnose([]string{"nonexistent"})
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)
}

func TestEngine_DiagnoseRejectsDiseaseName(t *testing.T) {
	e := NewEngine(testSnapshot(t))

	_, err := e.Diagnose([]string{"Flu"})
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)

	_, err = e.Diagnose([]string{"headache", "Migraine"})
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)
}

func TestEngine_Disease(t *testing.T) {
	e := NewEngine(testSnapshot(t))

	d, err := e.Disease("Flu")
	assert.NoError(t, err)
	assert.Equal(t, "A viral infection.", d.Description)
	assert.Equal(t, []string{"rest", "drink fluids"}, d.Advice)
	assert.True(t, d.HasSymptom("fever"))

	_, err = e.Disease("Cold")
	assert.ErrorIs(t, err, ErrUnknownDisease)
}

func TestEngine_SymptomsSorted(t *testing.T) {
	e := NewEngine(testSnapshot(t))
	assert.Equal(t, []string{"fever", "headache"}, e.Symptoms())
}

func TestEngine_SearchSymptoms(t *testing.T) {
	e := NewEngine(testSnapshot(t))

	assert.Equal(t, []string{"fever", "headache"}, e.SearchSymptoms(""))
	assert.Equal(t, []string{"fever"}, e.SearchSymptoms("FeV"))
	assert.Equal(t, []string{"headache"}, e.SearchSymptoms("ache"))
	assert.Empty(t, e.SearchSymptoms("rash"))
}

func TestEngine_SwapReplacesSnapshot(t *testing.T) {
	e := NewEngine(testSnapshot(t))

	g := graph.New()
	g.AddVertex("rash", model.KindSymptom)
	g.AddVertex("Measles", model.KindDisease)
	assert.NoError(t, g.AddEdge("Measles", "rash", 4))

	e.Swap(NewSnapshot(g,
		map[string]*model.Disease{"Measles": model.NewDisease("Measles")},
		[]string{"rash"}))

	assert.Equal(t, []string{"rash"}, e.Symptoms())

	result, err := e.Diagnose([]string{"rash"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]float64{"Measles": 100.0}, result)

	// Symptoms from the replaced snapshot are gone.
	_, err = e.Diagnose([]string{"headache"})
	assert.ErrorIs(t, err, scoring.ErrInvalidInput)
}
