package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/housecall/medigraph/internal/core/graph"
	"github.com/housecall/medigraph/internal/core/model"
	"github.com/housecall/medigraph/internal/core/scoring"
)

// ErrUnknownDisease is returned by Disease for names absent from the
// loaded lookup table.
var ErrUnknownDisease = errors.New("unknown disease")

// Snapshot is one consistent view of the loaded data: the diagnosis graph,
// the disease lookup table, and the valid symptom identifiers. The loader
// builds it; nothing mutates it afterwards.
type Snapshot struct {
	Graph    *graph.Graph
	Diseases map[string]*model.Disease
	Symptoms []string
}

// NewSnapshot sorts the symptom list so callers get stable ordering.
func NewSnapshot(g *graph.Graph, diseases map[string]*model.Disease, symptoms []string) *Snapshot {
	sorted := make([]string, len(symptoms))
	copy(sorted, symptoms)
	sort.Strings(sorted)
	return &Snapshot{Graph: g, Diseases: diseases, Symptoms: sorted}
}

// Engine is the read side of the diagnosis service. It holds the current
// snapshot behind an atomic pointer so a reload swaps in as a single unit;
// in-flight calls keep the snapshot they started with and never observe a
// partially built graph.
type Engine struct {
	snapshot atomic.Pointer[Snapshot]
}

func NewEngine(snap *Snapshot) *Engine {
	e := &Engine{}
	e.snapshot.Store(snap)
	return e
}

// Swap atomically replaces the current snapshot, e.g. after the data files
// changed on disk.
func (e *Engine) Swap(snap *Snapshot) {
	e.snapshot.Store(snap)
}

func (e *Engine) current() *Snapshot {
	return e.snapshot.Load()
}

// Diagnose scores the reported symptoms against the current snapshot and
// returns the disease-likelihood distribution.
func (e *Engine) Diagnose(symptoms []string) (map[string]float64, error) {
	return scoring.Score(e.current().Graph, symptoms)
}

// Disease returns the record for name, for description/advice drill-down.
func (e *Engine) Disease(name string) (*model.Disease, error) {
	d, ok := e.current().Diseases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisease, name)
	}
	return d, nil
}

// Symptoms returns every known symptom identifier, sorted.
func (e *Engine) Symptoms() []string {
	return e.current().Symptoms
}

// SearchSymptoms returns the known symptoms containing query,
// case-insensitively. An empty query returns the full list.
func (e *Engine) SearchSymptoms(query string) []string {
	symptoms := e.current().Symptoms
	if query == "" {
		return symptoms
	}
	q := strings.ToLower(query)
	var out []string
	for _, s := range symptoms {
		if strings.Contains(strings.ToLower(s), q) {
			out = append(out, s)
		}
	}
	return out
}
