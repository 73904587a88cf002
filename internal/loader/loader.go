// Package loader builds an engine snapshot from the four source tables:
// symptom severities, disease-symptom associations, disease descriptions,
// and precaution lists.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/housecall/medigraph/internal/core"
	"github.com/housecall/medigraph/internal/core/graph"
	"github.com/housecall/medigraph/internal/core/model"
)

// Paths names the four CSV files the snapshot is built from.
type Paths struct {
	Severity    string
	Dataset     string
	Description string
	Precaution  string
}

// Load reads the source tables and returns a fully populated snapshot:
// graph vertices tagged symptom/disease, symmetric weighted edges, and the
// disease lookup table. The engine never touches the files itself.
func Load(p Paths) (*core.Snapshot, error) {
	severities, err := loadSeverities(p.Severity)
	if err != nil {
		return nil, fmt.Errorf("loading severities: %w", err)
	}

	diseases, err := loadDiseases(p.Dataset)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	if err := loadDescriptions(p.Description, diseases); err != nil {
		return nil, fmt.Errorf("loading descriptions: %w", err)
	}
	if err := loadPrecautions(p.Precaution, diseases); err != nil {
		return nil, fmt.Errorf("loading precautions: %w", err)
	}

	g := graph.New()
	for name, disease := range diseases {
		if !g.HasVertex(name) {
			g.AddVertex(name, model.KindDisease)
		}
		for symptom := range disease.Symptoms {
			severity, ok := severities[symptom]
			if !ok {
				return nil, fmt.Errorf("dataset symptom %q has no severity entry", symptom)
			}
			if !g.HasVertex(symptom) {
				g.AddVertex(symptom, model.KindSymptom)
			}
			if err := g.AddEdge(name, symptom, severity); err != nil {
				return nil, fmt.Errorf("edge %s-%s: %w", name, symptom, err)
			}
		}
	}

	symptoms := make([]string, 0, len(severities))
	for s := range severities {
		symptoms = append(symptoms, s)
	}

	return core.NewSnapshot(g, diseases, symptoms), nil
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // source rows are ragged

	// Skip the header row.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func loadSeverities(path string) (map[string]int, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	severities := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		symptom := strings.TrimSpace(row[0])
		severity, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("symptom %q: bad severity %q", symptom, row[1])
		}
		if severity <= 0 {
			return nil, fmt.Errorf("symptom %q: severity must be positive, got %d", symptom, severity)
		}
		severities[symptom] = severity
	}
	return severities, nil
}

func loadDiseases(path string) (map[string]*model.Disease, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	diseases := make(map[string]*model.Disease)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		d, ok := diseases[name]
		if !ok {
			d = model.NewDisease(name)
			diseases[name] = d
		}
		for _, field := range row[1:] {
			if symptom := strings.TrimSpace(field); symptom != "" {
				d.AddSymptoms(symptom)
			}
		}
	}
	return diseases, nil
}

func loadDescriptions(path string, diseases map[string]*model.Disease) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		// Rows for diseases absent from the dataset are ignored.
		if d, ok := diseases[strings.TrimSpace(row[0])]; ok {
			d.Description = strings.TrimSpace(row[1])
		}
	}
	return nil
}

func loadPrecautions(path string, diseases map[string]*model.Disease) error {
	rows, err := readRows(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		d, ok := diseases[strings.TrimSpace(row[0])]
		if !ok {
			continue
		}
		for _, field := range row[1:] {
			if advice := strings.TrimSpace(field); advice != "" {
				d.Advice = append(d.Advice, advice)
			}
		}
	}
	return nil
}
