// Package scoring turns graph distances between reported symptoms into a
// normalized disease-likelihood distribution.
package scoring

import (
	"errors"
	"fmt"

	"github.com/housecall/medigraph/internal/core/graph"
	"github.com/housecall/medigraph/internal/core/model"
)

// ErrInvalidInput is returned when the symptom list is empty or names a
// symptom the graph does not contain.
var ErrInvalidInput = errors.New("invalid symptom input")

// Score returns the likelihood percentage of each candidate disease given
// the reported symptoms. Percentages sum to 100 across the returned map;
// diseases with no connection to any input symptom are absent, not zero.
//
// Raw scores accumulate edge weights (1/severity), so low raw scores mean
// strong links; inversion before normalization makes those dominate.
func Score(g *graph.Graph, symptoms []string) (map[string]float64, error) {
	if len(symptoms) == 0 {
		return nil, fmt.Errorf("%w: no symptoms given", ErrInvalidInput)
	}
	for _, s := range symptoms {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: unknown symptom %q", ErrInvalidInput, s)
		}
		kind, err := g.KindOf(s)
		if err != nil {
			return nil, err
		}
		// Disease names share the identifier namespace with symptoms, so
		// existence alone is not enough.
		if kind != model.KindSymptom {
			return nil, fmt.Errorf("%w: %q is not a symptom", ErrInvalidInput, s)
		}
	}

	raw := make(map[string]float64)

	if len(symptoms) == 1 {
		neighbours, err := g.Neighbours(symptoms[0])
		if err != nil {
			return nil, err
		}
		for _, n := range neighbours {
			raw[n] = g.Weight(n, symptoms[0])
		}
	} else {
		for _, pair := range pairs(symptoms) {
			path := g.ShortestPath(pair[0], pair[1])
			if len(path) == 0 {
				continue
			}
			pathScore := g.PathScore(path)
			for _, item := range path {
				kind, err := g.KindOf(item)
				if err != nil {
					return nil, err
				}
				if kind == model.KindDisease {
					raw[item] += pathScore
				}
			}
		}
	}

	// A zero raw score can only come from a malformed graph; filter it
	// rather than divide by it.
	inverted := make(map[string]float64, len(raw))
	total := 0.0
	for disease, score := range raw {
		if score == 0 {
			continue
		}
		inv := 1 / score
		inverted[disease] = inv
		total += inv
	}

	result := make(map[string]float64, len(inverted))
	for disease, score := range inverted {
		result[disease] = score / total * 100
	}
	return result, nil
}

// pairs returns every unordered pair of distinct indices from items,
// preserving input order within each pair.
func pairs(items []string) [][2]string {
	var out [][2]string
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			out = append(out, [2]string{items[i], items[j]})
		}
	}
	return out
}
