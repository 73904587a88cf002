package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/housecall/medigraph/internal/core/model"
)

// ErrUnknownVertex is returned by any query naming an identifier that was
// never inserted into the graph.
var ErrUnknownVertex = errors.New("unknown vertex")

type vertex struct {
	item       string
	kind       model.VertexKind
	neighbours map[string]float64 // adjacent item -> edge weight
}

// Graph is an undirected weighted graph over symptom and disease vertices.
// Edges are stored symmetrically: if A neighbours B with weight w, B
// neighbours A with the same w. The graph is bipartite by loader convention
// only; the structure itself does not reject symptom-symptom edges.
//
// A Graph is built once at load time and must not be mutated afterwards;
// queries are safe for concurrent readers on that basis.
type Graph struct {
	vertices map[string]*vertex
}

func New() *Graph {
	return &Graph{vertices: make(map[string]*vertex)}
}

// AddVertex inserts a new vertex with no neighbours. Re-adding an existing
// item would orphan its edges, so the loader checks HasVertex first.
func (g *Graph) AddVertex(item string, kind model.VertexKind) {
	g.vertices[item] = &vertex{
		item:       item,
		kind:       kind,
		neighbours: make(map[string]float64),
	}
}

// AddEdge connects item1 and item2 with weight 1/severity, symmetrically.
// Higher severity means smaller weight, pulling the pair closer in
// shortest-path terms.
func (g *Graph) AddEdge(item1, item2 string, severity int) error {
	if item1 == item2 {
		return fmt.Errorf("self edge on %q", item1)
	}
	if severity <= 0 {
		return fmt.Errorf("severity must be positive, got %d", severity)
	}
	v1, ok1 := g.vertices[item1]
	v2, ok2 := g.vertices[item2]
	if !ok1 {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, item1)
	}
	if !ok2 {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, item2)
	}

	w := 1.0 / float64(severity)
	v1.neighbours[item2] = w
	v2.neighbours[item1] = w
	return nil
}

// Adjacent reports whether item1 and item2 share an edge. Missing items
// yield false, not an error.
func (g *Graph) Adjacent(item1, item2 string) bool {
	v, ok := g.vertices[item1]
	if !ok {
		return false
	}
	_, ok = v.neighbours[item2]
	return ok
}

// Neighbours returns the identifiers adjacent to item, sorted.
func (g *Graph) Neighbours(item string) ([]string, error) {
	v, ok := g.vertices[item]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, item)
	}
	out := make([]string, 0, len(v.neighbours))
	for n := range v.neighbours {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func (g *Graph) KindOf(item string) (model.VertexKind, error) {
	v, ok := g.vertices[item]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVertex, item)
	}
	return v.kind, nil
}

// Weight returns the stored weight of the edge between two vertices, or 0
// when no such edge exists. Callers that need to distinguish a missing edge
// combine this with Adjacent.
func (g *Graph) Weight(item1, item2 string) float64 {
	v, ok := g.vertices[item1]
	if !ok {
		return 0
	}
	return v.neighbours[item2]
}

// ShortestPath returns one shortest path from start to end inclusive,
// measured in hop count, or an empty slice when either endpoint is missing
// or no path exists. Neighbours are expanded in lexicographic order, so
// among equal-length candidates the lexicographically first path wins;
// callers should still only rely on length and total weight.
func (g *Graph) ShortestPath(start, end string) []string {
	if _, ok := g.vertices[start]; !ok {
		return nil
	}
	if _, ok := g.vertices[end]; !ok {
		return nil
	}

	queue := [][]string{{start}}
	visited := make(map[string]struct{})

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		node := path[len(path)-1]

		if node == end {
			return path
		}
		if _, seen := visited[node]; seen {
			continue
		}
		visited[node] = struct{}{}

		neighbours, _ := g.Neighbours(node)
		for _, n := range neighbours {
			next := make([]string, len(path), len(path)+1)
			copy(next, path)
			queue = append(queue, append(next, n))
		}
	}

	return nil
}

// PathScore sums the edge weights along consecutive pairs of path. Every
// consecutive pair must be adjacent; a pair with no edge contributes 0.
func (g *Graph) PathScore(path []string) float64 {
	score := 0.0
	for i := 0; i < len(path)-1; i++ {
		score += g.Weight(path[i], path[i+1])
	}
	return score
}

func (g *Graph) HasVertex(item string) bool {
	_, ok := g.vertices[item]
	return ok
}

// Vertices returns every vertex identifier currently stored, sorted.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for item := range g.vertices {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
