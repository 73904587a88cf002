package model

// VertexKind tags a graph vertex as one side of the bipartite
// symptom/disease split.
type VertexKind string

const (
	KindSymptom VertexKind = "symptom"
	KindDisease VertexKind = "disease"
)
