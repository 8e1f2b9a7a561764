package isograph

import (
	"iter"

	"github.com/katalvlaran/genramsey/graph"
)

// Service bundles AllGraphs and Dedupe behind methods so the search engine
// can take it as an injected collaborator.
type Service struct{}

// Default is the Service used when no other is supplied.
var Default Service

// AllGraphs calls the package-level AllGraphs.
func (Service) AllGraphs(n int) (iter.Seq[*graph.Graph], error) { return AllGraphs(n) }

// Dedupe calls the package-level Dedupe.
func (Service) Dedupe(gs []*graph.Graph) []*graph.Graph { return Dedupe(gs) }
