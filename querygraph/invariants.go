package querygraph

import "github.com/vuthanhtung2412/rankgraph/apperror"

// visitState is the White/Gray/Black coloring used for cycle
// detection and topological sort.
type visitState uint8

const (
	white visitState = iota
	gray
	black
)

// TopologicalOrder returns the non-Deleted node indices in an order
// consistent with every edge: edges only go forward, so the graph is
// always topologically sortable. It returns an Internal error if a
// cycle is found, which would indicate a construction bug rather than
// anything a caller can fix.
func (g *QueryGraph) TopologicalOrder() ([]int, error) {
	state := make([]visitState, len(g.Nodes))
	order := make([]int, 0, len(g.Nodes))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case gray:
			return apperror.Internalf("query graph: cycle detected at node %d", i)
		case black:
			return nil
		}
		state[i] = gray
		for _, j := range g.successors[i] {
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = black
		order = append(order, i)
		return nil
	}

	for i := range g.Nodes {
		if g.Nodes[i].IsDeleted() {
			continue
		}
		if state[i] == white {
			if err := visit(i); err != nil {
				return nil, err
			}
		}
	}

	// visit appends in post-order; reverse for a valid topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// IsAcyclic reports whether the graph has no cycles among live nodes.
func (g *QueryGraph) IsAcyclic() bool {
	_, err := g.TopologicalOrder()
	return err == nil
}
