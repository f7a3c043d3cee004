// SPDX-License-Identifier: MIT

package layout

// Group is one category and the predictor indices that carry it.
type Group struct {
	Label   string
	Indices []int // ascending
}

// GroupByCategory partitions the indices of labels by equal value.
// Groups come in order of first appearance; every index lands in exactly
// one group. Nil or empty input yields an empty result.
//
// Complexity: O(n).
func GroupByCategory(labels []string) []Group {
	groups := make([]Group, 0)
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		g, ok := pos[l]
		if !ok {
			g = len(groups)
			pos[l] = g
			groups = append(groups, Group{Label: l})
		}
		groups[g].Indices = append(groups[g].Indices, i)
	}
	return groups
}
