package adjacency

import "github.com/RoaringBitmap/roaring/v2"

// Components partitions the unit universe into maximal connected groups
// via breadth-first frontier expansion: pick the lowest unvisited seed,
// grow an explicit queue by unioning in neighbors of every frontier unit,
// and close the group when the frontier stops growing. Each unit is
// visited exactly once, so the traversal terminates on any finite graph.
//
// The returned slice lists components in ascending-seed order, members in
// visit order. Labelling is stable per call: the same graph always yields
// the same partition.
//
// Time:   O(N + E).
// Memory: O(N) for the visited bitmap and output.
func (g *Graph) Components() [][]int {
	visited := roaring.New()
	var comps [][]int

	for seed := 0; seed < g.n; seed++ {
		if visited.Contains(uint32(seed)) {
			continue
		}
		// BFS to collect the group
		queue := []int{seed}
		visited.Add(uint32(seed))
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			row := g.rows[u]
			if row == nil {
				continue
			}
			it := row.Iterator()
			for it.HasNext() {
				v := it.Next()
				if !visited.Contains(v) {
					visited.Add(v)
					queue = append(queue, int(v))
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentIDs labels every unit with the index of its component in
// Components() order. The result is index-aligned with the unit universe.
// Complexity: O(N + E).
func (g *Graph) ComponentIDs() []int {
	ids := make([]int, g.n)
	for gid, comp := range g.Components() {
		for _, u := range comp {
			ids[u] = gid
		}
	}
	return ids
}
