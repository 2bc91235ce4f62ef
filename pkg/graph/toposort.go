package graph

import "sort"

// OrderGroups returns the indices of the given block groups in
// topological order over inter-group signal edges (Kahn's algorithm).
// When a cycle prevents a full topological order, the remaining groups
// are appended in ascending order of their smallest block number, so
// the result always covers every group and always terminates.
func OrderGroups(groups [][]string, adj Adjacency, numberOf map[string]int) []int {
	groupOf := make(map[string]int)
	for gi, members := range groups {
		for _, id := range members {
			groupOf[id] = gi
		}
	}

	// Inter-group edges, deduplicated
	successors := make([]map[int]bool, len(groups))
	inDegree := make([]int, len(groups))
	for gi := range groups {
		successors[gi] = make(map[int]bool)
	}
	for src, targets := range adj {
		sg, ok := groupOf[src]
		if !ok {
			continue
		}
		for _, dst := range targets {
			dg, ok := groupOf[dst]
			if !ok || dg == sg || successors[sg][dg] {
				continue
			}
			successors[sg][dg] = true
			inDegree[dg]++
		}
	}

	minNumber := make([]int, len(groups))
	for gi, members := range groups {
		minNumber[gi] = numberOf[members[0]]
		for _, id := range members[1:] {
			if numberOf[id] < minNumber[gi] {
				minNumber[gi] = numberOf[id]
			}
		}
	}
	byNumber := func(a, b int) bool { return minNumber[a] < minNumber[b] }

	queue := make([]int, 0, len(groups))
	for gi := range groups {
		if inDegree[gi] == 0 {
			queue = append(queue, gi)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return byNumber(queue[i], queue[j]) })

	ordered := make([]int, 0, len(groups))
	placed := make([]bool, len(groups))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		ordered = append(ordered, current)
		placed[current] = true

		ready := make([]int, 0)
		for next := range successors[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
		sort.Slice(ready, func(i, j int) bool { return byNumber(ready[i], ready[j]) })
		queue = append(queue, ready...)
	}

	// Cycle residue: fall back to block-number order
	if len(ordered) < len(groups) {
		rest := make([]int, 0, len(groups)-len(ordered))
		for gi := range groups {
			if !placed[gi] {
				rest = append(rest, gi)
			}
		}
		sort.Slice(rest, func(i, j int) bool { return byNumber(rest[i], rest[j]) })
		ordered = append(ordered, rest...)
	}

	return ordered
}
