// Package tsp - minimum-spanning-tree construction for MSTApprox.
//
// primMST grows a spanning tree over the complete distance graph from
// vertex 0, using a min-heap of frontier edges; preorderWalk linearizes the
// tree depth-first with children visited in ascending index order. Both
// halves are deterministic: heap ties break on the smaller target index.
//
// Complexity: O(n² log n) time (each joined vertex pushes up to n-1
// frontier edges), O(n²) heap memory worst case.
package tsp

import "container/heap"

// mstEdge is a frontier candidate: tree vertex from, outside vertex to.
type mstEdge struct {
	from   int
	to     int
	weight float64
}

// edgePQ implements heap.Interface over mstEdge, ordered by ascending
// weight with the smaller target index breaking ties.
type edgePQ []mstEdge

// Len returns the number of candidate edges.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by target index for reproducible ties.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight == pq[j].weight {
		return pq[i].to < pq[j].to
	}

	return pq[i].weight < pq[j].weight
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate edge. Called by heap.Push.
// Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(mstEdge)) }

// Pop removes and returns the minimal candidate. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// primMST returns the spanning tree of the instance in parent form, rooted
// at vertex 0 (parent[0] == -1).
//
// Steps:
//  1. Seed the heap with every edge leaving the root.
//  2. Pop the lightest frontier edge; skip it if the target already joined.
//  3. Join the target, record its parent, push its edges to the rest.
//  4. Stop once all n vertices joined (the complete graph guarantees this).
//
// Complexity: O(n² log n) time, O(n²) space.
func primMST(inst *instance) []int {
	var n = inst.n
	parent := make([]int, n)
	parent[0] = -1
	if n <= 1 {
		return parent
	}

	inTree := make([]bool, n)
	inTree[0] = true

	pq := &edgePQ{}
	heap.Init(pq)

	var v int
	for v = 1; v < n; v++ {
		heap.Push(pq, mstEdge{from: 0, to: v, weight: inst.at(0, v)})
	}

	var (
		joined = 1
		e      mstEdge
		u      int
	)
	for pq.Len() > 0 && joined < n {
		e = heap.Pop(pq).(mstEdge)
		if inTree[e.to] {
			continue
		}
		inTree[e.to] = true
		parent[e.to] = e.from
		joined++

		for u = 0; u < n; u++ {
			if !inTree[u] {
				heap.Push(pq, mstEdge{from: e.to, to: u, weight: inst.at(e.to, u)})
			}
		}
	}

	return parent
}

// preorderWalk returns the depth-first preorder of a parent-form tree
// rooted at 0, visiting children in ascending index order. The preorder
// visits every vertex exactly once, so it doubles as the shortcut tour.
//
// Complexity: O(n) time, O(n) space.
func preorderWalk(parent []int) []int {
	var n = len(parent)
	children := make([][]int, n)

	// v scans upward, so each children list arrives already ascending.
	var v int
	for v = 1; v < n; v++ {
		children[parent[v]] = append(children[parent[v]], v)
	}

	// Explicit stack; children pushed in reverse so the smallest pops first.
	order := make([]int, 0, n)
	stack := make([]int, 0, n)
	stack = append(stack, 0)

	var (
		cur int
		i   int
	)
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		for i = len(children[cur]) - 1; i >= 0; i-- {
			stack = append(stack, children[cur][i])
		}
	}

	return order
}
