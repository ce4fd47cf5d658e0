package core

import "sort"

// bvhStackDepth bounds the explicit traversal stack. A centroid-median
// build keeps the tree within ceil(log2 N) + 1 levels, so 64 levels is
// sufficient for any primitive count a single render will hold.
const bvhStackDepth = 64

// BVHNode is one entry of the flattened bounding-volume hierarchy. A node
// is a leaf iff PrimitiveIndex >= 0; leaves ignore Left/Right.
type BVHNode struct {
	Left, Right    int // child node indices, -1 for leaves
	PrimitiveIndex int // index into the scene's primitive list, -1 for internal nodes
	Box            AABB
}

// BVH is a flat, contiguous bounding-volume hierarchy built once over a
// scene's immutable primitives and traversed many times per render.
type BVH struct {
	Nodes     []BVHNode
	RootIndex int // -1 when the BVH has no primitives
}

type bvhEntry struct {
	index    int
	box      AABB
	centroid Vec3
}

// BuildBVH builds a flat BVH over primitives using top-down centroid
// median splitting on the largest-extent axis. primitives' order is not
// mutated; the builder sorts its own working copy of entries.
func BuildBVH(primitives []Primitive) *BVH {
	if len(primitives) == 0 {
		return &BVH{RootIndex: -1}
	}

	entries := make([]bvhEntry, len(primitives))
	for i, p := range primitives {
		box := p.Bounds()
		entries[i] = bvhEntry{index: i, box: box, centroid: box.Center()}
	}

	bvh := &BVH{Nodes: make([]BVHNode, 0, 2*len(primitives))}
	bvh.RootIndex = bvh.build(entries, 0, len(entries))
	return bvh
}

// build recursively constructs the subtree over entries[start:end) and
// returns the index of the node it emitted. The parent's slot is reserved
// before recursing into children, so parent indices always precede their
// children in Nodes.
func (bvh *BVH) build(entries []bvhEntry, start, end int) int {
	nodeIndex := len(bvh.Nodes)
	bvh.Nodes = append(bvh.Nodes, BVHNode{})

	if end-start == 1 {
		e := entries[start]
		bvh.Nodes[nodeIndex] = BVHNode{Left: -1, Right: -1, PrimitiveIndex: e.index, Box: e.box}
		return nodeIndex
	}

	bounds := entries[start].box
	for i := start + 1; i < end; i++ {
		bounds = Union(bounds, entries[i].box)
	}
	axis := bounds.LongestAxis()

	sub := entries[start:end]
	sort.SliceStable(sub, func(i, j int) bool {
		return sub[i].centroid.Component(axis) < sub[j].centroid.Component(axis)
	})

	mid := start + (end-start)/2
	leftIndex := bvh.build(entries, start, mid)
	rightIndex := bvh.build(entries, mid, end)

	bvh.Nodes[nodeIndex] = BVHNode{
		Left:           leftIndex,
		Right:          rightIndex,
		PrimitiveIndex: -1,
		Box:            Union(bvh.Nodes[leftIndex].Box, bvh.Nodes[rightIndex].Box),
	}
	return nodeIndex
}

// Hit traverses the BVH with an explicit stack, returning the closest hit
// among primitives in (tMin, tMax). primitives must be the same slice
// (and order) the BVH was built from.
func (bvh *BVH) Hit(primitives []Primitive, ray Ray, tMin, tMax float32) (HitRecord, bool) {
	if bvh.RootIndex < 0 {
		return HitRecord{}, false
	}

	var stack [bvhStackDepth]int
	sp := 0
	stack[sp] = bvh.RootIndex
	sp++

	closest := tMax
	var best HitRecord
	hitAnything := false

	for sp > 0 {
		sp--
		node := bvh.Nodes[stack[sp]]

		if !node.Box.Hit(ray, tMin, closest) {
			continue
		}

		if node.PrimitiveIndex >= 0 {
			if hit, ok := primitives[node.PrimitiveIndex].Hit(ray, tMin, closest); ok {
				hitAnything = true
				closest = hit.T
				best = hit
			}
			continue
		}

		stack[sp] = node.Right
		sp++
		stack[sp] = node.Left
		sp++
	}

	return best, hitAnything
}

// Bounds returns the bounding box of the whole tree, or the degenerate
// zero box when the BVH has no primitives.
func (bvh *BVH) Bounds() AABB {
	if bvh.RootIndex < 0 {
		return AABB{}
	}
	return bvh.Nodes[bvh.RootIndex].Box
}
