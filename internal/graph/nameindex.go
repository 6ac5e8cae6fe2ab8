package graph

import (
	"github.com/cespare/xxhash/v2"

	"github.com/okdaichi/roadmap/internal/arena"
)

// nameIndex maps a city name to a CityRef. It is a direct port of
// original_source/src/trie.c: a 16-ary trie walking two nibbles per
// input byte (high nibble at even depths, low nibble at odd depths),
// which amounts to a 256-ary trie over bytes implemented with 16-way
// fan-out nodes (§4.2).
type nameIndex struct {
	root *trieNode
	// fingerprint is an xxhash-based running digest of the index's
	// (name, city) contents, cheap to compare in tests asserting that a
	// failed operation left the index byte-identical (§8) without
	// walking the whole trie.
	fingerprint uint64
}

type trieNode struct {
	children [16]*trieNode
	city     CityRef
	has      bool
}

func newNameIndex() *nameIndex {
	return &nameIndex{root: &trieNode{}}
}

func nibbleAt(name string, depth int) byte {
	b := name[depth/2]
	if depth%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// find returns the city stored under name, if any.
func (idx *nameIndex) find(name string) (CityRef, bool) {
	n := idx.root
	total := 2 * len(name)
	for depth := 0; depth < total; depth++ {
		child := n.children[nibbleAt(name, depth)]
		if child == nil {
			return NoCity, false
		}
		n = child
	}
	if !n.has {
		return NoCity, false
	}
	return n.city, true
}

// insert adds a single (name, city) pair. It reserves every node it
// will need from budget before mutating the trie, so a failed
// reservation leaves the index untouched.
func (idx *nameIndex) insert(budget *arena.Budget, name string, ref CityRef) error {
	if _, ok := idx.find(name); ok {
		return errAlreadyExists
	}
	total := 2 * len(name)
	cur := idx.root
	depth := 0
	for depth < total {
		child := cur.children[nibbleAt(name, depth)]
		if child == nil {
			break
		}
		cur = child
		depth++
	}
	need := int64(total - depth)
	if !budget.Reserve(need) {
		return errOutOfMemory
	}
	for ; depth < total; depth++ {
		child := &trieNode{}
		cur.children[nibbleAt(name, depth)] = child
		cur = child
	}
	cur.city = ref
	cur.has = true
	idx.fingerprint ^= hashName(name, ref)
	return nil
}

// bulkInsert inserts each (names[i], refs[i]) pair not already present,
// pre-reserving every node allocation the whole batch will need so the
// operation either fully succeeds or reports out-of-memory with no
// partial visible mutation (§4.2).
func (idx *nameIndex) bulkInsert(budget *arena.Budget, names []string, refs []CityRef) error {
	type plannedEdge struct {
		parent *trieNode
		nibble byte
		node   *trieNode
	}
	var planned []plannedEdge
	overlay := make(map[*trieNode]map[byte]*trieNode)

	lookupChild := func(n *trieNode, nib byte) *trieNode {
		if child, ok := overlay[n][nib]; ok {
			return child
		}
		return n.children[nib]
	}

	leaves := make([]*trieNode, len(names))
	var needed int64
	for i, name := range names {
		if _, ok := idx.find(name); ok {
			continue
		}
		cur := idx.root
		total := 2 * len(name)
		for depth := 0; depth < total; depth++ {
			nib := nibbleAt(name, depth)
			child := lookupChild(cur, nib)
			if child == nil {
				child = &trieNode{}
				if overlay[cur] == nil {
					overlay[cur] = make(map[byte]*trieNode)
				}
				overlay[cur][nib] = child
				planned = append(planned, plannedEdge{parent: cur, nibble: nib, node: child})
				needed++
			}
			cur = child
		}
		leaves[i] = cur
	}

	if !budget.Reserve(needed) {
		return errOutOfMemory
	}

	for _, e := range planned {
		e.parent.children[e.nibble] = e.node
	}
	for i, leaf := range leaves {
		if leaf == nil {
			continue
		}
		leaf.city = refs[i]
		leaf.has = true
		idx.fingerprint ^= hashName(names[i], refs[i])
	}
	return nil
}

func hashName(name string, ref CityRef) uint64 {
	return xxhash.Sum64String(name) ^ (uint64(ref)*0x9E3779B97F4A7C15 + 1)
}
