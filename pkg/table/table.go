package table

// tableSize is 2^16, matching the uint16 hash space used below.
const tableSize = 65536

// PrefixTable stores values under byte-slice keys and answers prefix
// queries: given an input, which stored keys are prefixes of it?
//
// A fixed 64KiB marker array is used to prune lookups: each prefix of every
// inserted key marks one slot, so a walk over an input can stop as soon as
// the current prefix hashes to an unmarked slot. The hash shifts two bits
// per byte, which keeps the first eight key bytes collision-free; longer
// keys may collide and are disambiguated by the exact-match map.
type PrefixTable[T any] struct {
	marks [tableSize]byte
	elems map[string]T
}

const (
	// none: no inserted key has a prefix hashing here.
	none = iota
	// prefix: some key passes through here, but no key ends here.
	prefix
	// elem: a complete key hashes here; check the elems map.
	elem
)

// New returns an empty PrefixTable.
func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

// Insert stores v under key, replacing any previous value for the same key.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	var h uint16
	for _, b := range key {
		h = (h << 2) + uint16(b)
		// never downgrade a slot already marked as a full key
		t.marks[h] = max(t.marks[h], prefix)
	}
	t.marks[h] = elem
	t.elems[string(key)] = v
}

// Get returns the value stored under the exact key.
func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Walk calls onMatch for every stored key that is a prefix of input,
// shortest first. Traversal stops early when onMatch returns true or when
// no stored key can extend the current prefix.
func (t *PrefixTable[T]) Walk(input []byte, onMatch func(T) bool) {
	var h uint16
	for i, b := range input {
		h = (h << 2) + uint16(b)

		mark := t.marks[h]
		if mark == none {
			return
		}

		if mark == elem {
			v, ok := t.elems[string(input[:i+1])]
			if ok && onMatch(v) {
				return
			}
		}
	}
}

// Longest returns the value whose key is the longest stored prefix of input.
func (t *PrefixTable[T]) Longest(input []byte) (T, bool) {
	var (
		best  T
		found bool
	)
	t.Walk(input, func(v T) bool {
		best = v
		found = true
		return false
	})
	return best, found
}

// Size returns the number of keys stored in the table.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}
