package pattern

// internKey is the canonical structural representation of a node: its kind,
// its literal byte, and the identity of its (already canonical) children.
// Pointer identity of children is sufficient because the interner only ever
// stores canonical nodes, so two keys collide exactly when the structures
// are equal.
type internKey struct {
	kind        Kind
	sym         byte
	left, right *Pattern
}

// Interner memoizes Pattern construction so that structurally equal
// subtrees share a single node. Interned patterns can be compared and
// deduplicated by pointer, which is what keeps derivative chains from
// growing without bound on adversarial input (repeated Union accumulation
// collapses once both branches are the same node).
//
// An Interner is not safe for concurrent use; each engine owns its own.
// The constructor methods assume their child arguments are canonical nodes
// from the same interner — Intern canonicalizes an arbitrary tree.
//
// Example:
//
//	in := pattern.NewInterner()
//	a1 := in.Literal('a')
//	a2 := in.Literal('a')
//	fmt.Println(a1 == a2) // true
type Interner struct {
	nodes map[internKey]*Pattern
}

// NewInterner creates an empty interner.
// The shared NoMatch and Empty leaves are canonical in every interner.
func NewInterner() *Interner {
	return &Interner{nodes: make(map[internKey]*Pattern)}
}

// Len returns the number of distinct composite nodes the interner holds.
func (in *Interner) Len() int { return len(in.nodes) }

func (in *Interner) get(key internKey) *Pattern {
	if p, ok := in.nodes[key]; ok {
		return p
	}
	p := &Pattern{kind: key.kind, sym: key.sym, left: key.left, right: key.right}
	in.nodes[key] = p
	return p
}

// NoMatch returns the canonical pattern matching no input.
func (in *Interner) NoMatch() *Pattern { return noMatch }

// Empty returns the canonical pattern matching exactly the empty input.
func (in *Interner) Empty() *Pattern { return empty }

// Literal returns the canonical literal pattern for sym.
func (in *Interner) Literal(sym byte) *Pattern {
	return in.get(internKey{kind: KindLiteral, sym: sym})
}

// Concat returns the canonical concatenation of two canonical patterns.
func (in *Interner) Concat(left, right *Pattern) *Pattern {
	return in.get(internKey{kind: KindConcat, left: left, right: right})
}

// Union returns the canonical union of two canonical patterns.
func (in *Interner) Union(left, right *Pattern) *Pattern {
	return in.get(internKey{kind: KindUnion, left: left, right: right})
}

// Repeat returns the canonical repetition of a canonical pattern.
func (in *Interner) Repeat(inner *Pattern) *Pattern {
	return in.get(internKey{kind: KindRepeat, left: inner})
}

// Intern canonicalizes an arbitrary pattern tree bottom-up and returns the
// canonical node. The input tree is not modified. After interning,
// structurally equal subtrees of the result are the same pointer.
func (in *Interner) Intern(p *Pattern) *Pattern {
	switch p.kind {
	case KindNoMatch:
		return noMatch
	case KindEmpty:
		return empty
	case KindLiteral:
		return in.Literal(p.sym)
	case KindConcat:
		return in.Concat(in.Intern(p.left), in.Intern(p.right))
	case KindUnion:
		return in.Union(in.Intern(p.left), in.Intern(p.right))
	default: // Repeat
		return in.Repeat(in.Intern(p.left))
	}
}
