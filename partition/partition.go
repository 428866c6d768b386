// Package partition implements the generic partition-refinement data
// structure behind Hopcroft-style DFA minimization: a fixed universe of
// elements held in one contiguous back buffer, sliced into
// non-overlapping sets, refined by successively splitting sets against a
// pivot element list. Ported structurally from
// original_source/rlex/src/partition_refinement.rs's `Partitions` type
// (back_buffer / parent_set / positions / partitions arrays, the
// swap-to-vacated-slot split technique, and the smaller-half trick for
// keeping refinement near-linear).
package partition

// SetIdx names one part of the partition.
type SetIdx uint32

// Element names one member of the universe being partitioned — typically
// a DFA state index.
type Element uint32

type bufferIdx uint32

type part struct {
	start, end bufferIdx
}

func (p part) length() int   { return int(p.end - p.start) }
func (p part) isEmpty() bool { return p.start == p.end }

// Partitions holds every element of a fixed universe {0, ..., n-1},
// grouped into sets. New elements are never added; only the grouping
// changes as RefineWith splits sets apart. It also tracks, internally,
// which set ids still need to be used as a refinement pivot, so a
// caller can drive refinement to a fixed point purely by calling
// PopPivot/RefineWith without keeping its own worklist.
type Partitions struct {
	backBuffer []Element
	positions  []bufferIdx
	parentSet  []SetIdx
	parts      []part

	pending   []SetIdx
	isPending []bool
}

// New builds the trivial one-set partition over the universe {0, ..., n-1}.
// The single initial set starts pending, ready for PopPivot.
func New(n int) *Partitions {
	backBuffer := make([]Element, n)
	positions := make([]bufferIdx, n)
	parentSet := make([]SetIdx, n)
	for i := 0; i < n; i++ {
		backBuffer[i] = Element(i)
		positions[i] = bufferIdx(i)
	}
	return &Partitions{
		backBuffer: backBuffer,
		positions:  positions,
		parentSet:  parentSet,
		parts:      []part{{start: 0, end: bufferIdx(n)}},
		pending:    []SetIdx{0},
		isPending:  []bool{true},
	}
}

// SetCount returns the number of sets, including any that have gone
// empty but have not yet been removed by Simplify.
func (p *Partitions) SetCount() int { return len(p.parts) }

// ParentSetOf returns the set e currently belongs to.
func (p *Partitions) ParentSetOf(e Element) SetIdx { return p.parentSet[e] }

// SetIter returns the elements of set s. The caller must not retain or
// mutate the result across a subsequent RefineWith call, since that call
// may reorder the underlying buffer.
func (p *Partitions) SetIter(s SetIdx) []Element {
	return p.backBuffer[p.parts[s].start:p.parts[s].end]
}

// RefineWith splits every set that contains at least one element of
// pivot into the elements that are in pivot and the elements that are
// not, and returns the set of newly created set indices (one per set
// actually split). A set entirely contained in pivot, or disjoint from
// it, is left untouched and produces no new id.
//
// Implementation note: each pivot element is swapped to the tail of its
// set's still-unprocessed range and that range is shrunk by one,
// segregating the in-pivot elements into a contiguous tail slice without
// any auxiliary allocation per element. Once every pivot element has
// been placed, each touched set is cut in two along that boundary: the
// smaller of the two halves always keeps the set's original id, and the
// larger half is assigned the brand new id, which is what gets
// returned, so the returned id names the larger half. When the two
// halves are the same size, the elements not in pivot keep the original
// id.
//
// A split also updates the pending-pivot queue PopPivot draws from: if
// the original id was itself still pending, both halves become pending
// (the old id no longer speaks for the whole original set); otherwise
// only the smaller half — still named by the original id — is marked
// pending, which is enough to reach a fixed point without ever
// processing more than the smaller side of any given split.
func (p *Partitions) RefineWith(pivot []Element) []SetIdx {
	touchedOrder := make([]SetIdx, 0, 8)
	origEnd := map[SetIdx]bufferIdx{}

	for _, e := range pivot {
		s := p.parentSet[e]
		if _, ok := origEnd[s]; !ok {
			origEnd[s] = p.parts[s].end
			touchedOrder = append(touchedOrder, s)
		}
		p.moveToTail(e, s)
	}

	newSets := make([]SetIdx, 0, len(touchedOrder))
	for _, s := range touchedOrder {
		origStart := p.parts[s].start
		newEnd := p.parts[s].end
		end := origEnd[s]

		if newEnd == origStart {
			// every element of s was in pivot: no split occurred.
			p.parts[s].end = end
			continue
		}

		newIdx := SetIdx(len(p.parts))
		p.parts = append(p.parts, part{start: newEnd, end: end})
		p.isPending = append(p.isPending, false)
		p.reassign(newIdx, newEnd, end)

		notInPivot := p.parts[s].length()
		inPivot := p.parts[newIdx].length()
		if inPivot < notInPivot {
			// the in-pivot half is the smaller one; swap labels so the
			// original id s always names the smaller half.
			p.parts[s], p.parts[newIdx] = p.parts[newIdx], p.parts[s]
			p.reassign(s, p.parts[s].start, p.parts[s].end)
			p.reassign(newIdx, p.parts[newIdx].start, p.parts[newIdx].end)
		}

		newSets = append(newSets, newIdx)
		p.markSplitPending(s, newIdx)
	}
	return newSets
}

// markSplitPending records the pending-pivot consequences of a split
// that produced smaller half s and larger half fresh.
func (p *Partitions) markSplitPending(s, fresh SetIdx) {
	if p.isPending[s] {
		if !p.isPending[fresh] {
			p.isPending[fresh] = true
			p.pending = append(p.pending, fresh)
		}
		return
	}
	p.isPending[s] = true
	p.pending = append(p.pending, s)
}

// PopPivot removes and returns one set id still pending use as a
// refinement pivot, following original_source's pop_set_according_to:
// callers drive RefineWith to a fixed point by looping until PopPivot
// reports none left, rather than maintaining their own worklist.
func (p *Partitions) PopPivot() (SetIdx, bool) {
	if len(p.pending) == 0 {
		return 0, false
	}
	s := p.pending[0]
	p.pending = p.pending[1:]
	p.isPending[s] = false
	return s, true
}

// moveToTail swaps e into the last unconsumed slot of set s's range and
// shrinks that range by one, without disturbing any other set's slice.
func (p *Partitions) moveToTail(e Element, s SetIdx) {
	part := &p.parts[s]
	pos := p.positions[e]
	last := part.end - 1

	other := p.backBuffer[last]
	p.backBuffer[pos], p.backBuffer[last] = p.backBuffer[last], p.backBuffer[pos]
	p.positions[other] = pos
	p.positions[e] = last

	part.end = last
}

func (p *Partitions) reassign(s SetIdx, start, end bufferIdx) {
	for i := start; i < end; i++ {
		p.parentSet[p.backBuffer[i]] = s
	}
}

// Simplify drops every empty set and compacts the remaining ids downward
// so SetCount() equals the number of non-empty sets, with no gaps.
func (p *Partitions) Simplify() {
	remap := make([]SetIdx, len(p.parts))
	kept := p.parts[:0]
	for old, pt := range p.parts {
		if pt.isEmpty() {
			continue
		}
		remap[old] = SetIdx(len(kept))
		kept = append(kept, pt)
	}
	p.parts = kept
	for e := range p.parentSet {
		p.parentSet[e] = remap[p.parentSet[e]]
	}
}

// PromoteToHead swaps set n into slot 0, so that iterating sets in id
// order visits n first — used to put the start state's set first before
// reading off the minimized automaton.
func (p *Partitions) PromoteToHead(n SetIdx) {
	if n == 0 {
		return
	}
	p.parts[0], p.parts[n] = p.parts[n], p.parts[0]
	p.reassign(0, p.parts[0].start, p.parts[0].end)
	p.reassign(n, p.parts[n].start, p.parts[n].end)
}
