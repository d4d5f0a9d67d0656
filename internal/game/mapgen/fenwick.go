package mapgen

// eligibleSet tracks which board indices may still receive a mine and finds
// the k-th one in row-major order in O(log n). It gives exactly the result of
// scanning the board and counting down, without the O(cells) pass per mine.
type eligibleSet struct {
	tree []int // 1-based Fenwick tree of 0/1 flags
	size int
	step int // highest power of two <= size
}

func newEligibleSet(flags []bool) *eligibleSet {
	n := len(flags)
	s := &eligibleSet{tree: make([]int, n+1), size: n, step: 1}
	for s.step*2 <= n {
		s.step *= 2
	}
	for i, ok := range flags {
		if ok {
			s.tree[i+1]++
		}
	}
	// linear-time build
	for i := 1; i <= n; i++ {
		if j := i + (i & -i); j <= n {
			s.tree[j] += s.tree[i]
		}
	}
	return s
}

func (s *eligibleSet) total() int {
	sum := 0
	for i := s.size; i > 0; i -= i & -i {
		sum += s.tree[i]
	}
	return sum
}

// remove marks idx as no longer eligible. Caller guarantees idx is eligible.
func (s *eligibleSet) remove(idx int) {
	for i := idx + 1; i <= s.size; i += i & -i {
		s.tree[i]--
	}
}

// kth returns the board index of the k-th (0-based) eligible cell.
func (s *eligibleSet) kth(k int) int {
	pos := 0
	rem := k + 1
	for step := s.step; step > 0; step >>= 1 {
		next := pos + step
		if next <= s.size && s.tree[next] < rem {
			pos = next
			rem -= s.tree[next]
		}
	}
	// prefix(pos) < k+1 <= prefix(pos+1): 1-based slot pos+1 is board index pos
	return pos
}
