package pixel

import (
	"slices"

	"github.com/gogpu/allrgb/internal/parallel"
)

// minParallelSort is the smallest input worth splitting across workers.
const minParallelSort = 1 << 14

// Sort orders px ascending under o. It only permutes the slice; records are
// never modified.
//
// With a pool, px is cut into one run per worker, the runs are sorted
// concurrently, and pairs of adjacent runs are merged level by level through
// a scratch buffer. Because the comparator is a strict total order, the
// result does not depend on the worker count.
func Sort(px []Keyed, o Order, pool *parallel.WorkerPool) {
	cmpFn := o.CompareFunc()
	n := len(px)
	runs := pool.Workers()
	if runs == 1 || n < minParallelSort {
		slices.SortFunc(px, cmpFn)
		return
	}

	width := (n + runs - 1) / runs
	work := make([]func(), 0, runs)
	for lo := 0; lo < n; lo += width {
		hi := min(lo+width, n)
		work = append(work, func() { slices.SortFunc(px[lo:hi], cmpFn) })
	}
	pool.ExecuteAll(work)

	src, dst := px, make([]Keyed, n)
	for ; width < n; width *= 2 {
		work = work[:0]
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			work = append(work, func() { merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmpFn) })
		}
		pool.ExecuteAll(work)
		src, dst = dst, src
	}

	if &src[0] != &px[0] {
		copy(px, src)
	}
}

// merge writes the ordered union of the sorted runs a and b into dst.
// len(dst) must equal len(a)+len(b).
func merge(dst, a, b []Keyed, cmpFn func(a, b Keyed) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmpFn(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// IsSorted reports whether px is ascending under o.
func IsSorted(px []Keyed, o Order) bool {
	return slices.IsSortedFunc(px, o.CompareFunc())
}
