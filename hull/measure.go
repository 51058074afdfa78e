// Package hull — loop measurement at freeze time.
package hull

// loopVolume sums the simplex volume of every facet window fanned against
// the loop's first vertex. The sum is unsigned, so no cancellation occurs;
// windows touching the origin vertex contribute zero.
//
// Complexity: O(v·k³) for a loop of v stored vertices.
func (w *walker[L]) loopVolume() (float64, error) {
	var (
		total  float64
		origin = w.ds.At(w.first).Point
		i, j   int
	)
	for i = 0; i+w.k <= len(w.pivots); i++ {
		for j = 0; j < w.k; j++ {
			w.simplex[j] = w.ds.At(w.pivots[i+j]).Point
		}
		w.simplex[w.k] = origin

		v, err := w.prov.SimplexVolume(w.simplex)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// countEnclosed counts the loop label's instances still unclassified at
// freeze time that no facet window clears as outside. Boundary touches do
// not clear an instance here; a later window may still prove it outside.
// Other labels need no scan: the loop froze, so Verify already cleared
// every one of them. The enclosed instances are exactly the ones later
// peels will consume.
//
// Complexity: O(n·v·k³), short-circuiting per instance.
func (w *walker[L]) countEnclosed() (int, error) {
	var (
		count int
		i     int
	)
	for i = 0; i < w.ds.Len(); i++ {
		if w.ds.At(i).Label != w.label {
			continue
		}
		if w.cls.Contains(i) { // ids equal canonical positions
			continue
		}
		verdict, err := apexClearance(w.prov, w.ds, w.pivots, i, w.simplex, false)
		if err != nil {
			return 0, err
		}
		if verdict != cleared {
			count++
		}
	}
	return count, nil
}
