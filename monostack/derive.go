package monostack

// Derived views over a scan result. The index contract is the composable
// one: distances and values are projections a caller can compute from it,
// provided here so callers do not re-implement the sentinel handling.

// Distances converts a scan result into per-index distances
// |res[i] - i|. Entries equal to None map to 0 (the "Daily Temperatures"
// convention: zero days of waiting means no warmer day is coming).
func Distances(res []int) []int {
	out := make([]int, len(res))
	for i, j := range res {
		if j == None {
			continue
		}
		if j >= i {
			out[i] = j - i
		} else {
			out[i] = i - j
		}
	}

	return out
}

// Values converts a scan result into the qualifying values themselves:
// out[i] = seq[res[i]], or missing where res[i] is None.
// seq must be the sequence the result was computed from; if res refers
// to an index outside seq the entry maps to missing as well.
func Values(seq []int64, res []int, missing int64) []int64 {
	out := make([]int64, len(res))
	for i, j := range res {
		if j == None || j < 0 || j >= len(seq) {
			out[i] = missing

			continue
		}
		out[i] = seq[j]
	}

	return out
}
