package util

import "math/rand/v2"

// SampleStrings returns up to n elements of ids chosen uniformly at random, in random order.
// ids is not modified.
func SampleStrings(ids []string, n int) []string {
	if n <= 0 || len(ids) == 0 {
		return []string{}
	}
	out := make([]string, len(ids))
	copy(out, ids)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
