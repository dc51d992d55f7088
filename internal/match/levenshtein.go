package match

import "strings"

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-byte edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidate closest to name, compared case-insensitively,
// if it is at most two edits or a third of its length away, whichever is
// larger. Ties go to the candidate whose length is closest to name, then to
// the earlier one.
func Suggest(name string, candidates []string) (string, bool) {
	name = strings.ToLower(name)

	best, bestDist := "", -1

	for _, c := range candidates {
		d := Levenshtein(name, strings.ToLower(c))
		if d > max(2, len(c)/3) {
			continue
		}

		closer := bestDist >= 0 && d == bestDist && lengthGap(name, c) < lengthGap(name, best)
		if bestDist < 0 || d < bestDist || closer {
			best, bestDist = c, d
		}
	}

	return best, bestDist >= 0
}

func lengthGap(a, b string) int {
	return max(len(a)-len(b), len(b)-len(a))
}
