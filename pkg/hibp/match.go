package hibp

import "strings"

// BreachResult aggregates the candidates that matched a queried digest.
// Sites is the number of matching records (0 or 1 from a well-formed index,
// but more are tolerated), Occurrences the sum of their counts. A zero value
// means the password was not found, not that the lookup failed.
type BreachResult struct {
	Sites       int
	Occurrences uint64
}

// Pwned reports whether the digest appeared in the breach corpus at all.
func (r BreachResult) Pwned() bool {
	return r.Sites > 0
}

// Match filters candidates against the suffix of fullDigest and aggregates
// the survivors. Comparison is over uppercase hex on both sides; the index
// is documented to return uppercase, normalizing here keeps a lowercase
// upstream from silently reporting every password as safe.
func Match(candidates []Candidate, fullDigest string) BreachResult {
	_, want := SplitDigest(fullDigest)

	var result BreachResult
	for _, c := range candidates {
		if strings.ToUpper(c.Suffix) == want {
			result.Sites++
			result.Occurrences += c.Count
		}
	}

	return result
}
