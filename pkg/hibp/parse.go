package hibp

import (
	"strconv"
	"strings"
)

// Candidate is one SUFFIX:COUNT record returned for a queried prefix.
type Candidate struct {
	Suffix string
	Count  uint64
}

// ParseCandidates turns a raw range response body into the candidates it
// carries. The body is untrusted: lines without a colon and lines whose count
// is not a non-negative decimal are dropped as noise rather than failing the
// whole lookup. Order and duplicate suffixes are preserved, aggregation
// depends on summing every valid line.
func ParseCandidates(body string) []Candidate {
	lines := strings.Split(body, "\n")
	candidates := make([]Candidate, 0, len(lines))
	for _, line := range lines {
		// The live API terminates records with \r\n.
		line = strings.TrimSuffix(line, "\r")

		suffix, countText, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		count, err := strconv.ParseUint(countText, 10, 64)
		if err != nil {
			continue
		}

		candidates = append(candidates, Candidate{Suffix: suffix, Count: count})
	}

	return candidates
}
