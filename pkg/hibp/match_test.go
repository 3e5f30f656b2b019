package hibp

import "testing"

func TestMatchAggregates(t *testing.T) {
	digest := Digest("password")
	_, suffix := SplitDigest(digest)

	candidates := []Candidate{
		{Suffix: "0000000000000000000000000000000000A", Count: 10},
		{Suffix: suffix, Count: 3730471},
	}

	result := Match(candidates, digest)
	if result.Sites != 1 {
		t.Errorf("Exactly one candidate should match, got %d", result.Sites)
	}

	if result.Occurrences != 3730471 {
		t.Errorf("Occurrences should be the matched count, got %d", result.Occurrences)
	}

	if !result.Pwned() {
		t.Errorf("A matched digest should report as pwned")
	}
}

func TestMatchSumsDuplicateSuffixes(t *testing.T) {
	digest := Digest("password")
	_, suffix := SplitDigest(digest)

	candidates := []Candidate{
		{Suffix: suffix, Count: 3},
		{Suffix: "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", Count: 99},
		{Suffix: suffix, Count: 4},
	}

	result := Match(candidates, digest)
	if result.Sites != 2 || result.Occurrences != 7 {
		t.Errorf("Duplicate matching suffixes should sum, got sites=%d occurrences=%d", result.Sites, result.Occurrences)
	}
}

func TestMatchOrderIndependent(t *testing.T) {
	digest := Digest("password")
	_, suffix := SplitDigest(digest)

	forward := []Candidate{{Suffix: "AAAA", Count: 1}, {Suffix: suffix, Count: 5}, {Suffix: "BBBB", Count: 2}}
	reversed := []Candidate{{Suffix: "BBBB", Count: 2}, {Suffix: suffix, Count: 5}, {Suffix: "AAAA", Count: 1}}

	if Match(forward, digest) != Match(reversed, digest) {
		t.Errorf("Match should not depend on candidate order")
	}

	// Pure function, same inputs twice.
	if Match(forward, digest) != Match(forward, digest) {
		t.Errorf("Match should be idempotent")
	}
}

func TestMatchNoHit(t *testing.T) {
	digest := Digest("a-truly-unique-string-xyz123")
	candidates := []Candidate{{Suffix: "0000000000000000000000000000000000A", Count: 10}}

	result := Match(candidates, digest)
	if result.Sites != 0 || result.Occurrences != 0 {
		t.Errorf("No match should produce the zero result, got %+v", result)
	}

	if result.Pwned() {
		t.Errorf("The zero result should not report as pwned")
	}
}

func TestMatchNormalizesCase(t *testing.T) {
	digest := Digest("password")
	_, suffix := SplitDigest(digest)

	// An index returning lowercase hex must still match.
	candidates := ParseCandidates("1e4c9b93f3f0682250b6cf8331b7ee68fd7:12")
	result := Match(candidates, digest)
	if result.Sites != 1 || result.Occurrences != 12 {
		t.Errorf("Lowercase remote suffix %s should match local %s, got %+v", candidates[0].Suffix, suffix, result)
	}
}
