package hibp

import (
	"errors"
	"fmt"

	"golang.org/x/net/context"
)

// ErrEmptyPassword is returned when a lookup is attempted on an empty
// password. Callers gate submission on non-empty input; this keeps the
// orchestrator honest if they don't.
var ErrEmptyPassword = errors.New("empty password has no digest to look up")

// Lookuper drives one complete k-anonymity lookup: digest, prefix split,
// exactly one range request, parse, match.
type Lookuper struct {
	client RangeClient
}

// NewLookuper wraps a range client. Pass NewClient("") for the public API.
func NewLookuper(client RangeClient) *Lookuper {
	return &Lookuper{client: client}
}

// Lookup checks password against the breach index and returns its exposure.
// A result with zero sites means the password was not found. Only the five
// character digest prefix is sent over the wire.
func (l *Lookuper) Lookup(ctx context.Context, password string) (BreachResult, error) {
	digest := Digest(password)
	if digest == "" {
		return BreachResult{}, ErrEmptyPassword
	}

	return l.LookupDigest(ctx, digest)
}

// LookupDigest is Lookup for callers that already hold the 40-character hex
// digest, such as hash-only audits.
func (l *Lookuper) LookupDigest(ctx context.Context, digest string) (BreachResult, error) {
	if len(digest) != DigestLen {
		return BreachResult{}, fmt.Errorf("digest must be %d hex characters, got %d", DigestLen, len(digest))
	}

	prefix, _ := SplitDigest(digest)
	body, err := l.client.Range(ctx, prefix)
	if err != nil {
		return BreachResult{}, err
	}

	return Match(ParseCandidates(body), digest), nil
}
