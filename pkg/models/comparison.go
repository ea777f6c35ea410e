package models

// Outcome discriminates the two possible comparison results
type Outcome string

const (
	// OutcomeMatch indicates the files are byte-identical
	OutcomeMatch Outcome = "match"
	// OutcomeNoMatch indicates the files differ
	OutcomeNoMatch Outcome = "no_match"
)

// ComparisonResult is the definitive outcome of comparing two files.
// It is either a match carrying the shared digest, or a no-match.
// Use Match and NoMatch to construct one.
type ComparisonResult struct {
	outcome Outcome
	digest  Digest
}

// Match returns a result for identical files sharing the given digest
func Match(digest Digest) ComparisonResult {
	return ComparisonResult{outcome: OutcomeMatch, digest: digest}
}

// NoMatch returns a result for files that differ
func NoMatch() ComparisonResult {
	return ComparisonResult{outcome: OutcomeNoMatch}
}

// Outcome returns which variant this result is
func (r ComparisonResult) Outcome() Outcome {
	if r.outcome == "" {
		return OutcomeNoMatch
	}
	return r.outcome
}

// IsMatch reports whether the files are identical
func (r ComparisonResult) IsMatch() bool {
	return r.outcome == OutcomeMatch
}

// Digest returns the shared digest and true for a match.
// For a no-match it returns the zero digest and false.
func (r ComparisonResult) Digest() (Digest, bool) {
	if !r.IsMatch() {
		return Digest{}, false
	}
	return r.digest, true
}

func (r ComparisonResult) String() string {
	if r.IsMatch() {
		return "match(" + r.digest.String() + ")"
	}
	return "no match"
}
