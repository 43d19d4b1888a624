// Package tokens estimates token counts for document bodies.
//
// The estimate is a deterministic heuristic, not a tokenizer: the only
// guarantees are determinism (same input, same output) and
// monotonicity (appending text never decreases the count). It exists
// so oversized rules can be flagged before they eat context space.
package tokens

import "unicode/utf8"

const (
	// DefaultCharsPerToken is the average characters-per-token ratio
	// assumed for English markdown.
	DefaultCharsPerToken = 4

	// DefaultWarnThreshold is the estimated token count above which a
	// rule is flagged as oversized.
	DefaultWarnThreshold = 1000
)

// Estimator computes approximate token counts and flags oversized
// documents. The zero value is not usable; construct with NewEstimator.
type Estimator struct {
	charsPerToken int
	warnThreshold int
}

// NewEstimator creates an estimator. Non-positive arguments fall back
// to the defaults.
func NewEstimator(charsPerToken, warnThreshold int) *Estimator {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	if warnThreshold <= 0 {
		warnThreshold = DefaultWarnThreshold
	}
	return &Estimator{
		charsPerToken: charsPerToken,
		warnThreshold: warnThreshold,
	}
}

// Estimate returns the approximate token count for text: the rune
// count divided by the chars-per-token ratio, rounded up.
func (e *Estimator) Estimate(text string) int {
	runes := utf8.RuneCountInString(text)
	if runes == 0 {
		return 0
	}
	return (runes + e.charsPerToken - 1) / e.charsPerToken
}

// ByteSize returns the body size in bytes.
func (e *Estimator) ByteSize(text string) int {
	return len(text)
}

// Oversized reports whether the estimate for text exceeds the warning
// threshold. Advisory: callers must not block packaging on it.
func (e *Estimator) Oversized(text string) bool {
	return e.Estimate(text) > e.warnThreshold
}

// WarnThreshold returns the configured threshold.
func (e *Estimator) WarnThreshold() int {
	return e.warnThreshold
}
