// Package villain implements the coordination core: a SuperVillain directs
// pluggable collaborators (weapon, sidekick, henchman, cipher) through a set
// of staged operations. Every collaborator sits behind a one-operation
// interface so substitutes can be injected in tests and in the CLI alike.
package villain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultListingPath is where the location listing is expected when no
// scanner is injected. Overridable through internal/config.
const DefaultListingPath = "tmp/listings.csv"

// planDelay is how long ComeUpWithPlan suspends before yielding the plan.
const planDelay = 100 * time.Millisecond

// SuperVillain coordinates all staged operations. The zero value is usable;
// capability fields fall back to production defaults when unset.
type SuperVillain struct {
	FirstName string
	LastName  string
	Sidekick  Sidekick
	SharedKey string

	rand    Rand
	sleep   SleepFunc
	scanner LocationScanner
}

// Option configures optional capabilities on a SuperVillain.
type Option func(*SuperVillain)

// WithRand replaces the random source used by orchestration decisions.
func WithRand(r Rand) Option {
	return func(v *SuperVillain) { v.rand = r }
}

// WithSleep replaces the suspension primitive used by ComeUpWithPlan.
func WithSleep(s SleepFunc) Option {
	return func(v *SuperVillain) { v.sleep = s }
}

// WithScanner replaces the location scanner consulted by
// AreThereVulnerableLocations.
func WithScanner(s LocationScanner) Option {
	return func(v *SuperVillain) { v.scanner = s }
}

// WithSharedKey sets the symmetric key handed to ciphers. The key is opaque
// to the core; validation is the cipher's problem.
func WithSharedKey(key string) Option {
	return func(v *SuperVillain) { v.SharedKey = key }
}

// WithSidekick attaches a sidekick at construction time.
func WithSidekick(s Sidekick) Option {
	return func(v *SuperVillain) { v.Sidekick = s }
}

// New constructs a SuperVillain with the given names and options.
func New(firstName, lastName string, opts ...Option) *SuperVillain {
	v := &SuperVillain{FirstName: firstName, LastName: lastName}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ParseError reports a recoverable identity parsing failure.
type ParseError struct {
	Purpose string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: purpose='%s', reason='%s'", e.Purpose, e.Reason)
}

// Parse builds a SuperVillain from a whitespace-separated identity string.
// At least two tokens are required; extra tokens are ignored. The remaining
// fields are left at their zero values (no sidekick, empty key).
//
// Note the asymmetry with SetFullName, which demands exactly two tokens and
// panics otherwise. Both thresholds are observable contracts of their
// respective entry points and are intentionally not unified.
func Parse(name string, opts ...Option) (*SuperVillain, error) {
	components := strings.Fields(name)
	if len(components) < 2 {
		return nil, &ParseError{Purpose: "full_name", Reason: "Too few arguments"}
	}
	return New(components[0], components[1], opts...), nil
}

// FullName returns the villain's full name.
//
// A full name is produced by concatenating the first and last names with a
// space:
//
//	lex := villain.New("Lex", "Luthor")
//	lex.FullName() // "Lex Luthor"
func (v *SuperVillain) FullName() string {
	return v.FirstName + " " + v.LastName
}

// SetFullName splits name on whitespace runs and assigns the two resulting
// tokens to the first and last name. Callers are expected to have validated
// the input already; any other token count is an unrecoverable precondition
// violation and panics.
func (v *SuperVillain) SetFullName(name string) {
	components := strings.Fields(name)
	if len(components) != 2 {
		panic("name must have first and last name, separated by a space")
	}
	v.FirstName = components[0]
	v.LastName = components[1]
}

// rng returns the injected random source, or the shared production source.
func (v *SuperVillain) rng() Rand {
	if v.rand != nil {
		return v.rand
	}
	return defaultRand
}

// sleepFn returns the injected suspension primitive, or the timer-backed one.
func (v *SuperVillain) sleepFn() SleepFunc {
	if v.sleep != nil {
		return v.sleep
	}
	return sleepContext
}

// sleepContext suspends the calling goroutine for d without blocking anyone
// else. Returns early with ctx.Err() on cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
