package villain

import (
	"context"
	"time"
)

// MegaWeapon is any weapon the villain can discharge. Shoot is safe to call
// any number of times and never fails at this layer.
type MegaWeapon interface {
	Shoot()
}

// Cipher transforms a secret under a key. Implementations must be pure with
// respect to their two inputs; the core never inspects the output.
type Cipher interface {
	Transform(secret, key string) string
}

// Henchman carries out fire-and-forget field work on the villain's behalf.
type Henchman interface {
	BuildSecretHQ(location string)
	FightEnemies()
	DoHardThings()
}

// Gadget is an opaque equipment token handed through to the sidekick's
// target derivation. The core calls nothing on it beyond Name, which exists
// for logs.
type Gadget interface {
	Name() string
}

// Sidekick is the villain's owned assistant. Its lifetime is bounded by its
// villain; Conspire detaches a disloyal sidekick by dropping the reference.
type Sidekick interface {
	IsLoyal() bool
	WeakTargets(g Gadget) []string
	Tell(message string)
}

// Rand supplies the random draws behind orchestration decisions. Injected so
// tests can fix the draw; orchestration logic never reaches for a global
// source directly.
type Rand interface {
	Intn(n int) int
}

// SleepFunc suspends the calling goroutine for d, returning ctx.Err() if the
// context ends first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// LocationScanner reports whether any known location is weak. known is false
// when the listing could not be consulted at all.
type LocationScanner interface {
	Scan() (weak, known bool)
}
