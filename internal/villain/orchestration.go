package villain

import (
	"context"
	"math/rand"
	"os"

	"overlord/internal/scanner"
)

// defaultRand draws from math/rand's shared source. Orchestration code only
// touches it through SuperVillain.rng so tests can substitute a fixed draw.
var defaultRand Rand = mathRand{}

type mathRand struct{}

func (mathRand) Intn(n int) int { return rand.Intn(n) }

// Attack discharges the weapon once, plus a random 1 or 2 extra shots when
// the attack is intense. The discharge count is the only observable effect.
func (v *SuperVillain) Attack(weapon MegaWeapon, intense bool) {
	weapon.Shoot()
	if intense {
		times := v.rng().Intn(2) + 1
		for i := 0; i < times; i++ {
			weapon.Shoot()
		}
	}
}

// ComeUpWithPlan suspends cooperatively for a fixed interval and then yields
// the plan. Other goroutines proceed during the wait. On cancellation it
// returns ctx.Err() and never a partial plan.
func (v *SuperVillain) ComeUpWithPlan(ctx context.Context) (string, error) {
	if err := v.sleepFn()(ctx, planDelay); err != nil {
		return "", err
	}
	return "Take over the world!", nil
}

// Conspire checks the sidekick's loyalty. A disloyal sidekick is detached;
// that drop is the sole side effect. Without a sidekick this is a no-op.
func (v *SuperVillain) Conspire() {
	if v.Sidekick == nil {
		return
	}
	if !v.Sidekick.IsLoyal() {
		v.Sidekick = nil
	}
}

// StartDominationStage1 asks the sidekick to derive weak targets from the
// gadget and, if any exist, has the henchman build a secret HQ at the first
// one. Later targets are ignored. No sidekick, or no targets, means no work.
func (v *SuperVillain) StartDominationStage1(henchman Henchman, gadget Gadget) {
	if v.Sidekick == nil {
		return
	}
	targets := v.Sidekick.WeakTargets(gadget)
	if len(targets) == 0 {
		return
	}
	henchman.BuildSecretHQ(targets[0])
}

// StartDominationStage2 puts the henchman to work: fighting enemies first,
// hard things second. The ordering is a hard contract.
func (v *SuperVillain) StartDominationStage2(henchman Henchman) {
	henchman.FightEnemies()
	henchman.DoHardThings()
}

// TellPlans relays the secret to the sidekick after transforming it with the
// cipher under the shared key. The plaintext is never relayed. No sidekick,
// no relay.
func (v *SuperVillain) TellPlans(secret string, cipher Cipher) {
	if v.Sidekick == nil {
		return
	}
	v.Sidekick.Tell(cipher.Transform(secret, v.SharedKey))
}

// AreThereVulnerableLocations consults the location scanner. known is false
// when the listing could not be opened or read; that outcome is a normal
// "unknown", not an error.
func (v *SuperVillain) AreThereVulnerableLocations() (weak, known bool) {
	return v.locationScanner().Scan()
}

func (v *SuperVillain) locationScanner() LocationScanner {
	if v.scanner != nil {
		return v.scanner
	}
	return defaultScanner{}
}

// defaultScanner scans DefaultListingPath relative to the working directory.
type defaultScanner struct{}

func (defaultScanner) Scan() (weak, known bool) {
	return scanner.New(os.DirFS("."), DefaultListingPath).Scan()
}
