package villain

import "go.uber.org/zap"

// LoyalSidekick is the production Sidekick: it always agrees with the
// conspiracy, derives no weak targets, and logs whatever it is told. It
// holds the gadget it was recruited with but does not manage its lifecycle.
type LoyalSidekick struct {
	gadget Gadget
	logger *zap.Logger
}

// NewLoyalSidekick recruits a sidekick equipped with the given gadget.
func NewLoyalSidekick(gadget Gadget, logger *zap.Logger) *LoyalSidekick {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoyalSidekick{gadget: gadget, logger: logger}
}

// IsLoyal always reports true.
func (s *LoyalSidekick) IsLoyal() bool { return true }

// WeakTargets derives weak targets from the gadget. The loyal sidekick has
// never actually found any.
func (s *LoyalSidekick) WeakTargets(gadget Gadget) []string {
	name := "nothing"
	if gadget != nil {
		name = gadget.Name()
	}
	s.logger.Debug("deriving weak targets", zap.String("gadget", name))
	return nil
}

// Tell receives a relayed (already ciphered) message.
func (s *LoyalSidekick) Tell(message string) {
	s.logger.Info("message received", zap.String("ciphertext", message))
}
