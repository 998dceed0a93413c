package villain

import (
	"encoding/hex"

	"go.uber.org/zap"
)

// Production collaborator implementations used by the CLI and the scheme
// runner. Each satisfies one capability interface; tests substitute their
// own.

// MaskCipher is a toy keyed mask (XOR with the key, hex encoded). It is not
// cryptography and is not meant to be; it exists to satisfy the pure
// transform contract on the relay path.
type MaskCipher struct{}

// Transform masks secret under key. Pure with respect to its inputs.
func (MaskCipher) Transform(secret, key string) string {
	if key == "" {
		return hex.EncodeToString([]byte(secret))
	}
	masked := make([]byte, len(secret))
	for i := 0; i < len(secret); i++ {
		masked[i] = secret[i] ^ key[i%len(key)]
	}
	return hex.EncodeToString(masked)
}

// LoudWeapon is a MegaWeapon that announces every discharge.
type LoudWeapon struct {
	logger *zap.Logger
}

// NewLoudWeapon builds a weapon that logs its discharges.
func NewLoudWeapon(logger *zap.Logger) *LoudWeapon {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoudWeapon{logger: logger}
}

// Shoot discharges the weapon.
func (w *LoudWeapon) Shoot() {
	w.logger.Info("weapon discharged")
}

// FieldHenchman is a Henchman that logs the orders it carries out.
type FieldHenchman struct {
	logger *zap.Logger
}

// NewFieldHenchman builds a henchman that logs its work.
func NewFieldHenchman(logger *zap.Logger) *FieldHenchman {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FieldHenchman{logger: logger}
}

// BuildSecretHQ builds a secure base at the given location.
func (h *FieldHenchman) BuildSecretHQ(location string) {
	h.logger.Info("building secret HQ", zap.String("location", location))
}

// FightEnemies engages whoever needs engaging.
func (h *FieldHenchman) FightEnemies() {
	h.logger.Info("fighting enemies")
}

// DoHardThings performs the difficult tasks.
func (h *FieldHenchman) DoHardThings() {
	h.logger.Info("doing hard things")
}

// NamedGadget is the production Gadget: an opaque token with a label.
type NamedGadget string

// Name returns the gadget's label.
func (g NamedGadget) Name() string { return string(g) }
