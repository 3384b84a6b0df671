package service

import (
	"github.com/steelcraft/catalog-server/internal/util"
)

// KeyVerifier checks an admin key presented at login. Call sites never see
// how the key is stored, so a plaintext shared secret can be swapped for a
// hashed one without touching the handlers.
type KeyVerifier interface {
	Verify(key string) bool
}

type staticKeyVerifier struct {
	key string
}

func (v *staticKeyVerifier) Verify(key string) bool {
	return util.ConstantTimeEqual(key, v.key)
}

type bcryptKeyVerifier struct {
	hash string
}

func (v *bcryptKeyVerifier) Verify(key string) bool {
	return util.CheckKeyHash(key, v.hash)
}

// NewKeyVerifier selects a verifier from config. A bcrypt hash wins over a
// plaintext key when both are set.
func NewKeyVerifier(adminKey, adminKeyHash string) KeyVerifier {
	if adminKeyHash != "" {
		return &bcryptKeyVerifier{hash: adminKeyHash}
	}
	return &staticKeyVerifier{key: adminKey}
}
