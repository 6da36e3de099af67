package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
)

// GenerateKey creates a random ed25519 keypair.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	return ed25519.GenerateKey(rand.Reader)
}

// GenerateKeyFromSeed derives the keypair deterministically from a 32-byte seed.
func GenerateKeyFromSeed(seed []byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), priv
}
