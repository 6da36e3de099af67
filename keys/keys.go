package keys

import (
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"

	"github.com/mintlabs/go-mint/common/types"
)

// KeyPair is a client identity: the mnemonic it derives from, the ed25519
// keypair, and the ledger address (the public key itself). Key material
// never reaches the execution core; transactions arrive there already
// authenticated.
type KeyPair struct {
	Mnemonic   string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
	Address    types.Address
}

// NewMnemonic generates a fresh 24-word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// FromMnemonic derives the keypair deterministically: same mnemonic and
// passphrase, same identity, on any machine.
func FromMnemonic(mnemonic, passphrase string) (*KeyPair, error) {
	seed := bip39.NewSeed(mnemonic, passphrase)

	var d [types.AddressSize]byte
	copy(d[:], seed[:types.AddressSize])
	addr, priv := types.CreateAddressFromSeed(d)

	return &KeyPair{
		Mnemonic:   mnemonic,
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
		Address:    addr,
	}, nil
}

// Generate creates a random identity and returns it with its mnemonic.
func Generate() (*KeyPair, error) {
	mnemonic, err := NewMnemonic()
	if err != nil {
		return nil, err
	}
	return FromMnemonic(mnemonic, "")
}
