package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ed25519"

	mcrypto "github.com/mintlabs/go-mint/crypto"
)

const (
	AddressPrefix       = "mint_"
	AddressSize         = 32
	addressChecksumSize = 5
	addressPrefixLen    = len(AddressPrefix)
	hexAddressLength    = addressPrefixLen + 2*AddressSize + 2*addressChecksumSize
)

// Address is the ed25519 public key of an account. It is the identity of
// both wallets and transaction authors.
type Address [AddressSize]byte

func BytesToAddress(b []byte) (Address, error) {
	var a Address
	err := a.SetBytes(b)
	return a, err
}

func HexToAddress(hexStr string) (Address, error) {
	if !IsValidHexAddress(hexStr) {
		return Address{}, fmt.Errorf("not valid hex address %q", hexStr)
	}
	addr, _ := getAddressFromHex(hexStr)
	return addr, nil
}

func IsValidHexAddress(hexStr string) bool {
	if len(hexStr) != hexAddressLength || !strings.HasPrefix(hexStr, AddressPrefix) {
		return false
	}

	address, err := getAddressFromHex(hexStr)
	if err != nil {
		return false
	}

	addressChecksum, err := getAddressChecksumFromHex(hexStr)
	if err != nil {
		return false
	}

	return bytes.Equal(mcrypto.Hash(addressChecksumSize, address[:]), addressChecksum[:])
}

// PubkeyToAddress is the identity mapping: the account identifier is the
// public key itself.
func PubkeyToAddress(pubkey ed25519.PublicKey) Address {
	addr, _ := BytesToAddress(pubkey)
	return addr
}

func CreateAddress() (Address, ed25519.PrivateKey, error) {
	pub, pri, err := mcrypto.GenerateKey()
	if err != nil {
		return Address{}, nil, err
	}
	return PubkeyToAddress(pub), pri, nil
}

func CreateAddressFromSeed(seed [AddressSize]byte) (Address, ed25519.PrivateKey) {
	pub, pri := mcrypto.GenerateKeyFromSeed(seed[:])
	return PubkeyToAddress(pub), pri
}

func (addr *Address) SetBytes(b []byte) error {
	if length := len(b); length != AddressSize {
		return fmt.Errorf("address bytes length error %v", length)
	}
	copy(addr[:], b)
	return nil
}

func (addr Address) Hex() string {
	return AddressPrefix + hex.EncodeToString(addr[:]) + hex.EncodeToString(mcrypto.Hash(addressChecksumSize, addr[:]))
}

func (addr Address) Bytes() []byte { return addr[:] }
func (addr Address) String() string {
	return addr.Hex()
}

func (addr *Address) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return ErrJsonNotString
	}
	parsed, err := HexToAddress(string(trimLeftRightQuotation(input)))
	if err != nil {
		return err
	}
	return addr.SetBytes(parsed.Bytes())
}

func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

func getAddressFromHex(hexStr string) ([AddressSize]byte, error) {
	var b [AddressSize]byte
	_, err := hex.Decode(b[:], []byte(hexStr[addressPrefixLen:2*AddressSize+addressPrefixLen]))
	return b, err
}

func getAddressChecksumFromHex(hexStr string) ([addressChecksumSize]byte, error) {
	var b [addressChecksumSize]byte
	_, err := hex.Decode(b[:], []byte(hexStr[2*AddressSize+addressPrefixLen:]))
	return b, err
}
