package store

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"weightlog/internal/util/memzero"
)

const (
	// The current supported version of the sealed blob format.
	sealedFormatVersion = 1

	// Upper limits on KDF parameters read from a blob, so a crafted file
	// cannot demand gigabytes of memory.
	maxScryptN  = 1 << 20
	maxScryptRP = 1 << 6
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted export")
)

// blob is the JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Seal derives a key from passphrase and seals raw into a JSON blob.
func Seal(passphrase string, raw []byte) ([]byte, error) {
	N, r, p := scryptParamsDefault()
	return seal(passphrase, raw, N, r, p)
}

func seal(passphrase string, raw []byte, N, r, p int) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:] /* #nosec G404 */); err != nil {
		return nil, err
	}
	pass := []byte(passphrase)
	key, err := scrypt.Key(pass, salt[:], N, r, p, chacha20poly1305.KeySize)
	memzero.Zero(pass)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte // zero nonce; salt‑bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.MarshalIndent(blob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	}, "", "  ")
}

// Open opens a blob produced by Seal using a key derived from passphrase.
func Open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed export version %d", bl.V)
	}
	if bl.N > maxScryptN || bl.R*bl.P > maxScryptRP {
		return nil, fmt.Errorf("sealed export asks for scrypt N=%d r=%d p=%d; refusing", bl.N, bl.R, bl.P)
	}

	pass := []byte(passphrase)
	key, err := scrypt.Key(pass, bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	memzero.Zero(pass)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [12]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// IsSealed reports whether b looks like a blob produced by Seal.
func IsSealed(b []byte) bool {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return false
	}
	var probe struct {
		V      int    `json:"v"`
		Salt   []byte `json:"salt"`
		Cipher []byte `json:"cipher"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return false
	}
	return probe.V > 0 && len(probe.Salt) > 0 && len(probe.Cipher) > 0
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }
