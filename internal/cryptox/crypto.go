// Package cryptox implements at-rest encryption for stored credentials.
//
// Access tokens are sealed with AES-GCM under a vault key derived (argon2id)
// from a random keyfile created on first run. The keyfile is a stand-in for a
// platform secure-storage primitive: it holds key material only, never
// plaintext credentials.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/argon2"
)

const (
	secretSize = 32
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
)

var ErrMalformedKeyfile = errors.New("malformed keyfile")

// DeriveKey derives a 32-byte AES key from the given secret and salt using
// argon2id with the parameters recommended for interactive use.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, keySize)
}

// Seal encrypts plaintext with AES-GCM under key. A fresh random 12-byte
// nonce is generated per call and returned alongside the ciphertext.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open decrypts ciphertext produced by Seal using the same key and nonce.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

// LoadOrCreateVaultKey returns the vault key for the keyfile at path,
// creating the keyfile (mode 0600) with fresh random material when it does
// not exist yet. The file layout is 32 bytes of secret followed by a
// 16-byte salt.
func LoadOrCreateVaultKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		data = make([]byte, secretSize+saltSize)
		if _, err := rand.Read(data); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write keyfile: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read keyfile: %w", err)
	}

	if len(data) != secretSize+saltSize {
		return nil, ErrMalformedKeyfile
	}

	return DeriveKey(data[:secretSize], data[secretSize:]), nil
}

// WipeBytes overwrites the slice with zeros. Useful for removing sensitive
// material such as tokens or derived keys from memory after use.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
