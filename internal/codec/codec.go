// Package codec serializes domain values into opaque encrypted strings for
// the persistence layer, and back.
//
// The key is derived from a fixed application secret, so the blobs are
// obfuscated at rest rather than confidential: anyone with the client
// binary can decrypt them. That matches the contract of the stored data
// this layer is compatible with; deriving a real per-user secret is a
// format change and would bump the envelope version.
package codec

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// secretKey is the fixed application secret the blob key is derived from.
const secretKey = "al-ghareeb-app-secret-key"

// blobFormatVersion is the current supported version of the encrypted
// blob format.
const blobFormatVersion = 1

// envelope is the serialized structure inside each blob: ciphertext plus
// the salt the key was derived with.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Cipher []byte `json:"cipher"`
}

// Encode marshals v and seals it into a base64 blob safe for any
// string-keyed persistence layer. Equal values produce distinct blobs
// because every call salts its own key.
func Encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", err
	}
	aead, err := aeadForSalt(salt[:])
	if err != nil {
		return "", err
	}
	// Zero nonce; the salt-bound key is unique per blob.
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	blob, err := json.Marshal(envelope{V: blobFormatVersion, Salt: salt[:], Cipher: ct})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decode reverses Encode into out. It reports false on any failure —
// malformed base64, unknown envelope version, tampered ciphertext, corrupt
// inner JSON — and never returns an error: callers treat a bad blob
// exactly like an absent one.
func Decode(blob string, out any) bool {
	b, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return false
	}
	if env.V > blobFormatVersion {
		return false
	}
	aead, err := aeadForSalt(env.Salt)
	if err != nil {
		return false
	}
	var nonce [chacha20poly1305.NonceSize]byte
	raw, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func aeadForSalt(salt []byte) (cipher.AEAD, error) {
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(secretKey), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 14, 8, 1 }
