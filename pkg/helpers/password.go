package helpers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters; key length matches the stored digest size.
const (
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
	scryptSaltLen = 16
	scryptKeyLen  = 64
)

// HashPassword derives a scrypt digest of the password over a random
// salt and returns it as "saltHex:digestHex".
func HashPassword(plain string) (string, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	derived, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(derived), nil
}

// VerifyPassword recomputes the digest with the stored salt and compares
// in constant time. It returns false, never an error, on malformed
// stored hashes so callers cannot become a format oracle.
func VerifyPassword(plain, stored string) bool {
	salt, digest, ok := splitStoredHash(stored)
	if !ok {
		return false
	}
	computed, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, len(digest))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(computed, digest) == 1
}

func splitStoredHash(stored string) (salt, digest []byte, ok bool) {
	saltHex, digestHex, found := strings.Cut(stored, ":")
	if !found || saltHex == "" || digestHex == "" {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, nil, false
	}
	digest, err = hex.DecodeString(digestHex)
	if err != nil || len(digest) == 0 {
		return nil, nil, false
	}
	return salt, digest, true
}
