package service

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/argon2"

	apperrors "github.com/vendira/commerce/internal/errors"
)

// Argon2id parameters. Hashing briefly blocks the scheduler; that cost is
// accepted for user provisioning, which is rare relative to other traffic.
const (
	saltLength   = 16
	hashLength   = 32
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// hashPassword derives an argon2id hash from the password and a fresh random
// salt. Both are returned base64-encoded for storage; plaintext is never
// persisted.
func hashPassword(password string) (hash string, salt string, err error) {
	rawSalt := make([]byte, saltLength)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", apperrors.Internal("salt entropy: %v", err)
	}
	key := argon2.IDKey([]byte(password), rawSalt, argonTime, argonMemory, argonThreads, hashLength)
	return base64.RawStdEncoding.EncodeToString(key), base64.RawStdEncoding.EncodeToString(rawSalt), nil
}

// verifyPassword recomputes the hash with the stored salt. Sign-in is not
// part of the HTTP surface yet, so the only callers are the hashing tests;
// it is the counterpart a credential check will use.
func verifyPassword(password, hash, salt string) (bool, error) {
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false, apperrors.Internal("stored salt is corrupt: %v", err)
	}
	key := argon2.IDKey([]byte(password), rawSalt, argonTime, argonMemory, argonThreads, hashLength)
	return base64.RawStdEncoding.EncodeToString(key) == hash, nil
}
