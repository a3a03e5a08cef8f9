// Package id generates and checks the prefixed resource identifiers used as
// primary keys for every entity. An id is a 4-character kind prefix followed
// by a 21-character random suffix, 25 characters total.
package id

import (
	"crypto/rand"
	"strings"

	apperrors "github.com/vendira/commerce/internal/errors"
)

// Prefixes, one per entity kind.
const (
	Company     = "com_"
	Customer    = "cus_"
	Product     = "pro_"
	Sale        = "sal_"
	SaleItem    = "sai_"
	User        = "usr_"
	CompanyUser = "cou_"
	Address     = "add_"
)

const (
	prefixLen = 4
	suffixLen = 21
	totalLen  = prefixLen + suffixLen

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
)

var knownPrefixes = map[string]struct{}{
	Company:     {},
	Customer:    {},
	Product:     {},
	Sale:        {},
	SaleItem:    {},
	User:        {},
	CompanyUser: {},
	Address:     {},
}

// New returns a fresh identifier for the given prefix. An unknown prefix is a
// programmer error and reports KindInternal.
func New(prefix string) (string, error) {
	if _, ok := knownPrefixes[prefix]; !ok {
		return "", apperrors.Internal("unknown resource id prefix %q", prefix)
	}
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", apperrors.Internal("resource id entropy: %v", err)
	}
	var b strings.Builder
	b.Grow(totalLen)
	b.WriteString(prefix)
	for _, c := range buf {
		// 64-character alphabet, so masking keeps the distribution uniform.
		b.WriteByte(alphabet[c&63])
	}
	return b.String(), nil
}

// MustNew is New for known-constant prefixes.
func MustNew(prefix string) string {
	v, err := New(prefix)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid reports whether s is a well-formed identifier for the given prefix.
func Valid(prefix, s string) bool {
	if len(s) != totalLen || !strings.HasPrefix(s, prefix) {
		return false
	}
	for i := prefixLen; i < totalLen; i++ {
		if !strings.ContainsRune(alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
