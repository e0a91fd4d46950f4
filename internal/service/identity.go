package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Generated password length, matching the credential policy for new
	// member and trainer accounts.
	passwordLength = 10

	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// UsernameLister provides the usernames needed for collision resolution
type UsernameLister interface {
	UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// IdentityGenerator derives usernames and random passwords for new accounts
type IdentityGenerator struct {
	usernames UsernameLister
}

// NewIdentityGenerator creates a new identity generator
func NewIdentityGenerator(usernames UsernameLister) *IdentityGenerator {
	return &IdentityGenerator{usernames: usernames}
}

// Username derives a unique username of the form first.last, appending the
// smallest positive integer suffix when the base form is taken. The result is
// deterministic given a fixed set of existing usernames; the unique index on
// user.username is the final arbiter under concurrent registration.
func (g *IdentityGenerator) Username(ctx context.Context, firstName, lastName string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(firstName) + "." + strings.TrimSpace(lastName))

	existing, err := g.usernames.UsernamesWithPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("list usernames: %w", err)
	}

	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[name] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base, nil
	}
	for n := 1; ; n++ {
		candidate := base + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
}

// Password produces a random alphanumeric password of the configured length
// from a non-deterministic source.
func (g *IdentityGenerator) Password() (string, error) {
	chars := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range chars {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		chars[i] = passwordAlphabet[n.Int64()]
	}
	return string(chars), nil
}
