package services

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"

	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	appErrors "github.com/surawits/vibeLink/pkg/errors"
)

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	codeLength          = 6
	maxGenerateAttempts = 10
)

var aliasRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

// Path segments the router owns; an alias must not shadow them.
var reservedAliases = map[string]bool{
	"api":    true,
	"s":      true,
	"health": true,
}

func randomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		b[i] = codeCharset[n.Int64()]
	}
	return string(b)
}

// Hook for tests to force collisions.
var newCandidate = randomCode

func codeExists(code string) (bool, error) {
	var count int64
	if err := database.DB.Model(&models.Link{}).Where("short_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateShortCode draws random candidates until one does not collide with a
// stored code. The retry loop is bounded: past maxGenerateAttempts the code
// space is considered exhausted and the request fails.
func GenerateShortCode() (string, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		code := newCandidate(codeLength)
		exists, err := codeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", appErrors.ErrCodeSpaceExhausted
}

// ValidateAlias reports whether an explicit alias is acceptable. Uniqueness is
// not decided here: the pre-check in CreateLink and ultimately the database
// unique index are the arbiters.
func ValidateAlias(alias string) bool {
	if reservedAliases[strings.ToLower(alias)] {
		return false
	}
	return aliasRegex.MatchString(alias)
}
