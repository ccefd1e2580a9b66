package service

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	helper "homework_backend/internals/helpers"
)

const (
	CodeLength  = 5
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	maxCodeAttempts = 20
)

// GenerateCode returns CodeLength random letters A-Z.
func GenerateCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for range CodeLength {
		b.WriteByte(codeLetters[rand.IntN(len(codeLetters))])
	}
	return b.String()
}

// ValidateCode accepts exactly five uppercase ASCII letters. Each kind of
// failure has its own message.
func ValidateCode(code string) error {
	switch {
	case code == "":
		return helper.NewFieldError("code", "code is required")
	case utf8.RuneCountInString(code) != CodeLength:
		return helper.NewFieldError("code", "code must be exactly 5 characters")
	case !helper.IsClassCode(code):
		return helper.NewFieldError("code", "code may only contain uppercase letters A-Z")
	}
	return nil
}

// NormalizeCode is used where the caller types a code to join a classroom.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ComputeStats: participation = homework / (students * expected) * 100, rounded.
func ComputeStats(students, homework int64, expectedPerStudent int) (avg int) {
	if students <= 0 || expectedPerStudent <= 0 {
		return 0
	}
	ratio := float64(homework) / float64(students*int64(expectedPerStudent)) * 100
	return int(ratio + 0.5)
}
