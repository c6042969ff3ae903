package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	turkishLower = cases.Lower(language.Turkish)
	turkishUpper = cases.Upper(language.Turkish)
)

// Clinic shorthand expanded during normalization. Applied after lowercasing,
// every occurrence.
var abbreviations = [][2]string{
	{"nx", "nefrektomi"},
	{"bx", "biyopsi"},
}

// NormalizeText canonicalizes free text for comparison: trim, Turkish-locale
// lowercase, then clinic abbreviation expansion. Idempotent; empty input
// yields the empty string.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = turkishLower.String(strings.TrimSpace(s))
	for _, ab := range abbreviations {
		s = strings.ReplaceAll(s, ab[0], ab[1])
	}
	return s
}

// LowerTurkish lowercases with Turkish casing rules (İ -> i, I -> ı)
func LowerTurkish(s string) string {
	return turkishLower.String(s)
}

// UpperTurkish uppercases with Turkish casing rules (i -> İ)
func UpperTurkish(s string) string {
	return turkishUpper.String(s)
}
