// Copyright (c) 2026 TheatreAPI. All rights reserved.
// Author: negativchik09

package actor

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// personalNamePattern accepts Cyrillic letters plus the hyphen, apostrophe and
// backtick used in compound and transliterated names. The whole string must match.
var personalNamePattern = regexp.MustCompile("^[\\p{Cyrillic}'’`-]+$")

// FullName is the validated first/last/middle name of an actor.
type FullName struct {
	first  string
	last   string
	middle string
}

// First returns the given name.
func (n FullName) First() string { return n.first }

// Last returns the family name.
func (n FullName) Last() string { return n.last }

// Middle returns the patronymic.
func (n FullName) Middle() string { return n.middle }

// String renders "Last First Middle".
func (n FullName) String() string {
	return strings.Join([]string{n.last, n.first, n.middle}, " ")
}

// normalizeName composes the name to NFC so decomposed input such as "и" + U+0306
// matches the same pattern as "й", and trims surrounding whitespace.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// isPersonalName reports whether an already normalized name passes the script rule.
func isPersonalName(name string) bool {
	return personalNamePattern.MatchString(name)
}
