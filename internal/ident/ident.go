// Package ident produces short opaque identifiers for stories, sessions,
// and profiles. IDs are random, not sequential, and carry no meaning;
// uniqueness is only required within a single device's data.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Length of generated identifiers.
const Length = 9

// New returns a fresh short identifier.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:Length]
}
