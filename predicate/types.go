package predicate

import (
	"errors"
	"fmt"
)

// Sentinel errors for predicate construction.
var (
	// ErrShape is returned when k lies outside the domain of its kind.
	ErrShape = errors.New("predicate: k out of range for kind")

	// ErrUnknownKind is returned for an unrecognised kind or name.
	ErrUnknownKind = errors.New("predicate: unknown kind")

	// ErrInvalidPredicate is returned by Validate for the zero Predicate.
	ErrInvalidPredicate = errors.New("predicate: invalid predicate")

	// ErrSyntax is returned by Parse for a malformed expression.
	ErrSyntax = errors.New("predicate: syntax error")
)

// Kind selects the property a Predicate tests.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindDivided
	KindDividedComplement
	KindSparse
	KindSparseComplement
	KindIndependent
	KindClique
)

var kindNames = [...]string{
	kindInvalid:           "invalid",
	KindDivided:           "divided",
	KindDividedComplement: "divided-complement",
	KindSparse:            "sparse",
	KindSparseComplement:  "sparse-complement",
	KindIndependent:       "independent",
	KindClique:            "clique",
}

// String returns the expression name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// parameterised reports whether the kind takes a k argument.
func (k Kind) parameterised() bool {
	switch k {
	case KindDivided, KindDividedComplement, KindSparse, KindSparseComplement:
		return true
	}
	return false
}

// minK returns the smallest admissible k for a parameterised kind.
func (k Kind) minK() int {
	if k == KindDivided || k == KindDividedComplement {
		return 1
	}
	return 0
}

// Predicate is an immutable induced-hereditary subset predicate.
// The zero value is invalid; build one with a constructor, New or Parse.
type Predicate struct {
	kind Kind
	k    int
}

// Kind returns the predicate's kind.
func (p Predicate) Kind() Kind { return p.kind }

// K returns the size parameter, or 0 for independent and clique.
func (p Predicate) K() int { return p.k }
