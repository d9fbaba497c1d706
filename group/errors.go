package group

import "errors"

var (
	// ErrUnresolvedLetter is returned when a word names a letter with no cached matrix.
	ErrUnresolvedLetter = errors.New("group: letter has no cached matrix")
	// ErrUnsupportedResidue is returned for residue characteristics other than 2 and 5.
	ErrUnsupportedResidue = errors.New("group: residue characteristic must be 2 or 5")
	// ErrUnknownPreset is returned when no preset matches the requested Coxeter type.
	ErrUnknownPreset = errors.New("group: unknown Coxeter preset")
	// ErrBadRadius is returned for a negative truncation radius.
	ErrBadRadius = errors.New("group: radius must be non-negative")
	// ErrAlphabetMismatch is returned when lengths and alphabets differ in count.
	ErrAlphabetMismatch = errors.New("group: lengths and alphabets differ in count")
	// ErrWordNotInGroup is returned when a word's matrix matches no Weyl group element.
	ErrWordNotInGroup = errors.New("group: word is not in the Weyl group")
)
