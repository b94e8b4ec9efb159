package board

import "errors"

// Sentinel errors returned when a board cannot be built.
var (
	// ErrEmptyCatalog is returned when a catalog has no item types to draw from.
	ErrEmptyCatalog = errors.New("board: empty item catalog")

	// ErrDuplicateItem is returned when two catalog items share an ID.
	ErrDuplicateItem = errors.New("board: duplicate item id")

	// ErrInvalidDimensions is returned for non-positive widths or heights
	// and for layouts whose rows differ in length.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrNegativeValue is returned for items worth less than zero, which
	// would let a match lower the score.
	ErrNegativeValue = errors.New("board: negative item value")

	// ErrUnknownGlyph is returned when a layout references a glyph that no
	// catalog item uses.
	ErrUnknownGlyph = errors.New("board: unknown glyph")

	// ErrUnsettled is returned when Settle cannot clear pre-existing matches.
	ErrUnsettled = errors.New("board: could not settle grid")
)
