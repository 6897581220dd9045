// Package charmaps holds the character-level substitution tables used by
// the leaf transforms: visually similar ASCII and Unicode replacements,
// upside-down glyphs, decorative Unicode fonts, leetspeak, keyboard
// adjacency, and separator character sets.
//
// Everything in this package is pure data resolved at transform
// construction time; nothing here runs in the augmentation hot path.
package charmaps
