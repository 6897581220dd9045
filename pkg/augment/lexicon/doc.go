// Package lexicon holds the word-level data tables used by transforms:
// contraction phrases, gendered word pairs, and common misspellings.
//
// Like charmaps, this package is pure data. Tables are plain maps so
// transforms can extend or replace them through their configuration.
package lexicon
