package transforms

// Transform family identifiers, as recorded in metadata and accepted by
// the registry.
const (
	FamilyBaseline           = "baseline"
	FamilyApplyLambda        = "apply_lambda"
	FamilyChangeCase         = "change_case"
	FamilyContractions       = "contractions"
	FamilyEncodeText         = "encode_text"
	FamilyInsertPunctuation  = "insert_punctuation_chars"
	FamilyInsertText         = "insert_text"
	FamilyInsertWhitespace   = "insert_whitespace_chars"
	FamilyInsertZeroWidth    = "insert_zero_width_chars"
	FamilyMergeWords         = "merge_words"
	FamilyReplaceBidirection = "replace_bidirectional"
	FamilyReplaceFunFonts    = "replace_fun_fonts"
	FamilyReplaceSimilar     = "replace_similar_chars"
	FamilyReplaceSimilarUni  = "replace_similar_unicode_chars"
	FamilyReplaceText        = "replace_text"
	FamilyReplaceUpsideDown  = "replace_upside_down"
	FamilyReplaceWords       = "replace_words"
	FamilySimulateTypos      = "simulate_typos"
	FamilySplitWords         = "split_words"
	FamilySwapGenderedWords  = "swap_gendered_words"
)

// Transform-specific metadata field keys.
const (
	KeyCase              = "case"
	KeyEncoder           = "encoder"
	KeyVaryChars         = "vary_chars"
	KeyFont              = "font"
	KeyTypoType          = "typo_type"
	KeyInsertionLocation = "insertion_location"
	KeyNumInsertions     = "num_insertions"
	KeyReplaced          = "replaced"
	KeyLambda            = "lambda"
)

// Families lists every known transform family in registry order.
func Families() []string {
	return []string{
		FamilyBaseline,
		FamilyApplyLambda,
		FamilyChangeCase,
		FamilyContractions,
		FamilyEncodeText,
		FamilyInsertPunctuation,
		FamilyInsertText,
		FamilyInsertWhitespace,
		FamilyInsertZeroWidth,
		FamilyMergeWords,
		FamilyReplaceBidirection,
		FamilyReplaceFunFonts,
		FamilyReplaceSimilar,
		FamilyReplaceSimilarUni,
		FamilyReplaceText,
		FamilyReplaceUpsideDown,
		FamilyReplaceWords,
		FamilySimulateTypos,
		FamilySplitWords,
		FamilySwapGenderedWords,
	}
}
