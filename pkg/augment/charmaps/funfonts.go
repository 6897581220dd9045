package charmaps

// Font maps ASCII letters and digits into one of the Mathematical
// Alphanumeric Symbols alphabets. Only alphabets without gaps in the
// Unicode block are offered, so the mapping is pure offset arithmetic.
type Font struct {
	// Name identifies the font in metadata records.
	Name string

	upperBase rune // codepoint for 'A'
	lowerBase rune // codepoint for 'a'
	digitBase rune // codepoint for '0', or 0 if digits are unmapped
}

// Fonts is the pool of decorative fonts, in the order transforms draw
// from it.
var Fonts = []Font{
	{Name: "bold_italic", upperBase: 0x1D468, lowerBase: 0x1D482},
	{Name: "bold", upperBase: 0x1D400, lowerBase: 0x1D41A, digitBase: 0x1D7CE},
	{Name: "sans_bold", upperBase: 0x1D5D4, lowerBase: 0x1D5EE, digitBase: 0x1D7EC},
	{Name: "monospace", upperBase: 0x1D670, lowerBase: 0x1D68A, digitBase: 0x1D7F6},
}

// FontByName looks up a font from the pool.
func FontByName(name string) (Font, bool) {
	for _, f := range Fonts {
		if f.Name == name {
			return f, true
		}
	}
	return Font{}, false
}

// Map converts r into the font's alphabet. Characters outside A-Z, a-z,
// 0-9 are returned unchanged.
func (f Font) Map(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return f.upperBase + (r - 'A')
	case r >= 'a' && r <= 'z':
		return f.lowerBase + (r - 'a')
	case r >= '0' && r <= '9' && f.digitBase != 0:
		return f.digitBase + (r - '0')
	default:
		return r
	}
}
