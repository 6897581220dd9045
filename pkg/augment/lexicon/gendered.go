package lexicon

// genderedPairs lists word pairs swapped by the gendered-word transform.
// The table below is expanded into a bidirectional lowercase map at init.
var genderedPairs = [][2]string{
	{"actor", "actress"},
	{"boy", "girl"},
	{"boyfriend", "girlfriend"},
	{"brother", "sister"},
	{"dad", "mom"},
	{"father", "mother"},
	{"gentleman", "lady"},
	{"gentlemen", "ladies"},
	{"grandfather", "grandmother"},
	{"grandson", "granddaughter"},
	{"he", "she"},
	{"her", "him"},
	{"hers", "his"},
	{"herself", "himself"},
	{"husband", "wife"},
	{"king", "queen"},
	{"male", "female"},
	{"man", "woman"},
	{"men", "women"},
	{"mr", "mrs"},
	{"nephew", "niece"},
	{"prince", "princess"},
	{"sir", "madam"},
	{"son", "daughter"},
	{"uncle", "aunt"},
	{"waiter", "waitress"},
}

// Gendered maps each gendered word to its counterpart, both directions.
var Gendered = func() map[string]string {
	m := make(map[string]string, 2*len(genderedPairs))
	for _, pair := range genderedPairs {
		m[pair[0]] = pair[1]
		m[pair[1]] = pair[0]
	}
	return m
}()
