package lexicon

// Contractions maps multi-word phrases to their contracted forms. Keys
// are lowercase except for the pronoun I; lookups should normalize case
// before matching.
var Contractions = map[string]string{
	"are not":    "aren't",
	"cannot":     "can't",
	"could not":  "couldn't",
	"did not":    "didn't",
	"do not":     "don't",
	"does not":   "doesn't",
	"had not":    "hadn't",
	"has not":    "hasn't",
	"have not":   "haven't",
	"he is":      "he's",
	"he has":     "he's",
	"he will":    "he'll",
	"he would":   "he'd",
	"I am":       "I'm",
	"I have":     "I've",
	"I will":     "I'll",
	"I would":    "I'd",
	"is not":     "isn't",
	"it is":      "it's",
	"it has":     "it's",
	"it will":    "it'll",
	"let us":     "let's",
	"she is":     "she's",
	"she has":    "she's",
	"she will":   "she'll",
	"she would":  "she'd",
	"should not": "shouldn't",
	"that is":    "that's",
	"there is":   "there's",
	"they are":   "they're",
	"they have":  "they've",
	"they will":  "they'll",
	"they would": "they'd",
	"was not":    "wasn't",
	"we are":     "we're",
	"we have":    "we've",
	"we will":    "we'll",
	"we would":   "we'd",
	"were not":   "weren't",
	"what is":    "what's",
	"who is":     "who's",
	"will not":   "won't",
	"would not":  "wouldn't",
	"you are":    "you're",
	"you have":   "you've",
	"you will":   "you'll",
	"you would":  "you'd",
}
