package lexicon

// Misspellings maps correctly spelled words to typos people actually
// make. Typo simulation prefers these over mechanical key swaps when a
// word has an entry.
var Misspellings = map[string][]string{
	"about":      {"abot", "abuot"},
	"address":    {"adress"},
	"again":      {"agian", "agin"},
	"because":    {"becuase", "becasue", "beacuse"},
	"before":     {"befor", "bofore"},
	"believe":    {"beleive", "belive"},
	"business":   {"buisness", "busness"},
	"definitely": {"definately", "definitly"},
	"different":  {"diffrent", "differnt"},
	"friend":     {"freind", "frend"},
	"going":      {"goin", "gonig"},
	"government": {"goverment", "govenment"},
	"really":     {"realy", "rellay"},
	"receive":    {"recieve", "receve"},
	"said":       {"siad", "sayed"},
	"separate":   {"seperate", "seprate"},
	"should":     {"shoudl", "shuold"},
	"their":      {"thier", "theri"},
	"there":      {"ther", "tehre"},
	"they":       {"tehy", "thye"},
	"thought":    {"thougt", "thouhgt"},
	"through":    {"thru", "throught"},
	"want":       {"wnat", "watn"},
	"weird":      {"wierd"},
	"where":      {"wher", "whree"},
	"which":      {"wich", "whihc"},
	"with":       {"wiht", "wtih"},
	"would":      {"woudl", "wuold"},
	"your":       {"youre", "yuor"},
}
