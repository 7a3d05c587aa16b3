package humanizer

// lexicalTable neutralizes promotional words and phrases. Matching folds case,
// replacements are written as-is, so a capitalized trigger at the start of a
// sentence comes back lowercase.
var lexicalTable = &Table{
	Name:     "lexical",
	FoldCase: true,
	Entries: []Entry{
		{"exceptional", []string{"solid", "notable", "strong"}},
		{"outstanding", []string{"good", "reliable", "competent"}},
		{"remarkable", []string{"interesting", "notable", "worth noting"}},
		{"incredible", []string{"notable", "significant"}},
		{"amazing", []string{"interesting", "worth considering"}},
		{"stunning", []string{"attractive", "good-looking"}},
		{"breathtaking", []string{"distinctive", "eye-catching"}},
		{"magnificent", []string{"good", "well-built", "solid"}},
		{"extraordinary", []string{"notable", "uncommon"}},
		{"phenomenal", []string{"strong", "impressive"}},
		{"superb", []string{"very good", "high-quality"}},
		{"excellent", []string{"good", "solid"}},
		{"perfect", []string{"well-suited", "appropriate"}},
		{"flawless", []string{"clean", "well-done", "solid"}},
		{"unparalleled", []string{"unique", "distinctive"}},
		{"unmatched", []string{"competitive", "strong"}},
		{"world-class", []string{"competitive", "high-standard"}},
		{"best-in-class", []string{"competitive", "among the better options"}},
		{"top-notch", []string{"good", "solid", "decent"}},
		{"premium", []string{"high-quality", "well-appointed"}},
		{"luxurious", []string{"comfortable", "well-equipped"}},
		{"state-of-the-art", []string{"modern", "current-gen"}},
		{"cutting-edge", []string{"modern", "current", "new"}},
		{"revolutionary", []string{"modern", "updated"}},
		{"game-changing", []string{"significant", "notable"}},
		{"incredibly", []string{"quite", "fairly", "reasonably"}},
		{"extremely", []string{"quite", "fairly", "pretty"}},
		{"absolutely", []string{"quite", "definitely", "certainly"}},
		{"truly", []string{"certainly", "definitely"}},
		{"undoubtedly", []string{"likely", "probably", "generally"}},
		{"certainly", []string{"likely", "probably", "generally"}},
		{"definitely", []string{"likely", "preferably"}},
		{"without a doubt", []string{"likely", "probably"}},
		{"the best", []string{"a good option", "among the better choices"}},
		{"market-leading", []string{"competitive", "well-positioned"}},
		{"industry-leading", []string{"competitive", "established"}},
		{"class-leading", []string{"competitive", "among the better"}},
		{"segment-best", []string{"competitive", "among the good options"}},
		{"pinnacle", []string{"top-tier", "flagship", "highlight"}},
		{"ultimate", []string{"comprehensive", "top-level", "flagship"}},
		{"legendary", []string{"well-known", "established", "classic"}},
		{"benchmark", []string{"standard", "reference", "leader"}},
		{"masterpiece", []string{"well-crafted", "standout model"}},
		{"unrivaled", []string{"leading", "top-tier"}},

		{"undisputed leader", []string{"popular option", "strong seller", "common choice"}},
		{"design philosophy", []string{"design style", "look", "aesthetics"}},
		{"commanding exterior", []string{"distinctive exterior", "exterior look"}},
		{"futuristic", []string{"modern", "new-age", "current"}},
		{"uncompromised safety", []string{"standard safety features", "safety equipment"}},
		{"loaded with", []string{"includes", "has", "features"}},
		{"segment-first", []string{"notable", "new", "modern"}},
		{"thrill-inducing", []string{"powerful", "responsive", "quick"}},
		{"experience", []string{"check out", "note", "see"}},
		{"discover", []string{"check out", "look at", "consider"}},
		{"redefined by", []string{"featuring", "using", "with"}},
		{"blends", []string{"mixes", "combines", "has"}},
		{"combines", []string{"mixes", "has", "features"}},
		{"epitome of", []string{"a good example of", "known for"}},
		{"testament to", []string{"shows", "indicates"}},
		{"set apart", []string{"distinguish", "differentiate"}},
		{"dynamic", []string{"responsive", "good"}},
		{"sculpted", []string{"shaped", "designed"}},
		{"silhouette", []string{"shape", "look"}},
		{"stance", []string{"look", "appearance"}},
		{"all-new", []string{"new", "latest"}},
		{"meticulously", []string{"carefully", "well"}},
		{"crafted", []string{"made", "built"}},
	},
}

// casualTable swaps formal connectors and modal phrases for conversational
// ones. Keys are case-sensitive; "It is" and "it is" are separate entries.
var casualTable = &Table{
	Name: "casual",
	Entries: []Entry{
		{"Discover the", []string{"The", "Take a look at the"}},
		{"Experience the", []string{"The", "Check out the"}},
		{"Introducing the", []string{"The", "Here is the"}},
		{"Welcome to", []string{"This is", "Here is"}},
		{"Redefined by", []string{"With", "Featuring"}},
		{"It is", []string{"It's"}},
		{"it is", []string{"it's"}},
		{"We are", []string{"We're"}},
		{"we are", []string{"we're"}},
		{"They are", []string{"They're"}},
		{"they are", []string{"they're"}},
		{"You will", []string{"You'll"}},
		{"you will", []string{"you'll"}},
		{"does not", []string{"doesn't"}},
		{"do not", []string{"don't"}},
		{"cannot", []string{"can't"}},
		{"will not", []string{"won't"}},
		{"should not", []string{"shouldn't"}},
		{"would not", []string{"wouldn't"}},
		{"could not", []string{"couldn't"}},
		{"is not", []string{"isn't"}},
		{"are not", []string{"aren't"}},
		{"Furthermore,", []string{"Also,", "Plus,", "On top of that,"}},
		{"Moreover,", []string{"Also,", "What's more,", "Plus,"}},
		{"Additionally,", []string{"Also,", "On top of that,", "Plus,"}},
		{"In conclusion,", []string{"Overall,", "All things considered,", "To sum up,"}},
		{"However,", []string{"That said,", "But,", "On the flip side,"}},
		{"Nevertheless,", []string{"Still,", "Even so,", "That said,"}},
		{"Consequently,", []string{"So,", "As a result,", "Because of this,"}},
		{"Subsequently,", []string{"Then,", "After that,", "Following this,"}},
		{"Notwithstanding,", []string{"Despite this,", "Even so,", "Still,"}},
		{"Henceforth,", []string{"From now on,", "Going forward,"}},
		{"Thereafter,", []string{"After that,", "Following this,"}},
		{"Heretofore,", []string{"Until now,", "Before this,"}},
		{"In order to", []string{"To", "For"}},
		{"Due to the fact that", []string{"Because", "Since"}},
		{"For the purpose of", []string{"To", "For"}},
		{"In the event that", []string{"If", "When"}},
		{"At this point in time", []string{"Now", "Currently"}},
		{"In the near future", []string{"Soon", "Shortly"}},
		{"It should be noted that", []string{"Note that", "Keep in mind,"}},
		{"It is important to note that", []string{"Worth noting,", "Keep in mind,"}},
		{"It is worth mentioning that", []string{"Worth mentioning,", "Also,"}},
		{"As a matter of fact", []string{"Actually", "In fact"}},
		{"provides", []string{"offers", "gives you", "comes with"}},
		{"features", []string{"has", "includes", "comes with"}},
		{"boasts", []string{"has", "offers", "includes"}},
		{"delivers", []string{"provides", "gives you", "offers"}},
		{"ensures", []string{"makes sure", "helps with", "gives you"}},
		{"offers", []string{"has", "comes with", "includes"}},
		{"equipped with", []string{"has", "comes with"}},
		{"comes equipped with", []string{"has", "includes"}},
	},
}

var humanExpressions = []string{
	"Here's the thing:",
	"Worth mentioning:",
	"Quick note:",
	"One thing to consider:",
	"Something to keep in mind:",
	"From what we've seen,",
	"Based on real-world usage,",
}

var starterTemplates = []string{
	"When looking at the %s,",
	"As for the %s,",
	"Regarding the %s,",
	"In terms of the %s,",
}

// LexicalEntries returns a copy of the promotional-language table.
func LexicalEntries() []Entry { return copyEntries(lexicalTable.Entries) }

// CasualEntries returns a copy of the casual-phrase table.
func CasualEntries() []Entry { return copyEntries(casualTable.Entries) }

func copyEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Trigger: e.Trigger, Candidates: append([]string(nil), e.Candidates...)}
	}
	return out
}
