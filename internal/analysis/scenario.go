package analysis

// Scenario is a named communicative register with the vocabulary that fits
// it and substitutions for words that do not.
type Scenario struct {
	Key           string
	Label         string
	LabelZH       string
	Icon          string
	Description   string
	Words         map[string]struct{}
	Substitutions map[string]string
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// scenarios is the static register table. Emission order of usage
// suggestions follows this order.
var scenarios = []Scenario{
	{
		Key:         "formal",
		Label:       "Formal writing",
		LabelZH:     "正式书面语",
		Icon:        "🖋️",
		Description: "Official documents, cover letters, reports",
		Words: wordSet(
			"obtain", "purchase", "commence", "conclude", "require",
			"assist", "inquire", "inform", "demonstrate", "utilize",
			"sufficient", "therefore", "furthermore", "regarding",
			"request", "receive", "provide", "consider", "appropriate",
			"endeavor", "subsequently", "approximately", "numerous",
		),
		Substitutions: map[string]string{
			"get":   "obtain",
			"buy":   "purchase",
			"start": "commence",
			"begin": "commence",
			"end":   "conclude",
			"need":  "require",
			"help":  "assist",
			"ask":   "inquire",
			"tell":  "inform",
			"show":  "demonstrate",
			"use":   "utilize",
			"enough": "sufficient",
			"so":    "therefore",
			"also":  "furthermore",
			"about": "regarding",
			"try":   "endeavor",
			"then":  "subsequently",
			"lots":  "numerous",
			"many":  "numerous",
		},
	},
	{
		Key:         "casual",
		Label:       "Casual conversation",
		LabelZH:     "日常口语",
		Icon:        "💬",
		Description: "Chats with friends, texting, everyday talk",
		Words: wordSet(
			"get", "buy", "start", "end", "need", "help", "ask", "tell",
			"show", "use", "enough", "so", "also", "about", "try",
			"kids", "guys", "stuff", "thing", "cool", "awesome",
			"okay", "yeah", "fun", "great", "nice", "happy",
		),
		Substitutions: map[string]string{
			"obtain":       "get",
			"purchase":     "buy",
			"commence":     "start",
			"conclude":     "end",
			"require":      "need",
			"assist":       "help",
			"inquire":      "ask",
			"inform":       "tell",
			"demonstrate":  "show",
			"utilize":      "use",
			"sufficient":   "enough",
			"therefore":    "so",
			"furthermore":  "also",
			"regarding":    "about",
			"endeavor":     "try",
			"children":     "kids",
			"excellent":    "awesome",
			"subsequently": "then",
		},
	},
	{
		Key:         "academic",
		Label:       "Academic writing",
		LabelZH:     "学术写作",
		Icon:        "🎓",
		Description: "Essays, theses, research papers",
		Words: wordSet(
			"analyze", "argue", "conclude", "demonstrate", "evaluate",
			"examine", "hypothesis", "indicate", "significant",
			"methodology", "evidence", "furthermore", "moreover",
			"consequently", "establish", "propose", "investigate",
			"substantial", "phenomenon", "critique",
		),
		Substitutions: map[string]string{
			"think":   "argue",
			"look":    "examine",
			"check":   "evaluate",
			"show":    "demonstrate",
			"big":     "significant",
			"guess":   "hypothesize",
			"prove":   "establish",
			"study":   "investigate",
			"also":    "moreover",
			"so":      "consequently",
			"idea":    "hypothesis",
			"find":    "identify",
		},
	},
	{
		Key:         "business",
		Label:       "Business communication",
		LabelZH:     "商务沟通",
		Icon:        "💼",
		Description: "Emails, meetings, presentations at work",
		Words: wordSet(
			"schedule", "discuss", "propose", "deliver", "confirm",
			"coordinate", "prioritize", "implement", "facilitate",
			"stakeholder", "deadline", "agenda", "objective",
			"promptly", "follow", "align", "review", "approve",
			"negotiate", "collaborate",
		),
		Substitutions: map[string]string{
			"talk":  "discuss",
			"plan":  "schedule",
			"soon":  "promptly",
			"goal":  "objective",
			"do":    "implement",
			"help":  "facilitate",
			"check": "review",
			"okay":  "approve",
			"fix":   "resolve",
			"meet":  "convene",
		},
	},
	{
		Key:         "social",
		Label:       "Social media",
		LabelZH:     "社交媒体",
		Icon:        "📱",
		Description: "Posts, comments, short-form writing",
		Words: wordSet(
			"cool", "awesome", "amazing", "love", "fun", "wow",
			"great", "epic", "vibe", "mood", "trending", "viral",
			"share", "follow", "post", "like", "story",
		),
		Substitutions: map[string]string{
			"excellent":   "amazing",
			"interesting": "cool",
			"enjoyable":   "fun",
			"popular":     "trending",
			"wonderful":   "awesome",
			"appreciate":  "love",
		},
	},
}

// Scenarios returns the configured register table in emission order.
func Scenarios() []Scenario {
	return scenarios
}
