// Package analysis implements the word-analysis pipeline: etymological
// decomposition over curated morpheme tables, usage/register classification
// over curated scenario word lists, and morphological word-family derivation
// with external verification.
//
// All analyzers are pure functions over their inputs plus the static tables
// in this package. They hold no state between calls and are safe for
// concurrent use.
package analysis

import "sort"

// ComponentKind classifies a morpheme by its position in a word.
type ComponentKind string

const (
	KindPrefix ComponentKind = "prefix"
	KindRoot   ComponentKind = "root"
	KindSuffix ComponentKind = "suffix"
)

// Morpheme is one curated prefix, root, or suffix pattern with its English
// and Chinese glosses.
type Morpheme struct {
	Pattern string
	GlossEN string
	GlossZH string
}

// prefixTable lists recognized prefixes. Order matters: when two patterns of
// equal length both match, the earlier entry wins. Tests pin this rule.
var prefixTable = []Morpheme{
	{Pattern: "anti", GlossEN: "against", GlossZH: "反对，相反"},
	{Pattern: "auto", GlossEN: "self", GlossZH: "自己，自动"},
	{Pattern: "counter", GlossEN: "opposite", GlossZH: "相反，对抗"},
	{Pattern: "circum", GlossEN: "around", GlossZH: "环绕，周围"},
	{Pattern: "inter", GlossEN: "between", GlossZH: "在...之间，相互"},
	{Pattern: "intro", GlossEN: "inward", GlossZH: "向内"},
	{Pattern: "micro", GlossEN: "small", GlossZH: "微小"},
	{Pattern: "multi", GlossEN: "many", GlossZH: "多"},
	{Pattern: "super", GlossEN: "above, beyond", GlossZH: "超级，在上"},
	{Pattern: "trans", GlossEN: "across", GlossZH: "横越，转换"},
	{Pattern: "under", GlossEN: "below, not enough", GlossZH: "在下，不足"},
	{Pattern: "over", GlossEN: "too much", GlossZH: "过度"},
	{Pattern: "fore", GlossEN: "before", GlossZH: "预先，前面"},
	{Pattern: "mono", GlossEN: "one", GlossZH: "单一"},
	{Pattern: "post", GlossEN: "after", GlossZH: "在后"},
	{Pattern: "semi", GlossEN: "half", GlossZH: "半"},
	{Pattern: "tele", GlossEN: "far", GlossZH: "远距离"},
	{Pattern: "dis", GlossEN: "not, apart", GlossZH: "不，分开"},
	{Pattern: "mis", GlossEN: "wrongly", GlossZH: "错误地"},
	{Pattern: "non", GlossEN: "not", GlossZH: "非，不"},
	{Pattern: "pre", GlossEN: "before", GlossZH: "在前，预先"},
	{Pattern: "pro", GlossEN: "forward, in favor", GlossZH: "向前，赞成"},
	{Pattern: "sub", GlossEN: "under", GlossZH: "在下，次级"},
	{Pattern: "uni", GlossEN: "one", GlossZH: "单一"},
	{Pattern: "bi", GlossEN: "two", GlossZH: "二，双"},
	{Pattern: "co", GlossEN: "together", GlossZH: "共同"},
	{Pattern: "de", GlossEN: "down, reverse", GlossZH: "向下，去除"},
	{Pattern: "ex", GlossEN: "out, former", GlossZH: "向外，前任"},
	{Pattern: "im", GlossEN: "not", GlossZH: "不，无"},
	{Pattern: "in", GlossEN: "not, into", GlossZH: "不；向内"},
	{Pattern: "ir", GlossEN: "not", GlossZH: "不，无"},
	{Pattern: "re", GlossEN: "again, back", GlossZH: "再次，返回"},
	{Pattern: "un", GlossEN: "not", GlossZH: "不，非"},
}

// rootTable lists recognized roots, mostly Latin and Greek. A root may match
// anywhere inside the stripped remainder, not just at an edge.
var rootTable = []Morpheme{
	{Pattern: "struct", GlossEN: "build", GlossZH: "建造"},
	{Pattern: "script", GlossEN: "write", GlossZH: "书写"},
	{Pattern: "spect", GlossEN: "look", GlossZH: "看"},
	{Pattern: "tract", GlossEN: "pull, drag", GlossZH: "拉，拖"},
	{Pattern: "graph", GlossEN: "write, draw", GlossZH: "书写，绘图"},
	{Pattern: "therm", GlossEN: "heat", GlossZH: "热"},
	{Pattern: "believ", GlossEN: "trust, accept as true", GlossZH: "相信"},
	{Pattern: "chron", GlossEN: "time", GlossZH: "时间"},
	{Pattern: "spir", GlossEN: "breathe", GlossZH: "呼吸"},
	{Pattern: "dict", GlossEN: "say, speak", GlossZH: "说话"},
	{Pattern: "duct", GlossEN: "lead", GlossZH: "引导"},
	{Pattern: "fact", GlossEN: "make, do", GlossZH: "做，制造"},
	{Pattern: "fect", GlossEN: "make, do", GlossZH: "做，制造"},
	{Pattern: "form", GlossEN: "shape", GlossZH: "形状"},
	{Pattern: "ject", GlossEN: "throw", GlossZH: "投掷"},
	{Pattern: "junct", GlossEN: "join", GlossZH: "连接"},
	{Pattern: "migr", GlossEN: "move, wander", GlossZH: "迁移"},
	{Pattern: "mort", GlossEN: "death", GlossZH: "死亡"},
	{Pattern: "phon", GlossEN: "sound", GlossZH: "声音"},
	{Pattern: "photo", GlossEN: "light", GlossZH: "光"},
	{Pattern: "port", GlossEN: "carry", GlossZH: "携带"},
	{Pattern: "press", GlossEN: "push", GlossZH: "压，按"},
	{Pattern: "rupt", GlossEN: "break", GlossZH: "破裂"},
	{Pattern: "scrib", GlossEN: "write", GlossZH: "书写"},
	{Pattern: "sens", GlossEN: "feel", GlossZH: "感觉"},
	{Pattern: "sent", GlossEN: "feel", GlossZH: "感觉"},
	{Pattern: "happ", GlossEN: "luck, chance", GlossZH: "运气，机缘"},
	{Pattern: "tain", GlossEN: "hold", GlossZH: "保持"},
	{Pattern: "tend", GlossEN: "stretch", GlossZH: "伸展"},
	{Pattern: "vert", GlossEN: "turn", GlossZH: "转动"},
	{Pattern: "vers", GlossEN: "turn", GlossZH: "转动"},
	{Pattern: "vid", GlossEN: "see", GlossZH: "看见"},
	{Pattern: "vis", GlossEN: "see", GlossZH: "看见"},
	{Pattern: "voc", GlossEN: "call, voice", GlossZH: "呼喊，声音"},
	{Pattern: "aud", GlossEN: "hear", GlossZH: "听"},
	{Pattern: "bio", GlossEN: "life", GlossZH: "生命"},
	{Pattern: "cred", GlossEN: "believe", GlossZH: "相信"},
	{Pattern: "cept", GlossEN: "take, seize", GlossZH: "拿取"},
	{Pattern: "duc", GlossEN: "lead", GlossZH: "引导"},
	{Pattern: "geo", GlossEN: "earth", GlossZH: "地球，土地"},
	{Pattern: "log", GlossEN: "word, study", GlossZH: "言语，学科"},
	{Pattern: "man", GlossEN: "hand", GlossZH: "手"},
	{Pattern: "ped", GlossEN: "foot", GlossZH: "足"},
	{Pattern: "pos", GlossEN: "place, put", GlossZH: "放置"},
	{Pattern: "vac", GlossEN: "empty", GlossZH: "空"},
}

// suffixTable lists recognized suffixes with the grammatical sense they add.
var suffixTable = []Morpheme{
	{Pattern: "ization", GlossEN: "process of making", GlossZH: "…化的过程"},
	{Pattern: "ability", GlossEN: "quality of being able", GlossZH: "可…性"},
	{Pattern: "ation", GlossEN: "action or process", GlossZH: "行为，过程"},
	{Pattern: "ment", GlossEN: "result or means", GlossZH: "行为结果"},
	{Pattern: "ness", GlossEN: "state or quality", GlossZH: "状态，性质"},
	{Pattern: "ship", GlossEN: "state, position", GlossZH: "身份，关系"},
	{Pattern: "tion", GlossEN: "action or process", GlossZH: "行为，过程"},
	{Pattern: "sion", GlossEN: "action or process", GlossZH: "行为，过程"},
	{Pattern: "able", GlossEN: "capable of", GlossZH: "可…的"},
	{Pattern: "ible", GlossEN: "capable of", GlossZH: "可…的"},
	{Pattern: "ance", GlossEN: "state or quality", GlossZH: "状态，性质"},
	{Pattern: "ence", GlossEN: "state or quality", GlossZH: "状态，性质"},
	{Pattern: "hood", GlossEN: "state, condition", GlossZH: "身份，时期"},
	{Pattern: "less", GlossEN: "without", GlossZH: "无，没有"},
	{Pattern: "ward", GlossEN: "in the direction of", GlossZH: "朝向"},
	{Pattern: "ical", GlossEN: "relating to", GlossZH: "…的"},
	{Pattern: "ious", GlossEN: "full of", GlossZH: "充满…的"},
	{Pattern: "ful", GlossEN: "full of", GlossZH: "充满…的"},
	{Pattern: "ish", GlossEN: "somewhat like", GlossZH: "有点…的"},
	{Pattern: "ism", GlossEN: "doctrine, belief", GlossZH: "主义，学说"},
	{Pattern: "ist", GlossEN: "one who practices", GlossZH: "…者，…家"},
	{Pattern: "ity", GlossEN: "state or quality", GlossZH: "状态，性质"},
	{Pattern: "ive", GlossEN: "having the nature of", GlossZH: "有…性质的"},
	{Pattern: "ous", GlossEN: "full of", GlossZH: "充满…的"},
	{Pattern: "ing", GlossEN: "action, ongoing", GlossZH: "进行中"},
	{Pattern: "al", GlossEN: "relating to", GlossZH: "…的"},
	{Pattern: "an", GlossEN: "relating to, one from", GlossZH: "…的；…人"},
	{Pattern: "ed", GlossEN: "past action", GlossZH: "过去的"},
	{Pattern: "er", GlossEN: "one who, more", GlossZH: "…者；更…"},
	{Pattern: "or", GlossEN: "one who", GlossZH: "…者"},
	{Pattern: "ly", GlossEN: "in the manner of", GlossZH: "…地"},
	{Pattern: "y", GlossEN: "having the quality of", GlossZH: "有…特点的"},
}

// byPatternLength returns the entries sorted longest pattern first. The sort
// is stable so equal-length patterns keep their table order.
func byPatternLength(entries []Morpheme) []Morpheme {
	sorted := make([]Morpheme, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Pattern) > len(sorted[j].Pattern)
	})
	return sorted
}

var (
	prefixesByLength = byPatternLength(prefixTable)
	rootsByLength    = byPatternLength(rootTable)
	suffixesByLength = byPatternLength(suffixTable)
)
