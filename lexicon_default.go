package taskparse

// Built-in word tables. Data files loaded through LoadDir overlay these,
// they never replace them wholesale. Verb forms are base (imperative) forms;
// plural nouns such as "reports" or "plans" therefore never collide with the
// verb table.

var defaultVerbs = map[string][]string{
	"analyze": {
		"analyze", "assess", "audit", "calculate", "compute", "estimate",
		"evaluate", "examine", "forecast", "interpret", "investigate",
		"measure", "research", "review", "study", "synthesize",
	},
	"assist": {
		"aid", "assist", "facilitate", "guide", "help", "serve", "support",
	},
	"build": {
		"assemble", "build", "construct", "drill", "excavate", "fabricate",
		"install", "weld",
	},
	"collect": {
		"collect", "gather", "obtain", "retrieve", "sample", "select",
	},
	"communicate": {
		"advise", "answer", "brief", "communicate", "confer", "consult",
		"explain", "inform", "instruct", "interview", "negotiate", "notify",
		"present", "recommend", "report", "respond", "teach", "train",
	},
	"coordinate": {
		"arrange", "assign", "coordinate", "delegate", "dispatch",
		"organize", "schedule",
	},
	"create": {
		"compose", "create", "design", "develop", "devise", "draft",
		"engineer", "formulate", "write",
	},
	"direct": {
		"administer", "direct", "govern", "lead", "manage", "oversee",
		"supervise",
	},
	"handle": {
		"carry", "deliver", "distribute", "handle", "lift", "load", "move",
		"pack", "receive", "ship", "sort", "stock", "store", "transport",
		"unload",
	},
	"implement": {
		"apply", "conduct", "execute", "implement", "perform", "provide",
		"render", "use", "utilize",
	},
	"improve": {
		"enhance", "expand", "improve", "increase", "modernize", "optimize",
		"reduce", "refine", "streamline", "strengthen",
	},
	"inspect": {
		"check", "diagnose", "inspect", "monitor", "observe", "test",
		"verify",
	},
	"maintain": {
		"adjust", "calibrate", "clean", "fix", "lubricate", "maintain",
		"overhaul", "repair", "replace", "service", "troubleshoot",
	},
	"operate": {
		"activate", "control", "drive", "operate", "position", "regulate",
		"run", "set", "start", "stop", "tend",
	},
	"plan": {
		"anticipate", "commit", "determine", "establish", "plan",
		"prioritize", "project", "propose",
	},
	"prepare": {
		"compile", "document", "file", "prepare", "process", "record",
		"summarize", "transcribe", "update",
	},
	"procure": {
		"acquire", "buy", "order", "procure", "purchase", "requisition",
		"sell",
	},
	"protect": {
		"enforce", "ensure", "guard", "patrol", "protect", "safeguard",
		"secure",
	},
	"resolve": {
		"address", "correct", "reconcile", "resolve", "settle", "solve",
	},
	"staff": {
		"employ", "hire", "mentor", "motivate", "promote", "recruit",
		"staff",
	},
}

// defaultVerbForms maps a few inflected forms back to their base. Gerunds
// that commonly head noun compounds ("building codes", "training programs",
// "operating procedures") are deliberately absent so that statements ending
// in such compounds keep their noun reading.
var defaultVerbForms = map[string]string{
	"analyzing":    "analyze",
	"coordinating": "coordinate",
	"developing":   "develop",
	"implementing": "implement",
	"maintaining":  "maintain",
	"managing":     "manage",
}

var defaultPrepositions = []string{
	"about", "above", "across", "after", "against", "along", "among",
	"around", "as", "at", "before", "behind", "below", "between", "beyond",
	"by", "during", "for", "from", "in", "into", "near", "of", "off", "on",
	"onto", "over", "per", "regarding", "through", "throughout", "to",
	"toward", "towards", "under", "upon", "via", "with", "within", "without",
}

var defaultConjunctions = []ConjunctionEntry{
	{Form: "and", Kind: "coordinating", Policy: PolicyCartesian},
	{Form: "or", Kind: "coordinating", Policy: PolicyCartesian},
	{Form: "and/or", Kind: "coordinating", Policy: PolicyCartesian},
	{Form: "but", Kind: "coordinating", Policy: PolicyCompound},
	{Form: "yet", Kind: "coordinating", Policy: PolicyCompound},
	{Form: "nor", Kind: "correlative", Policy: PolicyCompound},
	{Form: "although", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "because", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "if", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "since", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "unless", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "until", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "when", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "whether", Kind: "subordinating", Policy: PolicyConditional},
	{Form: "while", Kind: "subordinating", Policy: PolicyConditional},
}

var defaultDeterminers = []string{
	"a", "all", "an", "any", "both", "each", "every", "her", "his", "its",
	"my", "no", "other", "our", "some", "that", "the", "their", "these",
	"this", "those", "your",
}

var defaultPronouns = []string{
	"he", "him", "i", "it", "me", "she", "them", "they", "us", "we", "which",
	"who", "whom", "you",
}

var defaultAdverbs = []string{
	"accurately", "annually", "carefully", "closely", "continually",
	"continuously", "correctly", "daily", "directly", "effectively",
	"efficiently", "frequently", "independently", "manually", "monthly",
	"periodically", "promptly", "properly", "regularly", "routinely",
	"safely", "thoroughly", "weekly",
}

var defaultAdjectives = []string{
	"adequate", "appropriate", "available", "existing", "general",
	"necessary", "new", "ongoing", "potential", "proper", "routine",
	"special", "standard",
}

var defaultConcepts = []struct {
	phrase    string
	base      string
	modifiers string
	category  string
}{
	{"accounts payable", "accounts", "payable", "finance"},
	{"accounts receivable", "accounts", "receivable", "finance"},
	{"cost reduction", "reduction", "cost", "operations"},
	{"customer service", "service", "customer", "operations"},
	{"data entry", "entry", "data", "technology"},
	{"data processing", "processing", "data", "technology"},
	{"decision making", "making", "decision", "management"},
	{"first aid", "aid", "first", "safety"},
	{"general public", "public", "general", "communication"},
	{"health care", "care", "health", "healthcare"},
	{"human resources", "resources", "human", "administration"},
	{"information technology", "technology", "information", "technology"},
	{"law enforcement", "enforcement", "law", "public safety"},
	{"mental health", "health", "mental", "healthcare"},
	{"policy making", "making", "policy", "management"},
	{"preventive maintenance", "maintenance", "preventive", "operations"},
	{"public relations", "relations", "public", "communication"},
	{"quality assurance", "assurance", "quality", "operations"},
	{"quality control", "control", "quality", "operations"},
	{"raw materials", "materials", "raw", "production"},
	{"real estate", "estate", "real", "finance"},
	{"record keeping", "keeping", "record", "administration"},
	{"risk management", "management", "risk", "management"},
	{"social services", "services", "social", "administration"},
	{"subject matter", "matter", "subject", "education"},
	{"supply chain", "chain", "supply", "logistics"},
	{"word processing", "processing", "word", "technology"},
}

// loadDefaults installs the built-in tables.
func (lex *Lexicon) loadDefaults() {
	for category, forms := range defaultVerbs {
		for _, f := range forms {
			lex.AddVerb(f, "", category)
		}
	}
	for form, base := range defaultVerbForms {
		e, _ := lex.Verb(base)
		lex.AddVerb(form, base, e.Category)
	}
	for _, p := range defaultPrepositions {
		lex.AddPreposition(p)
	}
	for _, c := range defaultConjunctions {
		lex.AddConjunction(c.Form, c.Kind, c.Policy)
	}
	for _, d := range defaultDeterminers {
		lex.AddDeterminer(d)
	}
	for _, p := range defaultPronouns {
		lex.AddPronoun(p)
	}
	for _, a := range defaultAdverbs {
		lex.AddAdverb(a)
	}
	for _, a := range defaultAdjectives {
		lex.AddAdjective(a)
	}
	for _, c := range defaultConcepts {
		lex.AddConcept(c.phrase, "", c.base, []string{c.modifiers}, c.category)
	}
}
