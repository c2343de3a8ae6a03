package intent

import (
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

// pattern maps trigger keywords to an intent category. Keywords are matched
// against the normalized (lowercased, punctuation-stripped) query.
type pattern struct {
	category interfaces.IntentCategory
	keywords []string
}

// patternTable is the fixed category priority order: the first pattern with
// any matching keyword wins. More specific intents sit above generic lookup
// so that "who should be on the new team" never degrades to a name search.
var patternTable = []pattern{
	{
		category: interfaces.IntentConflictResolution,
		keywords: []string{
			"conflict", "disagreement", "tension", "friction", "clash",
			"dispute", "not getting along", "argument", "mediate",
		},
	},
	{
		category: interfaces.IntentDelegation,
		keywords: []string{
			"delegate", "delegating", "delegation", "hand off", "handoff",
			"assign this", "who should handle", "who should do", "offload",
			"take over",
		},
	},
	{
		category: interfaces.IntentTeamComposition,
		keywords: []string{
			"team for", "new team", "build a team", "assemble a team",
			"who should be on", "team composition", "put together a team",
			"staff a", "form a team",
		},
	},
	{
		category: interfaces.IntentDocumentSearch,
		keywords: []string{
			"document", "policy", "policies", "handbook", "guide",
			"guideline", "report", "documentation", "spec", "where can i find",
		},
	},
	{
		category: interfaces.IntentDepartmentOverview,
		keywords: []string{
			"department overview", "org chart", "overview of", "structure of",
			"how is", "how many people", "headcount",
		},
	},
	{
		category: interfaces.IntentEmployeeLookup,
		keywords: []string{
			"who is", "who's", "tell me about", "who works", "works in",
			"find", "look up", "lookup", "contact", "reports to", "manager of",
			"about",
		},
	},
}

// ambiguousMentions are vocabulary entries that collide with ordinary
// English words ("go" the verb, "it" the pronoun). They are skipped during
// free-text scanning; explicit resolution through the alias tables still
// accepts them.
var ambiguousMentions = map[string]bool{
	"go": true,
	"it": true,
}

// documentTypeKeywords trigger document-type hints independently of the
// chosen category.
var documentTypeKeywords = map[string]string{
	"policy":        "policy",
	"policies":      "policy",
	"handbook":      "handbook",
	"guide":         "guide",
	"guideline":     "guide",
	"guidelines":    "guide",
	"documentation": "guide",
	"report":        "report",
	"reports":       "report",
}
