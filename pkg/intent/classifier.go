// Package intent classifies free-text organizational queries into a primary
// category and extracts entity mentions (people, departments, skills,
// document-type hints). Classification is a pure function of the query text,
// the static pattern tables and a person-name gazetteer; it performs no I/O.
package intent

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
	"github.com/Ingenimax/orgcontext-go/pkg/resolver"
)

// capitalizedRun matches runs of capitalized words, the shape of person
// names appearing mid-query.
var capitalizedRun = regexp.MustCompile(`[A-Z][a-zA-Z'-]+(?:\s+[A-Z][a-zA-Z'-]+)*`)

// Classifier maps raw queries to intents.
type Classifier struct {
	logger logging.Logger
}

// Option represents an option for configuring the classifier
type Option func(*Classifier)

// WithLogger sets the logger used by the classifier.
func WithLogger(logger logging.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// New creates a classifier.
func New(options ...Option) *Classifier {
	c := &Classifier{
		logger: logging.New(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Classify parses a query into an intent. knownNames is the person-name
// gazetteer from the current directory snapshot. Classification never fails
// on empty or garbage text: with no pattern match the category is general
// and entity lists are empty. Only structurally invalid input (non-UTF-8)
// is rejected.
func (c *Classifier) Classify(query string, knownNames []string) (*interfaces.Intent, error) {
	if !utf8.ValidString(query) {
		return nil, fmt.Errorf("query is not valid UTF-8: %w", interfaces.ErrInvalidInput)
	}

	normalized := normalize(query)

	result := &interfaces.Intent{
		PrimaryCategory: interfaces.IntentGeneral,
		Entities: interfaces.IntentEntities{
			People:        []string{},
			Departments:   []string{},
			Skills:        []string{},
			DocumentTypes: []string{},
		},
	}

	for _, p := range patternTable {
		if matchesAny(normalized, p.keywords) {
			result.PrimaryCategory = p.category
			break
		}
	}

	result.Entities.People = extractPeople(query, knownNames)
	result.Entities.Departments = extractDepartments(normalized, result.Entities.People)
	result.Entities.Skills = extractSkills(normalized)
	result.Entities.DocumentTypes = extractDocumentTypes(normalized)

	// No keyword pattern matched but entities were still found: fall back
	// to the most specific category the entities support.
	if result.PrimaryCategory == interfaces.IntentGeneral {
		switch {
		case len(result.Entities.People) > 0:
			result.PrimaryCategory = interfaces.IntentEmployeeLookup
		case len(result.Entities.Departments) > 0:
			result.PrimaryCategory = interfaces.IntentDepartmentOverview
		case len(result.Entities.DocumentTypes) > 0:
			result.PrimaryCategory = interfaces.IntentDocumentSearch
		}
	}

	c.logger.Debug(context.TODO(), "Classified query", map[string]interface{}{
		"category":    string(result.PrimaryCategory),
		"people":      len(result.Entities.People),
		"departments": len(result.Entities.Departments),
		"skills":      len(result.Entities.Skills),
	})

	return result, nil
}

// normalize lowercases the query, replaces punctuation with spaces and pads
// the result so vocabulary matches are whole-word.
func normalize(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 2)
	b.WriteByte(' ')
	lastSpace := true
	for _, r := range strings.ToLower(query) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	if !lastSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

// matchesAny reports whether any keyword occurs as a whole-word phrase in
// the normalized query.
func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		phrase := normalize(kw)
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

// extractPeople matches the query against the gazetteer. Full-name
// occurrences in the query count as exact matches; capitalized runs that
// are substrings of a known name count as partial matches. Exact matches
// take priority when both exist for the same name.
func extractPeople(query string, knownNames []string) []string {
	lq := strings.ToLower(query)
	seen := make(map[string]bool)
	var people []string

	names := append([]string(nil), knownNames...)
	sort.Strings(names)

	// Exact: the full known name occurs in the query.
	for _, name := range names {
		ln := strings.ToLower(strings.TrimSpace(name))
		if ln == "" || seen[name] {
			continue
		}
		if strings.Contains(lq, ln) {
			seen[name] = true
			people = append(people, name)
		}
	}

	// Partial: a capitalized run from the query is contained in a known
	// name that was not already matched exactly.
	for _, run := range capitalizedRun.FindAllString(query, -1) {
		lr := strings.ToLower(run)
		if len(lr) < 3 {
			continue
		}
		for _, name := range names {
			if seen[name] {
				continue
			}
			if strings.Contains(strings.ToLower(name), lr) {
				seen[name] = true
				people = append(people, name)
			}
		}
	}

	return people
}

// extractDepartments scans the normalized query for department aliases.
// When a phrase already matched a person name, the person match wins and
// the department mention is dropped.
func extractDepartments(normalized string, matchedPeople []string) []string {
	seen := make(map[string]bool)
	var departments []string

	for _, alias := range resolver.DepartmentVocabulary() {
		if ambiguousMentions[alias] {
			continue
		}
		phrase := normalize(alias)
		if !strings.Contains(normalized, phrase) {
			continue
		}

		// Tie-break: person beats department for the same phrase.
		shadowed := false
		for _, person := range matchedPeople {
			if strings.Contains(strings.ToLower(person), strings.TrimSpace(phrase)) {
				shadowed = true
				break
			}
		}
		if shadowed {
			continue
		}

		canonical, ok := resolver.CanonicalDepartment(alias)
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		departments = append(departments, canonical)
	}

	sort.Strings(departments)
	return departments
}

// extractSkills scans the normalized query for skill vocabulary mentions.
// Multiple skills may be extracted from one query.
func extractSkills(normalized string) []string {
	seen := make(map[string]bool)
	var skills []string

	for _, mention := range resolver.SkillVocabulary() {
		if ambiguousMentions[mention] {
			continue
		}
		phrase := normalize(mention)
		if !strings.Contains(normalized, phrase) {
			continue
		}
		canonical, ok := resolver.CanonicalSkill(mention)
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		skills = append(skills, canonical)
	}

	sort.Strings(skills)
	return skills
}

// extractDocumentTypes collects document-type hints from trigger keywords.
func extractDocumentTypes(normalized string) []string {
	seen := make(map[string]bool)
	var types []string

	for keyword, docType := range documentTypeKeywords {
		if !strings.Contains(normalized, normalize(keyword)) || seen[docType] {
			continue
		}
		seen[docType] = true
		types = append(types, docType)
	}

	sort.Strings(types)
	return types
}
