// Package assembler orchestrates classification, entity resolution,
// compatibility scoring, document search and recommendation generation into
// one bounded context object for a downstream text generator.
//
// Assembly is best effort: each section degrades independently, and the
// overall call only fails when the directory snapshot cannot be obtained at
// all or the query itself is invalid.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Ingenimax/orgcontext-go/pkg/compatibility"
	"github.com/Ingenimax/orgcontext-go/pkg/config"
	"github.com/Ingenimax/orgcontext-go/pkg/intent"
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
	"github.com/Ingenimax/orgcontext-go/pkg/recommendation"
	"github.com/Ingenimax/orgcontext-go/pkg/resolver"
)

// Assembler builds bounded contexts for free-text queries.
type Assembler struct {
	store        interfaces.DirectoryStore
	classifier   *intent.Classifier
	resolver     *resolver.Resolver
	scorer       *compatibility.Scorer
	generator    *recommendation.Generator
	logger       logging.Logger
	maxPeople    int
	maxDocuments int
}

// Option represents an option for configuring the assembler
type Option func(*Assembler)

// WithLogger sets the logger used by the assembler.
func WithLogger(logger logging.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithMaxPeople bounds the people section.
func WithMaxPeople(n int) Option {
	return func(a *Assembler) {
		a.maxPeople = n
	}
}

// WithMaxDocuments bounds the documents section.
func WithMaxDocuments(n int) Option {
	return func(a *Assembler) {
		a.maxDocuments = n
	}
}

// WithResolver overrides the entity resolver.
func WithResolver(r *resolver.Resolver) Option {
	return func(a *Assembler) {
		a.resolver = r
	}
}

// New creates an assembler over the given directory store. Bounds default
// from configuration.
func New(store interfaces.DirectoryStore, options ...Option) *Assembler {
	cfg := config.Get()
	a := &Assembler{
		store:        store,
		classifier:   intent.New(),
		resolver:     resolver.New(store),
		scorer:       compatibility.NewScorer(),
		generator:    recommendation.New(),
		logger:       logging.New(),
		maxPeople:    cfg.Assembler.MaxPeople,
		maxDocuments: cfg.Assembler.MaxDocuments,
	}
	if a.maxPeople <= 0 {
		a.maxPeople = 25
	}
	if a.maxDocuments <= 0 {
		a.maxDocuments = 10
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// BuildContext assembles the context for one query. The returned Context is
// always fully formed: sections that could not be built are empty, and the
// summary reflects what was found. A query resolving nothing is a valid,
// mostly empty context, never an error.
func (a *Assembler) BuildContext(ctx context.Context, query string) (*interfaces.Context, error) {
	if !utf8.ValidString(query) {
		return nil, fmt.Errorf("query is not valid UTF-8: %w", interfaces.ErrInvalidInput)
	}

	// The people snapshot doubles as the classifier gazetteer. Failing to
	// obtain it is the one fatal store condition.
	snapshot, err := a.store.ListPeople(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrStoreUnavailable) {
			return nil, fmt.Errorf("failed to obtain directory snapshot: %w", err)
		}
		return nil, fmt.Errorf("failed to obtain directory snapshot: %v: %w", err, interfaces.ErrStoreUnavailable)
	}

	gazetteer := make([]string, 0, len(snapshot))
	for _, p := range snapshot {
		gazetteer = append(gazetteer, p.Name)
	}

	queryIntent, err := a.classifier.Classify(query, gazetteer)
	if err != nil {
		return nil, err
	}

	result := &interfaces.Context{
		People:        []*interfaces.Person{},
		Relationships: []interfaces.PersonRelationships{},
		Compatibility: interfaces.CompatibilityInfo{
			Profiles: map[string]interfaces.ProfileEntry{},
		},
		Documents:       []*interfaces.Document{},
		Recommendations: []string{},
	}

	var sections []sectionResult

	// Step 1: resolve entities into a bounded, deduplicated people list.
	people, peopleSection := a.resolvePeople(ctx, queryIntent)
	sections = append(sections, peopleSection)
	result.People = people

	// Steps 2+3: reporting relationships and document search are mutually
	// independent read paths; run them concurrently. Failures are captured
	// per section, never joined.
	var (
		relationships []interfaces.PersonRelationships
		relErr        error
		documents     []*interfaces.Document
		docErr        error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		relationships, relErr = a.resolver.RelationshipsFor(gctx, people)
		return nil
	})
	g.Go(func() error {
		documents, docErr = a.searchDocuments(gctx, query, queryIntent)
		return nil
	})
	_ = g.Wait()

	if relErr != nil {
		sections = append(sections, degraded(SectionRelationships, relErr))
	} else {
		sections = append(sections, ok(SectionRelationships))
		if relationships != nil {
			result.Relationships = relationships
		}
	}

	if docErr != nil {
		sections = append(sections, degraded(SectionDocuments, docErr))
	} else {
		sections = append(sections, ok(SectionDocuments))
		if documents != nil {
			result.Documents = documents
		}
	}

	// Step 4: personality profiles and the group assessment. Pure lookups,
	// no I/O.
	var profiles []*interfaces.PersonalityProfile
	for _, p := range result.People {
		profile := compatibility.ProfileFor(p.PersonalityType)
		if profile == nil {
			continue
		}
		result.Compatibility.Profiles[p.ID] = interfaces.ProfileEntry{
			Person:  p,
			Profile: profile,
		}
		profiles = append(profiles, profile)
	}
	if len(result.People) >= 2 {
		result.Compatibility.TeamCompatibility = a.scorer.ScoreGroup(profiles)
	}
	sections = append(sections, ok(SectionCompatibility))

	// Step 5: recommendations.
	result.Recommendations = a.generator.Generate(
		queryIntent, result.People, result.Relationships, result.Compatibility.TeamCompatibility)

	if queryIntent.PrimaryCategory == interfaces.IntentDelegation {
		result.Recommendations = append(result.Recommendations, a.escalationPaths(ctx, result.People)...)
	}

	// Step 6: summary.
	result.Summary = summarize(queryIntent, result)

	for _, section := range sections {
		if section.isDegraded() {
			a.logger.Warn(ctx, "Partial context degradation", map[string]interface{}{
				"section": string(section.section),
				"error":   section.err.Error(),
			})
		}
	}

	a.logger.Debug(ctx, "Assembled context", map[string]interface{}{
		"category":  string(queryIntent.PrimaryCategory),
		"people":    len(result.People),
		"documents": len(result.Documents),
	})

	return result, nil
}

// resolvePeople aggregates the unique people matched by the intent's
// entities, closest first: direct name matches, then department members,
// then skill matches, capped at maxPeople.
func (a *Assembler) resolvePeople(ctx context.Context, queryIntent *interfaces.Intent) ([]*interfaces.Person, sectionResult) {
	var resolveErr error
	seen := make(map[string]bool)
	people := []*interfaces.Person{}

	add := func(p *interfaces.Person) {
		if p == nil || seen[p.ID] || len(people) >= a.maxPeople {
			return
		}
		seen[p.ID] = true
		people = append(people, p)
	}

	for _, name := range queryIntent.Entities.People {
		person, err := a.resolver.ResolvePerson(ctx, name)
		if err != nil {
			resolveErr = err
			continue
		}
		add(person)
	}

	for _, department := range queryIntent.Entities.Departments {
		members, err := a.resolver.ResolveDepartment(ctx, department)
		if err != nil {
			resolveErr = err
			continue
		}
		for _, member := range members {
			add(member)
		}
	}

	for _, skill := range queryIntent.Entities.Skills {
		matches, err := a.resolver.ResolveBySkill(ctx, skill)
		if err != nil {
			resolveErr = err
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	if resolveErr != nil {
		return people, degraded(SectionPeople, resolveErr)
	}
	return people, ok(SectionPeople)
}

// searchDocuments runs the document search when the intent calls for it:
// substring match of significant query terms against title and description,
// plus category matches on document-type hints. Results are bounded.
func (a *Assembler) searchDocuments(ctx context.Context, query string, queryIntent *interfaces.Intent) ([]*interfaces.Document, error) {
	if queryIntent.PrimaryCategory != interfaces.IntentDocumentSearch &&
		len(queryIntent.Entities.DocumentTypes) == 0 {
		return nil, nil
	}

	all, err := a.store.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	terms := significantTerms(query)
	docTypes := make(map[string]bool)
	for _, t := range queryIntent.Entities.DocumentTypes {
		docTypes[strings.ToLower(t)] = true
	}

	var matches []*interfaces.Document
	for _, doc := range all {
		if len(matches) >= a.maxDocuments {
			break
		}
		if documentMatches(doc, terms, docTypes) {
			matches = append(matches, doc)
		}
	}

	return matches, nil
}

func documentMatches(doc *interfaces.Document, terms []string, docTypes map[string]bool) bool {
	if docTypes[strings.ToLower(doc.Category)] {
		return true
	}

	title := strings.ToLower(doc.Title)
	description := strings.ToLower(doc.Description)
	for _, term := range terms {
		if strings.Contains(title, term) || strings.Contains(description, term) {
			return true
		}
	}
	return false
}

// stopWords are query tokens too generic to drive a document match.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "about": true,
	"what": true, "where": true, "who": true, "how": true, "can": true,
	"find": true, "show": true, "tell": true, "our": true, "are": true,
	"you": true, "get": true, "give": true, "need": true, "any": true,
	"please": true, "there": true, "this": true, "that": true, "have": true,
	"documents": true, "document": true,
}

// significantTerms extracts lowercase query tokens worth matching against
// document text.
func significantTerms(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	var terms []string
	for _, field := range fields {
		if len(field) >= 3 && !stopWords[field] {
			terms = append(terms, field)
		}
	}
	return terms
}

// escalationPaths emits a manager-chain hint per resolved person for
// delegation queries. The chain walk is cycle safe.
func (a *Assembler) escalationPaths(ctx context.Context, people []*interfaces.Person) []string {
	var hints []string
	for _, p := range people {
		chain, err := a.resolver.ManagerChain(ctx, p.ID)
		if err != nil || len(chain) == 0 {
			continue
		}
		names := make([]string, 0, len(chain))
		for _, manager := range chain {
			names = append(names, manager.Name)
		}
		hints = append(hints, fmt.Sprintf(
			"Escalation path for %s: %s.", p.Name, strings.Join(names, " -> ")))
	}
	return hints
}

// summarize composes the one-sentence summary naming the intent category
// and section counts. Deterministic given the same intermediate data.
func summarize(queryIntent *interfaces.Intent, result *interfaces.Context) string {
	summary := fmt.Sprintf(
		"Intent '%s': %d people, %d relationship entries, %d profiled, %d documents.",
		queryIntent.PrimaryCategory,
		len(result.People),
		len(result.Relationships),
		len(result.Compatibility.Profiles),
		len(result.Documents),
	)
	if len(result.People) == 0 && len(result.Documents) == 0 {
		summary += " Nothing relevant found."
	}
	return summary
}
