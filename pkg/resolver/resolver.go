// Package resolver turns extracted entity strings into directory records.
// Resolution is tolerant: partial and fuzzy name matches are accepted above
// a similarity threshold, department mentions go through an alias table, and
// misses are normal nil results rather than errors.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Ingenimax/orgcontext-go/pkg/config"
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
	"github.com/Ingenimax/orgcontext-go/pkg/logging"
)

// maxChainDepth caps manager-chain walks. Reporting data is expected to be
// a forest, but the walk must survive corrupted data containing cycles.
const maxChainDepth = 64

// Resolver resolves entity strings against a directory store.
type Resolver struct {
	store         interfaces.DirectoryStore
	logger        logging.Logger
	minSimilarity float64
}

// Option represents an option for configuring the resolver
type Option func(*Resolver)

// WithMinSimilarity overrides the fuzzy-match acceptance threshold.
func WithMinSimilarity(threshold float64) Option {
	return func(r *Resolver) {
		r.minSimilarity = threshold
	}
}

// WithLogger sets the logger used by the resolver.
func WithLogger(logger logging.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a resolver over the given directory store.
func New(store interfaces.DirectoryStore, options ...Option) *Resolver {
	r := &Resolver{
		store:         store,
		logger:        logging.New(),
		minSimilarity: config.Get().Matching.MinSimilarity,
	}
	if r.minSimilarity <= 0 {
		r.minSimilarity = DefaultMinSimilarity
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// ResolvePerson resolves a free-text name to the best-matching person.
// An exact case-insensitive match always wins; otherwise the best substring
// or fuzzy match above the similarity threshold is returned, with ties
// broken by edit distance and then alphabetically. A miss returns (nil, nil).
func (r *Resolver) ResolvePerson(ctx context.Context, name string) (*interfaces.Person, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil, nil
	}

	people, err := r.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return r.bestMatch(people, query), nil
}

// ResolveDepartment returns all people belonging to the named department
// after alias normalization. Unknown departments yield an empty list.
func (r *Resolver) ResolveDepartment(ctx context.Context, name string) ([]*interfaces.Person, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return nil, nil
	}

	target := query
	if canonical, ok := CanonicalDepartment(query); ok {
		target = canonical
	}

	people, err := r.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	var members []*interfaces.Person
	for _, p := range people {
		if strings.EqualFold(p.Department, target) || strings.EqualFold(p.Department, query) {
			members = append(members, p)
			continue
		}
		// A person's stored department may itself be an alias.
		if canonical, ok := CanonicalDepartment(p.Department); ok && strings.EqualFold(canonical, target) {
			members = append(members, p)
		}
	}

	sortPeople(members)
	return members, nil
}

// ResolveBySkill returns all people whose skill set contains the skill,
// matched case-insensitively as an exact token after synonym normalization.
func (r *Resolver) ResolveBySkill(ctx context.Context, skill string) ([]*interfaces.Person, error) {
	query := strings.TrimSpace(skill)
	if query == "" {
		return nil, nil
	}

	target := query
	if canonical, ok := CanonicalSkill(query); ok {
		target = canonical
	}

	people, err := r.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	var matches []*interfaces.Person
	for _, p := range people {
		for _, s := range p.Skills {
			if strings.EqualFold(s, target) || strings.EqualFold(s, query) {
				matches = append(matches, p)
				break
			}
		}
	}

	sortPeople(matches)
	return matches, nil
}

// RelationshipsFor builds the reporting view (manager plus direct reports)
// for each given person from the relationship edges. Dangling references
// and self-edges are skipped.
func (r *Resolver) RelationshipsFor(ctx context.Context, people []*interfaces.Person) ([]interfaces.PersonRelationships, error) {
	edges, err := r.store.ListRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	all, err := r.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	byID := make(map[string]*interfaces.Person, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	managerOf := make(map[string]string, len(edges))
	reportsOf := make(map[string][]string)
	for _, edge := range edges {
		if edge.ManagerID == "" || edge.PersonID == "" || edge.ManagerID == edge.PersonID {
			continue
		}
		// A person has at most one manager edge; keep the first seen.
		if _, exists := managerOf[edge.PersonID]; !exists {
			managerOf[edge.PersonID] = edge.ManagerID
			reportsOf[edge.ManagerID] = append(reportsOf[edge.ManagerID], edge.PersonID)
		}
	}

	var out []interfaces.PersonRelationships
	for _, p := range people {
		entry := interfaces.PersonRelationships{Person: p}
		if managerID, ok := managerOf[p.ID]; ok {
			entry.Manager = byID[managerID]
		}
		for _, reportID := range reportsOf[p.ID] {
			if report, ok := byID[reportID]; ok {
				entry.DirectReports = append(entry.DirectReports, report)
			}
		}
		sortPeople(entry.DirectReports)
		if entry.Manager != nil || len(entry.DirectReports) > 0 {
			out = append(out, entry)
		}
	}

	return out, nil
}

// ManagerChain walks upward from the given person and returns the chain of
// managers, nearest first. The walk is bounded and keeps a visited set so a
// cyclic edge in corrupted data terminates instead of looping.
func (r *Resolver) ManagerChain(ctx context.Context, personID string) ([]*interfaces.Person, error) {
	edges, err := r.store.ListRelationships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	all, err := r.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	byID := make(map[string]*interfaces.Person, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	managerOf := make(map[string]string, len(edges))
	for _, edge := range edges {
		if _, exists := managerOf[edge.PersonID]; !exists {
			managerOf[edge.PersonID] = edge.ManagerID
		}
	}

	var chain []*interfaces.Person
	visited := map[string]bool{personID: true}
	current := personID

	for depth := 0; depth < maxChainDepth; depth++ {
		managerID, ok := managerOf[current]
		if !ok || managerID == "" {
			break
		}
		if visited[managerID] {
			r.logger.Warn(ctx, "Cycle detected in reporting relationships", map[string]interface{}{
				"person_id":  personID,
				"manager_id": managerID,
			})
			break
		}
		visited[managerID] = true

		manager, ok := byID[managerID]
		if !ok {
			break
		}
		chain = append(chain, manager)
		current = managerID
	}

	return chain, nil
}

// bestMatch picks the best person for a query string. Exact matches bypass
// scoring entirely.
func (r *Resolver) bestMatch(people []*interfaces.Person, query string) *interfaces.Person {
	lq := strings.ToLower(query)

	var exact *interfaces.Person
	for _, p := range people {
		if strings.EqualFold(p.Name, query) {
			if exact == nil || p.Name < exact.Name {
				exact = p
			}
		}
	}
	if exact != nil {
		return exact
	}

	var best *interfaces.Person
	var bestScore float64
	var bestDist int

	for _, p := range people {
		score := matchScore(lq, p.Name)
		if score < r.minSimilarity {
			continue
		}
		dist := EditDistance(lq, strings.ToLower(p.Name))

		switch {
		case best == nil,
			score > bestScore,
			score == bestScore && dist < bestDist,
			score == bestScore && dist == bestDist && p.Name < best.Name:
			best = p
			bestScore = score
			bestDist = dist
		}
	}

	return best
}

// matchScore scores a lowercased query against a candidate name. Substring
// containment scores above the fuzzy band, scaled by overlap length, so a
// partial name like "chen" outranks edit-distance coincidences.
func matchScore(query, candidate string) float64 {
	lc := strings.ToLower(candidate)
	if query == lc {
		return 1.0
	}

	shorter, longer := query, lc
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) >= 2 && strings.Contains(longer, shorter) {
		return 0.80 + 0.20*float64(len(shorter))/float64(len(longer))
	}

	return Similarity(query, lc)
}

func sortPeople(people []*interfaces.Person) {
	sort.Slice(people, func(i, j int) bool {
		if people[i].Name != people[j].Name {
			return people[i].Name < people[j].Name
		}
		return people[i].ID < people[j].ID
	})
}
