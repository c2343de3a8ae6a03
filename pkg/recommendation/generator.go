// Package recommendation derives short actionable hints from resolved
// people, reporting relationships and compatibility results. Hints are
// additive suggestions for the downstream consumer, never directives.
package recommendation

import (
	"fmt"
	"strings"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

// Generator produces recommendation strings. It is stateless and never
// fails: empty input yields an empty list.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Generate emits zero or more short recommendations for the query. Output
// is deterministic given the same inputs.
func (g *Generator) Generate(
	queryIntent *interfaces.Intent,
	people []*interfaces.Person,
	relationships []interfaces.PersonRelationships,
	team *interfaces.TeamCompatibility,
) []string {
	recommendations := []string{}
	if queryIntent == nil {
		return recommendations
	}

	switch queryIntent.PrimaryCategory {
	case interfaces.IntentTeamComposition:
		recommendations = append(recommendations, g.teamComposition(queryIntent, people, team)...)
	case interfaces.IntentConflictResolution:
		recommendations = append(recommendations, g.conflictResolution(people, team)...)
	case interfaces.IntentDelegation:
		recommendations = append(recommendations, g.delegation(relationships)...)
	case interfaces.IntentDepartmentOverview:
		if len(people) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Ask about specific people from the %d listed to get role and reporting detail.", len(people)))
		}
	}

	if team != nil && len(team.Recommendations) > 0 {
		recommendations = append(recommendations, team.Recommendations...)
	}

	return recommendations
}

func (g *Generator) teamComposition(queryIntent *interfaces.Intent, people []*interfaces.Person, team *interfaces.TeamCompatibility) []string {
	var out []string

	if team != nil {
		switch {
		case team.Score >= 75:
			out = append(out, fmt.Sprintf(
				"This group scores %d/100 on working-style compatibility; it should gel quickly.", team.Score))
		case team.Score < 60:
			out = append(out, fmt.Sprintf(
				"This group scores %d/100 on working-style compatibility; plan deliberate team-norming time.", team.Score))
		}
	}

	// Point out requested skills nobody in the group covers.
	covered := make(map[string]bool)
	for _, p := range people {
		for _, s := range p.Skills {
			covered[strings.ToLower(s)] = true
		}
	}
	for _, skill := range queryIntent.Entities.Skills {
		if !covered[strings.ToLower(skill)] {
			out = append(out, fmt.Sprintf("Nobody in this group lists %s; consider adding someone who covers it.", skill))
		}
	}

	return out
}

func (g *Generator) conflictResolution(people []*interfaces.Person, team *interfaces.TeamCompatibility) []string {
	var out []string

	for _, p := range people {
		if strings.EqualFold(p.PersonalityType, "peacemaker") {
			out = append(out, fmt.Sprintf("%s has a mediating working style and could facilitate the conversation.", p.Name))
			break
		}
	}

	if team != nil && len(team.Challenges) > 0 {
		out = append(out, "Review the flagged compatibility challenges before scheduling a joint session.")
	}
	if len(people) >= 2 {
		out = append(out, "Start with separate one-on-ones to understand each perspective before a group discussion.")
	}

	return out
}

func (g *Generator) delegation(relationships []interfaces.PersonRelationships) []string {
	var out []string

	for _, rel := range relationships {
		if len(rel.DirectReports) > 0 {
			names := make([]string, 0, len(rel.DirectReports))
			for _, report := range rel.DirectReports {
				names = append(names, report.Name)
			}
			out = append(out, fmt.Sprintf(
				"%s has %d direct report(s) who could take this on: %s.",
				rel.Person.Name, len(rel.DirectReports), strings.Join(names, ", ")))
		} else if rel.Manager != nil {
			out = append(out, fmt.Sprintf(
				"%s has no direct reports; route the request through their manager %s.",
				rel.Person.Name, rel.Manager.Name))
		}
	}

	return out
}
