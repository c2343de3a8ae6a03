// Package interfaces defines the canonical types and contracts shared by
// every package in the SDK. Other packages accept and return these types so
// that store backends, matchers and the assembler stay interchangeable.
package interfaces

// IntentCategory identifies the primary purpose of a free-text query.
type IntentCategory string

// The closed set of intent categories, ordered here from most to least
// specific. Category selection picks the single highest-priority match;
// extracted entities remain additive across categories.
const (
	IntentEmployeeLookup     IntentCategory = "employee_lookup"
	IntentTeamComposition    IntentCategory = "team_composition"
	IntentConflictResolution IntentCategory = "conflict_resolution"
	IntentDelegation         IntentCategory = "delegation"
	IntentDocumentSearch     IntentCategory = "document_search"
	IntentDepartmentOverview IntentCategory = "department_overview"
	IntentGeneral            IntentCategory = "general"
)

// IntentEntities holds the entity strings extracted from a query, grouped
// by kind. Lists are empty, never nil, after classification.
type IntentEntities struct {
	People        []string `json:"people"`
	Departments   []string `json:"departments"`
	Skills        []string `json:"skills"`
	DocumentTypes []string `json:"document_types"`
}

// Intent is the classified purpose of one query plus its extracted
// entities. It is ephemeral: one per query, never stored.
type Intent struct {
	PrimaryCategory IntentCategory `json:"primary_category"`
	Entities        IntentEntities `json:"entities"`
}

// Person is an organizational directory record. The core only reads these;
// creation and mutation belong to whatever system feeds the directory store.
type Person struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Department       string   `json:"department"`
	Skills           []string `json:"skills,omitempty"`
	Location         string   `json:"location,omitempty"`
	PersonalityType  string   `json:"personality_type,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`

	// ManagerID is a weak reference resolved through reporting
	// relationships; it may be empty or dangling.
	ManagerID string `json:"manager_id,omitempty"`
}

// Department groups people. Membership is derived from Person.Department,
// not stored on the department itself.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReportingRelationship is a manager edge. A person has at most one edge
// where they are the subordinate; consumers must still defend against
// cycles when walking chains.
type ReportingRelationship struct {
	ManagerID string `json:"manager_id"`
	PersonID  string `json:"person_id"`
}

// PersonalityProfile is immutable reference data describing one personality
// type code. Profiles are loaded once per process and never mutated.
type PersonalityProfile struct {
	Type               string   `json:"type" yaml:"type"`
	Name               string   `json:"name" yaml:"name"`
	Strengths          []string `json:"strengths" yaml:"strengths"`
	CommunicationStyle string   `json:"communication_style" yaml:"communication_style"`
	CoreFear           string   `json:"core_fear" yaml:"core_fear"`
	CoreDesire         string   `json:"core_desire" yaml:"core_desire"`
}

// Document is an organizational document reference.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// PersonRelationships describes one person's position in the reporting
// graph: their manager (if any) and the people reporting to them.
type PersonRelationships struct {
	Person        *Person   `json:"person"`
	Manager       *Person   `json:"manager,omitempty"`
	DirectReports []*Person `json:"direct_reports,omitempty"`
}

// ProfileEntry pairs a person with their resolved personality profile.
type ProfileEntry struct {
	Person  *Person             `json:"person"`
	Profile *PersonalityProfile `json:"profile"`
}

// TeamCompatibility is the group-level compatibility assessment for the
// people in a context. Score is a 0-100 heuristic.
type TeamCompatibility struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

// CompatibilityInfo carries the per-person profiles and, when at least two
// profiles are known, the group assessment. TeamCompatibility is omitted
// entirely rather than emitting a misleading number for tiny groups.
type CompatibilityInfo struct {
	Profiles          map[string]ProfileEntry `json:"profiles"`
	TeamCompatibility *TeamCompatibility      `json:"team_compatibility,omitempty"`
}

// Context is the bounded, structured result of one context assembly. Its
// field names and types are the wire contract with downstream consumers
// (prompt building, UI display) and must remain stable.
type Context struct {
	Summary         string                `json:"summary"`
	People          []*Person             `json:"people"`
	Relationships   []PersonRelationships `json:"relationships"`
	Compatibility   CompatibilityInfo     `json:"compatibility"`
	Documents       []*Document           `json:"documents"`
	Recommendations []string              `json:"recommendations"`
}
