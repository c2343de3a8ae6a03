package assembler

// Section names the independently degradable parts of a context build.
type Section string

// Sections of an assembled context.
const (
	SectionPeople        Section = "people"
	SectionRelationships Section = "relationships"
	SectionCompatibility Section = "compatibility"
	SectionDocuments     Section = "documents"
)

// sectionResult is the outcome of one assembly sub-step: ok, or degraded
// with the reason. Degraded sections are left empty in the final context;
// they never fail the overall call.
type sectionResult struct {
	section Section
	err     error
}

func ok(section Section) sectionResult {
	return sectionResult{section: section}
}

func degraded(section Section, err error) sectionResult {
	return sectionResult{section: section, err: err}
}

// isDegraded reports whether the sub-step failed.
func (r sectionResult) isDegraded() bool {
	return r.err != nil
}
