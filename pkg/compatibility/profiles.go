// Package compatibility scores interpersonal working-style fit from
// personality-type profiles. The profile table and the pairwise matrix are
// immutable reference data loaded once per process.
package compatibility

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

//go:embed profiles.yaml
var profilesYAML []byte

// profileTable holds the embedded reference data, keyed by type code.
// Initialized at package load; never mutated afterwards.
var profileTable = mustLoadProfiles()

type profileFile struct {
	Profiles []*interfaces.PersonalityProfile `yaml:"profiles"`
}

func mustLoadProfiles() map[string]*interfaces.PersonalityProfile {
	var file profileFile
	if err := yaml.Unmarshal(profilesYAML, &file); err != nil {
		panic(fmt.Sprintf("compatibility: embedded profile table is invalid: %v", err))
	}

	table := make(map[string]*interfaces.PersonalityProfile, len(file.Profiles))
	for _, p := range file.Profiles {
		table[strings.ToLower(p.Type)] = p
	}
	return table
}

// ProfileFor returns the profile for a personality type code, or nil when
// the code is unknown or empty. Lookup is case-insensitive.
func ProfileFor(code string) *interfaces.PersonalityProfile {
	if code == "" {
		return nil
	}
	return profileTable[strings.ToLower(strings.TrimSpace(code))]
}

// TypeCodes returns every known type code in sorted order.
func TypeCodes() []string {
	codes := make([]string, 0, len(profileTable))
	for code := range profileTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
