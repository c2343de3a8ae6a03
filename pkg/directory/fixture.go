package directory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

// fixtureFile is the YAML shape for seeding an in-memory directory, used by
// the CLI and examples.
type fixtureFile struct {
	People        []fixturePerson       `yaml:"people"`
	Departments   []fixtureDepartment   `yaml:"departments"`
	Relationships []fixtureRelationship `yaml:"relationships"`
	Documents     []fixtureDocument     `yaml:"documents"`
}

type fixturePerson struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Role             string   `yaml:"role"`
	Department       string   `yaml:"department"`
	Skills           []string `yaml:"skills"`
	Location         string   `yaml:"location"`
	PersonalityType  string   `yaml:"personality_type"`
	Bio              string   `yaml:"bio"`
	Responsibilities []string `yaml:"responsibilities"`
}

type fixtureDepartment struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type fixtureRelationship struct {
	ManagerID string `yaml:"manager_id"`
	PersonID  string `yaml:"person_id"`
}

type fixtureDocument struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// FromYAML seeds an in-memory directory store from YAML fixture data.
func FromYAML(data []byte) (*InMemory, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse directory fixture: %w", err)
	}

	store := NewInMemory()
	for _, p := range file.People {
		if p.Name == "" {
			return nil, fmt.Errorf("directory fixture contains a person without a name")
		}
		store.AddPerson(&interfaces.Person{
			ID:               p.ID,
			Name:             p.Name,
			Role:             p.Role,
			Department:       p.Department,
			Skills:           p.Skills,
			Location:         p.Location,
			PersonalityType:  p.PersonalityType,
			Bio:              p.Bio,
			Responsibilities: p.Responsibilities,
		})
	}
	for _, d := range file.Departments {
		store.AddDepartment(&interfaces.Department{ID: d.ID, Name: d.Name})
	}
	for _, r := range file.Relationships {
		store.AddRelationship(r.ManagerID, r.PersonID)
	}
	for _, d := range file.Documents {
		store.AddDocument(&interfaces.Document{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Category:    d.Category,
		})
	}

	return store, nil
}

// FromYAMLFile seeds an in-memory directory store from a YAML fixture file.
func FromYAMLFile(path string) (*InMemory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory fixture: %w", err)
	}
	return FromYAML(data)
}
