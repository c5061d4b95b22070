// Package fixtures loads admission propositions and directory entries from a
// YAML file into the in-process upstream adapters.
package fixtures

import (
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"parcours/internal/adapters/person"
	"parcours/internal/adapters/proposition"
	"parcours/internal/ports"
	"parcours/pkg/domain"
)

type file struct {
	Propositions []propositionDoc `yaml:"propositions"`
	People       []personDoc      `yaml:"people"`
}

type personDoc struct {
	Matricule string `yaml:"matricule"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Language  string `yaml:"language"`
	Gender    string `yaml:"gender"`
}

type propositionDoc struct {
	ID                string      `yaml:"id"`
	Reference         string      `yaml:"reference"`
	Status            string      `yaml:"status"`
	StudentMatricule  string      `yaml:"student"`
	TrainingAcronym   string      `yaml:"training_acronym"`
	TrainingTitle     string      `yaml:"training_title"`
	TrainingYear      int         `yaml:"training_year"`
	CddCode           string      `yaml:"cdd_code"`
	CddTitle          string      `yaml:"cdd_title"`
	ThesisTitle       string      `yaml:"thesis_title"`
	ThesisLanguage    string      `yaml:"thesis_language"`
	CddAcceptanceDate string      `yaml:"cdd_acceptance_date"`
	CurriculumFiles   []string    `yaml:"curriculum"`
	Promoters         []memberDoc `yaml:"promoters"`
	CaMembers         []memberDoc `yaml:"ca_members"`
}

type memberDoc struct {
	Matricule   string `yaml:"matricule"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	Institute   string `yaml:"institute"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
	Language    string `yaml:"language"`
	IsReference bool   `yaml:"reference"`
}

// Load reads path and returns a filled reader and directory. An empty path
// yields empty adapters.
func Load(path string) (*proposition.InMemoryReader, *person.InMemoryDirectory, error) {
	reader, directory := proposition.NewInMemoryReader(), person.NewInMemoryDirectory()
	if path == "" {
		return reader, directory, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixtures: %w", err)
	}
	props, people, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range props {
		reader.Put(p)
	}
	for _, p := range people {
		directory.Put(p)
	}
	return reader, directory, nil
}

func Parse(raw []byte) ([]ports.Proposition, []ports.Person, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("parse fixtures: %w", err)
	}
	props := make([]ports.Proposition, 0, len(f.Propositions))
	for i, doc := range f.Propositions {
		p, err := doc.toProposition()
		if err != nil {
			return nil, nil, fmt.Errorf("parse fixtures: proposition %d: %w", i, err)
		}
		props = append(props, p)
	}
	people := make([]ports.Person, 0, len(f.People))
	for i, p := range f.People {
		if p.Matricule == "" {
			return nil, nil, fmt.Errorf("parse fixtures: person %d: missing matricule", i)
		}
		people = append(people, ports.Person(p))
	}
	return props, people, nil
}

func (d propositionDoc) toProposition() (ports.Proposition, error) {
	id, err := domain.ParsePropositionID(d.ID)
	if err != nil {
		return ports.Proposition{}, err
	}
	p := ports.Proposition{
		ID:               id,
		Reference:        d.Reference,
		Status:           d.Status,
		StudentMatricule: d.StudentMatricule,
		TrainingAcronym:  d.TrainingAcronym,
		TrainingTitle:    d.TrainingTitle,
		TrainingYear:     d.TrainingYear,
		CddCode:          d.CddCode,
		CddTitle:         d.CddTitle,
		ThesisTitle:      d.ThesisTitle,
		ThesisLanguage:   d.ThesisLanguage,
		Promoters:        members(d.Promoters),
		CaMembers:        members(d.CaMembers),
	}
	if p.Status == "" {
		p.Status = ports.PropositionStatusEnrolmentAuthorised
	}
	if d.CddAcceptanceDate != "" {
		date, err := civil.ParseDate(d.CddAcceptanceDate)
		if err != nil {
			return ports.Proposition{}, fmt.Errorf("cdd_acceptance_date: %w", err)
		}
		p.CddAcceptanceDate = &date
	}
	for _, raw := range d.CurriculumFiles {
		fileID, err := domain.ParseFileID(raw)
		if err != nil {
			return ports.Proposition{}, fmt.Errorf("curriculum: %w", err)
		}
		p.CurriculumFiles = append(p.CurriculumFiles, fileID)
	}
	return p, nil
}

func members(docs []memberDoc) []ports.SupervisionMember {
	out := make([]ports.SupervisionMember, 0, len(docs))
	for _, m := range docs {
		out = append(out, ports.SupervisionMember(m))
	}
	return out
}
