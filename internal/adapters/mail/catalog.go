// Package mail builds e-mails from a YAML template catalog and hands them to
// a delivery backend.
package mail

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"parcours/internal/ports"
	"parcours/pkg/platform/sentinel"
)

//go:embed templates.yaml
var defaultCatalog []byte

const fallbackLanguage = "fr-be"

type localized struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type catalogFile struct {
	Templates map[string]map[string]localized `yaml:"templates"`
}

type compiled struct {
	subject *template.Template
	body    *template.Template
}

// Catalog holds the parsed templates keyed by template id then language.
type Catalog struct {
	templates map[string]map[string]compiled
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mail catalog: %w", err)
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode mail catalog: %w", err)
	}
	c := &Catalog{templates: make(map[string]map[string]compiled, len(file.Templates))}
	for id, languages := range file.Templates {
		c.templates[id] = make(map[string]compiled, len(languages))
		for lang, l := range languages {
			subject, err := template.New(id + ".subject").Option("missingkey=zero").Parse(l.Subject)
			if err != nil {
				return nil, fmt.Errorf("template %s/%s subject: %w", id, lang, err)
			}
			body, err := template.New(id + ".body").Option("missingkey=zero").Parse(l.Body)
			if err != nil {
				return nil, fmt.Errorf("template %s/%s body: %w", id, lang, err)
			}
			c.templates[id][strings.ToLower(lang)] = compiled{subject: subject, body: body}
		}
	}
	return c, nil
}

// Has reports whether the catalog knows templateID.
func (c *Catalog) Has(templateID string) bool {
	_, ok := c.templates[templateID]
	return ok
}

func (c *Catalog) lookup(templateID, language string) (compiled, bool) {
	languages, ok := c.templates[templateID]
	if !ok {
		return compiled{}, false
	}
	language = strings.ToLower(language)
	if t, ok := languages[language]; ok {
		return t, true
	}
	prefix, _, _ := strings.Cut(language, "-")
	if t, ok := languages[prefix]; ok {
		return t, true
	}
	t, ok := languages[fallbackLanguage]
	return t, ok
}

// Build renders a message. Tokens are available as {{.token_name}}.
func (c *Catalog) Build(_ context.Context, templateID, language string, tokens map[string]string) (*ports.Message, error) {
	t, ok := c.lookup(templateID, language)
	if !ok {
		return nil, fmt.Errorf("mail template %s: %w", templateID, sentinel.ErrNotFound)
	}
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, tokens); err != nil {
		return nil, fmt.Errorf("render %s subject: %w", templateID, err)
	}
	if err := t.body.Execute(&body, tokens); err != nil {
		return nil, fmt.Errorf("render %s body: %w", templateID, err)
	}
	return &ports.Message{
		TemplateID: templateID,
		Subject:    strings.TrimSpace(subject.String()),
		Body:       body.String(),
	}, nil
}
