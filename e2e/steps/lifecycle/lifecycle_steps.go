// Package lifecycle holds the steps that read the doctorate back through
// the query API.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"parcours/e2e/steps/common"
)

type doctorateView struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type paperView struct {
	ID       string  `json:"id"`
	IsActive bool    `json:"is_active"`
	Deadline string  `json:"deadline"`
	ExamDate *string `json:"exam_date"`
}

type documentView struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Label      string    `json:"label"`
	Author     string    `json:"author"`
	ModifiedAt time.Time `json:"modified_at"`
	Files      []string  `json:"files"`
}

type steps struct {
	tc *common.TestContext
}

func RegisterSteps(ctx *godog.ScenarioContext, tc *common.TestContext) {
	s := &steps{tc: tc}
	ctx.Step(`^the doctorate "([^"]*)" should have the status "([^"]*)"$`, s.statusShouldBe)
	ctx.Step(`^the doctorate "([^"]*)" should have (\d+) confirmation papers?$`, s.paperCountShouldBe)
	ctx.Step(`^the doctorate "([^"]*)" should have (\d+) active confirmation papers?$`, s.activePaperCountShouldBe)
	ctx.Step(`^the active confirmation paper of "([^"]*)" should be due on "([^"]*)"$`, s.activeDeadlineShouldBe)
	ctx.Step(`^the doctorate "([^"]*)" should list the "([^"]*)" document "([^"]*)" by "([^"]*)" modified at "([^"]*)"$`, s.documentShouldBeListed)
	ctx.Step(`^the doctorate "([^"]*)" should list no "([^"]*)" document$`, s.noDocumentOfType)
}

func (s *steps) idOf(name string) (string, error) {
	id, ok := s.tc.Recall(name)
	if !ok {
		return "", fmt.Errorf("no doctorate kept as %q", name)
	}
	return id, nil
}

func (s *steps) body(name string) (string, error) {
	id, err := s.idOf(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`{"doctorate_id": %q}`, id), nil
}

func (s *steps) doctorate(ctx context.Context, name string) (doctorateView, error) {
	var d doctorateView
	body, err := s.body(name)
	if err != nil {
		return d, err
	}
	err = s.tc.Query(ctx, "GetDoctorate", body, &d)
	return d, err
}

func (s *steps) papers(ctx context.Context, name string) ([]paperView, error) {
	var papers []paperView
	body, err := s.body(name)
	if err != nil {
		return nil, err
	}
	err = s.tc.Query(ctx, "ListConfirmationPapers", body, &papers)
	return papers, err
}

func (s *steps) documents(ctx context.Context, name string) (map[string][]documentView, error) {
	var grouped map[string][]documentView
	body, err := s.body(name)
	if err != nil {
		return nil, err
	}
	err = s.tc.Query(ctx, "ListDocuments", body, &grouped)
	return grouped, err
}

func (s *steps) statusShouldBe(ctx context.Context, name, want string) error {
	d, err := s.doctorate(ctx, name)
	if err != nil {
		return err
	}
	if d.Status != want {
		return fmt.Errorf("expected status %s, got %s", want, d.Status)
	}
	return nil
}

func (s *steps) paperCountShouldBe(ctx context.Context, name string, want int) error {
	papers, err := s.papers(ctx, name)
	if err != nil {
		return err
	}
	if len(papers) != want {
		return fmt.Errorf("expected %d confirmation papers, got %d", want, len(papers))
	}
	return nil
}

func (s *steps) activePaperCountShouldBe(ctx context.Context, name string, want int) error {
	papers, err := s.papers(ctx, name)
	if err != nil {
		return err
	}
	active := 0
	for _, p := range papers {
		if p.IsActive {
			active++
		}
	}
	if active != want {
		return fmt.Errorf("expected %d active confirmation papers, got %d", want, active)
	}
	return nil
}

func (s *steps) activeDeadlineShouldBe(ctx context.Context, name, want string) error {
	papers, err := s.papers(ctx, name)
	if err != nil {
		return err
	}
	for _, p := range papers {
		if p.IsActive {
			if p.Deadline != want {
				return fmt.Errorf("expected deadline %s, got %s", want, p.Deadline)
			}
			return nil
		}
	}
	return fmt.Errorf("no active confirmation paper")
}

func (s *steps) documentShouldBeListed(ctx context.Context, name, typ, label, author, modifiedAt string) error {
	at, err := time.Parse(time.RFC3339, modifiedAt)
	if err != nil {
		return fmt.Errorf("instant %q: %w", modifiedAt, err)
	}
	grouped, err := s.documents(ctx, name)
	if err != nil {
		return err
	}
	for _, doc := range grouped[typ] {
		if doc.Label != label {
			continue
		}
		if doc.Author != author {
			return fmt.Errorf("document %q: expected author %s, got %s", label, author, doc.Author)
		}
		if !doc.ModifiedAt.Equal(at) {
			return fmt.Errorf("document %q: expected modification at %s, got %s", label, at, doc.ModifiedAt)
		}
		return nil
	}
	return fmt.Errorf("no %s document labelled %q in %v", typ, label, grouped[typ])
}

func (s *steps) noDocumentOfType(ctx context.Context, name, typ string) error {
	grouped, err := s.documents(ctx, name)
	if err != nil {
		return err
	}
	if n := len(grouped[typ]); n != 0 {
		return fmt.Errorf("expected no %s document, got %d", typ, n)
	}
	return nil
}
