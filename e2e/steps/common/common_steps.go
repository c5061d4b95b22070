package common

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cucumber/godog"
)

// RegisterSteps wires the engine setup, request and generic assertion steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Step(`^the engine runs on "([^"]*)" with the fixtures "([^"]*)"$`, tc.engineRuns)
	ctx.Step(`^the clock reads "([^"]*)"$`, tc.clockReads)
	ctx.Step(`^I am signed in as "([^"]*)"$`, tc.signedIn)
	ctx.Step(`^I am signed in as "([^"]*)" speaking "([^"]*)"$`, tc.SignIn)
	ctx.Step(`^I am not signed in$`, tc.signedOut)
	ctx.Step(`^I send the command "([^"]*)" with:$`, tc.sendCommand)
	ctx.Step(`^I send the query "([^"]*)" with:$`, tc.sendQuery)
	ctx.Step(`^the response status should be (\d+)$`, tc.statusShouldBe)
	ctx.Step(`^the response should report the error "([^"]*)"$`, tc.shouldReportError)
	ctx.Step(`^I keep the result as "([^"]*)"$`, tc.keepResult)
	ctx.Step(`^the result should be the kept "([^"]*)"$`, tc.resultShouldBeKept)

	ctx.After(func(c context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		tc.Close()
		return c, err
	})
}

func parseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("instant %q: %w", raw, err)
	}
	return t, nil
}

func (tc *TestContext) engineRuns(ctx context.Context, at, fixtures string) error {
	now, err := parseInstant(at)
	if err != nil {
		return err
	}
	return tc.Start(ctx, fixtures, now)
}

func (tc *TestContext) clockReads(at string) error {
	now, err := parseInstant(at)
	if err != nil {
		return err
	}
	tc.SetNow(now)
	return nil
}

func (tc *TestContext) signedIn(matricule string) error {
	return tc.SignIn(matricule, "fr-be")
}

func (tc *TestContext) signedOut() error {
	tc.token = ""
	return nil
}

func (tc *TestContext) sendCommand(ctx context.Context, name string, body *godog.DocString) error {
	return tc.Send(ctx, "commands", name, body.Content)
}

func (tc *TestContext) sendQuery(ctx context.Context, name string, body *godog.DocString) error {
	return tc.Send(ctx, "queries", name, body.Content)
}

func (tc *TestContext) statusShouldBe(want int) error {
	if tc.LastStatus != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, tc.LastStatus, tc.LastBody)
	}
	return nil
}

func (tc *TestContext) shouldReportError(code string) error {
	codes, err := tc.ErrorCodes()
	if err != nil {
		return err
	}
	if !slices.Contains(codes, code) {
		return fmt.Errorf("expected error %s among %v", code, codes)
	}
	return nil
}

func (tc *TestContext) keepResult(name string) error {
	var value string
	if err := tc.Result(&value); err != nil {
		return err
	}
	tc.Remember(name, value)
	return nil
}

func (tc *TestContext) resultShouldBeKept(name string) error {
	want, ok := tc.Recall(name)
	if !ok {
		return fmt.Errorf("nothing kept as %q", name)
	}
	var got string
	if err := tc.Result(&got); err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected result %s, got %s", want, got)
	}
	return nil
}
