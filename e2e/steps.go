// Package e2e runs the feature files against an in-memory engine served
// over HTTP.
package e2e

import (
	"github.com/cucumber/godog"

	"parcours/e2e/steps/common"
	"parcours/e2e/steps/lifecycle"
)

// RegisterSteps registers the step definitions of every step package.
func RegisterSteps(ctx *godog.ScenarioContext, tc *common.TestContext) {
	common.RegisterSteps(ctx, tc)
	lifecycle.RegisterSteps(ctx, tc)
}
