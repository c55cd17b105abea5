package commands

import (
	"github.com/thoreinstein/handlesort/internal/config"
	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/handle"
)

// loadRules resolves the effective rule table, surfacing rule-file problems
// as user errors.
func loadRules(path string) (handle.Rules, error) {
	rules, err := config.LoadRules(path)
	if err != nil {
		return rules, errors.NewUserError(err, "Check your rules file")
	}
	return rules, nil
}
