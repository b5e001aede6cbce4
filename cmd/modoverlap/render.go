// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/modoverlap/modoverlap/internal/issue"
	"github.com/modoverlap/modoverlap/pkg/types"

	"github.com/spf13/cobra"
)

// issueStyle is the glamour style used for catalog pages.
const issueStyle = "dark"

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// reportError prints err to stderr, followed by its catalog page in verbose
// mode, and converts it into an ExitError so fang does not print it again.
func reportError(cmd *cobra.Command, app *App, err error, verbose bool) error {
	fmt.Fprintf(app.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if verbose {
		if page := issue.Get(issue.IssueOf(err)); page != nil {
			if rendered, renderErr := page.Render(issueStyle); renderErr == nil {
				fmt.Fprint(app.stderr, rendered)
			}
		}
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: types.ExitFailure, Err: err}
}
