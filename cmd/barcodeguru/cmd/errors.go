package cmd

import "errors"

// errRulesFailed signals that the report was written and at least one
// verdict reached the --fail-on level. It is not printed.
var errRulesFailed = errors.New("one or more rules failed")

// ExitCode maps an Execute error to a process exit status: 1 when a verdict
// reached the --fail-on level, 2 for usage, input and configuration errors.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRulesFailed):
		return 1
	default:
		return 2
	}
}
