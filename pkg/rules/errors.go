package rules

import "github.com/arthur-debert/lintlayer/pkg/errors"

// withRule attaches the offending rule name to a parse error
func withRule(err error, name string) error {
	return errors.Wrapf(err, errors.ErrInvalidSeverity, "rule %q", name).
		WithDetail("rule", name)
}
