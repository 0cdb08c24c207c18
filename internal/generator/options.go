package generator

import (
	"github.com/cockroachdb/errors"

	"github.com/goatx/resultsgen/internal/wording"
)

// DefaultMaxArity is the highest arity generated when none is configured.
const DefaultMaxArity = 6

// DefaultPackage is the package clause used when none is configured.
const DefaultPackage = "results"

// ErrInvalidOptions is returned by Validate.
var ErrInvalidOptions = errors.New("invalid generator options")

// Options configures one generation run.
type Options struct {
	// PackageName is the package clause of both outputs. The generated code
	// refers to the runtime types unqualified, so this must be the package
	// that declares Result, HTTPContext, NewHTTPContext, PopulateMetadata and
	// the sentinel errors, like the results package does.
	PackageName string

	// MaxArity is the highest arity emitted. Arities start at 2.
	MaxArity int
}

// Validate reports whether the options can be rendered. The upper bound comes
// from the word tables used for doc comments and test names.
func (o Options) Validate() error {
	if o.PackageName == "" {
		return errors.Wrap(ErrInvalidOptions, "package name must not be empty")
	}
	if o.MaxArity < 1 || o.MaxArity > wording.MaxValue {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidOptions, "max arity %d is outside [1, %d]", o.MaxArity, wording.MaxValue),
			"arity 1 generates no types; the upper bound is the largest number the wording tables can spell",
		)
	}
	return nil
}
