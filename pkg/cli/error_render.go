package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkproj/mkproj/pkg/scaffold"
)

// decorateError attaches a usage hint to well-known scaffold failures so the
// message cobra prints tells the user what to do next. Everything else passes
// through untouched.
func decorateError(err error) error {
	if err == nil {
		return nil
	}

	var dirErr *scaffold.DirectoryExistsError
	if errors.As(err, &dirErr) {
		return fmt.Errorf("%w (pass --force to overwrite or --update to refresh it)", err)
	}

	var projErr *scaffold.NotProjectError
	if errors.As(err, &projErr) {
		return fmt.Errorf("%w (drop --update to create it from scratch)", err)
	}

	var licErr *scaffold.UnknownLicenseError
	if errors.As(err, &licErr) {
		return fmt.Errorf("%w (known licenses: %s)", err, strings.Join(scaffold.Licenses(), ", "))
	}

	return err
}
