package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrDirectoryExists indicates the target project directory already exists.
	ErrDirectoryExists = errors.New("scaffold: directory already exists")

	// ErrNotProject indicates an update was requested against a directory that
	// is not an existing project.
	ErrNotProject = errors.New("scaffold: not an existing project")

	// ErrInvalidName indicates the project name cannot be turned into a valid
	// package identifier.
	ErrInvalidName = errors.New("scaffold: invalid project name")

	// ErrUnknownLicense indicates a license identifier with no bundled text.
	ErrUnknownLicense = errors.New("scaffold: unknown license")
)

// DirectoryExistsError is a typed error carrying the conflicting path for
// callers that need richer diagnostic information.
type DirectoryExistsError struct {
	Path string
}

func (e *DirectoryExistsError) Error() string {
	return fmt.Sprintf("directory already exists: %q", e.Path)
}

func (e *DirectoryExistsError) Is(target error) bool {
	return target == ErrDirectoryExists
}

func (e *DirectoryExistsError) Unwrap() error { return ErrDirectoryExists }

// NewDirectoryExistsError constructs a typed DirectoryExistsError.
func NewDirectoryExistsError(path string) error {
	return &DirectoryExistsError{Path: path}
}

// IsDirectoryExists reports whether err is (or wraps) a directory-exists condition.
func IsDirectoryExists(err error) bool {
	return errors.Is(err, ErrDirectoryExists)
}

// NotProjectError reports an update attempt against a directory with no project.
type NotProjectError struct {
	Path string
}

func (e *NotProjectError) Error() string {
	if e.Path == "" {
		return "not an existing project"
	}
	return fmt.Sprintf("not an existing project: %q", e.Path)
}

func (e *NotProjectError) Is(target error) bool {
	return target == ErrNotProject
}

func (e *NotProjectError) Unwrap() error { return ErrNotProject }

// NewNotProjectError constructs a typed NotProjectError.
func NewNotProjectError(path string) error {
	return &NotProjectError{Path: path}
}

// IsNotProject reports whether err is (or wraps) a not-a-project condition.
func IsNotProject(err error) bool {
	return errors.Is(err, ErrNotProject)
}

// InvalidNameError carries the offending project name.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name: %q", e.Name)
}

func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// NewInvalidNameError constructs a typed InvalidNameError.
func NewInvalidNameError(name string) error {
	return &InvalidNameError{Name: name}
}

// IsInvalidName reports whether err is (or wraps) an invalid-name condition.
func IsInvalidName(err error) bool {
	return errors.Is(err, ErrInvalidName)
}

// UnknownLicenseError carries the unrecognized license identifier.
type UnknownLicenseError struct {
	License string
}

func (e *UnknownLicenseError) Error() string {
	return fmt.Sprintf("unknown license: %q", e.License)
}

func (e *UnknownLicenseError) Is(target error) bool {
	return target == ErrUnknownLicense
}

func (e *UnknownLicenseError) Unwrap() error { return ErrUnknownLicense }

// NewUnknownLicenseError constructs an UnknownLicenseError.
func NewUnknownLicenseError(license string) error {
	return &UnknownLicenseError{License: license}
}

// IsUnknownLicense reports whether err is (or wraps) an unknown-license condition.
func IsUnknownLicense(err error) bool {
	return errors.Is(err, ErrUnknownLicense)
}
