// Package tsmaint generates the SQL migration that configures timeseries
// maintenance for schema-manifest tables.
//
// The pipeline is a strict four-stage sequence: load the SQL template, scan
// the manifest directory for table names, expand the template once per
// table, and write the assembled migration to a fixed-name file. The
// generated file is later applied by an external migration runner in the
// version order implied by its V4__ prefix; this module never touches a
// database itself.
//
// # Module Structure
//
//   - pkg/manifest: manifest scanning and table-name derivation
//   - pkg/generator: the public pipeline entry point
//   - internal/sqlgen: template loading, expansion, and output assembly
//   - cmd/tsmaint: the CLI
//
// This root package holds only the sentinel error taxonomy shared by the
// pipeline stages, so it stays dependency-free.
package tsmaint

import "errors"

// Sentinel errors for the three failure modes of a generation run. All are
// fatal: any one of them aborts the run before the output file is written,
// so a failed run leaves the previous migration, if any, untouched.
//
// Pipeline packages wrap these with fmt.Errorf("%w: ...") to name the
// failing path; callers classify with errors.Is or the Is*Err helpers.
var (
	// ErrMissingResource is returned when a required file or directory
	// (the template file or the manifest directory) does not exist or
	// cannot be read.
	ErrMissingResource = errors.New("tsmaint: missing resource")

	// ErrMalformedManifest is returned when a manifest file is not valid
	// structured data, or a record lacks the ProtoDefName field.
	ErrMalformedManifest = errors.New("tsmaint: malformed manifest")

	// ErrWriteFailure is returned when the output location is not
	// writable.
	ErrWriteFailure = errors.New("tsmaint: write failure")
)

// IsMissingResourceErr returns true if err is or wraps ErrMissingResource.
func IsMissingResourceErr(err error) bool {
	return errors.Is(err, ErrMissingResource)
}

// IsMalformedManifestErr returns true if err is or wraps ErrMalformedManifest.
func IsMalformedManifestErr(err error) bool {
	return errors.Is(err, ErrMalformedManifest)
}

// IsWriteFailureErr returns true if err is or wraps ErrWriteFailure.
func IsWriteFailureErr(err error) bool {
	return errors.Is(err, ErrWriteFailure)
}
