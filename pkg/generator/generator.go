// Package generator ties the manifest scanner, template expander, and
// output writer into the migration-generation pipeline.
//
// This is the public entry point used by the tsmaint CLI. The pipeline is
// single-threaded and strictly sequential: template load and manifest scan
// feed the expander, and the writer runs once, last, only after everything
// before it succeeded. A failing stage therefore never produces partial
// output; the previous migration file, if any, stays on disk unchanged.
//
// # Basic Usage
//
//	res, err := generator.Generate(generator.Config{
//	    ManifestsDir: "protos/manifests",
//	    OutputDir:    "migrations",
//	})
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsdbkit/tsmaint"
	"github.com/tsdbkit/tsmaint/internal/sqlgen"
	"github.com/tsdbkit/tsmaint/pkg/manifest"
)

// OutputFilename is the constant name of the generated migration file. The
// V4__ prefix places it in the migration runner's version order. The
// generator always targets exactly this name and fully overwrites any
// previous run's output; there is no append, versioning, or backup.
const OutputFilename = "V4__configure_timeseries_maintenance.sql"

// Config carries the three pipeline paths.
type Config struct {
	// ManifestsDir is scanned non-recursively for manifest files. It must
	// exist; it may be empty.
	ManifestsDir string

	// TemplatePath points at the SQL template file. Empty selects the
	// embedded default template.
	TemplatePath string

	// OutputDir receives the migration file. It must exist and be
	// writable; the file name within it is fixed.
	OutputDir string
}

// Result describes a successful generation run.
type Result struct {
	// OutputPath is the written migration file.
	OutputPath string

	// TableNames are the derived names, one per manifest record, in
	// expansion order. Duplicates are preserved.
	TableNames []string
}

// LoadTemplate resolves the template for cfg: the configured path when set,
// otherwise the embedded default.
func LoadTemplate(cfg Config) (sqlgen.Template, error) {
	if cfg.TemplatePath == "" {
		return sqlgen.Default(), nil
	}
	return sqlgen.Load(cfg.TemplatePath)
}

// Render runs the loader, scanner, and expander and returns the assembled
// migration text and the derived table names without writing anything.
// Backs the CLI's --dry-run.
func Render(cfg Config) (string, []string, error) {
	tpl, err := LoadTemplate(cfg)
	if err != nil {
		return "", nil, err
	}

	entries, err := manifest.ScanDir(cfg.ManifestsDir)
	if err != nil {
		return "", nil, err
	}

	names := manifest.TableNames(entries)
	return sqlgen.Render(tpl.ExpandAll(names)), names, nil
}

// Generate runs the full pipeline and writes the migration file, replacing
// any existing file at the output path. Write errors wrap
// tsmaint.ErrWriteFailure; the output directory is not created on demand.
func Generate(cfg Config) (*Result, error) {
	text, names, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(cfg.OutputDir, OutputFilename)
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", tsmaint.ErrWriteFailure, outPath, err)
	}

	return &Result{OutputPath: outPath, TableNames: names}, nil
}
