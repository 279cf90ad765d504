package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsdbkit/tsmaint/internal/cli"
	"github.com/tsdbkit/tsmaint/pkg/generator"
)

var (
	genManifestsDir string
	genTemplate     string
	genOutputDir    string
	genDryRun       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the maintenance migration",
	Long: `Generate the timeseries maintenance migration.

Expands the SQL template once per table name derived from the schema
manifests and writes the result to ` + generator.OutputFilename + `
in the output directory, fully replacing any previous run's file. With no
--template the embedded default maintenance template is used.`,
	Example: `  # Generate using config file settings
  tsmaint generate

  # Explicit paths
  tsmaint generate --manifests-dir protos/manifests --template maintenance.sql --output-dir migrations

  # Preview the migration without writing it
  tsmaint generate --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve values: flags > config > defaults
		gcfg := generator.Config{
			ManifestsDir: resolveString(genManifestsDir, cfg.Generate.ManifestsDir, cfg.ManifestsDir),
			TemplatePath: resolveString(genTemplate, cfg.Generate.Template, cfg.Template),
			OutputDir:    resolveString(genOutputDir, cfg.Generate.OutputDir, cfg.OutputDir),
		}

		if resolveBool(genDryRun, cfg.Generate.DryRun) {
			text, _, err := generator.Render(gcfg)
			if err != nil {
				return cli.PipelineError("generating migration", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		}

		res, err := generator.Generate(gcfg)
		if err != nil {
			return cli.PipelineError("generating migration", err)
		}

		if !quiet {
			fmt.Printf("Generated %s (%d tables)\n", res.OutputPath, len(res.TableNames))
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genManifestsDir, "manifests-dir", "", "directory containing schema manifests")
	f.StringVar(&genTemplate, "template", "", "path to the SQL template (default: embedded template)")
	f.StringVar(&genOutputDir, "output-dir", "", "directory receiving the migration file")
	f.BoolVar(&genDryRun, "dry-run", false, "print the migration to stdout without writing it")
}
