package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsdbkit/tsmaint/internal/cli"
	"github.com/tsdbkit/tsmaint/internal/sqlgen"
	"github.com/tsdbkit/tsmaint/pkg/generator"
	"github.com/tsdbkit/tsmaint/pkg/manifest"
)

var (
	valManifestsDir string
	valTemplate     string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate manifests and template",
	Long: `Validate the schema manifests and the SQL template without writing
any output. Reports the table names that a generate run would produce.`,
	Example: `  # Validate using config file settings
  tsmaint validate

  # Validate a specific manifest directory
  tsmaint validate --manifests-dir protos/manifests`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve values: flags > config > defaults
		manifestsDir := resolveString(valManifestsDir, cfg.Validate.ManifestsDir, cfg.ManifestsDir)
		templatePath := resolveString(valTemplate, cfg.Validate.Template, cfg.Template)

		tpl, err := generator.LoadTemplate(generator.Config{TemplatePath: templatePath})
		if err != nil {
			return cli.PipelineError("loading template", err)
		}

		entries, err := manifest.ScanDir(manifestsDir)
		if err != nil {
			return cli.PipelineError("scanning manifests", err)
		}

		if !quiet {
			fmt.Printf("Manifests are valid. Found %d tables:\n", len(entries))
			for _, name := range manifest.TableNames(entries) {
				fmt.Printf("  - %s\n", name)
			}
		}

		if !tpl.HasToken() {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: template contains no %s token; every block would be an unchanged copy\n", sqlgen.Token)
		}

		return nil
	},
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&valManifestsDir, "manifests-dir", "", "directory containing schema manifests")
	f.StringVar(&valTemplate, "template", "", "path to the SQL template (default: embedded template)")
}
