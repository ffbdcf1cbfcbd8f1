package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubelouislu/sre-portfolio/internal/web"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static HTML",
	Long: `Renders every page in both languages (each tab, tag filter and article)
into a directory that any static file server can host.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "output directory (defaults to export_dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.ExportDir
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	exp, err := web.NewExporter(store, outDir, cfg.Language())
	if err != nil {
		return err
	}
	pages, err := exp.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site exported: %s (%d pages)\n", outDir, pages)
	return nil
}
