package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubelouislu/sre-portfolio/internal/config"
	"github.com/kubelouislu/sre-portfolio/internal/content"
	"github.com/kubelouislu/sre-portfolio/internal/lang"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Bilingual SRE portfolio site",
	Long: `portfolio serves a bilingual (English/Chinese) resume and blog site:
profile, work history, skills, articles with diagrams and a growth timeline.
It can also export the whole site as static HTML.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// loadStore reads content from the configured directory, or the embedded
// copy when none is set.
func loadStore(cfg *config.Config) (*content.Store, error) {
	if cfg.ContentDir != "" {
		s, err := content.LoadDir(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("loading content from %s: %w", cfg.ContentDir, err)
		}
		return s, nil
	}
	s, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("loading embedded content: %w", err)
	}
	return s, nil
}

// languageFlag resolves a --lang value, falling back to the configured default.
func languageFlag(value string, cfg *config.Config) (lang.Language, error) {
	if value == "" {
		return cfg.Language(), nil
	}
	l, ok := lang.Parse(value)
	if !ok {
		return "", fmt.Errorf("invalid --lang %q: must be en or zh", value)
	}
	return l, nil
}
