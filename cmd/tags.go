package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubelouislu/sre-portfolio/internal/article"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List article tags in first-appearance order",
	RunE:  runTags,
}

func init() {
	tagsCmd.Flags().String("lang", "", "content language (en or zh, defaults to default_language)")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	langValue, _ := cmd.Flags().GetString("lang")
	l, err := languageFlag(langValue, cfg)
	if err != nil {
		return err
	}
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	d, ok := store.Dictionary(l.String())
	if !ok {
		return fmt.Errorf("no content for language %s", l)
	}

	for _, tag := range article.AllTags(d.Thinking) {
		n := len(article.Visible(d.Thinking, tag))
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", tag, n)
	}
	return nil
}
