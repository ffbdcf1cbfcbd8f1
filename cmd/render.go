package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kubelouislu/sre-portfolio/internal/article"
)

var renderCmd = &cobra.Command{
	Use:   "render <article-id>",
	Short: "Print the render plan of an article",
	Long: `Interprets an article's content blocks and prints the resulting items:
headings, paragraphs, list items and numbered figures. Useful for checking
markup in content files before publishing.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("lang", "", "content language (en or zh, defaults to default_language)")
	renderCmd.Flags().Bool("json", false, "print the plan as JSON")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
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
	a, err := d.Article(args[0])
	if err != nil {
		return err
	}

	plan := article.RenderPlan(a, article.Options{FigureLabel: d.UI.Thinking.Figure})
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n\n", a.Title)
	writePlan(cmd.OutOrStdout(), plan)
	return nil
}

func writePlan(w io.Writer, plan []article.Item) {
	for _, item := range plan {
		switch item.Kind {
		case article.Heading:
			fmt.Fprintf(w, "## %s\n", item.Text)
		case article.Paragraph:
			fmt.Fprintln(w, formatRuns(item.Runs))
		case article.ListItem:
			fmt.Fprintf(w, "  %s %s\n", item.Marker, formatRuns(item.Runs))
		case article.DiagramItem:
			fmt.Fprintf(w, "[diagram %s/%s] %s\n", item.Diagram.ID, item.Diagram.Layout, item.Caption)
		}
	}
}

func formatRuns(runs []article.Run) string {
	var b strings.Builder
	for _, r := range runs {
		switch r.Kind {
		case article.Bold:
			b.WriteString("*" + r.Text + "*")
		case article.Link:
			fmt.Fprintf(&b, "%s <%s>", r.Text, r.URL)
		default:
			b.WriteString(r.Text)
		}
	}
	return b.String()
}
