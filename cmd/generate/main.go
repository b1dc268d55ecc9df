// Package main exports the landing page as static files.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"boco.agency/internal/app"
	"boco.agency/internal/config"
	"boco.agency/internal/models"
	"boco.agency/internal/services"
	"boco.agency/internal/views"
)

// errEmptyPage is returned when the homepage could not be loaded and --allow-empty is off
var errEmptyPage = errors.New("homepage content unavailable")

var (
	contentURL string
	fetchMode  string
	allowEmpty bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export the landing page as static HTML",
	Long: `Load the landing page once and write index.html, one project-N.html per
additional carousel slide, and page.json into the output directory.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&contentURL, "content-url", "", "CMS base URL (overrides CONTENT_URL)")
	rootCmd.Flags().StringVar(&fetchMode, "fetch-mode", "", "independent or gated (overrides FETCH_MODE)")
	rootCmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "write the empty-state page instead of failing")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("content-url") {
		cfg.ContentURL = contentURL
	}
	if cmd.Flags().Changed("fetch-mode") {
		if err := cfg.FetchMode.UnmarshalText([]byte(fetchMode)); err != nil {
			return err
		}
	}

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.Background()) }()

	return export(cmd.Context(), a.Pages, args[0], allowEmpty, cmd.OutOrStdout())
}

// staticHref links carousel slides to the files export writes
func staticHref(i int) string {
	if i <= 0 {
		return "index.html"
	}
	return fmt.Sprintf("project-%d.html", i)
}

// export loads the page once and writes every slide plus the JSON snapshot into dir
func export(ctx context.Context, pages *services.PageService, dir string, allowEmpty bool, out io.Writer) error {
	page := pages.Load(ctx)
	if page.State() != models.ViewReady && !allowEmpty {
		return errEmptyPage
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	slides := max(len(page.Projects()), 1)
	for i := 0; i < slides; i++ {
		page.SelectProject(i)
		name := staticHref(i)
		if err := writeSlide(ctx, filepath.Join(dir, name), page.View()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", name)
	}

	page.SelectProject(0)
	data, err := json.MarshalIndent(page.View(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "page.json"), data, 0o644); err != nil {
		return fmt.Errorf("write page.json: %w", err)
	}
	fmt.Fprintf(out, "Created page.json (%s, %d projects, %d case studies)\n",
		page.State(), len(page.Projects()), len(page.View().CaseStudies))

	fmt.Fprintln(out, "Done!")
	return nil
}

func writeSlide(ctx context.Context, path string, view models.PageView) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	if err := views.Page(view, views.Options{ProjectHref: staticHref}).Render(ctx, f); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return nil
}
