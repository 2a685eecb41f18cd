package app

import (
	"context"
	"fmt"
	"io"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	dialectFlags
	radius int
}

func newCheckCmd(ctx context.Context) *cobra.Command {
	flags := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report the markup problems of the files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			parser, err := flags.parser()
			if err != nil {
				return err
			}

			return checkFiles(ctx, cmd, parser, args, flags.radius)
		},
	}

	flags.Configure(cmd)
	cmd.Flags().IntVar(&flags.radius, "excerpt", wikitext.DefaultExcerptRadius,
		"Runes of context printed around each problem.")

	return cmd
}

// checkFiles prints every problem of every file. Files with problems and files
// that can't be read are all reported in the returned error.
func checkFiles(ctx context.Context, cmd *cobra.Command, parser *wikitext.Parser, files []string, radius int) error {
	var errs error

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return multierror.Append(errs, err)
		}

		source, err := readSource(cmd, name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		warns := parser.ParseForAllErrors(source)
		if len(warns) == 0 {
			continue
		}

		printWarnings(cmd.OutOrStdout(), name, source, warns, radius)
		errs = multierror.Append(errs, fmt.Errorf("%s: %d markup problem(s)", name, len(warns)))
	}

	return errs
}

// printWarnings writes "file:offset: issue: description", followed by the excerpt
// with a caret under the position.
func printWarnings(w io.Writer, name, source string, warns []wikitext.Warning, radius int) {
	for _, warn := range warns {
		fmt.Fprintf(w, "%s:%d: %s: %s\n", name, warn.Pos, warn.Issue, warn.Description)

		before, after := wikitext.Excerpt(source, warn.Pos, radius)
		if before == "" && after == "" {
			continue
		}

		before, after = oneLine(before), oneLine(after)
		fmt.Fprintf(w, "\t%s%s\n\t%*s^\n", before, after, len([]rune(before)), "")
	}
}

func oneLine(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '\n' || r == '\r' || r == '\t' {
			out[i] = ' '
		}
	}
	return string(out)
}
