package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

const (
	formatHTML = "html"
	formatText = "text"
)

type renderFlags struct {
	dialectFlags
	format string
	flags  []string
}

func newRenderCmd(ctx context.Context) *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the markup file to HTML or plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if flags.format != formatHTML && flags.format != formatText {
				return fmt.Errorf("unknown format %q, expected %s or %s", flags.format, formatHTML, formatText)
			}

			parser, err := flags.parser()
			if err != nil {
				return err
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), parser.Parse(source), flags.format, flags.flags)
		},
	}

	flags.Configure(cmd)
	cmd.Flags().StringVar(&flags.format, "format", formatHTML,
		"Output format: html or text.")
	cmd.Flags().StringArrayVar(&flags.flags, "flag", nil,
		"Flag that is true for the [if:] conditionals. Can be repeated.")

	return cmd
}

// placeholderModules renders every module as an empty placeholder, there is no
// page store behind the command line.
var placeholderModules = wikitext.ModuleResolverFunc(func(name, options string) (string, error) {
	return `<div class="module" data-module="` + html.EscapeString(name) + `"></div>`, nil
})

func render(w io.Writer, tree *wikitext.AST, format string, flags []string) error {
	if format == formatText {
		_, err := io.WriteString(w, strings.TrimRight(wikitext.RenderText(tree), "\n")+"\n")
		return err
	}

	out, err := wikitext.RenderHTML(tree, placeholderModules, wikitext.Flags(flags...))
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out+"\n")
	return err
}
