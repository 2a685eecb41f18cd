package app

import (
	"io"
	"os"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/spf13/cobra"
)

// dialectFlags select the grammar of the input files.
type dialectFlags struct {
	dialect string
	bbcode  bool
	html    bool
	literal bool
}

func (f *dialectFlags) Configure(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dialect, "dialect", "wiki",
		"Markup dialect of the input: wiki or forum.")
	cmd.Flags().BoolVar(&f.bbcode, "bbcode", false,
		"Enable BBCode tags, forum dialect only.")
	cmd.Flags().BoolVar(&f.html, "html", false,
		"Enable the HTML tag whitelist, forum dialect only.")
	cmd.Flags().BoolVar(&f.literal, "literal", false,
		"Output unclosed tags as text instead of closing them at the end of the input.")
}

func (f *dialectFlags) parser() (*wikitext.Parser, error) {
	dialect, err := wikitext.ParseDialect(f.dialect, f.bbcode, f.html)
	if err != nil {
		return nil, err
	}

	recovery := wikitext.RecoverForceClose
	if f.literal {
		recovery = wikitext.RecoverLiteral
	}

	return wikitext.NewParser(
		dialect,
		wikitext.WithRecovery(recovery),
		wikitext.WithWarningsPolicy(wikitext.WarnOverflowNoCap, 0),
	)
}

// readSource reads the file, "-" is the standard input.
func readSource(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}

	data, err := os.ReadFile(name)
	return string(data), err
}
