package app

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCommand creates the root command. The context is propagated to the
// subcommands, which stop between files once it's done.
func NewCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikimark",
		Short: "Check and render wiki and forum markup",
	}

	cmd.AddCommand(newCheckCmd(ctx))
	cmd.AddCommand(newRenderCmd(ctx))

	return cmd
}
