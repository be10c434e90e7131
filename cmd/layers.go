package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warren/internal/layers"
	"github.com/papapumpkin/warren/internal/phase"
	"github.com/papapumpkin/warren/internal/ui"
)

var layersCmd = &cobra.Command{
	Use:   "layers [phase]",
	Short: "Print which layers are mounted in each phase",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayers,
}

func init() {
	rootCmd.AddCommand(layersCmd)
}

func runLayers(cmd *cobra.Command, args []string) error {
	rows := layers.Table()
	if len(args) == 1 {
		p, err := phase.Parse(args[0])
		if err != nil {
			return fmt.Errorf("layers: %w", err)
		}
		rows = []layers.Row{{Phase: p, Layers: layers.For(p)}}
	}
	ui.NewWriter(cmd.OutOrStdout()).LayerTable(rows)
	return nil
}
