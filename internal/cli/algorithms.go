package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwalk/pkg/walk"
)

// algorithmsCommand creates the algorithms command listing the supported drivers.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Algorithms"))
			printNewline()
			for _, a := range walk.Algorithms() {
				name := a.String()
				if !a.NeedsStart() {
					name += " *"
				}
				printKeyValue(name, a.Description())
			}
			printNewline()
			printDetail("* runs on the whole graph, no start node")
			return nil
		},
	}
}
