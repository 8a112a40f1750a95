package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelgraph/plantas/dot"
)

var printJSON bool

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the input graph back out as DOT",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}

		if !printJSON {
			fmt.Print(dot.Write(g))
			return nil
		}

		store, _, err := embedForPrint(g)
		if err != nil {
			return err
		}
		out, err := store.DumpJSON()
		if err != nil {
			return fmt.Errorf("plantas: %w", err)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	printCmd.Flags().BoolVar(&printJSON, "json", false, "print the embedded DCEL as JSON instead of DOT (implies embedding the graph)")
}
