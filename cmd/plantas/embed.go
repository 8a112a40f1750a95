package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dcel"
	"github.com/kestrelgraph/plantas/embed"
)

// embedForPrint computes a maximal planar embedding of g, the way
// both "plantas embed" and "plantas print --json" need it.
func embedForPrint(g *core.Graph) (*dcel.Store, map[core.VertexID]dcel.VertexID, error) {
	store, vmap, err := embed.Embed(g)
	if err != nil {
		return nil, nil, fmt.Errorf("plantas: embedding: %w", err)
	}
	return store, vmap, nil
}

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Compute and print a planar embedding of the input graph as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
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
