package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/ptas"
	"github.com/kestrelgraph/plantas/treewidth"
)

// runPTAS loads the input graph, approximates prob via ptas.Solve
// using the in-module Naive treewidth solver, and prints the
// resulting vertex set one label (or VertexID) per line, sorted for
// reproducible output.
func runPTAS(prob ptas.Problem) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	sol, err := ptas.Solve(g, prob, flagEpsilon, treewidth.Naive{})
	if err != nil {
		return fmt.Errorf("plantas: %w", err)
	}

	verts := make([]core.VertexID, 0, len(sol))
	for v := range sol {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	fmt.Printf("size: %d\n", len(verts))
	for _, v := range verts {
		if label := g.Label(v); label != "" {
			fmt.Println(label)
		} else {
			fmt.Printf("v%d\n", int(v))
		}
	}
	return nil
}

var vertexCoverCmd = &cobra.Command{
	Use:   "vertex-cover",
	Short: "Approximate a minimum vertex cover of the input graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPTAS(ptas.MinVertexCover())
	},
}

var independentSetCmd = &cobra.Command{
	Use:   "independent-set",
	Short: "Approximate a maximum independent set of the input graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPTAS(ptas.MaxIndependentSet())
	},
}
