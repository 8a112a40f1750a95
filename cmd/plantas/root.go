package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelgraph/plantas/core"
	"github.com/kestrelgraph/plantas/dot"
	"github.com/kestrelgraph/plantas/genplanar"
)

var (
	flagFile    string
	flagGen     int
	flagSeed    int64
	flagEpsilon float64
)

var rootCmd = &cobra.Command{
	Use:           "plantas",
	Short:         "Planar graph embedding and PTAS toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "path to DOT input (default: standard input)")
	rootCmd.PersistentFlags().IntVarP(&flagGen, "g", "g", 0, "generate a random maximal planar graph on n >= 4 vertices instead of reading DOT input")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "seed for -g")
	rootCmd.PersistentFlags().Float64Var(&flagEpsilon, "eps", 0.5, "approximation parameter for vertex-cover/independent-set, in (0,1)")

	rootCmd.AddCommand(printCmd, embedCmd, vertexCoverCmd, independentSetCmd)
}

// loadGraph resolves the input graph from -g, --file, or standard
// input, in that priority order.
func loadGraph() (*core.Graph, error) {
	if flagGen > 0 {
		g, err := genplanar.RandomMaximalPlanar(flagGen, flagSeed)
		if err != nil {
			return nil, fmt.Errorf("plantas: %w", err)
		}
		return g, nil
	}

	var src []byte
	var err error
	if flagFile != "" {
		src, err = os.ReadFile(flagFile)
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("plantas: reading input: %w", err)
	}

	g, err := dot.Read(string(src))
	if err != nil {
		return nil, fmt.Errorf("plantas: %w", err)
	}
	return g, nil
}
