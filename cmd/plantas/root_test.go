package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetFlags() {
	flagFile = ""
	flagGen = 0
	flagSeed = 1
	flagEpsilon = 0.5
}

func TestLoadGraph_FromFile(t *testing.T) {
	resetFlags()
	defer resetFlags()

	path := filepath.Join(t.TempDir(), "g.dot")
	require.NoError(t, os.WriteFile(path, []byte("graph { a -- b; b -- c }"), 0o644))
	flagFile = path

	g, err := loadGraph()
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestLoadGraph_Generated(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagGen = 8
	flagSeed = 3

	g, err := loadGraph()
	require.NoError(t, err)
	require.Equal(t, 8, g.NumVertices())
	require.Equal(t, 3*8-6, g.NumEdges())
}

func TestLoadGraph_RejectsMalformedFile(t *testing.T) {
	resetFlags()
	defer resetFlags()

	path := filepath.Join(t.TempDir(), "bad.dot")
	require.NoError(t, os.WriteFile(path, []byte("not dot {{{"), 0o644))
	flagFile = path

	_, err := loadGraph()
	require.Error(t, err)
}
