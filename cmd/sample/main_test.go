// -*- tab-width:2 -*-

package main

import (
	"os"
	"path/filepath"
	"testing"

	copula "github.com/jayalane/go-copula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTSV(t *testing.T) {
	res := copula.NewResults()
	res.Add("a", []float64{1, 3})
	res.Add("b", []float64{2.5})

	path := filepath.Join(t.TempDir(), "out.dat")
	require.NoError(t, writeTSV(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n1\t2.5\n3\t\n", string(data))

	err = writeTSV(res, filepath.Join(t.TempDir(), "missing", "out.dat"))
	assert.Error(t, err)
}
