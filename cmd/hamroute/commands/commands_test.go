package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamroute/cmd/hamroute/commands"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/route"
	"github.com/katalvlaran/hamroute/search"
)

const sample = `London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_Stdin(t *testing.T) {
	out, err := run(t, sample, "solve")
	require.NoError(t, err)
	assert.Equal(t, "locations: 3\nshortest: 605 London -> Dublin -> Belfast\nlongest: 982 Dublin -> London -> Belfast\n", out)
}

func TestSolve_FileJSONParallel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	out, err := run(t, "", "solve", "--format", "json", "--parallel", "3", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"cost": 605`)
	assert.Contains(t, out, `"cost": 982`)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "London to Dublin 464\n", "solve")
	assert.ErrorIs(t, err, route.ErrSyntax)

	incomplete := "A to B = 1\nB to C = 1\n"
	_, err = run(t, incomplete, "solve")
	assert.ErrorIs(t, err, matrix.ErrIncompleteGraph)

	_, err = run(t, incomplete, "solve", "--no-validate")
	assert.ErrorIs(t, err, search.ErrMissingEdge)

	_, err = run(t, incomplete, "solve", "--no-validate=false")
	assert.ErrorIs(t, err, matrix.ErrIncompleteGraph)

	_, err = run(t, sample, "solve", "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestGenerate_RoundTrip(t *testing.T) {
	gen, err := run(t, "", "generate", "--nodes", "5", "--seed", "7", "--min", "10", "--max", "20")
	require.NoError(t, err)

	conns, err := route.ParseString(gen)
	require.NoError(t, err)
	require.Len(t, conns, 10)
	for _, c := range conns {
		assert.GreaterOrEqual(t, uint64(c.Cost), uint64(10))
		assert.LessOrEqual(t, uint64(c.Cost), uint64(20))
	}

	again, err := run(t, "", "generate", "--nodes", "5", "--seed", "7", "--min", "10", "--max", "20")
	require.NoError(t, err)
	assert.Equal(t, gen, again)

	out, err := run(t, gen, "solve", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest:")

	_, err = run(t, "", "generate", "--min", "0")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "--nodes", "1")
	assert.Error(t, err)
}
