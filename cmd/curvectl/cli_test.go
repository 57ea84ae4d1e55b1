package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const linearRequest = `{
  "curve_state": {
    "decimals": {"reserve": 8, "supply": 2},
    "reserve": "125000000",
    "reserve_denom": "reserve",
    "supply": "1000",
    "supply_denom": "supply"
  },
  "curve_type": {"linear": {"scale": 10, "slope": "1"}}
}`

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	app := newApp()
	out := &bytes.Buffer{}
	app.Writer = out
	app.ErrWriter = out
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"curvectl"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	datadir := t.TempDir()
	t.Setenv("CURVE_DATADIR", datadir)
	t.Setenv("CURVE_ENABLE_STATS", "true")

	out, err := runApp(t, "", "spotprice", "--request", linearRequest)
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	out, err = runApp(t, linearRequest, "reserve")
	require.NoError(t, err)
	require.Equal(t, "500000000\n", out)

	file := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(file, []byte(linearRequest), 0644))

	out, err = runApp(t, "", "supply", "--file", file)
	require.NoError(t, err)
	require.Equal(t, "500\n", out)

	out, err = runApp(t, "", "batch", "--request", "["+linearRequest+","+linearRequest+"]")
	require.NoError(t, err)
	require.Equal(t, "1\n1\n", out)

	out, err = runApp(t, "", "config")
	require.NoError(t, err)
	require.Contains(t, out, "DATADIR="+datadir)

	_, err = os.Stat(filepath.Join(datadir, "stats", "metrics"))
	require.NoError(t, err)
}

func TestFailingCommands(t *testing.T) {
	t.Setenv("CURVE_DATADIR", t.TempDir())

	_, err := runApp(t, "", "spotprice")
	require.Error(t, err)

	_, err = runApp(t, "", "spotprice", "--request", linearRequest, "--file", "request.json")
	require.Error(t, err)

	_, err = runApp(t, "", "spotprice", "--request", `{"curve_type":{"sigmoid":{"scale":1,"slope":"1"}}}`)
	require.Error(t, err)

	out, err := runApp(t, "", "batch", "--request", `[`+linearRequest+`,{"curve_type":{"linear":{"scale":0,"slope":"1"}}}]`)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(out, "1\nerror: "))

	_, err = runApp(t, "", "batch", "--operation", "swap", "--request", "["+linearRequest+"]")
	require.Error(t, err)
}
