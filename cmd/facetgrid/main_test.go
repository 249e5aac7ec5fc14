package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/facetgrid"
)

const tipsCSV = `total_bill,tip,time,smoker,day
10,1,Dinner,No,2023-01-05
20,3,Lunch,Yes,2023-01-06
15,2,Dinner,No,2023-01-07
30,5,Dinner,No,2023-01-08
25,4,Lunch,Yes,2023-01-05
12,1.5,Lunch,No,2023-01-06
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestColumns(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "tips.csv", tipsCSV)

	out, err := run(t, "columns", "--time", "day", csv)
	require.NoError(t, err)
	assert.Contains(t, out, "total_bill")
	assert.Contains(t, out, "continuous")
	assert.Contains(t, out, "datetime")

	_, err = run(t, "columns", "--order", "time", csv)
	assert.Error(t, err)
}

func TestFuncs(t *testing.T) {
	out, err := run(t, "funcs")
	require.NoError(t, err)
	assert.Equal(t, []string{"hist", "line", "scatter"}, strings.Fields(out))
}

func TestRelplotCommand(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "tips.csv", tipsCSV)
	svg := filepath.Join(dir, "tips.svg")

	_, err := run(t, "relplot", "-x", "total_bill", "-y", "tip",
		"--col", "time", "--order", "time=Lunch,Dinner", "--hue", "smoker",
		"--height", "2", "-o", svg, csv)
	require.NoError(t, err)
	b, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
	assert.Contains(t, string(b), "time = Lunch")
}

func TestRelplotCommandErrors(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "tips.csv", tipsCSV)
	out := filepath.Join(dir, "out.png")

	_, err := run(t, "relplot", "-x", "tip", "-y", "tip", "--row", "smoker",
		"--col", "time", "--col-wrap", "2", "-o", out, csv)
	var ce *facetgrid.ConfigurationError
	assert.True(t, errors.As(err, &ce), "got %v", err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))

	_, err = run(t, "relplot", "-x", "tip", "-y", "tip", "--sharex", "diagonal", csv)
	assert.Error(t, err)

	_, err = run(t, "relplot", "-x", "tip", "-y", "tip", "-o", out, filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestPairplotCommand(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "tips.csv", tipsCSV)
	cfg := writeFile(t, dir, "pair.toml", "vars = [\"total_bill\", \"tip\"]\nhue = \"time\"\n")
	pdf := filepath.Join(dir, "pairs.pdf")

	_, err := run(t, "pairplot", "--config", cfg, "--hue", "smoker", "-o", pdf, csv)
	require.NoError(t, err)
	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "rel.yaml", `
x: total_bill
y: tip
col: time
hue: smoker
hue_order: [No, Yes]
sharey: none
`)

	var o facetgrid.RelOptions
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&o.Col, "col", "", "")
	cmd.Flags().StringVar(&o.Kind, "kind", "scatter", "")
	cmd.Flags().StringSliceVar(&o.HueOrder, "hue-order", nil, "")
	require.NoError(t, cmd.ParseFlags([]string{"--col", "day", "--hue-order", "Yes,No"}))

	require.NoError(t, loadConfig(cmd, yml, &o))
	assert.Equal(t, "total_bill", o.X)
	assert.Equal(t, "smoker", o.Hue)
	assert.Equal(t, "day", o.Col, "flags override the file")
	assert.Equal(t, []string{"Yes", "No"}, o.HueOrder)
	assert.Equal(t, "scatter", o.Kind)
	assert.Equal(t, facetgrid.ShareNone, o.ShareY)

	bad := writeFile(t, dir, "rel.yaml2", "x: tip")
	assert.Error(t, loadConfig(cmd, bad, &o))
	unknown := writeFile(t, dir, "unknown.yaml", "colour: red\n")
	assert.Error(t, loadConfig(cmd, unknown, &o))
}
