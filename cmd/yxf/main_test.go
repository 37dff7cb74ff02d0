package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/yxf-go/pkg/yxf"
)

const formYAML = `survey:
  - type: text
    name: name
    label: What is your name?
yxf:
  headers:
    survey:
      - type
      - name
      - label
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(formYAML), 0644))
	return path
}

func TestRunConvertsBothWays(t *testing.T) {
	input := setup(t)
	dir := filepath.Dir(input)

	stdout, _, err := execute(t, input)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "form.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "form.xlsx"))

	stdout, _, err = execute(t, "--markdown", filepath.Join(dir, "form.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Markdown")
	assert.FileExists(t, filepath.Join(dir, "form.md"))
}

func TestRunRefusesOverwrite(t *testing.T) {
	input := setup(t)

	_, _, err := execute(t, input)
	require.NoError(t, err)

	_, _, err = execute(t, input)
	assert.ErrorIs(t, err, yxf.ErrOutputExists)

	_, _, err = execute(t, "-f", input)
	assert.NoError(t, err)
}

func TestRunReadsEnvironment(t *testing.T) {
	input := setup(t)
	output := filepath.Join(filepath.Dir(input), "custom.xlsx")
	t.Setenv("YXF_OUTPUT", output)
	t.Setenv("YXF_VERBOSE", "true")

	_, stderr, err := execute(t, input)
	require.NoError(t, err)
	assert.FileExists(t, output)
	assert.Contains(t, stderr, "converting")
}

func TestRunArgs(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "form.txt")
	assert.ErrorIs(t, err, yxf.ErrUnrecognizedExtension)
}
