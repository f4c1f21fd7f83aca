package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validModel = `
properties:
  - name: Id
    type: int64
    key: true
  - name: Name
    type: string
    size: 100
  - name: Version
    type: blob
    rowversion: true
`

const failingModel = `
properties:
  - name: Id
    type: int64
  - name: Notes
    store_type: varchar
`

func TestCheckCommand_Valid(t *testing.T) {
	path := writeModelFile(t, validModel)
	out, _, err := executeCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Id => bigint")
	assert.Contains(t, out, "Name => nvarchar(100)")
	assert.Contains(t, out, "Version => rowversion")
	assert.Contains(t, out, "3 checked, 0 failed")
}

func TestCheckCommand_UnqualifiedStoreType(t *testing.T) {
	path := writeModelFile(t, failingModel)
	out, _, err := executeCommand(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAILED   Notes")
	assert.Contains(t, out, "varchar")
	assert.Contains(t, out, "2 checked, 1 failed")
}

func TestCheckCommand_DeferredProperty(t *testing.T) {
	path := writeModelFile(t, `
properties:
  - name: Payload
`)
	out, _, err := executeCommand(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "deferred Payload")
}

func TestCheckCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "check", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommand_MalformedYAML(t *testing.T) {
	path := writeModelFile(t, "properties: [not: {valid")
	_, _, err := executeCommand(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCheckCommand_JSONReport(t *testing.T) {
	path := writeModelFile(t, failingModel)
	out, _, err := executeCommand(t, "--format", "json", "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	payload, marshalErr := json.Marshal(resp.Data)
	require.NoError(t, marshalErr)
	var report CheckReport
	require.NoError(t, json.Unmarshal(payload, &report))
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Failed)
}

func TestLoadModelFile_UnnamedProperty(t *testing.T) {
	path := writeModelFile(t, `
properties:
  - type: string
`)
	_, err := LoadModelFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestPropertySpec_Description(t *testing.T) {
	size := 64
	p := PropertySpec{
		Name: "Code", Type: "string", Size: &size, Key: true,
	}
	desc, err := p.Description()
	require.NoError(t, err)
	assert.Equal(t, "Code", p.Name)
	require.NotNil(t, desc.Size)
	assert.Equal(t, 64, *desc.Size)
	assert.True(t, desc.Key)
}

func TestPropertySpec_UnknownType(t *testing.T) {
	p := PropertySpec{Name: "X", Type: "widget"}
	_, err := p.Description()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X")
}
