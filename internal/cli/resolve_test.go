package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestResolveCommand_ByType(t *testing.T) {
	out, _, err := executeCommand(t, "resolve", "--type", "int64")
	require.NoError(t, err)
	assert.Contains(t, out, "bigint")
}

func TestResolveCommand_ByStoreType(t *testing.T) {
	out, _, err := executeCommand(t, "resolve", "--store-type", "nvarchar", "--size", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "nvarchar(200)")
}

func TestResolveCommand_KeyString(t *testing.T) {
	out, _, err := executeCommand(t, "resolve", "--type", "string", "--key")
	require.NoError(t, err)
	assert.Contains(t, out, "nvarchar(450)")
}

func TestResolveCommand_AnsiString(t *testing.T) {
	out, _, err := executeCommand(t, "resolve", "--type", "string", "--key", "--unicode=false")
	require.NoError(t, err)
	assert.Contains(t, out, "varchar(900)")
}

func TestResolveCommand_Rowversion(t *testing.T) {
	out, _, err := executeCommand(t, "resolve", "--type", "blob", "--rowversion")
	require.NoError(t, err)
	assert.Contains(t, out, "rowversion")
}

func TestResolveCommand_NoMapping(t *testing.T) {
	// bigint with a bool value type is a conflict the engine defers on
	_, _, err := executeCommand(t, "resolve", "--type", "bool", "--store-type", "bigint")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestResolveCommand_NoInput(t *testing.T) {
	_, _, err := executeCommand(t, "resolve")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestResolveCommand_UnknownType(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "--type", "frobnicator")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestResolveCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "resolve", "--type", "decimal")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var view MappingView
	require.NoError(t, json.Unmarshal(payload, &view))
	assert.Equal(t, "decimal(18,2)", view.StoreType)
	assert.Equal(t, "decimal", view.StoreTypeBase)
}

func TestResolveCommand_JSONNoMapping(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "resolve", "--type", "bool", "--store-type", "bigint")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNoMapping, resp.Error.Code)
}

func TestCatalogCommand_Text(t *testing.T) {
	out, _, err := executeCommand(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "bigint => bigint [int64]")
	assert.Contains(t, out, "timestamp => rowversion [bytes]")
}

func TestCatalogCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "catalog")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var entries []CatalogEntryView
	require.NoError(t, json.Unmarshal(payload, &entries))
	assert.NotEmpty(t, entries)
}
