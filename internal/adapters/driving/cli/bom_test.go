package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

func TestBOMCmd_Use(t *testing.T) {
	assert.Equal(t, "bom [schematic]", bomCmd.Use)
}

func TestBOMCmd_Flags(t *testing.T) {
	output := bomCmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)

	unlinked := bomCmd.Flags().Lookup("include-unlinked")
	require.NotNil(t, unlinked)
	assert.Equal(t, "false", unlinked.DefValue)
}

func TestBOMCmd_PrintsTable(t *testing.T) {
	_, _, bom, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"bom", "board.kicad_sch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "board.kicad_sch", bom.gotReq.SchematicPath)
	assert.Empty(t, bom.gotReq.OutputPath)

	out := buf.String()
	assert.Contains(t, out, "C1525")
	assert.Contains(t, out, "R1,R2")
	assert.Contains(t, out, "2 lines, 2 linked.")
	assert.NotContains(t, out, "Wrote")
}

func TestBOMCmd_WritesWithOutputFlag(t *testing.T) {
	_, _, bom, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"bom", "-o", "bom.xlsx", "--include-unlinked", "board.kicad_sch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "bom.xlsx", bom.gotReq.OutputPath)
	assert.True(t, bom.gotReq.IncludeUnlinked)
	assert.Contains(t, buf.String(), "Wrote 2 lines to bom.xlsx")
}

func TestBOMCmd_EmptyBOM(t *testing.T) {
	_, _, bom, _, _, cleanup := setupTestServices()
	defer cleanup()
	bom.bom = &domain.BOM{Schematic: "board.kicad_sch"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"bom", "-o", "", "board.kicad_sch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No lines to export.")
}

func TestBOMCmd_ServiceError(t *testing.T) {
	_, _, bom, _, _, cleanup := setupTestServices()
	defer cleanup()
	bom.err = errors.New("schematic not found")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"bom", "board.kicad_sch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bom export failed")
	assert.Contains(t, err.Error(), "schematic not found")
}

func TestBOMCmd_NotConfigured(t *testing.T) {
	SetDependencies(&Dependencies{})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"bom", "board.kicad_sch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bom service not configured")
}
