/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMapConfigGet(t *testing.T) {
	cfg := MapConfig{
		TokenVMSize:         "Standard_D2s_v3",
		TokenVirtualNetwork: "vnet-prod",
	}

	assert.Equal(t, "Standard_D2s_v3", cfg.Get(TokenVMSize))
	assert.Equal(t, "vnet-prod", cfg.Get(TokenVirtualNetwork))
	assert.Empty(t, cfg.Get(TokenSubnetName), "absent token should yield empty string")
}

func TestTokens(t *testing.T) {
	tokens := Tokens()
	assert.Len(t, tokens, 11)

	seen := make(map[Token]bool)
	for _, tok := range tokens {
		assert.False(t, seen[tok], "duplicate token %s", tok)
		assert.NotEmpty(t, tok.String())
		seen[tok] = true
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.yaml")
	content := `
vmSize: Standard_A2
computeResourceGroup: rg-compute
virtualNetwork: vnet1
image: ubuntu2404
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Standard_A2", cfg.Get(TokenVMSize))
	assert.Equal(t, "rg-compute", cfg.Get(TokenComputeResourceGroup))
	assert.Equal(t, "vnet1", cfg.Get(TokenVirtualNetwork))
	assert.Equal(t, "ubuntu2404", cfg.Get(TokenImage))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vmSize: [not, a, string]"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLocalizationContext(t *testing.T) {
	loc := DefaultLocalizationContext()
	assert.Equal(t, language.AmericanEnglish, loc.Tag())

	got := loc.Localize("Virtual Machine '%s' is not supported.", "Standard_XYZ")
	assert.Equal(t, "Virtual Machine 'Standard_XYZ' is not supported.", got)
}
