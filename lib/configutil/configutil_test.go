package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	URL       string `json:"url"`
	TableName string `json:"table_name"`
	Min       int    `json:"min"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "etl.json5")

	_, err := ReadConfig[testConfig](name)
	require.True(t, os.IsNotExist(err))

	writeFile(t, name, `{
		// comments and trailing commas are allowed
		url: "http://example.com",
		table_name: "Countries_by_GDP",
	}`)
	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{URL: "http://example.com", TableName: "Countries_by_GDP"}, cfg)

	writeFile(t, filepath.Join(dir, "etl.local.json5"), `{ table_name: "Local_GDP", min: 50 }`)
	cfg, err = ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, testConfig{URL: "http://example.com", TableName: "Local_GDP", Min: 50}, cfg)
}

func TestOverlay(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "etl.json5")
	base := testConfig{URL: "http://default", TableName: "Countries_by_GDP", Min: 100}

	cfg, err := Overlay(base, name)
	require.NoError(t, err)
	require.Equal(t, base, cfg)

	writeFile(t, name, `{ url: "http://override" }`)
	cfg, err = Overlay(base, name)
	require.NoError(t, err)
	require.Equal(t, testConfig{URL: "http://override", TableName: "Countries_by_GDP", Min: 100}, cfg)

	writeFile(t, name, `{ url: `)
	_, err = Overlay(base, name)
	require.Error(t, err)
}
