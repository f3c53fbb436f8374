package devenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	plain, err := ResolvePath("./Countries_by_GDP.csv")
	require.NoError(t, err)
	require.Equal(t, "./Countries_by_GDP.csv", plain)

	root, err := GetWorkspaceRoot()
	require.NoError(t, err)

	state, err := ResolvePath("<dev_state>/resty/gdp")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "dev", ".state", "resty", "gdp"), state)
}
