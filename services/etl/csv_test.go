package etl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Countries_by_GDP.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0644))

	table := transformedTable(
		Row{Country: "United States", GDP: 26854.6},
		Row{Country: "Côte d'Ivoire, Republic of", GDP: 70.99},
		Row{Country: "Nauru", GDP: 0.1},
	)
	require.NoError(t, LoadCSV(context.Background(), table, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, ",Country,GDP_USD_billions\n"+
		"0,United States,26854.60\n"+
		"1,\"Côte d'Ivoire, Republic of\",70.99\n"+
		"2,Nauru,0.10\n", string(contents))
}

func TestLoadCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Countries_by_GDP.csv")

	table := transformedTable(
		Row{Country: "Zimbabwe", GDP: 20.68},
		Row{Country: "Albania", GDP: 22.98},
		Row{Country: "China", GDP: 19373.59},
	)
	require.NoError(t, LoadCSV(context.Background(), table, path))

	read, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, table.Schema, read.Schema)
	if diff := cmp.Diff(table.Rows, read.Rows, cmpopts.IgnoreFields(Row{}, "GDPText")); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCSVRequiresTransform(t *testing.T) {
	table := &Table{Schema: Schema{Country: ColumnCountry, GDP: ColumnGDPMillions}}
	err := LoadCSV(context.Background(), table, filepath.Join(t.TempDir(), "out.csv"))
	require.ErrorIs(t, err, ErrNotTransformed)
}

func TestLoadCSVUnwritable(t *testing.T) {
	table := transformedTable(Row{Country: "Japan", GDP: 95})
	err := LoadCSV(context.Background(), table, filepath.Join(t.TempDir(), "missing", "out.csv"))
	require.Error(t, err)
}
