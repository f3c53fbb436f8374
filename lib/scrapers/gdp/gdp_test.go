package gdp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gdpetl-backend/lib/telemetry"
	"gdpetl-backend/lib/testutil"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/countries.html
var countriesPage string

func TestExtract(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/gdp")
	defer cleanup()

	entries, err := Extract(context.Background(), countriesPage)
	require.NoError(t, err)

	expected := []Entry{
		{Country: "United States", GDP: "26,854,599"},
		{Country: "China", GDP: "19,373,586"},
		{Country: "Japan", GDP: "4,409,738"},
		{Country: "Nauru", GDP: "100"},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestExtractDropsRowsSilently(t *testing.T) {
	rows := []testutil.PageRow{
		{Country: "Nigeria", Href: "/wiki/Nigeria", GDP: "115,000.00"},
		{Country: "Eritrea", Href: "/wiki/Eritrea", GDP: Placeholder},
		{Country: "Nowhere", GDP: "12,345"},
		{Country: "Japan", Href: "/wiki/Japan", GDP: "95,000.00"},
		{Country: "Somalia", Href: "/wiki/Somalia", GDP: "  " + Placeholder + "\n"},
	}

	entries, err := Extract(context.Background(), testutil.GDPPage(rows))
	require.NoError(t, err)
	require.Len(t, entries, len(rows)-3)
	require.Equal(t, []Entry{
		{Country: "Nigeria", GDP: "115,000.00"},
		{Country: "Japan", GDP: "95,000.00"},
	}, entries)
}

func TestExtractPreservesOrderAndText(t *testing.T) {
	rows := []testutil.PageRow{
		{Country: "Zimbabwe", Href: "/z", GDP: "1"},
		{Country: "Albania", Href: "/a", GDP: "22,977.68"},
		{Country: "Mexico", Href: "/m", GDP: "1,811,468"},
	}

	entries, err := Extract(context.Background(), testutil.GDPPage(rows))
	require.NoError(t, err)
	require.Len(t, entries, len(rows))
	for i, r := range rows {
		require.Equal(t, r.Country, entries[i].Country)
		require.Equal(t, r.GDP, entries[i].GDP)
	}
}

func TestExtractMissingTable(t *testing.T) {
	_, err := Extract(context.Background(), `<table><tbody><tr><td>a</td></tr></tbody></table>`)
	require.True(t, errors.Is(err, ErrTableNotFound))
}

func TestFetch(t *testing.T) {
	server := testutil.ServePage(t, countriesPage)

	client := NewClient(ClientOptions{})
	body, err := client.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, countriesPage, body)
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	_, err := client.Fetch(context.Background(), server.URL)
	require.True(t, errors.Is(err, ErrStatus))
}

func TestFetchNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	link := server.URL
	server.Close()

	client := NewClient(ClientOptions{})
	_, err := client.Fetch(context.Background(), link)
	require.Error(t, err)
}
