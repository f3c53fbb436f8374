package testutil

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gdpetl-backend/lib/configutil/sqlconfig"
	"gdpetl-backend/lib/telemetry"
)

// PageRow is a row rendered into the figures table of GDPPage. an empty
// Href renders the country without a link.
type PageRow struct {
	Country string
	Href    string
	GDP     string
}

// GDPPage renders a page laid out like the archived GDP list: two leading
// tables followed by the figures table.
func GDPPage(rows []PageRow) string {
	var body strings.Builder
	body.WriteString("<html><body>\n")
	body.WriteString("<table><tbody><tr><td>Largest economies</td></tr></tbody></table>\n")
	body.WriteString("<table><tbody><tr><td>IMF</td><td>2023</td></tr></tbody></table>\n")
	body.WriteString("<table><tbody>\n")
	body.WriteString("<tr><th>Country/Territory</th><th>UN region</th><th>IMF estimate</th></tr>\n")
	for _, r := range rows {
		country := r.Country
		if r.Href != "" {
			country = fmt.Sprintf(`<a href="%s">%s</a>`, r.Href, r.Country)
		}
		fmt.Fprintf(&body, "<tr><td>%s</td><td>region</td><td>%s</td></tr>\n", country, r.GDP)
	}
	body.WriteString("</tbody></table>\n</body></html>")
	return body.String()
}

// ServePage starts a server that answers every request with `page`.
func ServePage(t testing.TB, page string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService sets up telemetry and an in-memory sqlite database.
func SetupService(t testing.TB, name string) (ServiceResult, func()) {
	cleanup := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))

	db, err := sqlconfig.Struct{File: ":memory:"}.OpenDB()
	if err != nil {
		t.Fatal(err)
	}

	return ServiceResult{DB: db}, func() {
		db.Close()
		cleanup()
	}
}
