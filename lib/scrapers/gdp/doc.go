// Package gdp scrapes the "List of countries by GDP (nominal)" page.
//
// scraping is split into the same steps as any read-only scraper:
//  1. input -> request: a single GET of a fixed page, no login state.
//  2. request -> response: Client.Fetch, any non-2xx status is an error.
//  3. response -> output: goquery selectors walk the figures table into
//     a slice of Entry.
//
// the output depends solely on the page, nothing is cached between calls.
package gdp
