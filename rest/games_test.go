package rest

import (
	"encoding/json"
	"github.com/arelate/gamesort/data"
	"github.com/arelate/gamesort/view"
	"github.com/boggydigital/match_node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testGameSort = `{"gameSort":[{"appName":"B","devName":"Zed"},{"appName":"A","devName":"Amy"}]}`

func newTestServer(t *testing.T, doc string) *httptest.Server {
	records, err := data.ReadGameSort(strings.NewReader(doc))
	require.NoError(t, err)

	mux := http.NewServeMux()
	HandleFuncs(mux, NewGames(records, nil))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func renderedTitles(t *testing.T, ts *httptest.Server, path string) []string {
	resp := get(t, ts, path)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	doc, err := html.Parse(resp.Body)
	require.NoError(t, err)

	var titles []string
	for _, block := range match_node.Matches(doc, match_node.NewEtc(atom.Div, view.GameContainerClass, true), -1) {
		for c := block.FirstChild; c != nil; c = c.NextSibling {
			if c.DataAtom == atom.H3 && c.FirstChild != nil {
				titles = append(titles, c.FirstChild.Data)
			}
		}
	}

	return titles
}

func TestGetGamesSortOrders(t *testing.T) {
	ts := newTestServer(t, testGameSort)

	assert.Equal(t, []string{"B", "A"}, renderedTitles(t, ts, "/"))
	assert.Equal(t, []string{"A", "B"}, renderedTitles(t, ts, "/?sort=name"))
	assert.Equal(t, []string{"A", "B"}, renderedTitles(t, ts, "/?sort=developer"))
	// baseline order is kept after sorting
	assert.Equal(t, []string{"B", "A"}, renderedTitles(t, ts, "/?sort=rating"))
	assert.Equal(t, []string{"B", "A"}, renderedTitles(t, ts, "/"))
}

func TestGetGamesCriterionIndependentOfHistory(t *testing.T) {
	ts := newTestServer(t, `{"gameSort":[
		{"appName":"C","devName":"Amy"},
		{"appName":"A","devName":"Zed"},
		{"appName":"B","devName":"Moe"}]}`)

	byDeveloper := renderedTitles(t, ts, "/?sort=developer")
	assert.Equal(t, []string{"A", "B", "C"}, renderedTitles(t, ts, "/?sort=name"))
	assert.Equal(t, byDeveloper, renderedTitles(t, ts, "/?sort=developer"))
	assert.Equal(t, []string{"C", "B", "A"}, byDeveloper)
}

func TestGetGamesEmptyList(t *testing.T) {
	ts := newTestServer(t, `[]`)
	assert.Empty(t, renderedTitles(t, ts, "/"))
}

func TestGetGamesControls(t *testing.T) {
	ts := newTestServer(t, testGameSort)

	resp := get(t, ts, "/")
	bts, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(bts)
	assert.Contains(t, page, `class="by-name" href="/?sort=name"`)
	assert.Contains(t, page, `class="by-developer" href="/?sort=developer"`)
	assert.Contains(t, page, `class="by-order" href="/"`)
}

func TestGetGameSort(t *testing.T) {
	ts := newTestServer(t, testGameSort)

	resp := get(t, ts, "/gameSort.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var doc data.GameSortDocument
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	require.Len(t, doc.GameSort, 2)
	assert.Equal(t, "B", doc.GameSort[0].AppName())
}

func TestGetHealth(t *testing.T) {
	ts := newTestServer(t, testGameSort)

	resp := get(t, ts, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	bts, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(bts))
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t, testGameSort)
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/missing").StatusCode)
}
