package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"archivehub/internal/archive"
	"archivehub/internal/loader"
	"archivehub/pkg/models"
	"archivehub/pkg/utils"
)

func testApp() *App {
	primary := []models.Video{
		{ID: "20240101-A", Title: "Alpha Waves", Date: "2024-01-01", Topics: []string{"physics"}, Notes: ""},
		{ID: "20240201-B", Title: "Beta Decay", Date: "2024-02-01", Topics: []string{"physics", "nuclear"}, Notes: "alpha particles too"},
		{ID: "20240301-C", Title: "Gamma Rays", Date: "2024-03-01", Topics: []string{"astro"}, Related: []string{"20240101-A"}},
	}
	app := &App{}
	app.primary = primary
	app.index = archive.NewIndex(primary, nil)
	app.topics = archive.Topics(primary)
	app.sponsors = []models.Sponsor{
		{Brand: "Live", Link: "/live"},
		{Brand: "Dead", Link: "/dead", Expires: "2000-01-01"},
	}
	return app
}

func testRouter(app *App) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(app, utils.SupportLinks{Email: "contact@example.org"}).RegisterRoutes(router.Group(""))
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response for %s: %v", path, err)
		}
	}
	return w, body
}

func TestList_QueryFilter(t *testing.T) {
	router := testRouter(testApp())
	w, body := doGet(t, router, "/videos?q=alpha")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body["total"].(float64) != 2 {
		t.Fatalf("q=alpha should match title and notes, got total=%v", body["total"])
	}
}

func TestList_TopicFilterAndSort(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/videos?topics=physics&sort=oldest")
	items := body["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	first := items[0].(map[string]any)
	if first["id"] != "20240101-A" {
		t.Errorf("oldest first: got %v", first["id"])
	}
}

func TestList_Paging(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/videos?limit=1&offset=1")
	if body["total"].(float64) != 3 {
		t.Errorf("total reflects the filtered set, got %v", body["total"])
	}
	if len(body["items"].([]any)) != 1 {
		t.Errorf("limit not applied")
	}
}

func TestDetail(t *testing.T) {
	router := testRouter(testApp())

	w, body := doGet(t, router, "/videos/20240101-A")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body["page"] != "stp.html" {
		t.Errorf("page: %v", body["page"])
	}

	w, _ = doGet(t, router, "/videos/UNKNOWN-ID")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRelated_Curated(t *testing.T) {
	router := testRouter(testApp())
	w, body := doGet(t, router, "/videos/20240301-C/related")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	items := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d related", len(items))
	}
	if items[0].(map[string]any)["id"] != "20240101-A" {
		t.Errorf("got %v", items[0])
	}
}

func TestView_UnknownDetailFallsBack(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/view?v=UNKNOWN-ID")
	if body["view"] != "list" {
		t.Fatalf("got %v", body["view"])
	}
	if body["canonical_query"] != "" {
		t.Errorf("v must be removed from the canonical URL, got %v", body["canonical_query"])
	}
}

func TestView_HashPrecedence(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/view?hash=support&v=20240101-A")
	if body["view"] != "support" {
		t.Fatalf("got %v", body["view"])
	}
}

func TestView_ListState(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/view?q=waves&sort=az&topics=physics")
	if body["view"] != "list" {
		t.Fatalf("got %v", body["view"])
	}
	state := body["state"].(map[string]any)
	if state["q"] != "waves" || state["sort"] != "az" {
		t.Errorf("state: %v", state)
	}
	if body["canonical_query"] != "q=waves&sort=az&topics=physics" {
		t.Errorf("canonical: %v", body["canonical_query"])
	}
}

func TestSponsors_OnlyActive(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/sponsors")
	items := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d sponsors", len(items))
	}
	if items[0].(map[string]any)["brand"] != "Live" {
		t.Errorf("got %v", items[0])
	}
}

func TestExport(t *testing.T) {
	router := testRouter(testApp())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="videos.json"` {
		t.Errorf("content disposition: %q", cd)
	}
	var videos []models.Video
	if err := json.Unmarshal(w.Body.Bytes(), &videos); err != nil {
		t.Fatal(err)
	}
	if len(videos) != 3 {
		t.Fatalf("got %d videos", len(videos))
	}
}

func TestContact(t *testing.T) {
	router := testRouter(testApp())
	_, body := doGet(t, router, "/contact")
	if body["email"] != "contact@example.org" {
		t.Errorf("got %v", body["email"])
	}
}

func TestReload_StaticChain(t *testing.T) {
	app := &App{
		PrimaryChain: &loader.Chain{
			Label:   "primary",
			Sources: []loader.Source{loader.Static{Videos: []models.Video{{ID: "20240101-A"}}}},
		},
	}
	summary := app.Reload(context.Background())
	if summary.Videos != 1 || summary.Source != "static-fallback" {
		t.Fatalf("got %+v", summary)
	}
	if len(app.Videos()) != 1 {
		t.Fatalf("state not swapped in")
	}
	if _, ok := app.Lookup("20240101-A"); !ok {
		t.Fatal("index not rebuilt")
	}
}
