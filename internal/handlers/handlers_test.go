package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"boco.agency/internal/content"
	"boco.agency/internal/services"
	"boco.agency/internal/telemetry"
)

const (
	homepageJSON = `{"data":{"hero_title":"Fast sites","hero_description":"We ship",
		"hero_bullets":["Speed"],"hero_image":{"id":1,"url":"/uploads/hero.png"},
		"brands_count":40,"service":"Services","services_list":[{"service_title":"Design","service_description":["UX"]}],
		"footer_copyright_text":"© boco"}}`
	brandsJSON   = `{"data":[{"logo":[{"id":2,"url":"/uploads/a.png"}]}]}`
	projectsJSON = `{"data":[
		{"project_title":"P1","project_description":"one","project_images":[{"id":3,"url":"/uploads/p1.png"}]},
		{"project_title":"P2","project_description":"two","project_images":[]}]}`
	caseStudiesJSON = `{"data":[{"id":9,"title":"Shop","category":"Retail","main_image":{"id":4,"url":"/uploads/s.png"},
		"stat":[{"id":1,"label":"Conversion","value":"+30%"}],"case_study_link":"https://example.com/shop"}]}`
)

// newCMS serves canned collection bodies; a path mapped to "" answers 500.
func newCMS(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[strings.TrimPrefix(r.URL.Path, "/api")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if body == "" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fullCMS() map[string]string {
	return map[string]string{
		content.PathHomepage:    homepageJSON,
		content.PathBrands:      brandsJSON,
		content.PathProjects:    projectsJSON,
		content.PathCaseStudies: caseStudiesJSON,
	}
}

func newRouter(t *testing.T, bodies map[string]string) (http.Handler, *telemetry.Metrics) {
	t.Helper()
	cms := newCMS(t, bodies)
	metrics := telemetry.NewMetrics()

	client, err := content.NewClient(cms.URL, content.WithHTTPClient(cms.Client()), content.WithObserver(metrics))
	require.NoError(t, err)
	assets, err := services.NewAssetResolver(cms.URL)
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	return SetupRoutes(Deps{
		Pages:    services.NewPageService(client, assets, services.WithLogger(logger), services.WithLoadObserver(metrics)),
		Projects: services.NewProjectService(client, assets),
		Logger:   logger,
		Metrics:  metrics,
	}), metrics
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestLandingReady(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Fast sites")
	assert.Contains(t, body, "/uploads/hero.png")
	assert.Contains(t, body, "P1")
	assert.Contains(t, body, `href="/?project=1"`)
	assert.Contains(t, body, "Read Full Case Study")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestLandingSelectsProject(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	body := get(t, h, "/?project=1").Body.String()
	assert.Contains(t, body, "P2")
	assert.NotContains(t, body, "P1</h3>")

	body = get(t, h, "/?project=99").Body.String()
	assert.Contains(t, body, "P1</h3>")
}

func TestLandingEmptyWhenHomeFails(t *testing.T) {
	bodies := fullCMS()
	bodies[content.PathHomepage] = ""
	h, _ := newRouter(t, bodies)

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Homepage Data Found")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestGetPageJSON(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	rec := get(t, h, "/api/page?project=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		State    string `json:"state"`
		Carousel struct {
			Index    int  `json:"index"`
			Count    int  `json:"count"`
			Controls bool `json:"controls"`
		} `json:"carousel"`
		CaseStudies []json.RawMessage `json:"case_studies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ready", got.State)
	assert.Equal(t, 1, got.Carousel.Index)
	assert.Equal(t, 2, got.Carousel.Count)
	assert.True(t, got.Carousel.Controls)
	assert.Len(t, got.CaseStudies, 1)
}

func TestProjectsEndpoints(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	rec := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"P2"`)

	assert.Equal(t, http.StatusOK, get(t, h, "/api/projects/1").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/projects/5").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/projects/abc").Code)
}

func TestProjectsUpstreamFailure(t *testing.T) {
	bodies := fullCMS()
	bodies[content.PathProjects] = "{not json"
	h, _ := newRouter(t, bodies)

	rec := get(t, h, "/api/projects")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Content service unavailable")
}

func TestCarouselStep(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantIndex int
	}{
		{name: "next", target: "/api/projects/carousel?index=0&direction=next", wantCode: http.StatusOK, wantIndex: 1},
		{name: "next wraps", target: "/api/projects/carousel?index=1&direction=next", wantCode: http.StatusOK, wantIndex: 0},
		{name: "previous wraps", target: "/api/projects/carousel?index=0&direction=previous", wantCode: http.StatusOK, wantIndex: 1},
		{name: "bad index resets", target: "/api/projects/carousel?index=x&direction=previous", wantCode: http.StatusOK, wantIndex: 1},
		{name: "bad direction", target: "/api/projects/carousel?index=0&direction=up", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var got carouselResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantIndex, got.Position.Index)
			require.NotNil(t, got.Project)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h, _ := newRouter(t, fullCMS())

	rec := get(t, h, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	get(t, h, "/")
	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `boco_page_loads_total{state="ready"} 1`)
	assert.Contains(t, body, `route="/api/health"`)
	assert.Contains(t, body, `path="/homepage"`)
}
