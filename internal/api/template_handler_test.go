package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bioPress/internal/assets"
	"bioPress/internal/profile"
)

func newTemplateRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewTemplateHandler(nil, nil)

	r := gin.New()
	r.GET("/v1/templates", h.ListTemplates)
	r.GET("/v1/templates/:id/thumbnail", h.GetThumbnail)
	r.GET("/v1/themes", h.ListThemes)
	r.GET("/v1/icons", h.ListIcons)
	return r
}

func TestListTemplates(t *testing.T) {
	r := newTemplateRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Items []struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			PDFExport bool   `json:"pdf_export"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 25 {
		t.Fatalf("items = %d, want 25", len(resp.Items))
	}
	if resp.Items[0].ID != profile.DefaultTemplate || !resp.Items[0].PDFExport {
		t.Errorf("first item = %+v", resp.Items[0])
	}
	if resp.Items[14].ID != "template15" || resp.Items[14].PDFExport {
		t.Errorf("template15 should be html-only, got %+v", resp.Items[14])
	}
}

func TestGetThumbnailFallsBackForUnknownID(t *testing.T) {
	r := newTemplateRouter(t)

	known := httptest.NewRecorder()
	r.ServeHTTP(known, httptest.NewRequest(http.MethodGet, "/v1/templates/template1/thumbnail", nil))
	unknown := httptest.NewRecorder()
	r.ServeHTTP(unknown, httptest.NewRequest(http.MethodGet, "/v1/templates/nope/thumbnail", nil))

	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("status = %d / %d", known.Code, unknown.Code)
	}
	if ct := known.Header().Get("Content-Type"); !strings.Contains(ct, "image/svg+xml") {
		t.Errorf("content type = %q", ct)
	}
	if known.Body.String() != unknown.Body.String() {
		t.Errorf("unknown id should serve the default thumbnail")
	}
}

func TestListThemes(t *testing.T) {
	r := newTemplateRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/themes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Items []struct {
			ID    string `json:"id"`
			Frame string `json:"frame"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 8 {
		t.Fatalf("themes = %d, want 8", len(resp.Items))
	}
	if resp.Items[0].ID != "classic" {
		t.Errorf("first theme = %q", resp.Items[0].ID)
	}
}

func TestListIcons(t *testing.T) {
	r := newTemplateRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/icons", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatalf("icon catalog is empty")
	}
	for _, ref := range resp.Items {
		if assets.Lookup(ref) == nil {
			t.Errorf("catalog entry %q has no asset", ref)
		}
	}
}
