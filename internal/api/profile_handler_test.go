package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bioPress/internal/profile"
	"bioPress/internal/store"
)

func newTestDocs(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db)
}

func newProfileRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	docs := newTestDocs(t)
	h := NewProfileHandler(docs)

	r := gin.New()
	r.GET("/v1/profile", h.GetProfile)
	r.PUT("/v1/profile", h.PutProfile)
	r.POST("/v1/profile/reset", h.ResetProfile)
	return r, docs
}

func TestGetProfileServesDefaults(t *testing.T) {
	r, _ := newProfileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var p profile.Profile
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Template != profile.DefaultTemplate {
		t.Errorf("template = %q", p.Template)
	}
	if len(p.Sections) != 3 {
		t.Errorf("sections = %d", len(p.Sections))
	}
}

func TestPutProfileMergesPartialBody(t *testing.T) {
	r, docs := newProfileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`{"template":"template4"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	p, err := docs.Load(req.Context())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Template != "template4" {
		t.Errorf("template = %q, want template4", p.Template)
	}
	// 未提交的键保留默认值
	if len(p.Sections) != 3 {
		t.Errorf("sections = %d, defaults must survive a partial put", len(p.Sections))
	}
}

func TestPutProfileRejectsBrokenShape(t *testing.T) {
	r, _ := newProfileRouter(t)

	body := `{"sections":[{"id":"a","fields":[]},{"id":"a","fields":[]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for duplicate section ids", w.Code)
	}
}

func TestPutProfileRejectsInvalidJSON(t *testing.T) {
	r, _ := newProfileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`{"sections": [`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestResetProfile(t *testing.T) {
	r, docs := newProfileRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(`{"template":"template9"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed put: %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/profile/reset", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset: %d body=%s", w.Code, w.Body.String())
	}

	p, err := docs.Load(req.Context())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Template != profile.DefaultTemplate {
		t.Errorf("template after reset = %q", p.Template)
	}
}
