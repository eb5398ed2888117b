package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"remodeling_proposals/internal/adapter/http/handlers"
	"remodeling_proposals/internal/adapter/persistence/repository"
	"remodeling_proposals/internal/config"

	"github.com/gin-gonic/gin"
)

func TestNewProposalRepository(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repo, err := newProposalRepository(context.Background(), &config.Config{StorageDriver: "memory"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.(*repository.ProposalMemoryRepository); !ok {
			t.Fatalf("expected memory repository, got %T", repo)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := newProposalRepository(context.Background(), &config.Config{StorageDriver: "mongo"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRouteRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, handlers.NewProposalHandler(nil))
	addCatalogRoutes(v1, handlers.NewCatalogHandler(nil))
	addPricingRoutes(v1, handlers.NewPricingHandler(nil))

	want := map[string]bool{
		"POST /v1/proposals":                 false,
		"GET /v1/proposals/:id":              false,
		"PUT /v1/proposals/:id":              false,
		"DELETE /v1/proposals/:id":           false,
		"GET /v1/proposals/:id/pdf":          false,
		"GET /v1/models":                     false,
		"GET /v1/catalog/suggestions":        false,
		"POST /v1/pricing/:dimension/bulk":   false,
		"GET /v1/pricing/history/export":     false,
		"GET /v1/pricing/calculate/:kind":    false,
		"DELETE /v1/pricing/:dimension/:key": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Fatalf("route %s not registered", route)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}
