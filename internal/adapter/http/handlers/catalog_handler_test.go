package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remodeling_proposals/internal/adapter/http/handlers/mocks"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters by property type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListServices(gomock.Any(), "Commercial").Return([]entities.Service{
			{ID: "svc-office", Name: "Office Space Renovation", BasePrice: decimal.NewFromInt(50000)},
		}, nil)

		r := gin.New()
		r.GET("/v1/catalog/services", h.ListServices)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/services?propertyType=Commercial", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 1 || res[0]["basePrice"] != float64(50000) {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListServices(gomock.Any(), "").Return(nil, errors.New("db down"))

		r := gin.New()
		r.GET("/v1/catalog/services", h.ListServices)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/services", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	uc.EXPECT().ListMaterials(gomock.Any()).Return([]entities.Material{
		{ID: "1", Name: "Drywall Sheet", UnitPrice: decimal.NewFromInt(15)},
	}, nil)

	r := gin.New()
	r.GET("/v1/catalog/materials", h.ListMaterials)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/materials", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_SuggestServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing property type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/catalog/suggestions", h.SuggestServices)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/suggestions?propertySize=100", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SuggestServices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.SuggestServicesInput) ([]usecase.ServiceSuggestion, error) {
				if in.PropertyType != "Residential" || in.Region != "East" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.PropertySize.Equal(decimal.NewFromInt(1500)) || !in.Budget.Equal(decimal.NewFromInt(75000)) {
					t.Fatalf("unexpected numbers: %+v", in)
				}
				return []usecase.ServiceSuggestion{{
					Service:       entities.Service{ID: "svc-kitchen-remodel"},
					EstimatedCost: decimal.NewFromInt(45000),
					CostPerSqFt:   decimal.NewFromInt(30),
				}}, nil
			})

		r := gin.New()
		r.GET("/v1/catalog/suggestions", h.SuggestServices)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/suggestions?propertyType=Residential&propertySize=1500&region=East&budget=75000", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 1 || res[0]["costPerSqFt"] != float64(30) {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SuggestServices(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidProposalInput)

		r := gin.New()
		r.GET("/v1/catalog/suggestions", h.SuggestServices)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/suggestions?propertyType=Residential&propertySize=10&budget=-5", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
