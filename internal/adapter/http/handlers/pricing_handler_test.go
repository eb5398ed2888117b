package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"remodeling_proposals/internal/adapter/http/handlers/mocks"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(h *PricingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/pricing/quote", h.Quote)
	r.GET("/v1/pricing/calculate/:kind", h.Calculate)
	r.GET("/v1/pricing/history", h.History)
	r.GET("/v1/pricing/history/export", h.ExportHistory)
	r.GET("/v1/pricing/:dimension", h.ListPricing)
	r.POST("/v1/pricing/:dimension", h.AddPricing)
	r.POST("/v1/pricing/:dimension/bulk", h.BulkUpdatePricing)
	r.GET("/v1/pricing/:dimension/:key", h.GetPricing)
	r.PUT("/v1/pricing/:dimension/:key", h.UpdatePricing)
	r.DELETE("/v1/pricing/:dimension/:key", h.DeletePricing)
	return r
}

func TestPricingHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), "regional").Return([]entities.PricingRecord{
			{ID: "r-1", Dimension: entities.DimensionRegional, Key: "north", Rate: decimal.RequireFromString("1.2")},
		}, nil)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/regional", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 1 || res[0]["rate"] != 1.2 {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("unknown dimension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), "bogus").Return(nil, usecase.ErrInvalidPricingDimension)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/bogus", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get missing key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().Get(gomock.Any(), "labor", "roofing").Return(entities.PricingRecord{}, usecase.ErrPricingNotFound)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/labor/roofing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPricingHandler_AddPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/labor", bytes.NewBufferString(`{"rate":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.PricingRecord{}, usecase.ErrPricingAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/regional", bytes.NewBufferString(`{"key":"north","rate":1.3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in usecase.AddPricingInput) (entities.PricingRecord, error) {
				if in.Dimension != "labor" || in.Key != "kitchen" || !in.Rate.Equal(decimal.NewFromInt(85)) || in.Actor != "admin" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PricingRecord{ID: "l-1", Dimension: entities.DimensionLabor, Key: "kitchen", Rate: in.Rate}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/labor", bytes.NewBufferString(`{"key":"kitchen","rate":85,"updatedBy":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestPricingHandler_UpdateAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().Update(gomock.Any(), "regional", "north", gomock.Any(), "admin", "fuel costs").
			DoAndReturn(func(_ context.Context, _, _ string, rate decimal.Decimal, _, _ string) (entities.PricingRecord, error) {
				if !rate.Equal(decimal.RequireFromString("1.25")) {
					t.Fatalf("unexpected rate %s", rate)
				}
				return entities.PricingRecord{ID: "r-1", Key: "north", Rate: rate}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing/regional/north", bytes.NewBufferString(`{"rate":1.25,"updatedBy":"admin","reason":"fuel costs"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		err := fmt.Errorf("%w: regional multipliers must be positive", usecase.ErrInvalidPricingRate)
		uc.EXPECT().Update(gomock.Any(), "regional", "north", gomock.Any(), "", "").Return(entities.PricingRecord{}, err)

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing/regional/north", bytes.NewBufferString(`{"rate":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w)["error"]; got != err.Error() {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().Delete(gomock.Any(), "seasonal", "winter").Return(nil)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/pricing/seasonal/winter", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPricingHandler_BulkUpdatePricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)

	uc.EXPECT().BulkUpdate(gomock.Any(), "regional", gomock.Any(), "admin", "").
		DoAndReturn(func(_ context.Context, _ string, rates map[string]decimal.Decimal, _, _ string) (int, error) {
			if len(rates) != 2 || !rates["north"].Equal(decimal.NewFromFloat(1.3)) {
				t.Fatalf("unexpected rates: %v", rates)
			}
			return 1, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/regional/bulk", bytes.NewBufferString(`{"rates":{"north":1.3,"central":1.05},"updatedBy":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"dimension":"regional","updated":1}` {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestPricingHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPricingUseCase(ctrl)

	uc.EXPECT().Quote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in usecase.QuoteInput) (usecase.Quote, error) {
			if in.Region != "North" || in.LaborKey != "kitchen" || !in.Quantity.Equal(decimal.NewFromInt(1)) {
				t.Fatalf("unexpected input: %+v", in)
			}
			return usecase.Quote{Season: "spring", Multiplier: decimal.RequireFromString("1.32"), Labor: decimal.NewFromInt(132), Total: decimal.NewFromInt(132)}, nil
		})

	w := httptest.NewRecorder()
	newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/quote?region=North&propertyType=Residential&laborKey=kitchen", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res["total"] != float64(132) || res["season"] != "spring" {
		t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
	}
}

func TestPricingHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		url    string
		expect func(uc *mocks.MockIPricingUseCase)
		amount float64
	}{
		{
			name: "labor",
			url:  "/v1/pricing/calculate/labor?region=North&propertyType=Commercial&season=winter&key=tiling&quantity=10",
			expect: func(uc *mocks.MockIPricingUseCase) {
				uc.EXPECT().LaborPrice(gomock.Any(), "North", "Commercial", "winter", "tiling", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _, _ string, qty decimal.Decimal) (decimal.Decimal, error) {
						if !qty.Equal(decimal.NewFromInt(10)) {
							t.Fatalf("unexpected quantity %s", qty)
						}
						return decimal.RequireFromString("624"), nil
					})
			},
			amount: 624,
		},
		{
			name: "material",
			url:  "/v1/pricing/calculate/material?region=East&key=tile",
			expect: func(uc *mocks.MockIPricingUseCase) {
				uc.EXPECT().MaterialPrice(gomock.Any(), "East", "", "", "tile", gomock.Any()).
					Return(decimal.RequireFromString("12.345"), nil)
			},
			amount: 12.35,
		},
		{
			name: "service",
			url:  "/v1/pricing/calculate/Service?key=bathroom",
			expect: func(uc *mocks.MockIPricingUseCase) {
				uc.EXPECT().ServicePrice(gomock.Any(), "", "", "", "bathroom", gomock.Any()).
					Return(decimal.NewFromInt(1000), nil)
			},
			amount: 1000,
		},
		{
			name: "total",
			url:  "/v1/pricing/calculate/total?laborKey=tiling&materialKey=tile&quantity=2",
			expect: func(uc *mocks.MockIPricingUseCase) {
				uc.EXPECT().TotalPrice(gomock.Any(), "", "", "", "tiling", "tile", gomock.Any()).
					Return(decimal.RequireFromString("149.76"), nil)
			},
			amount: 149.76,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPricingUseCase(ctrl)
			tc.expect(uc)

			w := httptest.NewRecorder()
			newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
			}
			var res map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res["amount"] != tc.amount || res["kind"] != tc.name {
				t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/calculate/tax", nil))

		if w.Code != http.StatusBadRequest || decodeError(t, w)["code"] != "UNKNOWN_PRICE_KIND" {
			t.Fatalf("expected 400 UNKNOWN_PRICE_KIND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().LaborPrice(gomock.Any(), "", "", "", "tiling", gomock.Any()).
			Return(decimal.Zero, fmt.Errorf("%w: quantity must not be negative", usecase.ErrInvalidPricingRate))

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/calculate/labor?key=tiling&quantity=-1", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/history?from=yesterday", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().History(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entities.PriceHistoryFilter) ([]entities.PriceHistory, error) {
				if f.ItemType != "regional" || f.ItemID != "north" {
					t.Fatalf("unexpected filter: %+v", f)
				}
				if !f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || f.To.IsZero() {
					t.Fatalf("unexpected range: %+v", f)
				}
				return []entities.PriceHistory{{ID: "h-1", ItemID: "north", ItemType: "regional"}}, nil
			})

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/history?itemType=regional&itemId=north&from=2024-01-01&to=2024-12-31", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		uc.EXPECT().ExportHistory(gomock.Any(), gomock.Any()).Return([]byte("PK"), nil)

		w := httptest.NewRecorder()
		newPricingRouter(NewPricingHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/history/export", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
	})
}
