package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	mock_interfaces "remodeling_proposals/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func summerEngine() *pricing.Engine {
	return pricing.NewEngine(pricing.DefaultTables(), pricing.WithClock(func() time.Time {
		return time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func TestCatalogUseCase_SuggestServices(t *testing.T) {
	services := []entities.Service{
		{ID: "paint", Name: "Interior Painting", BasePrice: decimal.NewFromInt(3000), LaborCost: decimal.NewFromInt(2000)},
		{ID: "kitchen", Name: "Kitchen Remodel", BasePrice: decimal.NewFromInt(25000), LaborCost: decimal.NewFromInt(15000),
			RequiredMaterials: []entities.Material{{UnitPrice: decimal.NewFromInt(100), Quantity: decimal.NewFromInt(10)}}},
		{ID: "floor", Name: "Flooring Installation", BasePrice: decimal.NewFromInt(8000), LaborCost: decimal.NewFromInt(5000)},
	}

	t.Run("filters by budget and orders by cost per square foot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, summerEngine())

		catalog.EXPECT().ListServices(gomock.Any(), "Residential").Return(services, nil)

		// east 1.1 * residential 1.0 * summer 1.0: paint 5500, floor 14300, kitchen 45100
		got, err := uc.SuggestServices(context.Background(), SuggestServicesInput{
			PropertyType: " Residential ",
			PropertySize: decimal.NewFromInt(1000),
			Region:       "East",
			Budget:       decimal.NewFromInt(20000),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(got))
		}
		if got[0].Service.ID != "floor" || got[1].Service.ID != "paint" {
			t.Fatalf("unexpected order: %s, %s", got[0].Service.ID, got[1].Service.ID)
		}
		if !got[0].EstimatedCost.Equal(decimal.NewFromInt(14300)) || !got[0].CostPerSqFt.Equal(decimal.RequireFromString("14.3")) {
			t.Fatalf("unexpected cost %s / %s", got[0].EstimatedCost, got[0].CostPerSqFt)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, summerEngine())
		_, err := uc.SuggestServices(context.Background(), SuggestServicesInput{PropertyType: "Residential"})
		if !errors.Is(err, ErrInvalidProposalInput) {
			t.Fatalf("expected ErrInvalidProposalInput, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(catalog, summerEngine())

		catalog.EXPECT().ListServices(gomock.Any(), "Commercial").Return(nil, errors.New("db"))
		_, err := uc.SuggestServices(context.Background(), SuggestServicesInput{
			PropertyType: "Commercial", PropertySize: decimal.NewFromInt(10), Budget: decimal.NewFromInt(1),
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_ListPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCatalogUseCase(catalog, summerEngine())

	catalog.EXPECT().ListServices(gomock.Any(), "Industrial").Return([]entities.Service{{ID: "s"}}, nil)
	catalog.EXPECT().ListMaterials(gomock.Any()).Return([]entities.Material{{ID: "1"}, {ID: "2"}}, nil)

	services, err := uc.ListServices(context.Background(), "Industrial ")
	if err != nil || len(services) != 1 {
		t.Fatalf("unexpected %v %v", services, err)
	}
	materials, err := uc.ListMaterials(context.Background())
	if err != nil || len(materials) != 2 {
		t.Fatalf("unexpected %v %v", materials, err)
	}
}
