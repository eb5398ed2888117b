package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/domain/pricing"
	mock_interfaces "remodeling_proposals/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []ValidationEvent
}

func (o *recordingObserver) OnValidation(_ context.Context, e ValidationEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

var july = time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC)

func testEngine() *pricing.Engine {
	return pricing.NewEngine(pricing.DefaultTables(), pricing.WithClock(func() time.Time { return july }))
}

func kitchen() entities.Service {
	return entities.Service{
		ID:                "svc-kitchen",
		Name:              "Kitchen Remodel",
		BasePrice:         decimal.NewFromInt(25000),
		Quantity:          decimal.NewFromInt(1),
		LaborCost:         decimal.NewFromInt(15000),
		EstimatedDuration: 30,
		RequiresPermit:    true,
		RequiredMaterials: []entities.Material{{ID: "ignored", UnitPrice: decimal.NewFromInt(999), Quantity: decimal.NewFromInt(1)}},
	}
}

func tile() entities.Material {
	return entities.Material{
		ID:        "mat-tile",
		ServiceID: "svc-kitchen",
		Name:      "Porcelain tile",
		Grade:     "Premium",
		UnitPrice: decimal.NewFromInt(50),
		Quantity:  decimal.NewFromInt(10),
	}
}

func request() entities.GenerationRequest {
	return entities.GenerationRequest{
		ClientName:        "Jane Doe",
		PropertyType:      "Residential",
		PropertySize:      decimal.NewFromInt(1500),
		Region:            "East",
		Budget:            decimal.NewFromInt(75000),
		RequestedServices: []string{"Kitchen Remodel"},
		SiteAnalysis:      "Dated kitchen with good natural light.",
	}
}

func TestProposalGenerator_GenerateProposal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		obs := &recordingObserver{}

		backend.EXPECT().Model().Return("mock").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), []string{"Kitchen Remodel"}).Return([]entities.Service{kitchen()}, nil)
		catalog.EXPECT().MaterialsForServices(gomock.Any(), []string{"svc-kitchen"}).Return([]entities.Material{tile()}, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				for _, want := range []string{
					"Jane Doe",
					"1500 square foot Residential property in the East region",
					"Dated kitchen with good natural light.",
					"1. Licensed and insured contractors",
					"10. Post-completion walkthrough and client satisfaction",
					"- Kitchen Remodel: $41500.00",
					"- Porcelain tile (Premium): $550.00",
					"Total Cost: $42050.00",
					"Budget: $75000.00",
					"/img/residential-kitchen1.jpg",
					"## 9. TERMS AND CONDITIONS",
				} {
					if !strings.Contains(prompt, want) {
						t.Fatalf("prompt missing %q:\n%s", want, prompt)
					}
				}
				return "```markdown\n" + wellFormedProposal + "\n```", nil
			},
		)

		g := NewProposalGenerator(backend, catalog, testEngine(),
			WithObserver(obs),
			WithIDGenerator(func() string { return "p-1" }),
		)
		p, err := g.GenerateProposal(context.Background(), request())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p.ID != "p-1" || p.Status != entities.ProposalStatusDraft || p.Model != "mock" {
			t.Fatalf("unexpected proposal header: %+v", p)
		}
		if !p.CreatedAt.Equal(july) || p.ValidUntil == nil || !p.ValidUntil.Equal(july.AddDate(0, 0, 30)) {
			t.Fatalf("unexpected validity window: %v %v", p.CreatedAt, p.ValidUntil)
		}
		if !p.TotalCost.Equal(decimal.NewFromInt(42050)) {
			t.Fatalf("unexpected total %s", p.TotalCost)
		}
		if strings.HasPrefix(p.Body, "```") || !strings.HasPrefix(p.Body, "# Remodeling Proposal") {
			t.Fatalf("code fence must be stripped: %q", p.Body[:20])
		}
		if len(p.RequiredPermits) != 1 || p.RequiredPermits[0] != "Kitchen Remodel permit" {
			t.Fatalf("unexpected permits %v", p.RequiredPermits)
		}
		if p.EstimatedDuration == nil || !p.EstimatedDuration.Equal(decimal.NewFromInt(30)) {
			t.Fatalf("unexpected duration %v", p.EstimatedDuration)
		}
		if p.ClientName != "Jane Doe" || p.ProjectScope != "Kitchen Remodel" || p.PropertyType != "Residential" {
			t.Fatalf("unexpected proposal fields: %+v", p)
		}
		if len(obs.events) != 1 || !obs.events[0].Result.Valid || obs.events[0].ProposalID != "p-1" {
			t.Fatalf("unexpected validation events: %+v", obs.events)
		}
	})

	t.Run("unstructured output still yields a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		obs := &recordingObserver{}

		backend.EXPECT().Model().Return("gpt-4").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Thanks for reaching out, we can help.", nil)

		g := NewProposalGenerator(backend, catalog, testEngine(), WithObserver(obs))
		req := request()
		req.RequestedServices = []string{"Moat Digging"}
		p, err := g.GenerateProposal(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProposalStatusDraft || p.Body != "Thanks for reaching out, we can help." {
			t.Fatalf("unexpected proposal %+v", p)
		}
		if p.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !p.TotalCost.IsZero() || p.EstimatedDuration != nil {
			t.Fatalf("no catalog matches must yield zero cost: %+v", p)
		}
		if len(obs.events) != 1 || obs.events[0].Result.Valid || len(obs.events[0].Result.Errors) < 9 {
			t.Fatalf("expected at least 9 findings, got %+v", obs.events)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)

		backend.EXPECT().Model().Return("gpt-4").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		g := NewProposalGenerator(backend, catalog, testEngine())
		_, err := g.GenerateProposal(context.Background(), request())

		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("expected GenerationError, got %v", err)
		}
		if genErr.Message != "rate limited" || genErr.Model != "gpt-4" {
			t.Fatalf("unexpected generation error %+v", genErr)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)

		backend.EXPECT().Model().Return("gpt-4").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("   ", nil)

		g := NewProposalGenerator(backend, catalog, testEngine())
		_, err := g.GenerateProposal(context.Background(), request())
		if !errors.Is(err, ErrEmptyGeneration) {
			t.Fatalf("expected ErrEmptyGeneration, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)

		backend.EXPECT().Model().Return("llama-2-7b").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		)

		g := NewProposalGenerator(backend, catalog, testEngine(), WithTimeout(20*time.Millisecond))
		_, err := g.GenerateProposal(context.Background(), request())

		var genErr *GenerationError
		if !errors.As(err, &genErr) || !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline GenerationError, got %v", err)
		}
	})

	t.Run("catalog failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		dbErr := errors.New("db down")

		backend.EXPECT().Model().Return("mock").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		g := NewProposalGenerator(backend, catalog, testEngine())
		_, err := g.GenerateProposal(context.Background(), request())
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown property type uses generic portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockITextGenerator(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)

		backend.EXPECT().Model().Return("mock").AnyTimes()
		catalog.EXPECT().ServicesByNames(gomock.Any(), gomock.Any()).Return(nil, nil)
		backend.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "/img/remodeling-project1.jpg") {
					t.Fatalf("expected generic images in prompt")
				}
				return wellFormedProposal, nil
			},
		)

		req := request()
		req.PropertyType = "Houseboat"
		g := NewProposalGenerator(backend, catalog, testEngine())
		if _, err := g.GenerateProposal(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalGenerator_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_interfaces.NewMockITextGenerator(ctrl)
	backend.EXPECT().Model().Return("gpt-3.5-turbo")
	backend.EXPECT().Available().Return(false)

	g := NewProposalGenerator(backend, nil, testEngine())
	if g.ModelName() != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model name")
	}
	if g.IsAvailable() {
		t.Fatalf("expected unavailable")
	}
}
