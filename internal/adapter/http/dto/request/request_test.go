package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestGenerateProposalRequest_Decode(t *testing.T) {
	var r GenerateProposalRequest
	body := `{"propertyType":"Residential","propertySize":1500,"region":"East","budget":"75000.10","requestedServices":[" Kitchen Remodel ","","kitchen remodel","Interior Painting"]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.PropertySize.String(); got != "1500" {
		t.Fatalf("expected 1500, got %s", got)
	}
	if got := r.Budget.StringFixed(2); got != "75000.10" {
		t.Fatalf("expected 75000.10, got %s", got)
	}
	services := r.ResolveServices()
	if len(services) != 2 || services[0] != "Kitchen Remodel" || services[1] != "Interior Painting" {
		t.Fatalf("unexpected services: %v", services)
	}
}

func TestUpdateProposalRequest_DecodeKeepsPrecision(t *testing.T) {
	var r UpdateProposalRequest
	if err := json.Unmarshal([]byte(`{"propertySize":0.1,"budget":0.3}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.PropertySize.Add(r.PropertySize).Add(r.PropertySize).Equal(r.Budget) {
		t.Fatalf("expected exact decimals, got %s and %s", r.PropertySize, r.Budget)
	}
}

func TestUpdateProposalRequest_ResolveID(t *testing.T) {
	if id, ok := (UpdateProposalRequest{}).ResolveID(" p-1 "); !ok || id != "p-1" {
		t.Fatalf("expected path id, got %q %v", id, ok)
	}
	if id, ok := (UpdateProposalRequest{ID: "p-1"}).ResolveID("p-1"); !ok || id != "p-1" {
		t.Fatalf("expected matching id, got %q %v", id, ok)
	}
	if _, ok := (UpdateProposalRequest{ID: "p-2"}).ResolveID("p-1"); ok {
		t.Fatalf("expected mismatch")
	}
}

func TestBulkUpdatePricingRequest_Decode(t *testing.T) {
	var r BulkUpdatePricingRequest
	if err := json.Unmarshal([]byte(`{"rates":{"north":1.25,"south":"0.95"}}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Rates) != 2 || r.Rates["north"].String() != "1.25" || r.Rates["south"].String() != "0.95" {
		t.Fatalf("unexpected rates: %v", r.Rates)
	}
}

func TestQuoteQuery_ResolveQuantity(t *testing.T) {
	if got := (QuoteQuery{}).ResolveQuantity().String(); got != "1" {
		t.Fatalf("expected default quantity 1, got %s", got)
	}
	if got := (QuoteQuery{Quantity: 2.5}).ResolveQuantity().String(); got != "2.5" {
		t.Fatalf("expected 2.5, got %s", got)
	}
}

func TestHistoryQuery_ResolveRange(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		from, to, err := (HistoryQuery{}).ResolveRange()
		if err != nil || !from.IsZero() || !to.IsZero() {
			t.Fatalf("expected open range, got %v %v %v", from, to, err)
		}
	})

	t.Run("date only covers the whole day", func(t *testing.T) {
		from, to, err := (HistoryQuery{From: "2024-03-01", To: "2024-03-31"}).ResolveRange()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected from %v", from)
		}
		if to.Day() != 31 || to.Hour() != 23 || to.Minute() != 59 {
			t.Fatalf("unexpected to %v", to)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		_, to, err := (HistoryQuery{To: "2024-03-31T10:00:00Z"}).ResolveRange()
		if err != nil || to.Hour() != 10 {
			t.Fatalf("unexpected %v %v", to, err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, _, err := (HistoryQuery{From: "yesterday"}).ResolveRange()
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
