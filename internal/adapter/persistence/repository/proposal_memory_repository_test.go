package repository

import (
	"context"
	"testing"
	"time"

	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProposal(id string, createdAt time.Time) entities.Proposal {
	valid := createdAt.Add(entities.ProposalValidity)
	duration := decimal.NewFromInt(21)
	return entities.Proposal{
		ID:                id,
		PropertyType:      "Residential",
		PropertySize:      decimal.NewFromInt(1500),
		Region:            "East",
		Budget:            decimal.NewFromInt(75000),
		RequestedServices: []string{"Kitchen Remodel"},
		Body:              "## Executive Summary",
		Status:            entities.ProposalStatusDraft,
		Model:             "mock",
		TotalCost:         decimal.RequireFromString("42050.00"),
		CreatedAt:         createdAt,
		ValidUntil:        &valid,
		ClientName:        "Jane Doe",
		ClientEmail:       "jane@example.com",
		EstimatedDuration: &duration,
		RequiredPermits:   []string{"Kitchen Remodel permit"},
	}
}

func TestProposalMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalMemoryRepository()
	created := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	p := sampleProposal("p-1", created)
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	_, err = repo.Create(ctx, p)
	assert.Error(t, err, "duplicate id must be rejected")

	got, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Residential", got.PropertyType)
	assert.True(t, got.Budget.Equal(decimal.NewFromInt(75000)))

	got.RequestedServices[0] = "mutated"
	again, _ := repo.GetByID(ctx, "p-1")
	assert.Equal(t, "Kitchen Remodel", again.RequestedServices[0], "stored copy must not alias")

	upd := p
	upd.Body = "v2"
	upd.Status = entities.ProposalStatusSent
	updated, err := repo.Update(ctx, upd)
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Body)
	assert.Equal(t, entities.ProposalStatusSent, updated.Status)
	assert.Equal(t, created, updated.CreatedAt)

	missing, err := repo.Update(ctx, sampleProposal("nope", created))
	require.NoError(t, err)
	assert.Empty(t, missing.ID, "update never creates")

	deleted, err := repo.Delete(ctx, "p-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "p-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	gone, err := repo.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, gone.ID)
}

func TestProposalMemoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewProposalMemoryRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "newest", "middle"} {
		offset := map[int]time.Duration{0: 0, 1: 48 * time.Hour, 2: 24 * time.Hour}[i]
		_, err := repo.Create(ctx, sampleProposal(id, base.Add(offset)))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"newest", "middle", "old"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
