package repositories

import (
	"context"
	"testing"
	"time"

	"kartvizit.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRepositoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	cardRepo := NewCardRepositoryTx(db)
	repo := NewFeedbackRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, cardRepo.CreateCard(ctx, &card))

	// Boş liste, hata değil.
	feedbacks, err := repo.FindFeedbackByCardID(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, feedbacks)

	for i := 0; i < 3; i++ {
		fb := models.Feedback{CardID: card.ID, Satisfaction: i%2 == 0}
		require.NoError(t, repo.CreateFeedback(ctx, &fb))
		time.Sleep(5 * time.Millisecond)
	}

	feedbacks, err = repo.FindFeedbackByCardID(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, feedbacks, 3)
	for i := 1; i < len(feedbacks); i++ {
		assert.False(t, feedbacks[i].CreatedAt.After(feedbacks[i-1].CreatedAt),
			"liste yeniden eskiye sıralı olmalı")
	}
	// Aynı ana denk gelenlerde id ikincil anahtar: en yeni kayıt en önde.
	assert.True(t, feedbacks[0].ID > feedbacks[2].ID)
}

func TestQuoteRepositoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	cardRepo := NewCardRepositoryTx(db)
	repo := NewQuoteRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, cardRepo.CreateCard(ctx, &card))

	quotes, err := repo.FindQuotesByCardID(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	names := []string{"Ali", "Veli", "Ayşe"}
	for _, name := range names {
		q := models.Quote{CardID: card.ID, Name: name}
		require.NoError(t, repo.CreateQuote(ctx, &q))
		time.Sleep(5 * time.Millisecond)
	}

	quotes, err = repo.FindQuotesByCardID(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "Ayşe", quotes[0].Name)
	assert.Equal(t, "Ali", quotes[2].Name)
}
