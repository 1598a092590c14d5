package repositories

import (
	"context"
	"testing"
	"time"

	"kartvizit.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, repo.CreateCard(ctx, &card))
	assert.NotZero(t, card.ID)
	assert.Equal(t, models.DefaultThemeColor, card.ThemeColor)

	byID, err := repo.FindCardByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", byID.CompanyName)

	bySlug, err := repo.FindCardBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, card.ID, bySlug.ID)
}

func TestCardRepositoryDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	first := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, repo.CreateCard(ctx, &first))

	second := models.Card{UserID: owner.ID, CompanyName: "Diğer", Slug: "acme"}
	err := repo.CreateCard(ctx, &second)
	require.ErrorIs(t, err, ErrDuplicate)

	// Çakışan yazım iz bırakmamalı.
	count, err := repo.GetCardCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCardRepositoryFindNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	_, err := repo.FindCardByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindCardBySlug(ctx, "yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepositorySlugLookupIsExact(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, repo.CreateCard(ctx, &card))

	// Normalizasyon yapılmaz: farklı büyük/küçük harf ve boşluk eşleşmez.
	_, err := repo.FindCardBySlug(ctx, "Acme")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindCardBySlug(ctx, " acme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepositoryUpdateFields(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme", Phone: "111"}
	require.NoError(t, repo.CreateCard(ctx, &card))
	createdUpdatedAt := card.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.UpdateCardFields(ctx, card.ID, map[string]interface{}{"theme_color": "#000"}))

	updated, err := repo.FindCardByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "#000", updated.ThemeColor)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "111", updated.Phone)
	assert.True(t, updated.UpdatedAt.After(createdUpdatedAt), "UpdatedAt tazelenmeli")
}

func TestCardRepositoryUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCardRepositoryTx(db)

	err := repo.UpdateCardFields(context.Background(), 42, map[string]interface{}{"phone": "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepositorySlugExists(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, repo.CreateCard(ctx, &card))

	exists, err := repo.SlugExists(ctx, "acme", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// Kartın kendi slug'ı kendisiyle çakışmaz.
	exists, err = repo.SlugExists(ctx, "acme", card.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SlugExists(ctx, "baska", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCardRepositoryDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	owner := createTestOwner(t, db)
	repo := NewCardRepositoryTx(db)
	feedbackRepo := NewFeedbackRepositoryTx(db)
	quoteRepo := NewQuoteRepositoryTx(db)
	ctx := context.Background()

	card := models.Card{UserID: owner.ID, CompanyName: "Acme", Slug: "acme"}
	require.NoError(t, repo.CreateCard(ctx, &card))
	require.NoError(t, feedbackRepo.CreateFeedback(ctx, &models.Feedback{CardID: card.ID, Satisfaction: true}))
	require.NoError(t, quoteRepo.CreateQuote(ctx, &models.Quote{CardID: card.ID, Name: "Ali"}))

	require.NoError(t, repo.DeleteCard(ctx, card.ID))

	_, err := repo.FindCardByID(ctx, card.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	fbCount, err := feedbackRepo.CountFeedbackByCardID(ctx, card.ID)
	require.NoError(t, err)
	assert.Zero(t, fbCount)

	qCount, err := quoteRepo.CountQuotesByCardID(ctx, card.ID)
	require.NoError(t, err)
	assert.Zero(t, qCount)

	// Olmayan kartı silmek ErrNotFound döner.
	assert.ErrorIs(t, repo.DeleteCard(ctx, card.ID), ErrNotFound)
}
