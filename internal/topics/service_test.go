package topics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/internal/store"
	pkgerrors "github.com/arguehive/debatehub-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(store.New())
	require.NoError(t, err)
	return svc
}

func TestTopicLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	topic, err := svc.Create(ctx, "admin-id", CreateTopicRequest{
		Title:       "  Four day week  ",
		Description: " Pros and cons ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Four day week", topic.Title)
	assert.Equal(t, "Pros and cons", topic.Description)
	assert.Equal(t, "admin-id", topic.CreatedBy)

	fetched, err := svc.Get(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, topic.ID, fetched.ID)

	assert.Len(t, svc.List(ctx), 1)

	require.NoError(t, svc.Delete(ctx, topic.ID))
	assert.Empty(t, svc.List(ctx))
}

func TestTopicErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "admin-id", CreateTopicRequest{Title: "ab"})
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())

	_, err = svc.Get(ctx, "missing")
	coded = pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())

	err = svc.Delete(ctx, "missing")
	coded = pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}
