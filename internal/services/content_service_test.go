package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func TestContentService_PostSlugAndPublishing(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	cs := svc.ContentService

	draft, err := cs.CreatePost(db, admin.ID, &dto.BlogPostRequest{Title: "How to Ace an Audition!"})
	require.NoError(t, err)
	assert.Equal(t, "how-to-ace-an-audition", draft.Slug, "Slug выводится из заголовка")
	assert.Nil(t, draft.PublishedAt)

	_, err = cs.CreatePost(db, admin.ID, &dto.BlogPostRequest{Title: "How to ace an audition"})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)

	_, err = cs.GetPublishedPost(db, draft.Slug)
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound, "Черновик не виден публично")

	published, err := cs.UpdatePost(db, draft.ID, &dto.BlogPostRequest{Title: draft.Title, IsPublished: true})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// Снятие с публикации и повторная публикация не меняют дату первой публикации
	_, err = cs.UpdatePost(db, draft.ID, &dto.BlogPostRequest{Title: draft.Title})
	require.NoError(t, err)
	again, err := cs.UpdatePost(db, draft.ID, &dto.BlogPostRequest{Title: draft.Title, IsPublished: true})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, first.Equal(*again.PublishedAt))

	public, err := cs.GetPublishedPost(db, draft.Slug)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, public.ID)

	list, err := cs.ListPosts(db, &dto.ContentListQuery{}, true, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
}

func TestContentService_CategoryDeleteKeepsPosts(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	cs := svc.ContentService

	cat, err := cs.CreateCategory(db, &dto.CategoryRequest{Name: "Industry News"})
	require.NoError(t, err)
	assert.Equal(t, "industry-news", cat.Slug)

	post, err := cs.CreatePost(db, admin.ID, &dto.BlogPostRequest{Title: "Festival season", CategoryID: &cat.ID})
	require.NoError(t, err)

	missing := "00000000-0000-0000-0000-000000000000"
	_, err = cs.CreatePost(db, admin.ID, &dto.BlogPostRequest{Title: "Orphan", CategoryID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)

	require.NoError(t, cs.DeleteCategory(db, cat.ID))

	stored, err := cs.GetPost(db, post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryID, "Пост остается без категории")
}

func TestContentService_EventDates(t *testing.T) {
	db, svc, _ := setup(t)
	starts := time.Now().Add(48 * time.Hour)
	before := starts.Add(-time.Hour)

	_, err := svc.ContentService.CreateEvent(db, &dto.EventRequest{Title: "Open casting", StartsAt: starts, EndsAt: &before})
	assert.ErrorIs(t, err, apperrors.ValidationError(nil))

	after := starts.Add(3 * time.Hour)
	event, err := svc.ContentService.CreateEvent(db, &dto.EventRequest{Title: "Open casting", StartsAt: starts, EndsAt: &after, IsPublished: true})
	require.NoError(t, err)
	assert.Equal(t, "open-casting", event.Slug)
	assert.NotNil(t, event.PublishedAt)
}
