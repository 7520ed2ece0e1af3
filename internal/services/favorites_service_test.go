package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func TestFavoritesService_ToggleSaved(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	_, profile := testhelpers.CreateTalent(t, db)

	on, err := svc.FavoritesService.ToggleSaved(db, employer.ID, profile.ID)
	require.NoError(t, err)
	assert.True(t, on.Saved)

	saved, err := svc.FavoritesService.ListSaved(db, employer.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	off, err := svc.FavoritesService.ToggleSaved(db, employer.ID, profile.ID)
	require.NoError(t, err)
	assert.False(t, off.Saved, "Повторный вызов снимает отметку")

	_, err = svc.FavoritesService.ToggleSaved(db, employer.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestFavoritesService_Shortlists(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	other, _ := testhelpers.CreateEmployer(t, db)
	_, profile := testhelpers.CreateTalent(t, db)

	list, err := svc.FavoritesService.CreateShortlist(db, employer.ID, &dto.ShortlistRequest{Name: "Lead roles"})
	require.NoError(t, err)

	list, err = svc.FavoritesService.AddToShortlist(db, employer.ID, list.ID, &dto.ShortlistItemRequest{TalentID: profile.ID, Note: "Strong screen test"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, profile.ID, list.Items[0].TalentID)

	_, err = svc.FavoritesService.AddToShortlist(db, employer.ID, list.ID, &dto.ShortlistItemRequest{TalentID: profile.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInShortlist)

	_, err = svc.FavoritesService.GetShortlist(db, other.ID, list.ID)
	assert.ErrorIs(t, err, apperrors.ErrShortlistNotFound, "Чужой шортлист не виден")

	list, err = svc.FavoritesService.RemoveFromShortlist(db, employer.ID, list.ID, profile.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	require.NoError(t, svc.FavoritesService.DeleteShortlist(db, employer.ID, list.ID))
	lists, err := svc.FavoritesService.ListShortlists(db, employer.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
