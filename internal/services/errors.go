package services

import (
	"errors"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// repoErrors - соответствие ошибок репозиториев доменным ошибкам API
var repoErrors = []struct {
	repo error
	app  *apperrors.AppError
}{
	{repositories.ErrUserNotFound, apperrors.ErrUserNotFound},
	{repositories.ErrUserAlreadyExists, apperrors.ErrEmailAlreadyExists},
	{repositories.ErrInsufficientBalance, apperrors.ErrInsufficientBalance},
	{repositories.ErrProfileNotFound, apperrors.ErrProfileNotFound},
	{repositories.ErrPortfolioItemNotFound, apperrors.ErrPortfolioItemNotFound},
	{repositories.ErrCreditNotFound, apperrors.ErrCreditNotFound},
	{repositories.ErrJobNotFound, apperrors.ErrJobNotFound},
	{repositories.ErrApplicationNotFound, apperrors.ErrApplicationNotFound},
	{repositories.ErrAlreadyApplied, apperrors.ErrAlreadyApplied},
	{repositories.ErrShortlistNotFound, apperrors.ErrShortlistNotFound},
	{repositories.ErrAlreadyInShortlist, apperrors.ErrAlreadyInShortlist},
	{repositories.ErrPayoutNotFound, apperrors.ErrPayoutNotFound},
	{repositories.ErrPayoutAlreadyProcessed, apperrors.ErrPayoutAlreadyProcessed},
	{repositories.ErrVerificationNotFound, apperrors.ErrVerificationNotFound},
	{repositories.ErrAlreadyResolved, apperrors.ErrVerificationResolved},
	{repositories.ErrTicketNotFound, apperrors.ErrTicketNotFound},
	{repositories.ErrContentNotFound, apperrors.ErrContentNotFound},
	{repositories.ErrSlugTaken, apperrors.ErrSlugTaken},
}

// mapError превращает ошибку репозитория в AppError; неизвестное - в InternalError
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	for _, m := range repoErrors {
		if errors.Is(err, m.repo) {
			return m.app
		}
	}
	return apperrors.InternalError(err)
}
