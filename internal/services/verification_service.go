package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// VerificationService - проверка бизнеса работодателя
type VerificationService interface {
	GetStatus(db *gorm.DB, employerID string) (*dto.VerificationStatusResponse, error)
	Submit(db *gorm.DB, employerID string, req *dto.SubmitVerificationRequest) (*models.VerificationRequest, error)

	// Admin
	Approve(db *gorm.DB, adminID, requestID string) (*models.VerificationRequest, error)
	Reject(db *gorm.DB, adminID, requestID, reason string) (*models.VerificationRequest, error)
	List(db *gorm.DB, status models.VerificationStatus, page, pageSize int) (*dto.ListResponse[models.VerificationRequest], error)
}

type VerificationServiceImpl struct {
	verificationRepo repositories.VerificationRepository
	profileRepo      repositories.ProfileRepository
	notifier         *Notifier
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	profileRepo repositories.ProfileRepository,
	notifier *Notifier,
) VerificationService {
	return &VerificationServiceImpl{
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		notifier:         notifier,
	}
}

// GetStatus: значок на профиле важнее состояния заявки
func (s *VerificationServiceImpl) GetStatus(db *gorm.DB, employerID string) (*dto.VerificationStatusResponse, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(db, employerID)
	if err != nil {
		return nil, mapError(err)
	}

	req, err := s.verificationRepo.FindByUserID(db, employerID)
	if err != nil && !errors.Is(err, repositories.ErrVerificationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.VerificationStatusResponse{State: models.VerificationStateNew, Request: req}
	switch {
	case profile.IsVerified:
		resp.State = models.VerificationStateVerified
	case req == nil:
	case req.Status == models.VerificationStatusPending:
		resp.State = models.VerificationStatePending
	case req.Status == models.VerificationStatusRejected:
		resp.State = models.VerificationStateRejected
		resp.RejectionReason = req.RejectionReason
	}
	return resp, nil
}

// Submit - новая подача перезаписывает отклоненную заявку
func (s *VerificationServiceImpl) Submit(db *gorm.DB, employerID string, req *dto.SubmitVerificationRequest) (*models.VerificationRequest, error) {
	status, err := s.GetStatus(db, employerID)
	if err != nil {
		return nil, err
	}
	switch status.State {
	case models.VerificationStateVerified:
		return nil, apperrors.ErrAlreadyVerified
	case models.VerificationStatePending:
		return nil, apperrors.ErrVerificationPending
	}

	request := &models.VerificationRequest{
		UserID:             employerID,
		BusinessName:       strings.TrimSpace(req.BusinessName),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		DocumentURLs:       datatypes.JSONSlice[string](cleanList(req.DocumentURLs)),
		Notes:              strings.TrimSpace(req.Notes),
		Status:             models.VerificationStatusPending,
		SubmittedAt:        time.Now(),
	}
	if err := s.verificationRepo.Upsert(db, request); err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "verification submitted", "request_id", request.ID, "user_id", employerID)
	return request, nil
}

// === Admin ===

func (s *VerificationServiceImpl) Approve(db *gorm.DB, adminID, requestID string) (*models.VerificationRequest, error) {
	now := time.Now()
	var request *models.VerificationRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := s.verificationRepo.FindByID(tx, requestID)
		if err != nil {
			return err
		}
		err = s.verificationRepo.Resolve(tx, requestID, map[string]interface{}{
			"status":           models.VerificationStatusApproved,
			"rejection_reason": "",
			"reviewed_at":      now,
			"reviewed_by":      adminID,
		})
		if err != nil {
			return err
		}
		if err := s.profileRepo.SetEmployerVerified(tx, found.UserID, true); err != nil {
			return err
		}
		request, err = s.verificationRepo.FindByID(tx, requestID)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "verification approved", "request_id", requestID, "admin_id", adminID)
	s.notifier.Notify(db, request.User, verificationApprovedTemplate, nil)
	return request, nil
}

func (s *VerificationServiceImpl) Reject(db *gorm.DB, adminID, requestID, reason string) (*models.VerificationRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrReasonRequired
	}

	err := s.verificationRepo.Resolve(db, requestID, map[string]interface{}{
		"status":           models.VerificationStatusRejected,
		"rejection_reason": reason,
		"reviewed_at":      time.Now(),
		"reviewed_by":      adminID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	request, err := s.verificationRepo.FindByID(db, requestID)
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "verification rejected", "request_id", requestID, "admin_id", adminID)
	s.notifier.Notify(db, request.User, verificationRejectedTemplate, email.TemplateData{"Reason": reason})
	return request, nil
}

func (s *VerificationServiceImpl) List(db *gorm.DB, status models.VerificationStatus, page, pageSize int) (*dto.ListResponse[models.VerificationRequest], error) {
	items, total, err := s.verificationRepo.List(db, status, repositories.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(items, total, page, pageSize), nil
}
