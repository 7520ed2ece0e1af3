package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// ProfileService - профиль таланта, портфолио, кредиты и публичный каталог
type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (*models.TalentProfile, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateTalentProfileRequest) (*models.TalentProfile, error)

	// Portfolio
	AddPortfolioItem(db *gorm.DB, userID string, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error)
	RemovePortfolioItem(db *gorm.DB, userID, itemID string) error

	// Experience credits
	AddCredit(db *gorm.DB, userID string, req *dto.CreditRequest) (*models.ExperienceCredit, error)
	UpdateCredit(db *gorm.DB, userID, creditID string, req *dto.CreditRequest) (*models.ExperienceCredit, error)
	RemoveCredit(db *gorm.DB, userID, creditID string) error

	// Public directory
	GetPublicProfile(db *gorm.DB, profileID string) (*models.TalentProfile, error)
	SearchTalents(db *gorm.DB, query *dto.TalentSearchQuery, page, pageSize int) (*dto.ListResponse[dto.TalentCard], error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetMyProfile(db *gorm.DB, userID string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByUserID(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateTalentProfileRequest) (*models.TalentProfile, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}

		applyTalentUpdate(profile, req)

		if err := s.profileRepo.SaveTalentProfile(tx, profile); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.GetMyProfile(db, userID)
}

func applyTalentUpdate(p *models.TalentProfile, req *dto.UpdateTalentProfileRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	// Личные данные
	setString(&p.FirstName, req.FirstName)
	setString(&p.LastName, req.LastName)
	setString(&p.StageName, req.StageName)
	if req.DateOfBirth != nil {
		dob := req.DateOfBirth.UTC()
		p.DateOfBirth = &dob
	}
	if req.Gender != nil {
		p.Gender = strings.ToLower(strings.TrimSpace(*req.Gender))
	}
	setString(&p.Phone, req.Phone)
	setString(&p.City, req.City)
	setString(&p.Country, req.Country)
	setString(&p.Bio, req.Bio)
	setString(&p.AvatarURL, req.AvatarURL)

	// Физические параметры
	if req.HeightCm != nil {
		p.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		p.WeightKg = req.WeightKg
	}
	setString(&p.EyeColor, req.EyeColor)
	setString(&p.HairColor, req.HairColor)
	setString(&p.Ethnicity, req.Ethnicity)
	setString(&p.BodyType, req.BodyType)

	// Профессиональные данные
	if req.Skills != nil {
		p.Skills = cleanList(req.Skills)
	}
	if req.Languages != nil {
		p.Languages = cleanList(req.Languages)
	}
	if req.Categories != nil {
		p.Categories = cleanList(req.Categories)
	}
	if req.YearsOfExperience != nil {
		p.YearsOfExperience = *req.YearsOfExperience
	}
	if req.HourlyRate != nil {
		p.HourlyRate = *req.HourlyRate
	}

	if req.IsPublic != nil {
		p.IsPublic = *req.IsPublic
	}
}

// cleanList убирает пустые значения и дубликаты, сохраняя порядок
func cleanList(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[strings.ToLower(v)] {
			continue
		}
		seen[strings.ToLower(v)] = true
		out = append(out, v)
	}
	return out
}

// refreshCompletion пересчитывает процент заполнения после любой записи в профиль
func (s *ProfileServiceImpl) refreshCompletion(tx *gorm.DB, profile *models.TalentProfile) error {
	count, err := s.profileRepo.CountPortfolioItems(tx, profile.ID)
	if err != nil {
		return err
	}
	profile.Completion = CalculateCompletion(profile, count)
	return s.profileRepo.UpdateCompletion(tx, profile.ID, profile.Completion)
}

// === Portfolio ===

func (s *ProfileServiceImpl) AddPortfolioItem(db *gorm.DB, userID string, req *dto.PortfolioItemRequest) (*models.PortfolioItem, error) {
	var item *models.PortfolioItem
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}

		item = &models.PortfolioItem{
			TalentProfileID: profile.ID,
			Kind:            req.Kind,
			Title:           strings.TrimSpace(req.Title),
			Description:     req.Description,
			URL:             req.URL,
			OrderIndex:      req.OrderIndex,
		}
		if err := s.profileRepo.CreatePortfolioItem(tx, item); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (s *ProfileServiceImpl) RemovePortfolioItem(db *gorm.DB, userID, itemID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}
		if err := s.profileRepo.DeletePortfolioItem(tx, profile.ID, itemID); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	return mapError(err)
}

// === Experience credits ===

func (s *ProfileServiceImpl) AddCredit(db *gorm.DB, userID string, req *dto.CreditRequest) (*models.ExperienceCredit, error) {
	var credit *models.ExperienceCredit
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}
		credit = &models.ExperienceCredit{TalentProfileID: profile.ID}
		applyCredit(credit, req)
		if err := s.profileRepo.CreateCredit(tx, credit); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return credit, nil
}

func (s *ProfileServiceImpl) UpdateCredit(db *gorm.DB, userID, creditID string, req *dto.CreditRequest) (*models.ExperienceCredit, error) {
	var credit *models.ExperienceCredit
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}
		credit, err = s.profileRepo.FindCredit(tx, profile.ID, creditID)
		if err != nil {
			return err
		}
		applyCredit(credit, req)
		if err := s.profileRepo.SaveCredit(tx, credit); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return credit, nil
}

func (s *ProfileServiceImpl) RemoveCredit(db *gorm.DB, userID, creditID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.profileRepo.FindTalentByUserID(tx, userID)
		if err != nil {
			return err
		}
		if err := s.profileRepo.DeleteCredit(tx, profile.ID, creditID); err != nil {
			return err
		}
		return s.refreshCompletion(tx, profile)
	})
	return mapError(err)
}

func applyCredit(c *models.ExperienceCredit, req *dto.CreditRequest) {
	c.Title = strings.TrimSpace(req.Title)
	c.Role = strings.TrimSpace(req.Role)
	c.Company = strings.TrimSpace(req.Company)
	c.Year = req.Year
	c.Description = req.Description
}

// === Public directory ===

// GetPublicProfile - скрытые профили и профили заблокированных пользователей не отдаются
func (s *ProfileServiceImpl) GetPublicProfile(db *gorm.DB, profileID string) (*models.TalentProfile, error) {
	profile, err := s.profileRepo.FindTalentByID(db, profileID)
	if err != nil {
		return nil, mapError(err)
	}
	if !profile.IsPublic || profile.User == nil || profile.User.IsSuspended {
		return nil, apperrors.ErrProfileNotFound
	}

	// Контакты владельца наружу не отдаются
	profile.Phone = ""
	profile.User = nil
	return profile, nil
}

func (s *ProfileServiceImpl) SearchTalents(db *gorm.DB, query *dto.TalentSearchQuery, page, pageSize int) (*dto.ListResponse[dto.TalentCard], error) {
	if query.MinAge != nil && query.MaxAge != nil && *query.MinAge > *query.MaxAge {
		return nil, apperrors.ErrInvalidAgeRange
	}

	profiles, total, err := s.profileRepo.SearchPublicTalents(db, repositories.TalentFilter{
		Gender:     strings.ToLower(query.Gender),
		City:       strings.TrimSpace(query.City),
		Skill:      query.Skill,
		Category:   query.Category,
		MinAge:     query.MinAge,
		MaxAge:     query.MaxAge,
		Search:     query.Search,
		Pagination: repositories.Pagination{Page: page, PageSize: pageSize},
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	cards := make([]dto.TalentCard, 0, len(profiles))
	for i := range profiles {
		cards = append(cards, buildTalentCard(&profiles[i], now))
	}
	return dto.NewListResponse(cards, total, page, pageSize), nil
}

func buildTalentCard(p *models.TalentProfile, now time.Time) dto.TalentCard {
	name := p.StageName
	if name == "" {
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	card := dto.TalentCard{
		ID:          p.ID,
		DisplayName: name,
		AvatarURL:   p.AvatarURL,
		City:        p.City,
		Gender:      p.Gender,
		Age:         p.Age(now),
		Skills:      p.Skills,
		Categories:  p.Categories,
		IsVerified:  p.IsVerified,
		Completion:  p.Completion,
	}
	for _, item := range p.PortfolioItems {
		if item.Kind == models.PortfolioKindPhoto {
			card.CoverURL = item.URL
			break
		}
	}
	return card
}
