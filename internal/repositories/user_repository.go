package repositories

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindWithProfiles(db *gorm.DB, id string) (*models.User, error)
	UpdateLastLogin(db *gorm.DB, id string) error
	Delete(db *gorm.DB, id string) error

	// Admin operations
	List(db *gorm.DB, filter UserFilter) ([]models.User, int64, error)
	ToggleSuspended(db *gorm.DB, id string) error
	CountByRole(db *gorm.DB) (map[models.UserRole]int64, error)
	FindActiveByRoles(db *gorm.DB, roles []models.UserRole) ([]models.User, error)

	// Wallet operations
	Credit(db *gorm.DB, id string, amount decimal.Decimal) error
	Debit(db *gorm.DB, id string, amount decimal.Decimal) error
}

type UserFilter struct {
	Role        models.UserRole
	IsSuspended *bool
	Search      string
	Pagination
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindWithProfiles(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("TalentProfile").Preload("EmployerProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateLastLogin(db *gorm.DB, id string) error {
	return db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("last_login_at", time.Now()).Error
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Admin operations

func (r *UserRepositoryImpl) List(db *gorm.DB, filter UserFilter) ([]models.User, int64, error) {
	query := db.Model(&models.User{}).Scopes(searchScope(filter.Search, "email", "name"))
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsSuspended != nil {
		query = query.Where("is_suspended = ?", *filter.IsSuspended)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Preload("TalentProfile").Preload("EmployerProfile").
		Order("created_at DESC").Scopes(paginate(filter.Pagination)).
		Find(&users).Error
	return users, total, err
}

// ToggleSuspended - инволюция: два вызова возвращают исходное значение
func (r *UserRepositoryImpl) ToggleSuspended(db *gorm.DB, id string) error {
	result := db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("is_suspended", gorm.Expr("NOT is_suspended"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountByRole(db *gorm.DB) (map[models.UserRole]int64, error) {
	var rows []struct {
		Role  models.UserRole
		Count int64
	}
	err := db.Model(&models.User{}).Select("role, COUNT(*) AS count").Group("role").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.UserRole]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

// FindActiveByRoles - получатели рассылки: не заблокированные пользователи указанных ролей
func (r *UserRepositoryImpl) FindActiveByRoles(db *gorm.DB, roles []models.UserRole) ([]models.User, error) {
	var users []models.User
	query := db.Where("is_suspended = ?", false)
	if len(roles) > 0 {
		query = query.Where("role IN ?", roles)
	}
	err := query.Order("created_at ASC").Find(&users).Error
	return users, err
}

// Wallet operations

func (r *UserRepositoryImpl) Credit(db *gorm.DB, id string, amount decimal.Decimal) error {
	result := db.Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Debit списывает сумму одним условным UPDATE; при нехватке средств ничего не меняется
func (r *UserRepositoryImpl) Debit(db *gorm.DB, id string, amount decimal.Decimal) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND balance >= ?", id, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(db, id); err != nil {
			return err
		}
		return ErrInsufficientBalance
	}
	return nil
}
