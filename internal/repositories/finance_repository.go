package repositories

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrPayoutNotFound         = errors.New("payout request not found")
	ErrPayoutAlreadyProcessed = errors.New("payout request already processed")
)

// FinanceRepository - журнал транзакций и заявки на вывод средств
type FinanceRepository interface {
	// Ledger
	CreateTransaction(db *gorm.DB, tx *models.Transaction) error
	ListTransactions(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, int64, error)
	ListTransactionsForExport(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, error)
	ListUserTransactions(db *gorm.DB, userID string, limit int) ([]models.Transaction, error)
	SumAmount(db *gorm.DB, types []models.TransactionType, status models.TransactionStatus) (decimal.Decimal, error)

	// Payouts
	CreatePayout(db *gorm.DB, payout *models.PayoutRequest) error
	FindPayoutByID(db *gorm.DB, id string) (*models.PayoutRequest, error)
	ResolvePayout(db *gorm.DB, id string, updates map[string]interface{}) error
	ListUserPayouts(db *gorm.DB, userID string) ([]models.PayoutRequest, error)
	ListPayouts(db *gorm.DB, status models.PayoutStatus, p Pagination) ([]models.PayoutRequest, int64, error)
	PendingPayouts(db *gorm.DB) (int64, decimal.Decimal, error)
}

// TransactionFilter - фильтры админского журнала и CSV-выгрузки
type TransactionFilter struct {
	Type   models.TransactionType
	Status models.TransactionStatus
	From   *time.Time
	To     *time.Time
	Search string
	Pagination
}

type FinanceRepositoryImpl struct{}

func NewFinanceRepository() FinanceRepository {
	return &FinanceRepositoryImpl{}
}

// === Ledger ===

func (r *FinanceRepositoryImpl) CreateTransaction(db *gorm.DB, tx *models.Transaction) error {
	return db.Omit("User").Create(tx).Error
}

func (r *FinanceRepositoryImpl) applyTransactionFilter(db *gorm.DB, filter TransactionFilter) *gorm.DB {
	query := db.Model(&models.Transaction{}).
		Joins("LEFT JOIN users ON users.id = transactions.user_id").
		Scopes(searchScope(filter.Search, "transactions.reference", "transactions.description", "users.email", "users.name"))

	if filter.Type != "" {
		query = query.Where("transactions.type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("transactions.status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("transactions.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("transactions.created_at <= ?", *filter.To)
	}
	return query
}

func (r *FinanceRepositoryImpl) ListTransactions(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, int64, error) {
	query := r.applyTransactionFilter(db, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	err := query.Preload("User").
		Order("transactions.created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&txs).Error
	return txs, total, err
}

// ListTransactionsForExport - те же фильтры без пагинации
func (r *FinanceRepositoryImpl) ListTransactionsForExport(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.applyTransactionFilter(db, filter).
		Preload("User").
		Order("transactions.created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *FinanceRepositoryImpl) ListUserTransactions(db *gorm.DB, userID string, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	query := db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&txs).Error
	return txs, err
}

func (r *FinanceRepositoryImpl) SumAmount(db *gorm.DB, types []models.TransactionType, status models.TransactionStatus) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	query := db.Model(&models.Transaction{}).Select("COALESCE(SUM(amount), 0) AS total")
	if len(types) > 0 {
		query = query.Where("type IN ?", types)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// === Payouts ===

func (r *FinanceRepositoryImpl) CreatePayout(db *gorm.DB, payout *models.PayoutRequest) error {
	return db.Omit("User").Create(payout).Error
}

func (r *FinanceRepositoryImpl) FindPayoutByID(db *gorm.DB, id string) (*models.PayoutRequest, error) {
	var payout models.PayoutRequest
	if err := db.Preload("User").First(&payout, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrPayoutNotFound)
	}
	return &payout, nil
}

// ResolvePayout обновляет заявку только пока она PENDING; повторное решение
// получает ErrPayoutAlreadyProcessed даже при гонке двух админов.
func (r *FinanceRepositoryImpl) ResolvePayout(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.PayoutRequest{}).
		Where("id = ? AND status = ?", id, models.PayoutStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindPayoutByID(db, id); err != nil {
			return err
		}
		return ErrPayoutAlreadyProcessed
	}
	return nil
}

func (r *FinanceRepositoryImpl) ListUserPayouts(db *gorm.DB, userID string) ([]models.PayoutRequest, error) {
	var payouts []models.PayoutRequest
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payouts).Error
	return payouts, err
}

func (r *FinanceRepositoryImpl) ListPayouts(db *gorm.DB, status models.PayoutStatus, p Pagination) ([]models.PayoutRequest, int64, error) {
	query := db.Model(&models.PayoutRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payouts []models.PayoutRequest
	err := query.Preload("User").Order("created_at DESC").Scopes(paginate(p)).Find(&payouts).Error
	return payouts, total, err
}

// PendingPayouts - количество и сумма заявок в ожидании
func (r *FinanceRepositoryImpl) PendingPayouts(db *gorm.DB) (int64, decimal.Decimal, error) {
	var row struct {
		Count int64
		Total decimal.Decimal
	}
	err := db.Model(&models.PayoutRequest{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", models.PayoutStatusPending).
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return row.Count, row.Total, nil
}
