package services

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/utils"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

const (
	// CSVDateFormat - формат даты в финансовом отчете
	CSVDateFormat = "2006-01-02 15:04:05"
	// QueryDateFormat - формат from/to в фильтрах журнала
	QueryDateFormat = "2006-01-02"

	recentTransactionsLimit = 20
)

// CSVHeader - порядок колонок финансового отчета фиксирован
var CSVHeader = []string{"Date", "User", "Email", "Type", "Amount", "Status", "Reference"}

// WalletService - баланс, заявки на вывод и журнал транзакций
type WalletService interface {
	GetWallet(db *gorm.DB, userID string) (*dto.WalletResponse, error)
	RequestPayout(db *gorm.DB, userID string, req *dto.PayoutCreateRequest) (*models.PayoutRequest, error)

	// Admin
	ApprovePayout(db *gorm.DB, adminID, payoutID string, req *dto.PayoutApproveRequest) (*models.PayoutRequest, error)
	RejectPayout(db *gorm.DB, adminID, payoutID, reason string) (*models.PayoutRequest, error)
	ListPayouts(db *gorm.DB, status models.PayoutStatus, page, pageSize int) (*dto.ListResponse[models.PayoutRequest], error)
	RecordTransaction(db *gorm.DB, adminID string, req *dto.RecordTransactionRequest) (*models.Transaction, error)
	ListTransactions(db *gorm.DB, query *dto.TransactionQuery, page, pageSize int) (*dto.ListResponse[models.Transaction], error)
	GetStats(db *gorm.DB) (*dto.FinanceStats, error)
	ExportCSV(db *gorm.DB, query *dto.TransactionQuery, w io.Writer) (int, error)
}

type WalletServiceImpl struct {
	userRepo    repositories.UserRepository
	financeRepo repositories.FinanceRepository
	notifier    *Notifier
}

func NewWalletService(
	userRepo repositories.UserRepository,
	financeRepo repositories.FinanceRepository,
	notifier *Notifier,
) WalletService {
	return &WalletServiceImpl{
		userRepo:    userRepo,
		financeRepo: financeRepo,
		notifier:    notifier,
	}
}

// ReportFilename - имя файла выгрузки за день now
func ReportFilename(now time.Time) string {
	return "financial_report_" + now.Format(QueryDateFormat) + ".csv"
}

func (s *WalletServiceImpl) GetWallet(db *gorm.DB, userID string) (*dto.WalletResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	txs, err := s.financeRepo.ListUserTransactions(db, userID, recentTransactionsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	payouts, err := s.financeRepo.ListUserPayouts(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.WalletResponse{
		Balance:        user.Balance,
		BalanceDisplay: utils.FormatNaira(user.Balance),
		Currency:       models.DefaultCurrency,
		Transactions:   orEmpty(txs),
		Payouts:        orEmpty(payouts),
	}, nil
}

// RequestPayout - списание, заявка PENDING и строка WITHDRAWAL/PENDING в одной транзакции
func (s *WalletServiceImpl) RequestPayout(db *gorm.DB, userID string, req *dto.PayoutCreateRequest) (*models.PayoutRequest, error) {
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	payout := &models.PayoutRequest{
		UserID:        userID,
		Amount:        amount,
		Currency:      models.DefaultCurrency,
		BankName:      strings.TrimSpace(req.BankName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		AccountName:   strings.TrimSpace(req.AccountName),
		Status:        models.PayoutStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Debit(tx, userID, amount); err != nil {
			return err
		}
		if err := s.financeRepo.CreatePayout(tx, payout); err != nil {
			return err
		}
		return s.appendLedger(tx, payout, models.TransactionStatusPending, "Payout request", nil)
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "payout requested", "payout_id", payout.ID, "amount", amount.String())
	return payout, nil
}

// === Admin ===

// ApprovePayout - баланс не меняется: деньги списаны при создании заявки
func (s *WalletServiceImpl) ApprovePayout(db *gorm.DB, adminID, payoutID string, req *dto.PayoutApproveRequest) (*models.PayoutRequest, error) {
	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		payout, err := s.financeRepo.FindPayoutByID(tx, payoutID)
		if err != nil {
			return err
		}
		if payout.Status != models.PayoutStatusPending {
			return repositories.ErrPayoutAlreadyProcessed
		}

		err = s.financeRepo.ResolvePayout(tx, payoutID, map[string]interface{}{
			"status":             models.PayoutStatusApproved,
			"transfer_reference": strings.TrimSpace(req.TransferReference),
			"processed_at":       now,
			"processed_by":       adminID,
		})
		if err != nil {
			return err
		}
		return s.appendLedger(tx, payout, models.TransactionStatusSuccessful, "Payout approved", &adminID)
	})
	if err != nil {
		return nil, mapError(err)
	}

	payout, err := s.financeRepo.FindPayoutByID(db, payoutID)
	if err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "payout approved", "payout_id", payoutID, "admin_id", adminID)
	s.notifier.Notify(db, payout.User, payoutApprovedTemplate, email.TemplateData{
		"Amount": utils.FormatNaira(payout.Amount),
	})
	return payout, nil
}

// RejectPayout - статус, причина, возврат денег и строка WITHDRAWAL/FAILED атомарно
func (s *WalletServiceImpl) RejectPayout(db *gorm.DB, adminID, payoutID, reason string) (*models.PayoutRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.ErrReasonRequired
	}

	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		payout, err := s.financeRepo.FindPayoutByID(tx, payoutID)
		if err != nil {
			return err
		}
		if payout.Status != models.PayoutStatusPending {
			return repositories.ErrPayoutAlreadyProcessed
		}

		err = s.financeRepo.ResolvePayout(tx, payoutID, map[string]interface{}{
			"status":           models.PayoutStatusRejected,
			"rejection_reason": reason,
			"processed_at":     now,
			"processed_by":     adminID,
		})
		if err != nil {
			return err
		}
		if err := s.userRepo.Credit(tx, payout.UserID, payout.Amount); err != nil {
			return err
		}
		return s.appendLedger(tx, payout, models.TransactionStatusFailed, "Payout rejected: "+reason, &adminID)
	})
	if err != nil {
		return nil, mapError(err)
	}

	payout, err := s.financeRepo.FindPayoutByID(db, payoutID)
	if err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "payout rejected", "payout_id", payoutID, "admin_id", adminID)
	s.notifier.Notify(db, payout.User, payoutRejectedTemplate, email.TemplateData{
		"Amount": utils.FormatNaira(payout.Amount),
		"Reason": reason,
	})
	return payout, nil
}

func (s *WalletServiceImpl) ListPayouts(db *gorm.DB, status models.PayoutStatus, page, pageSize int) (*dto.ListResponse[models.PayoutRequest], error) {
	payouts, total, err := s.financeRepo.ListPayouts(db, status, repositories.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(payouts, total, page, pageSize), nil
}

// RecordTransaction - ручная запись. На кошелек влияют только SUCCESSFUL
// DEPOSIT (зачисление) и WITHDRAWAL (списание); COMMISSION и JOB_FEE - выручка платформы.
func (s *WalletServiceImpl) RecordTransaction(db *gorm.DB, adminID string, req *dto.RecordTransactionRequest) (*models.Transaction, error) {
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperrors.ErrInvalidAmount
	}

	txn := &models.Transaction{
		UserID:      req.UserID,
		Type:        req.Type,
		Status:      req.Status,
		Amount:      amount,
		Currency:    models.DefaultCurrency,
		Reference:   utils.NewReference(referencePrefix(req.Type)),
		Description: strings.TrimSpace(req.Description),
		RecordedBy:  &adminID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(tx, req.UserID); err != nil {
			return err
		}
		if req.Status == models.TransactionStatusSuccessful {
			switch req.Type {
			case models.TransactionTypeDeposit:
				if err := s.userRepo.Credit(tx, req.UserID, amount); err != nil {
					return err
				}
			case models.TransactionTypeWithdrawal:
				if err := s.userRepo.Debit(tx, req.UserID, amount); err != nil {
					return err
				}
			}
		}
		return s.financeRepo.CreateTransaction(tx, txn)
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "transaction recorded", "reference", txn.Reference, "type", txn.Type, "admin_id", adminID)
	return txn, nil
}

func (s *WalletServiceImpl) ListTransactions(db *gorm.DB, query *dto.TransactionQuery, page, pageSize int) (*dto.ListResponse[models.Transaction], error) {
	filter, err := transactionFilter(query)
	if err != nil {
		return nil, err
	}
	filter.Pagination = repositories.Pagination{Page: page, PageSize: pageSize}

	txs, total, err := s.financeRepo.ListTransactions(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range txs {
		stripPrivateUser(txs[i].User)
	}
	return dto.NewListResponse(txs, total, page, pageSize), nil
}

// GetStats - выручка (COMMISSION + JOB_FEE), выплачено, заявки в ожидании
func (s *WalletServiceImpl) GetStats(db *gorm.DB) (*dto.FinanceStats, error) {
	revenue, err := s.financeRepo.SumAmount(db,
		[]models.TransactionType{models.TransactionTypeCommission, models.TransactionTypeJobFee},
		models.TransactionStatusSuccessful)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	paidOut, err := s.financeRepo.SumAmount(db,
		[]models.TransactionType{models.TransactionTypeWithdrawal}, models.TransactionStatusSuccessful)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	deposits, err := s.financeRepo.SumAmount(db,
		[]models.TransactionType{models.TransactionTypeDeposit}, models.TransactionStatusSuccessful)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingCount, pendingAmount, err := s.financeRepo.PendingPayouts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.FinanceStats{
		Revenue:              revenue,
		RevenueDisplay:       utils.FormatNaira(revenue),
		PaidOut:              paidOut,
		PaidOutDisplay:       utils.FormatNaira(paidOut),
		Deposits:             deposits,
		DepositsDisplay:      utils.FormatNaira(deposits),
		PendingPayouts:       pendingCount,
		PendingAmount:        pendingAmount,
		PendingAmountDisplay: utils.FormatNaira(pendingAmount),
	}, nil
}

// ExportCSV пишет отчет по тем же фильтрам, что и журнал, и возвращает число строк данных
func (s *WalletServiceImpl) ExportCSV(db *gorm.DB, query *dto.TransactionQuery, w io.Writer) (int, error) {
	filter, err := transactionFilter(query)
	if err != nil {
		return 0, err
	}
	txs, err := s.financeRepo.ListTransactionsForExport(db, filter)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, apperrors.InternalError(err)
	}
	for _, t := range txs {
		name, mail := "", ""
		if t.User != nil {
			name, mail = t.User.Name, t.User.Email
		}
		record := []string{
			t.CreatedAt.Format(CSVDateFormat),
			name,
			mail,
			string(t.Type),
			t.Amount.StringFixed(2),
			string(t.Status),
			t.Reference,
		}
		if err := cw.Write(record); err != nil {
			return 0, apperrors.InternalError(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return len(txs), nil
}

// appendLedger добавляет строку WITHDRAWAL для заявки на вывод
func (s *WalletServiceImpl) appendLedger(tx *gorm.DB, payout *models.PayoutRequest, status models.TransactionStatus, description string, recordedBy *string) error {
	payoutID := payout.ID
	return s.financeRepo.CreateTransaction(tx, &models.Transaction{
		UserID:          payout.UserID,
		Type:            models.TransactionTypeWithdrawal,
		Status:          status,
		Amount:          payout.Amount,
		Currency:        payout.Currency,
		Reference:       utils.NewReference("PAY"),
		Description:     description,
		PayoutRequestID: &payoutID,
		RecordedBy:      recordedBy,
	})
}

func transactionFilter(query *dto.TransactionQuery) (repositories.TransactionFilter, error) {
	filter := repositories.TransactionFilter{
		Type:   query.Type,
		Status: query.Status,
		Search: query.Search,
	}
	if query.From != "" {
		from, err := time.ParseInLocation(QueryDateFormat, query.From, time.Local)
		if err != nil {
			return filter, apperrors.ValidationError(map[string]string{"from": "Must be a date in format 2006-01-02"})
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.ParseInLocation(QueryDateFormat, query.To, time.Local)
		if err != nil {
			return filter, apperrors.ValidationError(map[string]string{"to": "Must be a date in format 2006-01-02"})
		}
		// to включается целиком
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, apperrors.NewBadRequestError("from cannot be after to")
	}
	return filter, nil
}

func referencePrefix(t models.TransactionType) string {
	switch t {
	case models.TransactionTypeDeposit:
		return "DEP"
	case models.TransactionTypeWithdrawal:
		return "WDR"
	case models.TransactionTypeCommission:
		return "COM"
	default:
		return "FEE"
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

