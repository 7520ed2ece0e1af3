package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func payoutRequest(amount int64) *dto.PayoutCreateRequest {
	return &dto.PayoutCreateRequest{
		Amount:        decimal.NewFromInt(amount),
		BankName:      "First Bank",
		AccountNumber: "0123456789",
		AccountName:   "Ada Talent",
	}
}

func TestWalletService_RequestPayout(t *testing.T) {
	db, svc, _ := setup(t)
	talent, _ := testhelpers.CreateTalent(t, db)
	testhelpers.SetBalance(t, db, talent.ID, decimal.NewFromInt(80000))

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(0))
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("amount cannot exceed balance", func(t *testing.T) {
		_, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(100000))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
		assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(80000)), "Баланс не должен измениться")
	})

	t.Run("debits and appends pending withdrawal", func(t *testing.T) {
		payout, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(50000))
		require.NoError(t, err)
		assert.Equal(t, models.PayoutStatusPending, payout.Status)
		assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(30000)))

		var rows []models.Transaction
		require.NoError(t, db.Where("payout_request_id = ?", payout.ID).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, models.TransactionTypeWithdrawal, rows[0].Type)
		assert.Equal(t, models.TransactionStatusPending, rows[0].Status)
	})
}

func TestWalletService_RejectPayoutRefunds(t *testing.T) {
	db, svc, mail := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	testhelpers.SetBalance(t, db, talent.ID, decimal.NewFromInt(50000))

	payout, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(50000))
	require.NoError(t, err)
	assert.True(t, testhelpers.Balance(t, db, talent.ID).IsZero())

	_, err = svc.WalletService.RejectPayout(db, admin.ID, payout.ID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrReasonRequired)

	rejected, err := svc.WalletService.RejectPayout(db, admin.ID, payout.ID, "Invalid account")
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusRejected, rejected.Status)
	assert.Equal(t, "Invalid account", rejected.RejectionReason)
	assert.NotNil(t, rejected.ProcessedAt)
	assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(50000)), "Отклонение возвращает ровно сумму заявки")

	var failed int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("payout_request_id = ? AND status = ?", payout.ID, models.TransactionStatusFailed).
		Count(&failed).Error)
	assert.EqualValues(t, 1, failed)

	_, err = svc.WalletService.RejectPayout(db, admin.ID, payout.ID, "Again")
	assert.ErrorIs(t, err, apperrors.ErrPayoutAlreadyProcessed)
	_, err = svc.WalletService.ApprovePayout(db, admin.ID, payout.ID, &dto.PayoutApproveRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPayoutAlreadyProcessed)
	assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(50000)), "Повторное решение не меняет баланс")

	sent := mail.SentTo(talent.Email)
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "Invalid account")
}

func TestWalletService_ApprovePayoutKeepsDebit(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	testhelpers.SetBalance(t, db, talent.ID, decimal.NewFromInt(20000))

	payout, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(15000))
	require.NoError(t, err)

	approved, err := svc.WalletService.ApprovePayout(db, admin.ID, payout.ID, &dto.PayoutApproveRequest{TransferReference: "TRF-001"})
	require.NoError(t, err)
	assert.Equal(t, models.PayoutStatusApproved, approved.Status)
	assert.Equal(t, "TRF-001", approved.TransferReference)
	assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(5000)), "Одобрение не возвращает деньги")

	stats, err := svc.WalletService.GetStats(db)
	require.NoError(t, err)
	assert.True(t, stats.PaidOut.Equal(decimal.NewFromInt(15000)))
	assert.Zero(t, stats.PendingPayouts)
}

func TestWalletService_RecordTransaction(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)

	record := func(typ models.TransactionType, status models.TransactionStatus, amount int64) error {
		_, err := svc.WalletService.RecordTransaction(db, admin.ID, &dto.RecordTransactionRequest{
			UserID: talent.ID,
			Type:   typ,
			Status: status,
			Amount: decimal.NewFromInt(amount),
		})
		return err
	}

	require.NoError(t, record(models.TransactionTypeDeposit, models.TransactionStatusSuccessful, 10000))
	require.NoError(t, record(models.TransactionTypeDeposit, models.TransactionStatusPending, 7000))
	require.NoError(t, record(models.TransactionTypeCommission, models.TransactionStatusSuccessful, 2500))
	require.NoError(t, record(models.TransactionTypeJobFee, models.TransactionStatusSuccessful, 500))
	assert.True(t, testhelpers.Balance(t, db, talent.ID).Equal(decimal.NewFromInt(10000)),
		"На баланс влияет только успешный DEPOSIT")

	err := record(models.TransactionTypeWithdrawal, models.TransactionStatusSuccessful, 20000)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	stats, err := svc.WalletService.GetStats(db)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(3000)), "Выручка - COMMISSION + JOB_FEE")
	assert.True(t, stats.Deposits.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "₦3,000.00", stats.RevenueDisplay)
}

func TestWalletService_ExportCSV(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)

	for _, typ := range []models.TransactionType{
		models.TransactionTypeDeposit, models.TransactionTypeDeposit, models.TransactionTypeCommission,
	} {
		_, err := svc.WalletService.RecordTransaction(db, admin.ID, &dto.RecordTransactionRequest{
			UserID: talent.ID,
			Type:   typ,
			Status: models.TransactionStatusSuccessful,
			Amount: decimal.NewFromInt(1000),
		})
		require.NoError(t, err)
	}

	t.Run("all rows", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := svc.WalletService.ExportCSV(db, &dto.TransactionQuery{}, &buf)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4, "Заголовок и по строке на транзакцию")
		assert.Equal(t, []string{"Date", "User", "Email", "Type", "Amount", "Status", "Reference"}, records[0])
		assert.Equal(t, talent.Email, records[1][2])
		assert.Equal(t, "1000.00", records[1][4])

		_, err = time.Parse(CSVDateFormat, records[1][0])
		assert.NoError(t, err, "Дата в формате yyyy-MM-dd HH:mm:ss")
	})

	t.Run("filtered rows", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := svc.WalletService.ExportCSV(db, &dto.TransactionQuery{Type: models.TransactionTypeCommission}, &buf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 2, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
	})

	t.Run("bad date", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := svc.WalletService.ExportCSV(db, &dto.TransactionQuery{From: "14/10/2026"}, &buf)
		assert.ErrorIs(t, err, apperrors.ValidationError(nil))
	})
}

func TestReportFilename(t *testing.T) {
	day := time.Date(2026, 10, 14, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "financial_report_2026-10-14.csv", ReportFilename(day))
}
