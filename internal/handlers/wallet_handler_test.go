package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestPayout_RejectRefundsOverHTTP(t *testing.T) {
	s := newServer(t)
	talent, _ := testhelpers.CreateTalent(t, s.db)
	admin := testhelpers.CreateAdmin(t, s.db)
	testhelpers.SetBalance(t, s.db, talent.ID, decimal.NewFromInt(50000))

	w := s.do(t, http.MethodPost, "/api/v1/wallet/payouts", testhelpers.Token(t, talent), map[string]any{
		"amount":         50000,
		"bank_name":      "First Bank",
		"account_number": "0123456789",
		"account_name":   "Ada Talent",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payoutID := decode(t, w)["data"].(map[string]any)["id"].(string)
	assert.True(t, testhelpers.Balance(t, s.db, talent.ID).IsZero(), "Сумма списывается при создании заявки")

	// причина обязательна
	w = s.do(t, http.MethodPost, "/api/v1/admin/payouts/"+payoutID+"/reject", testhelpers.Token(t, admin), map[string]string{"reason": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "error")

	w = s.do(t, http.MethodPost, "/api/v1/admin/payouts/"+payoutID+"/reject", testhelpers.Token(t, admin), map[string]string{"reason": "Invalid account"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Payout rejected and amount refunded", body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "REJECTED", data["status"])
	assert.Equal(t, "Invalid account", data["rejection_reason"])
	assert.True(t, testhelpers.Balance(t, s.db, talent.ID).Equal(decimal.NewFromInt(50000)), "Отклонение возвращает ровно сумму заявки")

	// повторное решение
	w = s.do(t, http.MethodPost, "/api/v1/admin/payouts/"+payoutID+"/approve", testhelpers.Token(t, admin), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExportTransactions_CSV(t *testing.T) {
	s := newServer(t)
	talent, _ := testhelpers.CreateTalent(t, s.db)
	admin := testhelpers.CreateAdmin(t, s.db)

	for i, typ := range []models.TransactionType{
		models.TransactionTypeDeposit,
		models.TransactionTypeDeposit,
		models.TransactionTypeWithdrawal,
	} {
		require.NoError(t, s.db.Create(&models.Transaction{
			UserID:    talent.ID,
			Type:      typ,
			Status:    models.TransactionStatusSuccessful,
			Amount:    decimal.NewFromInt(1000),
			Currency:  models.DefaultCurrency,
			Reference: fmt.Sprintf("REF-%d", i),
		}).Error)
	}

	w := s.do(t, http.MethodGet, "/api/v1/admin/transactions/export?type=DEPOSIT", testhelpers.Token(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="financial_report_`)
	assert.Equal(t, "2", w.Header().Get("X-Total-Count"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3, "Заголовок и строки по фильтру")
	assert.Equal(t, strings.Join(services.CSVHeader, ","), strings.TrimSpace(lines[0]))
}

func TestExportTransactions_BadDate(t *testing.T) {
	s := newServer(t)
	admin := testhelpers.CreateAdmin(t, s.db)

	w := s.do(t, http.MethodGet, "/api/v1/admin/transactions/export?from=14-10-2026", testhelpers.Token(t, admin), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Header().Get("Content-Disposition"), "attachment", "Ошибка не отдается файлом")
}
