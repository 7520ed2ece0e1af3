package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// PayoutCreateRequest - сумма проверяется сервисом: > 0 и не больше баланса
type PayoutCreateRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bank_name" validate:"required,max=100"`
	AccountNumber string          `json:"account_number" validate:"required,max=30"`
	AccountName   string          `json:"account_name" validate:"required,max=200"`
}

type PayoutApproveRequest struct {
	TransferReference string `json:"transfer_reference" validate:"max=100"`
}

type PayoutListQuery struct {
	Status models.PayoutStatus `form:"status" validate:"omitempty,is-payout-status"`
}

// RecordTransactionRequest - ручная запись в журнал от админа
type RecordTransactionRequest struct {
	UserID      string                   `json:"user_id" validate:"required"`
	Type        models.TransactionType   `json:"type" validate:"required,is-transaction-type"`
	Status      models.TransactionStatus `json:"status" validate:"required,is-transaction-status"`
	Amount      decimal.Decimal          `json:"amount"`
	Description string                   `json:"description" validate:"max=500"`
}

// TransactionQuery - фильтры журнала; from/to в формате 2006-01-02
type TransactionQuery struct {
	Type   models.TransactionType   `form:"type" validate:"omitempty,is-transaction-type"`
	Status models.TransactionStatus `form:"status" validate:"omitempty,is-transaction-status"`
	From   string                   `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string                   `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Search string                   `form:"search"`
}

type WalletResponse struct {
	Balance        decimal.Decimal        `json:"balance"`
	BalanceDisplay string                 `json:"balance_display"`
	Currency       string                 `json:"currency"`
	Transactions   []models.Transaction   `json:"transactions"`
	Payouts        []models.PayoutRequest `json:"payouts"`
}

// FinanceStats - сводка для админской панели финансов
type FinanceStats struct {
	Revenue              decimal.Decimal `json:"revenue"`
	RevenueDisplay       string          `json:"revenue_display"`
	PaidOut              decimal.Decimal `json:"paid_out"`
	PaidOutDisplay       string          `json:"paid_out_display"`
	Deposits             decimal.Decimal `json:"deposits"`
	DepositsDisplay      string          `json:"deposits_display"`
	PendingPayouts       int64           `json:"pending_payouts"`
	PendingAmount        decimal.Decimal `json:"pending_amount"`
	PendingAmountDisplay string          `json:"pending_amount_display"`
}
