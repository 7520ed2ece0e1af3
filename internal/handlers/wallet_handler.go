package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// WalletHandler - кошелек таланта и админская панель финансов
type WalletHandler struct {
	*BaseHandler
	walletService services.WalletService
}

func NewWalletHandler(base *BaseHandler, walletService services.WalletService) *WalletHandler {
	return &WalletHandler{
		BaseHandler:   base,
		walletService: walletService,
	}
}

func (h *WalletHandler) RegisterRoutes(r *gin.RouterGroup) {
	wallet := r.Group("/wallet")
	wallet.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermPayoutsRequest))
	{
		wallet.GET("", h.GetWallet)
		wallet.POST("/payouts", h.RequestPayout)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("/payouts", h.ListPayouts)
		admin.POST("/payouts/:id/approve", h.ApprovePayout)
		admin.POST("/payouts/:id/reject", h.RejectPayout)

		admin.GET("/transactions", h.ListTransactions)
		admin.POST("/transactions", h.RecordTransaction)
		admin.GET("/transactions/export", h.ExportTransactions)
		admin.GET("/finance/stats", h.GetStats)
	}
}

// --- Talent ---

func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	wallet, err := h.walletService.GetWallet(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

func (h *WalletHandler) RequestPayout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PayoutCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payout, err := h.walletService.RequestPayout(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Payout request submitted", payout)
}

// --- Admin: payouts ---

func (h *WalletHandler) ListPayouts(c *gin.Context) {
	var query dto.PayoutListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.walletService.ListPayouts(h.GetDB(c), query.Status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApprovePayout - тело необязательно: transfer_reference можно не указывать
func (h *WalletHandler) ApprovePayout(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PayoutApproveRequest
	if c.Request.ContentLength != 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payout, err := h.walletService.ApprovePayout(h.GetDB(c), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Payout approved", payout)
}

func (h *WalletHandler) RejectPayout(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReasonRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payout, err := h.walletService.RejectPayout(h.GetDB(c), adminID, c.Param("id"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Payout rejected and amount refunded", payout)
}

// --- Admin: ledger ---

func (h *WalletHandler) ListTransactions(c *gin.Context) {
	var query dto.TransactionQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.walletService.ListTransactions(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *WalletHandler) RecordTransaction(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RecordTransactionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tx, err := h.walletService.RecordTransaction(h.GetDB(c), adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Transaction recorded", tx)
}

// ExportTransactions отдает CSV файлом. Отчет собирается в буфер целиком,
// чтобы ошибка посреди выгрузки ушла обычным JSON-ответом.
func (h *WalletHandler) ExportTransactions(c *gin.Context) {
	var query dto.TransactionQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	var buf bytes.Buffer
	rows, err := h.walletService.ExportCSV(h.GetDB(c), &query, &buf)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "financial report exported", "rows", rows)

	c.Header("Content-Disposition", `attachment; filename="`+services.ReportFilename(time.Now())+`"`)
	c.Header("X-Total-Count", strconv.Itoa(rows))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *WalletHandler) GetStats(c *gin.Context) {
	stats, err := h.walletService.GetStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
