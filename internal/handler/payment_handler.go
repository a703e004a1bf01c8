package handler

import (
	"errors"
	"net/http"
	"time"

	"vivah/internal/domain"
	"vivah/internal/logger"
	"vivah/internal/middleware"
	"vivah/internal/models"
	"vivah/internal/repository"
	"vivah/internal/response"
	"vivah/internal/service"
	"vivah/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageHandler struct {
	repo *repository.PackageRepository
}

func NewPackageHandler(repo *repository.PackageRepository) *PackageHandler {
	return &PackageHandler{repo: repo}
}

func (h *PackageHandler) List(c *gin.Context) {
	list, err := h.repo.ListActive()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list packages")
		return
	}
	response.OK(c, http.StatusOK, list)
}

// PaymentHandler runs the purchase flow: open a gateway order, then verify
// the capture signature and activate the package.
type PaymentHandler struct {
	repo     *repository.PaymentRepository
	pkgRepo  *repository.PackageRepository
	limRepo  *repository.LimitationRepository
	provider payment.Provider
	notifier *service.NotificationService
	currency string
}

func NewPaymentHandler(repo *repository.PaymentRepository, pkgRepo *repository.PackageRepository, limRepo *repository.LimitationRepository, provider payment.Provider, notifier *service.NotificationService, currency string) *PaymentHandler {
	if currency == "" {
		currency = "INR"
	}
	return &PaymentHandler{repo: repo, pkgRepo: pkgRepo, limRepo: limRepo, provider: provider, notifier: notifier, currency: currency}
}

// CreateOrder opens a gateway order for the chosen package and records a
// PENDING payment keyed by the gateway order id.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		PackageID uint `json:"package_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	pkg, err := h.pkgRepo.GetByID(req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "package not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load package")
		return
	}
	if !pkg.IsActive {
		response.Error(c, http.StatusUnprocessableEntity, "package is not available")
		return
	}

	receipt := uuid.NewString()
	order, err := h.provider.CreateOrder(c.Request.Context(), payment.OrderRequest{
		AmountCents: pkg.PriceCents,
		Currency:    h.currency,
		Receipt:     receipt,
	})
	if err != nil {
		logger.Error("gateway order failed", "user_id", userID, "package_id", pkg.ID, "err", err)
		response.Error(c, http.StatusBadGateway, "payment gateway unavailable")
		return
	}

	p := &models.Payment{
		UserID:      userID,
		PackageID:   pkg.ID,
		AmountCents: pkg.PriceCents,
		Currency:    h.currency,
		Provider:    "razorpay",
		OrderID:     order.ID,
		Receipt:     receipt,
		Status:      domain.PaymentPending,
	}
	if err := h.repo.Create(p); err != nil {
		logger.Error("payment record failed", "order_id", order.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "failed to record payment")
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"amount_cents": order.Amount,
		"currency":     order.Currency,
		"receipt":      receipt,
		"package":      pkg,
	})
}

// Verify checks the capture signature and, when valid, completes the payment
// and activates the package. Re-verifying a completed payment is a no-op.
func (h *PaymentHandler) Verify(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		OrderID   string `json:"order_id" binding:"required"`
		PaymentID string `json:"payment_id" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	p, err := h.repo.GetByOrderID(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load payment")
		return
	}
	if p.UserID != userID {
		response.Error(c, http.StatusNotFound, "payment not found")
		return
	}
	if p.Status == domain.PaymentCompleted {
		response.OK(c, http.StatusOK, p)
		return
	}

	if !h.provider.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		if err := h.repo.MarkFailed(p); err != nil {
			logger.Warn("mark failed errored", "order_id", req.OrderID, "err", err)
		}
		response.Error(c, http.StatusUnprocessableEntity, "invalid payment signature")
		return
	}

	pkg, err := h.pkgRepo.GetByID(p.PackageID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load package")
		return
	}
	if err := h.repo.Complete(p, req.PaymentID, pkg, h.limRepo, time.Now()); err != nil {
		logger.Error("payment completion failed", "order_id", req.OrderID, "err", err)
		response.Error(c, http.StatusInternalServerError, "failed to complete payment")
		return
	}
	if err := h.notifier.NotifyPaymentConfirmed(userID, pkg.Name, p.AmountCents); err != nil {
		logger.Warn("payment notification failed", "order_id", req.OrderID, "err", err)
	}
	response.OK(c, http.StatusOK, gin.H{
		"payment": p,
		"package": pkg,
	})
}

func (h *PaymentHandler) History(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := pageWindow(c)
	list, err := h.repo.ListByUser(userID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list payments")
		return
	}
	response.OK(c, http.StatusOK, list)
}
