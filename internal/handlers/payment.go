package handlers

import (
	"errors"

	domain "gfocus/internal/errors"
	"gfocus/internal/services/license"
	"gfocus/internal/services/note"
	"gfocus/internal/services/reconcile"
	"gfocus/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	reconciler *reconcile.Service
	licenses   *license.Service
}

func NewPaymentHandler(reconciler *reconcile.Service, licenses *license.Service) *PaymentHandler {
	return &PaymentHandler{
		reconciler: reconciler,
		licenses:   licenses,
	}
}

// GenerateTransactionNote hands the frontend a fresh reference code to
// put in the bank-transfer note.
func (h *PaymentHandler) GenerateTransactionNote(c *fiber.Ctx) error {
	plan := c.Query("plan", "PRO")
	return c.JSON(fiber.Map{
		"transaction_note": note.Generate(plan),
	})
}

// ConfirmTransaction records a pending intent once the payer says the
// transfer is on its way.
func (h *PaymentHandler) ConfirmTransaction(c *fiber.Ctx) error {
	var input struct {
		Email           string `json:"email"`
		TransactionNote string `json:"transaction_note"`
		Plan            string `json:"plan"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Email == "" || input.TransactionNote == "" {
		return response.BadRequest(c, "Missing info")
	}
	if input.Plan == "" {
		input.Plan = "PRO"
	}

	_, err := h.reconciler.CreateIntent(c.Context(), input.Email, input.TransactionNote, input.Plan)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIntentExists), errors.Is(err, domain.ErrUnknownPlan):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Failed to store transaction")
		}
	}

	return c.JSON(fiber.Map{"status": "pending"})
}

// CheckPaymentStatus is the polling endpoint: it reconciles the
// reference against the bank feed and reports the outcome.
func (h *PaymentHandler) CheckPaymentStatus(c *fiber.Ctx) error {
	var input struct {
		TransactionNote string `json:"transaction_note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.TransactionNote == "" {
		return response.BadRequest(c, "Missing info")
	}

	res, err := h.reconciler.CheckPayment(c.Context(), input.TransactionNote)
	if err != nil {
		if errors.Is(err, domain.ErrIntentNotFound) {
			return response.NotFound(c, "Transaction not found in system")
		}
		return response.ServerError(c, "Payment check failed")
	}

	switch res.Status {
	case reconcile.StatusSuccess:
		return c.JSON(fiber.Map{
			"status":      "success",
			"license_key": res.LicenseKey,
			"tier":        res.Tier,
		})
	case reconcile.StatusFailed:
		return c.JSON(fiber.Map{
			"status":          "failed",
			"reason":          "Insufficient amount",
			"required_amount": res.RequiredAmount,
			"paid_amount":     res.PaidAmount,
			"license_key":     res.LicenseKey,
			"note":            res.Reference,
		})
	default:
		return c.JSON(fiber.Map{"status": "not_found_yet"})
	}
}

// VerifyLicense is the shared lookup the capture client calls on
// startup.
func (h *PaymentHandler) VerifyLicense(c *fiber.Ctx) error {
	var input struct {
		LicenseKey string `json:"license_key"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	tier, ok := h.licenses.Verify(c.Context(), input.LicenseKey)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"valid": false})
	}
	return c.JSON(fiber.Map{"valid": true, "tier": tier})
}
