package handlers

import (
	"io"
	"strconv"

	"gfocus/internal/models"
	"gfocus/internal/services/telemetry"
	"gfocus/internal/utils/response"
	"gfocus/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TelemetryHandler struct {
	registry *telemetry.Service
}

func NewTelemetryHandler(registry *telemetry.Service) *TelemetryHandler {
	return &TelemetryHandler{registry: registry}
}

// UpdateStatus accepts the capture client's periodic multipart report.
func (h *TelemetryHandler) UpdateStatus(c *fiber.Ctx) error {
	code := c.FormValue("code")
	if code == "" {
		return response.BadRequest(c, "Missing code")
	}

	sessionID, _ := strconv.ParseInt(c.FormValue("session_id", "0"), 10, 64)
	elapsed, _ := strconv.Atoi(c.FormValue("elapsed_seconds", "0"))

	status := models.DeviceStatus{
		IsDistracted:   validation.BoolToken(c.FormValue("is_distracted")),
		Reason:         c.FormValue("reason", "Focusing"),
		Timestamp:      c.FormValue("timestamp"),
		SessionID:      sessionID,
		ElapsedSeconds: elapsed,
	}

	var proof []byte
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err == nil {
			proof, _ = io.ReadAll(f)
			f.Close()
		}
	}

	if err := h.registry.UpdateStatus(c.Context(), code, status, proof); err != nil {
		return response.ServerError(c, "Failed to store status")
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// GetStatus returns the last-known state for a pairing code; unknown
// codes read as offline.
func (h *TelemetryHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.registry.GetStatus(c.Context(), c.Params("code"))
	if err != nil {
		return response.ServerError(c, "Failed to read status")
	}
	return c.JSON(status)
}

// GetProof serves the latest proof image for a pairing code.
func (h *TelemetryHandler) GetProof(c *fiber.Ctx) error {
	data, found, err := h.registry.GetProof(c.Context(), c.Params("code"))
	if err != nil {
		return response.ServerError(c, "Failed to read proof")
	}
	if !found {
		return response.NotFound(c, "Not Found")
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}
