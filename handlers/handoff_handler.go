package handlers

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-faq-bot/models"
	"campus-faq-bot/services"
)

const handoffLogPrefix = "handoff"

// HandoffHandler records a request for human assistance. It is a one-shot
// notification: no session-state interaction, just a masked line on the
// handoff log stream for the support queue to pick up.
type HandoffHandler struct {
	sink services.LogSink
}

func NewHandoffHandler(sink services.LogSink) *HandoffHandler {
	return &HandoffHandler{sink: sink}
}

// Handle implements POST /api/handoff.
func (h *HandoffHandler) Handle(c *fiber.Ctx) error {
	var req models.HandoffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.SessionID == "" || strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId and name are required",
		})
	}

	ticketID := uuid.NewString()

	services.HandoffRequests.Inc()
	services.LogBestEffort(h.sink, handoffLogPrefix, models.HandoffLogRecord{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Type:      "handoff",
		TicketID:  ticketID,
		SessionID: req.SessionID,
		Name:      services.MaskPII(req.Name),
		Email:     services.MaskIfPresent(req.Email, "<email>"),
		Phone:     services.MaskIfPresent(req.Phone, "<phone>"),
		Note:      services.MaskPII(req.Note),
	})

	slog.Info("Handoff requested", "sessionId", req.SessionID, "ticketId", ticketID)

	return c.JSON(models.HandoffResponse{OK: true})
}
