package handlers

import (
	"log/slog"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"campus-faq-bot/models"
	"campus-faq-bot/services"
)

const chatLogPrefix = "chat"

// ChatHandler answers one chat turn: resolve language, match the FAQ table,
// merge with stored session context, pick the localized answer or the
// escalation text, persist the new context, and append a masked log line.
type ChatHandler struct {
	matcher *services.FaqMatcher
	store   services.SessionStore
	sink    services.LogSink

	// threshold is the minimum this-turn matcher confidence; below it the
	// turn escalates to a human. trustContext selects the continuity
	// variant: a turn that matched nothing itself but inherited intent and
	// topic from the session is answered instead of escalated. The default
	// (false) discards inherited context on such turns because fresh
	// confidence is zero.
	threshold    float64
	trustContext bool
}

func NewChatHandler(matcher *services.FaqMatcher, store services.SessionStore, sink services.LogSink, threshold float64, trustContext bool) *ChatHandler {
	return &ChatHandler{
		matcher:      matcher,
		store:        store,
		sink:         sink,
		threshold:    threshold,
		trustContext: trustContext,
	}
}

// Handle implements POST /api/chat.
func (h *ChatHandler) Handle(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Validation failures produce no log line and no state change.
	if req.SessionID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionId and message are required",
		})
	}

	lang := req.Language
	if lang == "" || !models.IsValidLanguage(lang) {
		lang = services.DetectLanguage(req.Message)
	}

	match := h.matcher.Match(req.Message)
	prior, _ := h.store.Get(req.SessionID)

	// A turn with no fresh match inherits the previous turn's context, so a
	// short follow-up can stay on topic.
	usedIntent := match.Intent
	usedTopic := match.Topic
	if usedIntent == "" {
		usedIntent = prior.LastIntent
	}
	if usedTopic == "" {
		usedTopic = prior.LastTopic
	}

	lowConfidence := match.Confidence < h.threshold
	if h.trustContext && match.Intent == "" && prior.LastIntent != "" && prior.LastTopic != "" {
		lowConfidence = false
	}

	fallback := usedIntent == "" || usedTopic == "" || lowConfidence

	var answer string
	if !fallback {
		entry, ok := h.matcher.EntryByIntent(usedIntent)
		if !ok {
			// Stale intent inherited from a session that outlived the table.
			fallback = true
		} else {
			answer = entry.Answer(lang)
		}
	}
	if fallback {
		usedIntent = ""
		usedTopic = ""
		answer = services.FallbackAnswer(lang)
	}

	// Context is overwritten every turn; an escalated turn resets it.
	h.store.Set(req.SessionID, models.SessionContext{
		LastIntent: usedIntent,
		LastTopic:  usedTopic,
	})

	resp := models.ChatResponse{
		SessionID:       req.SessionID,
		Answer:          answer,
		Language:        lang,
		Intent:          usedIntent,
		Confidence:      round2(match.Confidence),
		FallbackToHuman: fallback,
		ContextTopic:    usedTopic,
	}

	services.ChatRequests.WithLabelValues(string(lang)).Inc()
	if fallback {
		services.ChatFallbacks.Inc()
	}

	services.LogBestEffort(h.sink, chatLogPrefix, models.ChatLogRecord{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		SessionID:  req.SessionID,
		Language:   lang,
		Question:   services.MaskPII(req.Message),
		Answer:     services.MaskPII(answer),
		Intent:     usedIntent,
		Topic:      usedTopic,
		Confidence: resp.Confidence,
		Handoff:    fallback,
	})

	slog.Info("Chat turn",
		"sessionId", req.SessionID,
		"language", lang,
		"intent", usedIntent,
		"confidence", resp.Confidence,
		"fallback", fallback,
	)

	return c.JSON(resp)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
