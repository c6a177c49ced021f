package handlers

import (
	"strings"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"farm-advisor/internal/dto"
	"farm-advisor/internal/models"
	"farm-advisor/internal/service"
)

// VoiceHandler covers the voice-recognition bookkeeping and text-to-speech
// endpoints. Recognition itself runs in the browser; the server only tracks
// the listening flag for the status endpoint.
type VoiceHandler struct {
	speech    service.Speech
	listening atomic.Bool
	logger    *zap.Logger
}

func NewVoiceHandler(speech service.Speech, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		speech: speech,
		logger: logger,
	}
}

// Start acknowledges a voice recognition request.
func (h *VoiceHandler) Start(c *fiber.Ctx) error {
	var req dto.VoiceStartRequest
	_ = c.BodyParser(&req)

	language := req.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	h.listening.Store(true)
	h.logger.Info("Voice recognition requested", zap.String("language", language))

	return c.JSON(dto.VoiceStartResponse{
		Status:   "listening_started",
		Method:   h.speech.Method(),
		Language: language,
	})
}

// Stop ends a voice recognition session.
func (h *VoiceHandler) Stop(c *fiber.Ctx) error {
	h.listening.Store(false)
	return c.JSON(fiber.Map{
		"status": "listening_stopped",
	})
}

// Status reports the recognition state.
func (h *VoiceHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.VoiceStatusResponse{
		IsListening:     h.listening.Load(),
		SpeechAvailable: h.speech.Available(),
		Method:          h.speech.Method(),
	})
}

// Speak converts text to speech through the configured capability.
func (h *VoiceHandler) Speak(c *fiber.Ctx) error {
	var req dto.SpeakRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No text provided",
		})
	}

	language := req.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	if err := h.speech.Speak(c.Context(), text, language); err != nil {
		h.logger.Error("Failed to convert text to speech", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to convert text to speech",
		})
	}

	return c.JSON(dto.SpeakResponse{
		Status: "speech_completed",
		Method: h.speech.Method(),
	})
}
