package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"farm-advisor/internal/dto"
	"farm-advisor/internal/models"
	"farm-advisor/internal/service"
)

type AdvisorHandler struct {
	advisor *service.AdvisorService
	speech  service.Speech
	logger  *zap.Logger
}

func NewAdvisorHandler(advisor *service.AdvisorService, speech service.Speech, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisor: advisor,
		speech:  speech,
		logger:  logger,
	}
}

// Ask answers a text question in the requested language.
func (h *AdvisorHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No question provided",
		})
	}

	language := req.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	answer := h.advisor.GetAnswer(c.Context(), question, language, models.InputMethodText, sessionID(c))

	return c.JSON(dto.AskResponse{
		Question:  question,
		Answer:    answer,
		Language:  language,
		Timestamp: time.Now().Unix(),
	})
}

// Categories lists the available question categories.
func (h *AdvisorHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoriesResponse{
		Categories: h.advisor.GetCategories(),
	})
}

// History returns recent interactions, newest first.
func (h *AdvisorHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	history, err := h.advisor.History(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to fetch history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch history",
		})
	}
	if history == nil {
		history = []*models.Interaction{}
	}

	return c.JSON(dto.HistoryResponse{History: history})
}

// Status reports system health.
func (h *AdvisorHandler) Status(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Status:          "online",
		DatabaseLoaded:  h.advisor.IsLoaded(),
		SpeechAvailable: h.speech.Available(),
		SpeechMethod:    h.speech.Method(),
		Timestamp:       time.Now().Unix(),
	})
}

// sessionID reads the caller-provided session header or mints a new one.
func sessionID(c *fiber.Ctx) string {
	if id := c.Get("X-Session-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}
