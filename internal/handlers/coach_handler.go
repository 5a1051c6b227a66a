package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
	"github.com/tarun-1313/PrepInterview/internal/services"
)

type CoachHandler struct {
	coachService services.CoachService
	userRepo     repositories.UserRepository
}

func NewCoachHandler(coachService services.CoachService, userRepo repositories.UserRepository) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		userRepo:     userRepo,
	}
}

// HandleChat handles POST /prep-coach. Missing credential and upstream
// failure both still answer 200 with a degraded reply — errors are absorbed
// into the reply payload by design.
func (h *CoachHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	var profile *models.UserProfile
	if req.UserID != "" {
		if found, err := h.userRepo.FindByID(c.Context(), req.UserID); err == nil {
			profile = found
		}
	}

	reply := h.coachService.Respond(c.Context(), profile, req.Messages)

	return c.JSON(models.ChatResponse{Reply: reply})
}
