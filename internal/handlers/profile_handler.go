package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/repositories"
)

type ProfileHandler struct {
	userRepo repositories.UserRepository
}

func NewProfileHandler(userRepo repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepo: userRepo,
	}
}

// HandleGet handles GET /profile/:id
func (h *ProfileHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")

	profile, err := h.userRepo.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	return c.JSON(profile)
}

// HandleUpdate handles PUT /profile/:id — a blind field-level merge of the
// provided fields only. Last writer wins.
func (h *ProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	updates := buildProfileUpdates(&req)
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No profile fields provided",
		})
	}

	if err := h.userRepo.UpdateProfile(c.Context(), id, updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

func buildProfileUpdates(req *models.UpdateProfileRequest) map[string]any {
	updates := make(map[string]any)

	setString := func(field string, value *string) {
		if value != nil {
			updates[field] = *value
		}
	}

	setString("name", req.Name)
	setString("profileURL", req.ProfileURL)
	setString("phone", req.Phone)
	setString("location", req.Location)
	setString("linkedin", req.Linkedin)
	setString("github", req.Github)
	setString("portfolio", req.Portfolio)
	setString("education", req.Education)
	setString("experience", req.Experience)
	setString("preferredRole", req.PreferredRole)
	setString("interviewLanguage", req.InterviewLanguage)
	setString("theme", req.Theme)

	if req.PreferredInterviewType != nil {
		updates["preferredInterviewType"] = []string(*req.PreferredInterviewType)
	}
	if req.PreferredTechStack != nil {
		updates["preferredTechStack"] = []string(*req.PreferredTechStack)
	}
	if req.EmailNotifications != nil {
		updates["notificationPreferences"] = map[string]any{
			"email": *req.EmailNotifications,
		}
	}

	return updates
}
