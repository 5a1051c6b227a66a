package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/services"
)

type InterviewHandler struct {
	listingService   services.ListingService
	generatorService services.GeneratorService
}

func NewInterviewHandler(
	listingService services.ListingService,
	generatorService services.GeneratorService,
) *InterviewHandler {
	return &InterviewHandler{
		listingService:   listingService,
		generatorService: generatorService,
	}
}

// HandleListLatest handles GET /interviews — the recommendation-ranked
// dashboard page. Read failures surface as an empty page by design.
func (h *InterviewHandler) HandleListLatest(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	limit := c.QueryInt("limit")

	interviews := h.listingService.ListLatest(c.Context(), userID, limit)

	return c.JSON(fiber.Map{
		"interviews": interviews,
	})
}

// HandleListMine handles GET /interviews/mine
func (h *InterviewHandler) HandleListMine(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	interviews := h.listingService.ListByUser(c.Context(), userID)

	return c.JSON(fiber.Map{
		"interviews": interviews,
	})
}

// HandleGetByID handles GET /interviews/:id
func (h *InterviewHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	interview, err := h.listingService.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load interview",
		})
	}

	if interview == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Interview not found",
		})
	}

	return c.JSON(interview)
}

// HandleGenerate handles POST /interviews/generate
func (h *InterviewHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role is required",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	interview, err := h.generatorService.GenerateInterview(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate interview",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.GenerateInterviewResponse{
		InterviewID: interview.ID,
		Questions:   interview.Questions,
	})
}
