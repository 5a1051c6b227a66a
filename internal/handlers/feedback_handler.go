package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/tarun-1313/PrepInterview/internal/models"
	"github.com/tarun-1313/PrepInterview/internal/services"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// HandleCreate handles POST /feedback. Failures are reported through the
// success flag rather than an error status: the caller treats them as
// "feedback unavailable, retry later", and no partial record is written.
func (h *FeedbackHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.FeedbackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewID == "" || req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interviewId and userId are required",
		})
	}

	if len(req.Transcript) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "transcript must not be empty",
		})
	}

	feedbackID := req.FeedbackID
	if feedbackID == "" {
		// Reuse an existing record's id so a second generation for the
		// same pair updates in place instead of minting a duplicate.
		if existing, err := h.feedbackService.GetByInterview(c.Context(), req.InterviewID, req.UserID); err == nil && existing != nil {
			feedbackID = existing.ID
		}
	}

	id, err := h.feedbackService.Generate(c.Context(), req.InterviewID, req.UserID, req.Transcript, feedbackID)
	if err != nil {
		log.Printf("❌ Failed to generate feedback for interview %s: %v\n", req.InterviewID, err)
		return c.JSON(models.FeedbackResponse{Success: false})
	}

	return c.JSON(models.FeedbackResponse{Success: true, FeedbackID: id})
}

// HandleGet handles GET /feedback?interviewId=&userId=
func (h *FeedbackHandler) HandleGet(c *fiber.Ctx) error {
	interviewID := c.Query("interviewId")
	userID := c.Query("userId")

	if interviewID == "" || userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interviewId and userId are required",
		})
	}

	feedback, err := h.feedbackService.GetByInterview(c.Context(), interviewID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load feedback",
		})
	}

	if feedback == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	return c.JSON(feedback)
}
