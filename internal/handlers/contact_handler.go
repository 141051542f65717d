package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"jerseystore/internal/models"
	"jerseystore/internal/services"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleContactForm)
}

// HandleContactForm sends the admin alert and the submitter
// acknowledgement. The request fails only when both deliveries fail.
func (h *ContactHandler) HandleContactForm(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid contact form",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	adminSent, userSent := h.service.Submit(&req)
	if !adminSent && !userSent {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send both admin and confirmation emails.",
		})
	}
	if !adminSent || !userSent {
		log.Printf("Contact form partially delivered (admin=%v, user=%v)", adminSent, userSent)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you! Your message has been sent.",
	})
}
