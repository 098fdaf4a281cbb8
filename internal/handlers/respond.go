package handlers

import (
	"fmt"

	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// writeResult translates a service envelope into an HTTP response:
// failures carry their error messages, 201 carries a Location header,
// 204 has no body.
func writeResult[T any](c *fiber.Ctx, res services.ServiceResult[T]) error {
	if res.IsFailure() {
		return c.Status(res.Status).JSON(fiber.Map{
			"errorMessages": res.ErrorMessages,
		})
	}

	switch res.Status {
	case fiber.StatusCreated:
		c.Set(fiber.HeaderLocation, res.Location)
		return c.Status(fiber.StatusCreated).JSON(res.Data)
	case fiber.StatusNoContent:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		return c.Status(res.Status).JSON(res.Data)
	}
}

// validationMessages flattens validator errors into human-readable
// messages for the failure envelope.
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages,
			fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return messages
}

// badRequest writes a 400 failure envelope with the given messages.
func badRequest(c *fiber.Ctx, messages ...string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errorMessages": messages,
	})
}
