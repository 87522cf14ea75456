package server

import (
	"shadow-sync/core/apperror"

	"github.com/gofiber/fiber/v2"
)

// RespondError writes err as {"error": "[Kind] - message"} with the status
// matching its class.
func RespondError(c *fiber.Ctx, err error) error {
	return c.Status(apperror.HTTPStatus(err)).JSON(fiber.Map{"error": apperror.Format(err)})
}
