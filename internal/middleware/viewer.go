package middleware

import (
	"gamechanger/internal/models"

	"github.com/gofiber/fiber/v2"
)

// IdentitySource reports the identity currently signed in, if any.
type IdentitySource interface {
	CurrentIdentity() (models.Identity, bool)
}

// Viewer stores the signed-in identity's id and handle in Fiber locals
// ("viewerID", "viewerHandle"). Anonymous requests pass through untouched.
func Viewer(src IdentitySource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity, ok := src.CurrentIdentity(); ok {
			c.Locals("viewerID", identity.ID)
			c.Locals("viewerHandle", identity.Handle())
			c.SetUserContext(WithViewerID(c.UserContext(), identity.ID))
		}
		return c.Next()
	}
}

// ViewerHandle returns the handle stored by Viewer, or "" for anonymous requests.
func ViewerHandle(c *fiber.Ctx) string {
	handle, _ := c.Locals("viewerHandle").(string)
	return handle
}
