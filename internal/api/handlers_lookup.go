package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LookupProducts proxies a best-effort storefront search. Scrape failures are
// expected; the client falls back to manual price capture using searchUrl.
func (handler *Handler) LookupProducts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return apiError(c, fiber.StatusBadRequest, "missing query parameter q")
	}
	searchURL := handler.lookupClient.SearchURL(query)
	products, err := handler.lookupClient.SearchProducts(c.UserContext(), query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":     "lookup failed, use manual capture",
			"searchUrl": searchURL,
		})
	}
	return c.JSON(fiber.Map{
		"products":  products,
		"searchUrl": searchURL,
	})
}
