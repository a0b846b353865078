package product

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/products", h.createProducts)
	app.Get("/products", h.getProducts)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Quantity < 0 {
		errs["quantity"] = "quantity must be >= 0"
	}
	if p.Category == "" {
		errs["category"] = "category is required"
	}
	return errs
}

func (h *Handler) createProducts(c *fiber.Ctx) error {
	var products []Product
	if err := c.BodyParser(&products); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "at least one product is required"})
	}

	// validate every item and return all validation errors together
	errs := map[string]string{}
	for i := range products {
		for field, reason := range validateProductPayload(&products[i]) {
			errs[fmt.Sprintf("products[%d].%s", i, field)] = reason
		}
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	created, err := h.service.CreateProducts(c.Context(), products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "limit and offset must be >= 0"})
	}

	products, err := h.service.List(c.Context(), int64(limit), int64(offset))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}
