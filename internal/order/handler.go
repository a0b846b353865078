package order

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/harshit1314/ecommerce-api/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/orders", h.createOrder)
	app.Get("/orders/:user_id", h.getOrders)
	app.Get("/users/:user_id/order-summary", h.getSummary)
}

type createOrderRequest struct {
	UserID string      `json:"user_id"`
	Items  []ItemInput `json:"items"`
}

func validateOrderPayload(payload *createOrderRequest) map[string]string {
	errs := map[string]string{}
	if payload.UserID == "" {
		errs["user_id"] = "user_id is required"
	}
	if len(payload.Items) == 0 {
		errs["items"] = "at least one item is required"
	}
	for i, item := range payload.Items {
		if item.ProductName == "" {
			errs[fmt.Sprintf("items[%d].product_name", i)] = "product_name is required"
		}
		if item.Quantity <= 0 {
			errs[fmt.Sprintf("items[%d].quantity", i)] = "quantity must be positive"
		}
	}
	return errs
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateOrderPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(c.Context(), payload.UserID, payload.Items)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrMissingUser), errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "limit and offset must be >= 0"})
	}

	orders, err := h.service.ListByUser(c.Context(), userID, int64(limit), int64(offset))
	if err != nil {
		if errors.Is(err, ErrNoOrders) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no orders found for user " + userID})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	summary, err := h.service.SummaryByUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNoOrders) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no orders found for user " + userID})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(summary)
}
