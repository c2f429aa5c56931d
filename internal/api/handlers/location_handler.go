package handlers

import (
	"errors"

	"matcha-budget/internal/dto"
	"matcha-budget/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LocationHandler struct {
	locationService *service.LocationService
	logger          *zap.Logger
}

func NewLocationHandler(locationService *service.LocationService, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		logger:          logger,
	}
}

// CreateLocation godoc
// @Summary Create a cafe location
// @Description Create a cafe-location record; the server mints a UUID when the body omits one
// @Tags locations
// @Accept json
// @Produce json
// @Param request body dto.LocationCreateRequest true "Location to create"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var req dto.LocationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.locationService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create location", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create location",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListLocations godoc
// @Summary List cafe locations
// @Description List locations matching every supplied filter, in insertion order
// @Tags locations
// @Produce json
// @Param name query string false "Filter by name of cafe"
// @Param street query string false "Filter by street"
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state/region"
// @Param postal_code query string false "Filter by postal code"
// @Param country query string false "Filter by country"
// @Param best_drink query string false "Filter by best drink"
// @Success 200 {array} dto.LocationResponse
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	filter := dto.LocationFilter{
		Name:       queryString(c, "name"),
		Street:     queryString(c, "street"),
		City:       queryString(c, "city"),
		State:      queryString(c, "state"),
		PostalCode: queryString(c, "postal_code"),
		Country:    queryString(c, "country"),
		BestDrink:  queryString(c, "best_drink"),
	}

	resp, err := h.locationService.List(c.Context(), &filter)
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list locations",
		})
	}

	return c.JSON(resp)
}

// GetLocation godoc
// @Summary Get a cafe location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid location ID",
		})
	}

	resp, err := h.locationService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Location not found",
			})
		}
		h.logger.Error("Failed to get location", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get location",
		})
	}

	return c.JSON(resp)
}

// UpdateLocation godoc
// @Summary Update a cafe location
// @Description Merge the supplied fields over the stored record; omitted fields are left untouched
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body dto.LocationUpdateRequest true "Fields to change"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [patch]
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid location ID",
		})
	}

	var req dto.LocationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.locationService.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Location not found",
			})
		}
		h.logger.Error("Failed to update location", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update location",
		})
	}

	return c.JSON(resp)
}

// DeleteLocation godoc
// @Summary Delete a cafe location
// @Description Remove the record permanently; deleting the same ID twice yields 404 the second time
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid location ID",
		})
	}

	if err := h.locationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Location not found",
			})
		}
		h.logger.Error("Failed to delete location", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete location",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
