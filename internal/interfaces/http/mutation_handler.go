package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/domain"
)

// MutationHandler maneja las dos operaciones de escritura: ajuste de
// demanda y traslado de stock. La coerción de tipos ocurre aquí, en la
// frontera: el caso de uso solo recibe enteros ya validados.
type MutationHandler struct {
	uc *usecase.MutationUseCase
}

// NewMutationHandler construye el handler.
func NewMutationHandler(uc *usecase.MutationUseCase) *MutationHandler {
	return &MutationHandler{uc: uc}
}

// UpdateDemand godoc
// @Summary      Ajustar la demanda de un producto
// @Tags         mutations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda (entero no negativo)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [post]
func (h *MutationHandler) UpdateDemand(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Demand == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demand es requerido"})
	}
	out, err := h.uc.UpdateDemand(id, *in.Demand)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// TransferStock godoc
// @Summary      Mover stock de un producto entre bodegas
// @Tags         mutations
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.TransferStockRequest  true  "from, to y qty (entero positivo)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transfer [post]
func (h *MutationHandler) TransferStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.From == "" || in.To == "" || in.Qty == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from, to y qty son requeridos"})
	}
	out, err := h.uc.TransferStock(id, in.From, in.To, *in.Qty)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(out)
}

// mutationError traduce los errores de dominio a códigos HTTP.
func mutationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "el producto no está en la bodega origen"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
