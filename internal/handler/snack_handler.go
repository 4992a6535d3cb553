package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/model"
	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type SnackHandler struct {
	snacks domain.SnackService
	logger *zap.Logger
}

func NewSnackHandler(snacks domain.SnackService, logger *zap.Logger) *SnackHandler {
	return &SnackHandler{
		snacks: snacks,
		logger: logger,
	}
}

type SnackRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required,gt=0"`
	QuantityAvailable int     `json:"quantity_available"`
}

func (h *SnackHandler) HandleList(ctx *gin.Context) {
	snacks, err := h.snacks.GetAllSnacks()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	out := make([]SnackResponse, 0, len(snacks))
	for i := range snacks {
		out = append(out, toSnackResponse(&snacks[i]))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *SnackHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	snack, err := h.snacks.GetSnackByID(id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toSnackResponse(snack))
}

func (h *SnackHandler) HandleCreate(ctx *gin.Context) {
	var req SnackRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	snack := model.SnackItem{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	}
	if err := h.snacks.CreateSnack(&snack); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, toSnackResponse(&snack))
}

func (h *SnackHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req SnackRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	snack := model.SnackItem{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	}
	if err := h.snacks.UpdateSnack(&snack); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toSnackResponse(&snack))
}

func (h *SnackHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := h.snacks.DeleteSnack(id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
