package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/model"
	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type TheaterHandler struct {
	theaters domain.TheaterService
	logger   *zap.Logger
}

func NewTheaterHandler(theaters domain.TheaterService, logger *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		theaters: theaters,
		logger:   logger,
	}
}

type TheaterRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

func (h *TheaterHandler) HandleList(ctx *gin.Context) {
	theaters, err := h.theaters.GetAllTheaters()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	out := make([]TheaterResponse, 0, len(theaters))
	for i := range theaters {
		out = append(out, toTheaterResponse(&theaters[i]))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *TheaterHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	theater, err := h.theaters.GetTheaterByID(id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toTheaterResponse(theater))
}

func (h *TheaterHandler) HandleCreate(ctx *gin.Context) {
	var req TheaterRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	theater := model.Theater{
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := h.theaters.CreateTheater(&theater); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, toTheaterResponse(&theater))
}

func (h *TheaterHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req TheaterRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	theater := model.Theater{
		ID:       id,
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := h.theaters.UpdateTheater(&theater); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toTheaterResponse(&theater))
}

func (h *TheaterHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := h.theaters.DeleteTheater(id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
