package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type ShowingHandler struct {
	showings domain.ShowingService
	logger   *zap.Logger
}

func NewShowingHandler(showings domain.ShowingService, logger *zap.Logger) *ShowingHandler {
	return &ShowingHandler{
		showings: showings,
		logger:   logger,
	}
}

type ShowingRequest struct {
	Movie     uint      `json:"movie" binding:"required"`
	Theater   uint      `json:"theater" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Price     float64   `json:"price" binding:"required,gt=0"`
}

func (h *ShowingHandler) HandleList(ctx *gin.Context) {
	showings, err := h.showings.GetAllShowings()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toShowingResponses(showings))
}

func (h *ShowingHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	showing, err := h.showings.GetShowingByID(id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toShowingResponse(showing))
}

func (h *ShowingHandler) HandleCreate(ctx *gin.Context) {
	var req ShowingRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	showing, err := h.showings.CreateShowing(req.Movie, req.Theater, req.StartTime, req.Price)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, toShowingResponse(showing))
}

func (h *ShowingHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req ShowingRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	showing, err := h.showings.UpdateShowing(id, req.Movie, req.Theater, req.StartTime, req.Price)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toShowingResponse(showing))
}

func (h *ShowingHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := h.showings.DeleteShowing(id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *ShowingHandler) HandleTodayShowings(ctx *gin.Context) {
	showings, err := h.showings.TodayShowings()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toShowingResponses(showings))
}
