package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/model"
	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type MovieHandler struct {
	movies domain.MovieService
	logger *zap.Logger
}

func NewMovieHandler(movies domain.MovieService, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		logger: logger,
	}
}

type MovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	PosterURL   string `json:"poster_url"`
}

func (h *MovieHandler) HandleList(ctx *gin.Context) {
	movies, err := h.movies.GetAllMovies()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	out := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, toMovieResponse(&movies[i]))
	}
	ctx.JSON(http.StatusOK, out)
}

func (h *MovieHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	movie, err := h.movies.GetMovieByID(id)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toMovieResponse(movie))
}

func (h *MovieHandler) HandleCreate(ctx *gin.Context) {
	var req MovieRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	movie := model.Movie{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		PosterURL:   req.PosterURL,
	}
	if err := h.movies.CreateMovie(&movie); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, toMovieResponse(&movie))
}

func (h *MovieHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req MovieRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	movie := model.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		PosterURL:   req.PosterURL,
	}
	if err := h.movies.UpdateMovie(&movie); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toMovieResponse(&movie))
}

func (h *MovieHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	if err := h.movies.DeleteMovie(id); err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
