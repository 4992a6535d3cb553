package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/marquee-dev/marquee/internal/service/domain"
)

type UserHandler struct {
	users  domain.UserService
	logger *zap.Logger
}

func NewUserHandler(users domain.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email"`
	Password      string `json:"password" binding:"required"`
	IsStaffMember bool   `json:"is_staff_member"`
}

func (h *UserHandler) HandleLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	user, token, err := h.users.Login(req.Username, req.Password)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"is_staff_member": user.IsStaffMember,
		"username":        user.Username,
		"token":           token,
	})
}

func (h *UserHandler) HandleSignup(ctx *gin.Context) {
	var req CreateUserRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	user, token, err := h.users.Signup(req.Username, req.Email, req.Password, req.IsStaffMember)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"is_staff_member": user.IsStaffMember,
		"username":        user.Username,
		"token":           token,
	})
}

func (h *UserHandler) HandleCreate(ctx *gin.Context) {
	var req CreateUserRequest
	if err := bindStrict(ctx, &req); err != nil {
		respondBadRequest(ctx)
		return
	}

	user, err := h.users.CreateUser(req.Username, req.Email, req.Password, req.IsStaffMember)
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) HandleList(ctx *gin.Context) {
	users, err := h.users.GetAllUsers()
	if err != nil {
		respondError(ctx, h.logger, err)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	ctx.JSON(http.StatusOK, out)
}
