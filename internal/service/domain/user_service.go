package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/auth"
	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type UserService interface {
	// Login verifies credentials and mints an access token.
	Login(username, password string) (*model.User, string, error)
	// CreateUser registers a user on behalf of staff. is_staff_member is
	// caller-controlled; the admin flags stay false.
	CreateUser(username, email, password string, isStaffMember bool) (*model.User, error)
	// Signup is self-registration. is_staff_member is mirrored onto the
	// admin flag here, unlike CreateUser.
	Signup(username, email, password string, isStaffMember bool) (*model.User, string, error)
	GetAllUsers() ([]model.User, error)
}

type userService struct {
	repo       repository.UserRepo
	tokens     *auth.TokenManager
	bcryptCost int
}

var _ UserService = (*userService)(nil)

func NewUserService(userRepo repository.UserRepo, tokens *auth.TokenManager, bcryptCost int) *userService {
	return &userService{
		repo:       userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *userService) Login(username, password string) (*model.User, string, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", service.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return nil, "", service.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.ID, user.Username, user.IsStaff, user.IsStaffMember, user.IsSuperuser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) CreateUser(username, email, password string, isStaffMember bool) (*model.User, error) {
	user, err := s.register(username, email, password, isStaffMember, false)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Signup(username, email, password string, isStaffMember bool) (*model.User, string, error) {
	user, err := s.register(username, email, password, isStaffMember, isStaffMember)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.CreateToken(user.ID, user.Username, user.IsStaff, user.IsStaffMember, user.IsSuperuser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) register(username, email, password string, isStaffMember, isStaff bool) (*model.User, error) {
	if username == "" || password == "" {
		return nil, service.ErrValidation
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return nil, service.ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsStaffMember:  isStaffMember,
		IsStaff:        isStaff,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.repo.ListAll()
}
