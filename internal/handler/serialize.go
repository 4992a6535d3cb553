package handler

import (
	"strconv"
	"time"

	"github.com/marquee-dev/marquee/internal/model"
)

// Display fallbacks for broken references.
const (
	unknownMovie   = "Unknown Movie"
	unknownTheater = "Unknown Theater"
	unknownField   = "Unknown"
)

const detailTimeLayout = "2006-01-02 15:04"

type MovieResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	PosterURL   string `json:"poster_url"`
}

type TheaterResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type ShowingResponse struct {
	ID          uint       `json:"id"`
	Movie       uint       `json:"movie"`
	Theater     uint       `json:"theater"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Price       string     `json:"price"`
	MovieTitle  string     `json:"movie_title"`
	TheaterName string     `json:"theater_name"`
}

type SnackResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             string `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
}

type UserResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	IsStaffMember bool   `json:"is_staff_member"`
	IsStaff       bool   `json:"is_staff"`
	IsSuperuser   bool   `json:"is_superuser"`
}

// ShowingDetails is the denormalized block embedded in booking responses.
// Unlike ShowingResponse it formats timestamps for display and carries the
// price as a float, which clients depend on.
type ShowingDetails struct {
	MovieTitle  string  `json:"movie_title"`
	TheaterName string  `json:"theater_name"`
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Price       float64 `json:"price"`
}

type BookingResponse struct {
	ID             uint           `json:"id"`
	Seats          int            `json:"seats"`
	Showing        uint           `json:"showing"`
	ShowingDetails ShowingDetails `json:"showing_details"`
	CreatedAt      time.Time      `json:"created_at"`
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func toMovieResponse(m *model.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		PosterURL:   m.PosterURL,
	}
}

func toTheaterResponse(t *model.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       t.ID,
		Name:     t.Name,
		Capacity: t.Capacity,
	}
}

func toShowingResponse(s *model.Showing) ShowingResponse {
	resp := ShowingResponse{
		ID:          s.ID,
		Movie:       s.MovieID,
		Theater:     s.TheaterID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Price:       formatPrice(s.Price),
		MovieTitle:  unknownMovie,
		TheaterName: unknownTheater,
	}
	if s.Movie.ID != 0 {
		resp.MovieTitle = s.Movie.Title
	}
	if s.Theater.ID != 0 {
		resp.TheaterName = s.Theater.Name
	}
	return resp
}

func toShowingResponses(showings []model.Showing) []ShowingResponse {
	out := make([]ShowingResponse, 0, len(showings))
	for i := range showings {
		out = append(out, toShowingResponse(&showings[i]))
	}
	return out
}

func toSnackResponse(s *model.SnackItem) SnackResponse {
	return SnackResponse{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		Price:             formatPrice(s.Price),
		QuantityAvailable: s.QuantityAvailable,
	}
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		IsStaffMember: u.IsStaffMember,
		IsStaff:       u.IsStaff,
		IsSuperuser:   u.IsSuperuser,
	}
}

func toBookingResponse(b *model.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		Seats:          b.Seats,
		Showing:        b.ShowingID,
		ShowingDetails: toShowingDetails(&b.Showing),
		CreatedAt:      b.CreatedAt,
	}
}

// toShowingDetails decorates a booking with its showing chain. A broken
// chain yields the fixed placeholder record instead of an error.
func toShowingDetails(s *model.Showing) ShowingDetails {
	if s == nil || s.ID == 0 || s.Movie.ID == 0 || s.Theater.ID == 0 {
		unknown := unknownField
		return ShowingDetails{
			MovieTitle:  unknownField,
			TheaterName: unknownField,
			StartTime:   unknownField,
			EndTime:     &unknown,
			Price:       0.0,
		}
	}

	details := ShowingDetails{
		MovieTitle:  s.Movie.Title,
		TheaterName: s.Theater.Name,
		StartTime:   s.StartTime.Format(detailTimeLayout),
		Price:       s.Price,
	}
	if s.EndTime != nil {
		end := s.EndTime.Format(detailTimeLayout)
		details.EndTime = &end
	}
	return details
}
