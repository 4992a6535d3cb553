package domain

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
)

// passthroughTx satisfies TxRunner without a database; the fakes ignore the
// nil tx handed to WithTx.
type passthroughTx struct{}

func (passthroughTx) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeMovieRepo struct {
	movies map[uint]model.Movie
	nextID uint
}

var _ repository.MovieRepo = (*fakeMovieRepo)(nil)

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uint]model.Movie), nextID: 1}
}

func (r *fakeMovieRepo) WithTx(*gorm.DB) repository.MovieRepo { return r }

func (r *fakeMovieRepo) Create(m *model.Movie) error {
	m.ID = r.nextID
	r.nextID++
	r.movies[m.ID] = *m
	return nil
}

func (r *fakeMovieRepo) Save(m *model.Movie) error {
	r.movies[m.ID] = *m
	return nil
}

func (r *fakeMovieRepo) GetByID(id uint) (*model.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *fakeMovieRepo) ListAll() ([]model.Movie, error) {
	out := make([]model.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovieRepo) Delete(id uint) error {
	delete(r.movies, id)
	return nil
}

type fakeTheaterRepo struct {
	theaters map[uint]model.Theater
	nextID   uint
}

var _ repository.TheaterRepo = (*fakeTheaterRepo)(nil)

func newFakeTheaterRepo() *fakeTheaterRepo {
	return &fakeTheaterRepo{theaters: make(map[uint]model.Theater), nextID: 1}
}

func (r *fakeTheaterRepo) WithTx(*gorm.DB) repository.TheaterRepo { return r }

func (r *fakeTheaterRepo) Create(th *model.Theater) error {
	th.ID = r.nextID
	r.nextID++
	r.theaters[th.ID] = *th
	return nil
}

func (r *fakeTheaterRepo) Save(th *model.Theater) error {
	r.theaters[th.ID] = *th
	return nil
}

func (r *fakeTheaterRepo) GetByID(id uint) (*model.Theater, error) {
	th, ok := r.theaters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &th, nil
}

func (r *fakeTheaterRepo) ListAll() ([]model.Theater, error) {
	out := make([]model.Theater, 0, len(r.theaters))
	for _, th := range r.theaters {
		out = append(out, th)
	}
	return out, nil
}

func (r *fakeTheaterRepo) Delete(id uint) error {
	delete(r.theaters, id)
	return nil
}

type fakeShowingRepo struct {
	showings map[uint]model.Showing
	order    []uint
	nextID   uint
	deletes  *[]string // shared op log, for asserting purge order
}

var _ repository.ShowingRepo = (*fakeShowingRepo)(nil)

func newFakeShowingRepo() *fakeShowingRepo {
	return &fakeShowingRepo{showings: make(map[uint]model.Showing), nextID: 1}
}

func (r *fakeShowingRepo) WithTx(*gorm.DB) repository.ShowingRepo { return r }

func (r *fakeShowingRepo) Create(s *model.Showing) error {
	s.ID = r.nextID
	r.nextID++
	r.showings[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeShowingRepo) Save(s *model.Showing) error {
	if _, ok := r.showings[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.showings[s.ID] = *s
	return nil
}

func (r *fakeShowingRepo) GetByID(id uint) (*model.Showing, error) {
	s, ok := r.showings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeShowingRepo) GetByIDForUpdate(id uint) (*model.Showing, error) {
	return r.GetByID(id)
}

func (r *fakeShowingRepo) ListAll() ([]model.Showing, error) {
	out := make([]model.Showing, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.showings[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShowingRepo) Delete(id uint) error {
	delete(r.showings, id)
	return nil
}

func (r *fakeShowingRepo) DeleteAll() (int64, error) {
	n := int64(len(r.showings))
	r.showings = make(map[uint]model.Showing)
	r.order = nil
	if r.deletes != nil {
		*r.deletes = append(*r.deletes, "showings")
	}
	return n, nil
}

type fakeBookingRepo struct {
	bookings map[uint]model.Booking
	nextID   uint
	showings *fakeShowingRepo
	deletes  *[]string
}

var _ repository.BookingRepo = (*fakeBookingRepo)(nil)

func newFakeBookingRepo(showings *fakeShowingRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uint]model.Booking),
		nextID:   1,
		showings: showings,
	}
}

func (r *fakeBookingRepo) WithTx(*gorm.DB) repository.BookingRepo { return r }

func (r *fakeBookingRepo) Create(b *model.Booking) error {
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(id uint) (*model.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if s, err := r.showings.GetByID(b.ShowingID); err == nil {
		b.Showing = *s
	}
	return &b, nil
}

func (r *fakeBookingRepo) GetByUserID(userID uint) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	// newest first; fake IDs are monotonic so reverse id order works
	for id := r.nextID; id > 0; id-- {
		b, ok := r.bookings[id]
		if !ok || b.UserID != userID {
			continue
		}
		if s, err := r.showings.GetByID(b.ShowingID); err == nil {
			b.Showing = *s
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) SumSeatsByShowingID(showingID uint) (int, error) {
	total := 0
	for _, b := range r.bookings {
		if b.ShowingID == showingID {
			total += b.Seats
		}
	}
	return total, nil
}

func (r *fakeBookingRepo) DeleteAll() (int64, error) {
	n := int64(len(r.bookings))
	r.bookings = make(map[uint]model.Booking)
	if r.deletes != nil {
		*r.deletes = append(*r.deletes, "bookings")
	}
	return n, nil
}

type fakeUserRepo struct {
	users  map[uint]model.User
	nextID uint
}

var _ repository.UserRepo = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]model.User), nextID: 1}
}

func (r *fakeUserRepo) WithTx(*gorm.DB) repository.UserRepo { return r }

func (r *fakeUserRepo) Create(u *model.User) error {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ListAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
