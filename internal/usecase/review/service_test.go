package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/authz"
	"github.com/udayanalone/BarberConnect/internal/catalog"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeReviewRepo struct {
	nextID uint
	items  map[uint]*models.Review

	// last aggregate written per barber user id
	lastRating map[uint]float64
	lastTotal  map[uint]int64
}

var _ Repository = (*fakeReviewRepo)(nil)

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		items:      make(map[uint]*models.Review),
		lastRating: make(map[uint]float64),
		lastTotal:  make(map[uint]int64),
	}
}

func (r *fakeReviewRepo) Create(_ context.Context, rv *models.Review) error {
	for _, existing := range r.items {
		if existing.AppointmentID == rv.AppointmentID {
			return httperr.ErrBusiness(httperr.CodeDuplicateReview)
		}
	}
	r.nextID++
	rv.ID = r.nextID
	cp := *rv
	r.items[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id uint) (*models.Review, error) {
	rv, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeReviewNotFound)
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeReviewRepo) GetByAppointment(_ context.Context, appointmentID uint) (*models.Review, error) {
	for _, rv := range r.items {
		if rv.AppointmentID == appointmentID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeReviewNotFound)
}

func (r *fakeReviewRepo) Update(_ context.Context, rv *models.Review) error {
	cp := *rv
	r.items[rv.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeReviewRepo) ListByBarber(_ context.Context, barberID uint, page, limit int) ([]models.Review, int64, error) {
	var matched []models.Review
	for _, rv := range r.items {
		if rv.BarberID == barberID {
			matched = append(matched, *rv)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeReviewRepo) RatingStats(_ context.Context, barberID uint) (float64, int64, error) {
	var sum float64
	var count int64
	for _, rv := range r.items {
		if rv.BarberID == barberID {
			sum += float64(rv.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

func (r *fakeReviewRepo) WriteAggregate(_ context.Context, barberID uint, rating float64, total int64) (uint, error) {
	r.lastRating[barberID] = rating
	r.lastTotal[barberID] = total
	return barberID + 100, nil // fake profile id
}

type fakeAppointments struct {
	items map[uint]*models.Appointment
}

var _ domain.Repository = (*fakeAppointments)(nil)

func (r *fakeAppointments) Create(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointments) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeAppointments) Update(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointments) CountActiveAtSlot(context.Context, uint, time.Time, string) (int64, error) {
	return 0, nil
}

func (r *fakeAppointments) List(context.Context, domain.ListQuery) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

type emptyStore struct{}

func (emptyStore) ProfileByID(context.Context, uint) (*models.BarberProfile, error) {
	return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
}

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

// ======================================================
// SETUP
// ======================================================

var customer = authz.Principal{UserID: 5, Role: models.RoleCustomer}

// newHarness seeds one completed appointment per rating slot for customer 5
// with barber 77; appointment ids start at 1.
func newHarness(completed int) (*Service, *fakeReviewRepo, *fakeAppointments) {
	appointments := &fakeAppointments{items: make(map[uint]*models.Appointment)}
	for i := 1; i <= completed; i++ {
		appointments.items[uint(i)] = &models.Appointment{
			ID:         uint(i),
			CustomerID: 5,
			BarberID:   77,
			Status:     "completed",
		}
	}

	repo := newFakeReviewRepo()
	cat := catalog.NewLookup(emptyStore{}, nil, zap.NewNop())
	aggregator := NewAggregator(repo, cat, zap.NewNop())
	svc := NewService(repo, appointments, aggregator, audit.NewDispatcher(nopSink{}, zap.NewNop()), zap.NewNop())

	return svc, repo, appointments
}

func mustReview(t *testing.T, svc *Service, appointmentID uint, rating int) *models.Review {
	t.Helper()

	rv, err := svc.Create(context.Background(), customer, CreateReviewInput{
		AppointmentID: appointmentID,
		Rating:        rating,
	})
	require.NoError(t, err)
	return rv
}

// ======================================================
// TESTS
// ======================================================

func Test_CreateReview(t *testing.T) {
	svc, repo, appointments := newHarness(1)

	rv, err := svc.Create(context.Background(), customer, CreateReviewInput{
		AppointmentID: 1,
		Rating:        5,
		Comment:       "great cut",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), rv.CustomerID)
	assert.Equal(t, uint(77), rv.BarberID)
	assert.Equal(t, 5, rv.Rating)

	ap, err := appointments.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ap.IsRated)

	assert.Equal(t, 5.0, repo.lastRating[77])
	assert.Equal(t, int64(1), repo.lastTotal[77])
}

func Test_CreateReview_AggregateRoundsToOneDecimal(t *testing.T) {
	svc, repo, _ := newHarness(4)

	for i, rating := range []int{5, 5, 4, 3} {
		mustReview(t, svc, uint(i+1), rating)
	}

	// mean 4.25 rounds to 4.3
	assert.Equal(t, 4.3, repo.lastRating[77])
	assert.Equal(t, int64(4), repo.lastTotal[77])
}

func Test_DeleteReview_Recomputes(t *testing.T) {
	svc, repo, _ := newHarness(4)

	var last *models.Review
	for i, rating := range []int{5, 5, 4, 3} {
		last = mustReview(t, svc, uint(i+1), rating)
	}

	require.NoError(t, svc.Delete(context.Background(), customer, last.ID))

	// mean of 5,5,4 is 4.67 -> 4.7
	assert.Equal(t, 4.7, repo.lastRating[77])
	assert.Equal(t, int64(3), repo.lastTotal[77])
}

func Test_DeleteLastReview_ResetsAggregate(t *testing.T) {
	svc, repo, _ := newHarness(1)

	rv := mustReview(t, svc, 1, 4)
	require.NoError(t, svc.Delete(context.Background(), customer, rv.ID))

	assert.Equal(t, 0.0, repo.lastRating[77])
	assert.Equal(t, int64(0), repo.lastTotal[77])
}

func Test_CreateReview_Duplicate(t *testing.T) {
	svc, _, _ := newHarness(1)

	mustReview(t, svc, 1, 5)

	_, err := svc.Create(context.Background(), customer, CreateReviewInput{
		AppointmentID: 1,
		Rating:        1,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateReview))
}

func Test_CreateReview_OnlyCompletedIsRateable(t *testing.T) {
	svc, _, appointments := newHarness(0)

	for id, status := range map[uint]string{
		1: "pending",
		2: "approved",
		3: "cancelled",
		4: "rejected",
	} {
		appointments.items[id] = &models.Appointment{
			ID: id, CustomerID: 5, BarberID: 77, Status: status,
		}

		_, err := svc.Create(context.Background(), customer, CreateReviewInput{
			AppointmentID: id,
			Rating:        5,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotRateable), "status %s", status)
	}
}

func Test_CreateReview_WrongActor(t *testing.T) {
	svc, _, _ := newHarness(1)

	for _, actor := range []authz.Principal{
		{UserID: 6, Role: models.RoleCustomer},
		{UserID: 77, Role: models.RoleBarber},
	} {
		_, err := svc.Create(context.Background(), actor, CreateReviewInput{
			AppointmentID: 1,
			Rating:        5,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden), "actor %d", actor.UserID)
	}
}

func Test_UpdateReview_Recomputes(t *testing.T) {
	svc, repo, _ := newHarness(1)

	rv := mustReview(t, svc, 1, 5)

	newRating := 2
	updated, err := svc.Update(context.Background(), customer, UpdateReviewInput{
		ReviewID: rv.ID,
		Rating:   &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, 2.0, repo.lastRating[77])
}

func Test_UpdateReview_OwnerOnly(t *testing.T) {
	svc, _, _ := newHarness(1)

	rv := mustReview(t, svc, 1, 5)

	newRating := 1
	_, err := svc.Update(context.Background(), authz.Principal{UserID: 6, Role: models.RoleCustomer}, UpdateReviewInput{
		ReviewID: rv.ID,
		Rating:   &newRating,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func Test_DeleteReview_AdminAllowed(t *testing.T) {
	svc, _, _ := newHarness(1)

	rv := mustReview(t, svc, 1, 5)

	err := svc.Delete(context.Background(), authz.Principal{UserID: 1, Role: models.RoleAdmin}, rv.ID)
	assert.NoError(t, err)
}

func Test_DeleteReview_StrangerForbidden(t *testing.T) {
	svc, _, _ := newHarness(1)

	rv := mustReview(t, svc, 1, 5)

	err := svc.Delete(context.Background(), authz.Principal{UserID: 6, Role: models.RoleCustomer}, rv.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}
