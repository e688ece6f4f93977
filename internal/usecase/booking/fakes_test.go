package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/catalog"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

// fakeAppointmentRepo is an in-memory Repository. Create enforces the same
// active-slot uniqueness the database index does.
type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Appointment
}

var _ domain.Repository = (*fakeAppointmentRepo)(nil)

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[uint]*models.Appointment)}
}

func sameSlot(a, b *models.Appointment) bool {
	return a.BarberID == b.BarberID &&
		a.AppointmentDate.Format("2006-01-02") == b.AppointmentDate.Format("2006-01-02") &&
		a.AppointmentTime == b.AppointmentTime
}

func (r *fakeAppointmentRepo) Create(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if sameSlot(existing, ap) && domain.Status(existing.Status).IsActive() {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}

	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	cp := *ap
	r.items[ap.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) CountActiveAtSlot(
	_ context.Context,
	barberID uint,
	date time.Time,
	timeOfDay string,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	probe := &models.Appointment{
		BarberID:        barberID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
	}

	var count int64
	for _, ap := range r.items {
		if sameSlot(ap, probe) && domain.Status(ap.Status).IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, q domain.ListQuery) ([]models.Appointment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Appointment
	for _, ap := range r.items {
		if q.CustomerID != 0 && ap.CustomerID != q.CustomerID {
			continue
		}
		if q.BarberID != 0 && ap.BarberID != q.BarberID {
			continue
		}
		if q.Status != "" && ap.Status != q.Status {
			continue
		}
		matched = append(matched, *ap)
	}

	total := int64(len(matched))

	start := (q.Page - 1) * q.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// fakeProfileStore backs the catalog lookup with a fixed profile set.
type fakeProfileStore struct {
	profiles map[uint]*models.BarberProfile
}

var _ catalog.Store = (*fakeProfileStore)(nil)

func (s *fakeProfileStore) ProfileByID(_ context.Context, id uint) (*models.BarberProfile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}
	cp := *profile
	return &cp, nil
}

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

func testCatalog(profiles ...*models.BarberProfile) *catalog.Lookup {
	store := &fakeProfileStore{profiles: make(map[uint]*models.BarberProfile)}
	for _, p := range profiles {
		store.profiles[p.ID] = p
	}
	return catalog.NewLookup(store, nil, zap.NewNop())
}

func testProfile() *models.BarberProfile {
	return &models.BarberProfile{
		ID:     10,
		UserID: 77,
		Services: []models.Service{
			{Name: "Haircut", Price: 300, DurationMin: 30},
			{Name: "Beard Trim", Price: 150, DurationMin: 15},
			{Name: "Hair Color", Price: 1200, DurationMin: 60},
		},
	}
}
