package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udayanalone/BarberConnect/internal/authz"
	"github.com/udayanalone/BarberConnect/internal/models"
)

func seedForListing(t *testing.T, repo *fakeAppointmentRepo) {
	t.Helper()

	uc := newCreateUC(repo, testProfile())

	for _, tc := range []struct {
		customerID uint
		tm         string
	}{
		{5, "11:00"},
		{5, "12:00"},
		{6, "13:00"},
	} {
		in := validInput()
		in.CustomerID = tc.customerID
		in.Time = tc.tm
		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
	}
}

func Test_ListAppointments_CustomerScope(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedForListing(t, repo)
	uc := NewListAppointments(repo)

	aps, total, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Actor: authz.Principal{UserID: 5, Role: models.RoleCustomer},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, ap := range aps {
		assert.Equal(t, uint(5), ap.CustomerID)
	}
}

func Test_ListAppointments_BarberScope(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedForListing(t, repo)
	uc := NewListAppointments(repo)

	_, total, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Actor: authz.Principal{UserID: 77, Role: models.RoleBarber},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	_, total, err = uc.Execute(context.Background(), ListAppointmentsInput{
		Actor: authz.Principal{UserID: 99, Role: models.RoleBarber},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func Test_ListAppointments_AdminSeesAll(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedForListing(t, repo)
	uc := NewListAppointments(repo)

	_, total, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Actor: authz.Principal{UserID: 1, Role: models.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func Test_ListAppointments_StatusFilterAndPaging(t *testing.T) {
	repo := newFakeAppointmentRepo()
	seedForListing(t, repo)
	uc := NewListAppointments(repo)

	aps, total, err := uc.Execute(context.Background(), ListAppointmentsInput{
		Actor:  authz.Principal{UserID: 1, Role: models.RoleAdmin},
		Status: "pending",
		Page:   1,
		Limit:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, aps, 2)

	// Out-of-range paging inputs are clamped, not rejected.
	aps, total, err = uc.Execute(context.Background(), ListAppointmentsInput{
		Actor: authz.Principal{UserID: 1, Role: models.RoleAdmin},
		Page:  -3,
		Limit: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, aps, 3)
}

func Test_GetAppointment_ViewAuthz(t *testing.T) {
	repo := newFakeAppointmentRepo()
	id := seedAppointment(t, repo)
	uc := NewGetAppointment(repo)

	for _, actor := range []authz.Principal{
		{UserID: 5, Role: models.RoleCustomer},
		{UserID: 77, Role: models.RoleBarber},
		{UserID: 1, Role: models.RoleAdmin},
	} {
		ap, err := uc.Execute(context.Background(), actor, id)
		require.NoError(t, err)
		assert.Equal(t, id, ap.ID)
	}

	_, err := uc.Execute(context.Background(), authz.Principal{UserID: 6, Role: models.RoleCustomer}, id)
	assert.Error(t, err)
}
