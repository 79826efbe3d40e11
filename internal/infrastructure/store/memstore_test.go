package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
)

func TestMemoryStoreSeedContents(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	residents, err := s.GetAllResidents()
	require.NoError(t, err)
	require.Len(t, residents, 3)
	assert.Equal(t, []string{"A-101", "B-203", "C-105"},
		[]string{residents[0].FlatNumber, residents[1].FlatNumber, residents[2].FlatNumber})

	guards, err := s.GetAllGuards()
	require.NoError(t, err)
	require.Len(t, guards, 3)
	assert.Equal(t, "SEC001", guards[0].EmployeeID)
	assert.Equal(t, models.GuardOnDuty, guards[0].Status)

	admin, err := s.GetAdmin("admin001")
	require.NoError(t, err)
	require.NotNil(t, admin)

	requests, err := s.GetAllVisitorRequests()
	require.NoError(t, err)
	require.Len(t, requests, 4)
	// Seed rows are ordered newest first already
	assert.Equal(t, "David Wilson", requests[0].VisitorName)
	assert.Equal(t, "Robert Johnson", requests[3].VisitorName)
}

func TestMemoryStoreAddResidentKeepsFlatOrder(t *testing.T) {
	s := NewMemoryStore()

	for _, flat := range []string{"C-105", "A-101", "B-203"} {
		ok, err := s.AddResident(&models.Resident{FlatNumber: flat, Name: flat, PhoneNumber: "x", Password: "y"})
		require.NoError(t, err)
		require.True(t, ok)
	}

	residents, err := s.GetAllResidents()
	require.NoError(t, err)
	assert.Equal(t, "A-101", residents[0].FlatNumber)
	assert.Equal(t, "B-203", residents[1].FlatNumber)
	assert.Equal(t, "C-105", residents[2].FlatNumber)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	resident, err := s.GetResident("A-101")
	require.NoError(t, err)
	require.NotNil(t, resident)

	// Mutating the returned value must not leak into the store
	resident.Name = "Tampered"
	again, err := s.GetResident("A-101")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", again.Name)
}

func TestMemoryStoreVisitorRequestsPrepend(t *testing.T) {
	s := NewMemoryStore()

	first := &models.VisitorRequest{ID: "vr-1", VisitorName: "First", FlatNumber: "A-101", Status: models.VisitorPending, CreatedAt: time.Now()}
	second := &models.VisitorRequest{ID: "vr-2", VisitorName: "Second", FlatNumber: "A-101", Status: models.VisitorPending, CreatedAt: time.Now()}
	require.NoError(t, s.AddVisitorRequest(first))
	require.NoError(t, s.AddVisitorRequest(second))

	requests, err := s.GetAllVisitorRequests()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "vr-2", requests[0].ID)
}

func TestMemoryStoreConcurrentWritersDoNotRace(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.AddVisitorRequest(&models.VisitorRequest{
				ID:          fmt.Sprintf("vr-%d", n),
				VisitorName: "Concurrent",
				FlatNumber:  "A-101",
				Status:      models.VisitorPending,
				CreatedAt:   time.Now(),
			})
			_, _ = s.GetAllVisitorRequests()
		}(i)
	}
	wg.Wait()

	requests, err := s.GetAllVisitorRequests()
	require.NoError(t, err)
	assert.Len(t, requests, 4+16)
}

func TestMemoryStoreAddUserRejectsReusedUsernameAcrossRoles(t *testing.T) {
	s := NewMemoryStore()

	ok, err := s.AddUser(&models.User{
		Username: "bob",
		Name:     "Bob Resident",
		Role:     models.RoleUser,
		Flat:     "B-203",
		Phone:    "+91 9876500010",
		Password: "Secret@123",
		Status:   models.UserPending,
	})
	require.NoError(t, err)
	require.True(t, ok)

	// Same username under a different role carries a fresh employee id, but
	// the username is still a login key and must stay unique.
	ok, err = s.AddUser(&models.User{
		Username:   "bob",
		Name:       "Bob Guard",
		Role:       models.RoleSecurity,
		EmployeeID: "SEC009",
		Phone:      "+91 9876500011",
		Password:   "Secret@123",
		Status:     models.UserPending,
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// A username colliding with a taken employee id is rejected too
	ok, err = s.AddUser(&models.User{
		Username:   "guard.nine",
		Name:       "Guard Nine",
		Role:       models.RoleSecurity,
		EmployeeID: "SEC010",
		Phone:      "+91 9876500012",
		Password:   "Secret@123",
		Status:     models.UserPending,
	})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.AddUser(&models.User{
		Username: "SEC010",
		Name:     "Impostor",
		Role:     models.RoleUser,
		Flat:     "C-105",
		Phone:    "+91 9876500013",
		Password: "Secret@123",
		Status:   models.UserPending,
	})
	require.NoError(t, err)
	assert.False(t, ok)

	users, err := s.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMemoryStoreUpdateResidentPatchesFields(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	resident, err := s.UpdateResident("A-101", "", "+91 9999900000", "")
	require.NoError(t, err)
	require.NotNil(t, resident)
	assert.Equal(t, "+91 9999900000", resident.PhoneNumber)
	// Empty fields keep their current value
	assert.Equal(t, "John Smith", resident.Name)
	assert.Equal(t, "resident123", resident.Password)

	missing, err := s.UpdateResident("Z-999", "Nobody", "", "")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreVisitorRequestsForFlatWithoutRequestsIsEmpty(t *testing.T) {
	s := NewMemoryStore()
	s.Seed()

	ok, err := s.AddResident(&models.Resident{FlatNumber: "D-402", Name: "Priya Sharma", PhoneNumber: "+91 9876543240", Password: "resident123", CreatedAt: time.Now()})
	require.NoError(t, err)
	require.True(t, ok)

	requests, err := s.GetVisitorRequestsForFlat("D-402")
	require.NoError(t, err)
	require.NotNil(t, requests)
	assert.Empty(t, requests)
}
