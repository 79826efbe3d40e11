package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/events"
	"github.com/ritikkamerkar15/residential-security-system/internal/domain/models"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
)

// newDemoDirectory builds a directory on the seeded memory store
func newDemoDirectory() InterfaceDirectoryService {
	return NewDirectoryService(nil, &config.Config{}, events.NewBus())
}

func TestGetResidentReturnsSeededFlat(t *testing.T) {
	directory := newDemoDirectory()

	resident := directory.GetResident("A-101")
	require.NotNil(t, resident)
	assert.Equal(t, "John Smith", resident.Name)
	assert.Len(t, resident.FamilyMembers, 1)

	assert.Nil(t, directory.GetResident("Z-999"))
}

func TestAddResidentRejectsDuplicateFlat(t *testing.T) {
	directory := newDemoDirectory()

	ok := directory.AddResident(&models.Resident{
		FlatNumber:  "D-402",
		Name:        "Priya Sharma",
		PhoneNumber: "+91 9876543240",
		Password:    "resident123",
	})
	require.True(t, ok)

	ok = directory.AddResident(&models.Resident{
		FlatNumber:  "D-402",
		Name:        "Someone Else",
		PhoneNumber: "+91 9876543241",
		Password:    "resident123",
	})
	assert.False(t, ok)

	// The original registration is untouched
	resident := directory.GetResident("D-402")
	require.NotNil(t, resident)
	assert.Equal(t, "Priya Sharma", resident.Name)
}

func TestAddGuardRejectsDuplicateEmployeeID(t *testing.T) {
	directory := newDemoDirectory()

	ok := directory.AddGuard(&models.Guard{
		EmployeeID:  "SEC001",
		Name:        "Impostor",
		Shift:       models.ShiftNight,
		PhoneNumber: "+91 9876543299",
		Password:    "guard123",
		Status:      models.GuardOffDuty,
	})
	assert.False(t, ok)

	guard := directory.GetGuard("SEC001")
	require.NotNil(t, guard)
	assert.Equal(t, "Ramesh Kumar", guard.Name)
}

func TestAddVisitorRequestDefaultsResidentName(t *testing.T) {
	directory := newDemoDirectory()

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "David Wilson",
		PhoneNumber:    "+1-555-0199",
		PurposeOfVisit: "Package Delivery",
		FlatNumber:     "A-101",
		CheckedBy:      "Ramesh Kumar (SEC001)",
	})
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.VisitorPending, created.Status)
	assert.Equal(t, "John Smith", created.ResidentName)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
}

func TestAddVisitorRequestRejectsUnknownFlat(t *testing.T) {
	directory := newDemoDirectory()

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "Nobody",
		PhoneNumber:    "+1-555-0000",
		PurposeOfVisit: "Personal Visit",
		FlatNumber:     "Z-999",
	})
	assert.Nil(t, created)
}

func TestVisitorRequestsNewestFirst(t *testing.T) {
	directory := newDemoDirectory()

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "Amit Desai",
		PhoneNumber:    "+91 9876543250",
		PurposeOfVisit: "Plumbing Work",
		FlatNumber:     "B-203",
	})
	require.NotNil(t, created)

	all := directory.GetAllVisitorRequests()
	require.NotEmpty(t, all)
	assert.Equal(t, created.ID, all[0].ID)

	forFlat := directory.GetVisitorRequestsForFlat("B-203")
	require.NotEmpty(t, forFlat)
	assert.Equal(t, created.ID, forFlat[0].ID)
	for _, r := range forFlat {
		assert.Equal(t, "B-203", r.FlatNumber)
	}
}

func TestUpdateVisitorRequestStatusFinalizesExactlyOnce(t *testing.T) {
	directory := newDemoDirectory()

	var pendingID string
	for _, r := range directory.GetAllVisitorRequests() {
		if r.Status == models.VisitorPending {
			pendingID = r.ID
			break
		}
	}
	require.NotEmpty(t, pendingID)

	assert.True(t, directory.UpdateVisitorRequestStatus(pendingID, models.VisitorApproved))

	// A finalized request admits no further transition, to any state
	assert.False(t, directory.UpdateVisitorRequestStatus(pendingID, models.VisitorRejected))
	assert.False(t, directory.UpdateVisitorRequestStatus(pendingID, models.VisitorApproved))

	for _, r := range directory.GetAllVisitorRequests() {
		if r.ID == pendingID {
			assert.Equal(t, models.VisitorApproved, r.Status)
			require.NotNil(t, r.UpdatedAt)
		}
	}
}

func TestUpdateVisitorRequestStatusRejectsNonTerminal(t *testing.T) {
	directory := newDemoDirectory()

	var pendingID string
	for _, r := range directory.GetAllVisitorRequests() {
		if r.Status == models.VisitorPending {
			pendingID = r.ID
			break
		}
	}
	require.NotEmpty(t, pendingID)

	assert.False(t, directory.UpdateVisitorRequestStatus(pendingID, models.VisitorPending))
	assert.False(t, directory.UpdateVisitorRequestStatus(pendingID, "escalated"))
	assert.False(t, directory.UpdateVisitorRequestStatus("no-such-id", models.VisitorApproved))
}

func TestUpdateGuardStatusOffDutyClearsCheckInTime(t *testing.T) {
	directory := newDemoDirectory()

	require.True(t, directory.UpdateGuardStatus("SEC001", models.GuardOffDuty, ""))
	guard := directory.GetGuard("SEC001")
	require.NotNil(t, guard)
	assert.Equal(t, models.GuardOffDuty, guard.Status)
	assert.Empty(t, guard.CheckInTime)

	require.True(t, directory.UpdateGuardStatus("SEC001", models.GuardOnDuty, "9:05:00 AM"))
	guard = directory.GetGuard("SEC001")
	require.NotNil(t, guard)
	assert.Equal(t, "9:05:00 AM", guard.CheckInTime)

	assert.False(t, directory.UpdateGuardStatus("SEC999", models.GuardOnDuty, "9:05:00 AM"))
}

func TestStatisticsTotalsAddUp(t *testing.T) {
	directory := newDemoDirectory()

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "Neha Gupta",
		PhoneNumber:    "+91 9876543260",
		PurposeOfVisit: "Personal Visit",
		FlatNumber:     "C-105",
	})
	require.NotNil(t, created)
	require.True(t, directory.UpdateVisitorRequestStatus(created.ID, models.VisitorLeftAtGate))

	stats := directory.GetStatistics()

	assert.Equal(t, stats.TotalRequests,
		stats.PendingRequests+stats.ApprovedRequests+stats.RejectedRequests+stats.LeftAtGateRequests)
	assert.Equal(t, 3, stats.TotalGuards)
	assert.Equal(t, 1, stats.ActiveGuards)
	assert.Equal(t, 3, stats.ActiveResidents)
	assert.Equal(t, models.UptimeDisplay, stats.Uptime)
	// The request just created counts toward today
	assert.GreaterOrEqual(t, stats.TodayRequests, 1)
}

func TestAddVisitorRequestPublishesSpecificEventBeforeDataUpdated(t *testing.T) {
	bus := events.NewBus()
	directory := NewDirectoryService(nil, &config.Config{}, bus)

	var order []string
	bus.Subscribe(events.VisitorRequestAdded, func(interface{}) {
		order = append(order, events.VisitorRequestAdded)
	})
	bus.Subscribe(events.DataUpdated, func(interface{}) {
		order = append(order, events.DataUpdated)
	})

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "Event Order",
		PhoneNumber:    "+91 9876543270",
		PurposeOfVisit: "Personal Visit",
		FlatNumber:     "A-101",
	})
	require.NotNil(t, created)

	require.Equal(t, []string{events.VisitorRequestAdded, events.DataUpdated}, order)
}

func TestUpdateVisitorRequestStatusPublishesUpdatedPayload(t *testing.T) {
	bus := events.NewBus()
	directory := NewDirectoryService(nil, &config.Config{}, bus)

	var updated *models.VisitorRequest
	bus.Subscribe(events.VisitorRequestUpdated, func(payload interface{}) {
		updated, _ = payload.(*models.VisitorRequest)
	})

	created := directory.AddVisitorRequest(&models.VisitorRequest{
		VisitorName:    "Payload Carrier",
		PhoneNumber:    "+91 9876543280",
		PurposeOfVisit: "Personal Visit",
		FlatNumber:     "A-101",
	})
	require.NotNil(t, created)
	require.True(t, directory.UpdateVisitorRequestStatus(created.ID, models.VisitorRejected))

	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.VisitorRejected, updated.Status)
}

func TestAddUserRejectsDuplicateIdentifier(t *testing.T) {
	directory := newDemoDirectory()

	ok := directory.AddUser(&models.User{
		Username: "rahul.verma",
		Name:     "Rahul Verma",
		Role:     models.RoleUser,
		Flat:     "B-203",
		Phone:    "+91 9876500000",
		Password: "Secret@123",
		Status:   models.UserPending,
	})
	require.True(t, ok)

	ok = directory.AddUser(&models.User{
		Username: "rahul.verma",
		Name:     "Duplicate",
		Role:     models.RoleUser,
		Phone:    "+91 9876500001",
		Password: "Other@123",
		Status:   models.UserPending,
	})
	assert.False(t, ok)
}

func TestUpdateUserStatusActivatesAccount(t *testing.T) {
	directory := newDemoDirectory()

	user := &models.User{
		Username: "meena.iyer",
		Name:     "Meena Iyer",
		Role:     models.RoleUser,
		Flat:     "C-105",
		Phone:    "+91 9876500002",
		Password: "Secret@123",
		Status:   models.UserPending,
	}
	require.True(t, directory.AddUser(user))

	assert.True(t, directory.UpdateUserStatus(user.ID, models.UserActive))
	stored := directory.GetUserByIdentifier("meena.iyer")
	require.NotNil(t, stored)
	assert.Equal(t, models.UserActive, stored.Status)

	assert.False(t, directory.UpdateUserStatus("no-such-id", models.UserActive))
}

func TestUpdateResidentPatchesContactDetails(t *testing.T) {
	bus := events.NewBus()
	directory := NewDirectoryService(nil, &config.Config{}, bus)

	published := 0
	bus.Subscribe(events.DataUpdated, func(interface{}) { published++ })

	require.True(t, directory.UpdateResident("A-101", "", "+91 9999900000", ""))
	assert.Equal(t, 1, published)

	resident := directory.GetResident("A-101")
	require.NotNil(t, resident)
	assert.Equal(t, "+91 9999900000", resident.PhoneNumber)
	// Omitted fields keep their current value
	assert.Equal(t, "John Smith", resident.Name)

	// Unknown flats mutate nothing and publish nothing
	assert.False(t, directory.UpdateResident("Z-999", "Nobody", "", ""))
	assert.Equal(t, 1, published)
}

func TestAddUserRejectsReusedUsernameAcrossRoles(t *testing.T) {
	directory := newDemoDirectory()

	require.True(t, directory.AddUser(&models.User{
		Username: "bob",
		Name:     "Bob Resident",
		Role:     models.RoleUser,
		Flat:     "B-203",
		Phone:    "+91 9876500020",
		Password: "Secret@123",
		Status:   models.UserPending,
	}))

	// Registering under another role picks a different role-specific id,
	// but the username itself is still taken.
	assert.False(t, directory.AddUser(&models.User{
		Username:   "bob",
		Name:       "Bob Guard",
		Role:       models.RoleSecurity,
		EmployeeID: "SEC009",
		Phone:      "+91 9876500021",
		Password:   "Secret@123",
		Status:     models.UserPending,
	}))
}

func TestAlertFeedSeededNewestFirst(t *testing.T) {
	directory := newDemoDirectory()

	alerts := directory.GetAllAlerts()
	require.Len(t, alerts, 3)
	assert.Equal(t, models.AlertIntrusion, alerts[0].Type)
	assert.Equal(t, models.AlertActive, alerts[0].Status)
	assert.Equal(t, models.AlertFire, alerts[1].Type)
	assert.Equal(t, models.AlertResolved, alerts[1].Status)
	assert.Equal(t, models.AlertMaintenance, alerts[2].Type)
}

func TestAddAlertPrependsWithDefaults(t *testing.T) {
	bus := events.NewBus()
	directory := NewDirectoryService(nil, &config.Config{}, bus)

	published := 0
	bus.Subscribe(events.DataUpdated, func(interface{}) { published++ })

	added := directory.AddAlert(&models.Alert{
		Type:     models.AlertSOS,
		Message:  "Panic button pressed at gate 2",
		Source:   "Gate Panel 02",
		Priority: models.AlertPriorityHigh,
	})
	require.NotNil(t, added)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, models.AlertActive, added.Status)
	assert.False(t, added.Timestamp.IsZero())
	assert.Equal(t, 1, published)

	alerts := directory.GetAllAlerts()
	require.Len(t, alerts, 4)
	assert.Equal(t, added.ID, alerts[0].ID)
}
