package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelia/internal/db"
	"hostelia/internal/repository"
)

type fakeBackofficeRepo struct {
	users     []db.User
	summaries []repository.HostelSummary
}

func (f *fakeBackofficeRepo) ListUsers() ([]db.User, error) { return f.users, nil }

func (f *fakeBackofficeRepo) ListHostelSummaries() ([]repository.HostelSummary, error) {
	return f.summaries, nil
}

func TestUserStats(t *testing.T) {
	now := time.Now()
	repo := &fakeBackofficeRepo{users: []db.User{
		{ID: 1, Role: RoleHost, IsNewUser: false, CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -2)},
		{ID: 2, Role: RoleGuest, IsNewUser: true, CreatedAt: now, UpdatedAt: now},
		{ID: 3, Role: RoleGuest, IsNewUser: false, CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -90)},
	}}
	svc := NewBackofficeService(repo)

	stats, err := svc.UserStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 1, stats.UsersByRole[RoleHost])
	assert.Equal(t, 2, stats.UsersByRole[RoleGuest])
	assert.Equal(t, 1, stats.NewUsersCount)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 2, stats.UsersCreatedByMonth[now.AddDate(0, -2, 0).Format("2006-01")])
}

func TestHostelStats(t *testing.T) {
	now := time.Now()
	repo := &fakeBackofficeRepo{summaries: []repository.HostelSummary{
		{
			Hostel:     db.Hostel{City: "Buenos Aires", Country: "Argentina", Status: "active", ExperienceWithVolunteers: true, CreatedAt: now},
			RoomCount:  3,
			GuestCount: 2,
		},
		{
			Hostel:     db.Hostel{City: "Lisboa", Country: "Portugal", Status: "active", CreatedAt: now},
			RoomCount:  10,
			GuestCount: 40,
		},
		{
			Hostel:     db.Hostel{City: "Lisboa", Country: "Portugal", Status: "pending", CreatedAt: now},
			RoomCount:  20,
			GuestCount: 10,
		},
	}}
	svc := NewBackofficeService(repo)

	stats, err := svc.HostelStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalHostels)
	assert.Equal(t, 33, stats.TotalRooms)
	assert.Equal(t, 1, stats.HostelsBySize["small"])
	assert.Equal(t, 1, stats.HostelsBySize["medium"])
	assert.Equal(t, 1, stats.HostelsBySize["large"])
	assert.Equal(t, 1, stats.HostelsByPopularity["low"])
	assert.Equal(t, 1, stats.HostelsByPopularity["medium"])
	assert.Equal(t, 1, stats.HostelsByPopularity["high"])
	assert.Equal(t, 2, stats.HostelsByCountry["Portugal"])
	assert.Equal(t, 2, stats.HostelsByCity["Lisboa"])
	assert.Equal(t, 2, stats.HostelsByStatus["active"])
	assert.Equal(t, 1, stats.HostelsWithVolunteers)
}
