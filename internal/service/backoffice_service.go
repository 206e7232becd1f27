package service

import (
	"time"

	"hostelia/internal/entities"
	"hostelia/internal/repository"
)

// Users updated within this window count as active.
const activeDaysThreshold = 30

type BackofficeService struct {
	repo repository.BackofficeRepository
}

func NewBackofficeService(repo repository.BackofficeRepository) *BackofficeService {
	return &BackofficeService{repo: repo}
}

func (s *BackofficeService) UserStats() (*entities.UserStats, error) {
	users, err := s.repo.ListUsers()
	if err != nil {
		return nil, err
	}

	stats := &entities.UserStats{
		TotalUsers:          len(users),
		UsersByRole:         make(map[string]int),
		UsersCreatedByMonth: make(map[string]int),
	}
	now := time.Now()
	for _, user := range users {
		stats.UsersByRole[user.Role]++
		if user.IsNewUser {
			stats.NewUsersCount++
		}
		if now.Sub(user.UpdatedAt) <= activeDaysThreshold*24*time.Hour {
			stats.ActiveUsers++
		}
		stats.UsersCreatedByMonth[user.CreatedAt.Format("2006-01")]++
	}
	return stats, nil
}

func (s *BackofficeService) HostelStats() (*entities.HostelStats, error) {
	summaries, err := s.repo.ListHostelSummaries()
	if err != nil {
		return nil, err
	}

	stats := &entities.HostelStats{
		TotalHostels:          len(summaries),
		HostelsBySize:         map[string]int{"small": 0, "medium": 0, "large": 0},
		HostelsByPopularity:   map[string]int{"low": 0, "medium": 0, "high": 0},
		HostelsByCountry:      make(map[string]int),
		HostelsByCity:         make(map[string]int),
		HostelsByStatus:       make(map[string]int),
		HostelsCreatedByMonth: make(map[string]int),
	}
	for _, s2 := range summaries {
		stats.TotalRooms += s2.RoomCount

		switch {
		case s2.RoomCount < 5:
			stats.HostelsBySize["small"]++
		case s2.RoomCount <= 15:
			stats.HostelsBySize["medium"]++
		default:
			stats.HostelsBySize["large"]++
		}

		switch {
		case s2.GuestCount <= 5:
			stats.HostelsByPopularity["low"]++
		case s2.GuestCount <= 15:
			stats.HostelsByPopularity["medium"]++
		default:
			stats.HostelsByPopularity["high"]++
		}

		stats.HostelsByCountry[s2.Hostel.Country]++
		stats.HostelsByCity[s2.Hostel.City]++
		stats.HostelsByStatus[s2.Hostel.Status]++
		if s2.Hostel.ExperienceWithVolunteers {
			stats.HostelsWithVolunteers++
		}
		stats.HostelsCreatedByMonth[s2.Hostel.CreatedAt.Format("2006-01")]++
	}
	return stats, nil
}
