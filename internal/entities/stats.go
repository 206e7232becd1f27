package entities

type UserStats struct {
	TotalUsers          int            `json:"total_users"`
	UsersByRole         map[string]int `json:"users_by_role"`
	NewUsersCount       int            `json:"new_users_count"`
	ActiveUsers         int            `json:"active_users"`
	UsersCreatedByMonth map[string]int `json:"users_created_by_month"`
}

type HostelStats struct {
	TotalHostels          int            `json:"total_hostels"`
	TotalRooms            int            `json:"total_rooms"`
	HostelsBySize         map[string]int `json:"hostels_by_size"`
	HostelsByPopularity   map[string]int `json:"hostels_by_popularity"`
	HostelsByCountry      map[string]int `json:"hostels_by_country"`
	HostelsByCity         map[string]int `json:"hostels_by_city"`
	HostelsByStatus       map[string]int `json:"hostels_by_status"`
	HostelsWithVolunteers int            `json:"hostels_with_volunteers"`
	HostelsCreatedByMonth map[string]int `json:"hostels_created_by_month"`
}
