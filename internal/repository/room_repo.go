package repository

import (
	"database/sql"
	"fmt"

	"hostelia/internal/db"
)

type RoomRepository interface {
	// CreateWithBeds persists the room and its generated beds together.
	CreateWithBeds(room *db.Room, bedNumbers []string) error

	// ListByHostel returns the hostel's rooms in persisted order, each
	// with its beds in stored order.
	ListByHostel(hostelID int) ([]db.Room, error)

	NameExists(hostelID int, name string) (bool, error)

	// BedExists reports whether the (room, bed) pair exists in the
	// hostel's inventory.
	BedExists(hostelID int, roomNumber, bedNumber string) (bool, error)
}

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(database *sql.DB) RoomRepository {
	return &roomRepository{db: database}
}

func (r *roomRepository) CreateWithBeds(room *db.Room, bedNumbers []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting room transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO rooms (hostel_id, name, type, capacity, organization_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		room.HostelID, room.Name, room.Type, room.Capacity, room.OrganizationBy,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting room: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO beds (room_id, bed_number, position) VALUES ($1, $2, $3)
		RETURNING id`)
	if err != nil {
		return fmt.Errorf("error preparing bed insert: %w", err)
	}
	defer stmt.Close()

	room.Beds = make([]db.Bed, 0, len(bedNumbers))
	for i, number := range bedNumbers {
		bed := db.Bed{RoomID: room.ID, BedNumber: number, Position: i}
		if err := stmt.QueryRow(room.ID, number, i).Scan(&bed.ID); err != nil {
			return fmt.Errorf("error inserting bed %q: %w", number, err)
		}
		room.Beds = append(room.Beds, bed)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing room: %w", err)
	}
	return nil
}

func (r *roomRepository) ListByHostel(hostelID int) ([]db.Room, error) {
	rows, err := r.db.Query(`
		SELECT id, hostel_id, name, type, capacity, organization_by, created_at, updated_at
		FROM rooms WHERE hostel_id = $1 ORDER BY id`, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []db.Room
	byID := make(map[int]int)
	for rows.Next() {
		var room db.Room
		if err := rows.Scan(
			&room.ID, &room.HostelID, &room.Name, &room.Type, &room.Capacity,
			&room.OrganizationBy, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning room: %w", err)
		}
		byID[room.ID] = len(rooms)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rooms: %w", err)
	}
	if len(rooms) == 0 {
		return rooms, nil
	}

	bedRows, err := r.db.Query(`
		SELECT b.id, b.room_id, b.bed_number, b.position, b.reservation_id
		FROM beds b
		JOIN rooms rm ON rm.id = b.room_id
		WHERE rm.hostel_id = $1
		ORDER BY b.room_id, b.position`, hostelID)
	if err != nil {
		return nil, fmt.Errorf("error querying beds: %w", err)
	}
	defer bedRows.Close()

	for bedRows.Next() {
		var bed db.Bed
		if err := bedRows.Scan(&bed.ID, &bed.RoomID, &bed.BedNumber, &bed.Position, &bed.ReservationID); err != nil {
			return nil, fmt.Errorf("error scanning bed: %w", err)
		}
		if idx, ok := byID[bed.RoomID]; ok {
			rooms[idx].Beds = append(rooms[idx].Beds, bed)
		}
	}
	if err := bedRows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating beds: %w", err)
	}
	return rooms, nil
}

func (r *roomRepository) NameExists(hostelID int, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM rooms WHERE hostel_id = $1 AND name = $2)`,
		hostelID, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking room name: %w", err)
	}
	return exists, nil
}

func (r *roomRepository) BedExists(hostelID int, roomNumber, bedNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1
			FROM beds b
			JOIN rooms rm ON rm.id = b.room_id
			WHERE rm.hostel_id = $1 AND rm.name = $2 AND b.bed_number = $3
		)`, hostelID, roomNumber, bedNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking bed: %w", err)
	}
	return exists, nil
}
