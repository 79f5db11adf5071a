package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/hotel-occupancy/internal/model"
)

// RoomConfigRepo reads room definitions from the `rooms` table:
//
//	number       INT PRIMARY KEY
//	capacity     INT NOT NULL
//	weekday_rate INT NOT NULL
//
// The table is a configuration source only. Occupancy state is never written
// back.
type RoomConfigRepo struct {
	db *sql.DB
}

// NewRoomConfigRepo returns a RoomConfigRepo bound to the provided database.
func NewRoomConfigRepo(db *sql.DB) *RoomConfigRepo { return &RoomConfigRepo{db: db} }

// ListAll returns every configured room ordered by number.
func (r *RoomConfigRepo) ListAll(ctx context.Context) ([]model.RoomConfig, error) {
	const q = `SELECT number, capacity, weekday_rate FROM rooms ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var out []model.RoomConfig
	for rows.Next() {
		var c model.RoomConfig
		if err := rows.Scan(&c.Number, &c.Capacity, &c.WeekdayRate); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}
	return out, nil
}
