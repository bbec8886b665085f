package database

import (
	"context"
	"fmt"

	"github.com/giannis84/subway-favorites/internal/models"
)

func (r *SQLRepository) GetSectionsFromDB(ctx context.Context) ([]models.Section, error) {
	query, args, err := r.sb.
		Select("line_id", "up_station_id", "down_station_id", "distance").
		From("sections").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building sections query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.LineID, &s.UpStationID, &s.DownStationID, &s.Distance); err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, nil
}

// FindOrCreateMemberInDB returns the member registered with email, creating it
// on first sight. A known member gets its age refreshed.
func (r *SQLRepository) FindOrCreateMemberInDB(ctx context.Context, email string, age int) (*models.Member, error) {
	query, args, err := r.sb.
		Insert("members").
		Columns("email", "age").
		Values(email, age).
		Suffix("ON CONFLICT (email) DO UPDATE SET age = EXCLUDED.age RETURNING id, email, age").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building upsert member query: %w", err)
	}

	var m models.Member
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Email, &m.Age); err != nil {
		return nil, fmt.Errorf("upserting member: %w", err)
	}
	return &m, nil
}

type sampleLine struct {
	id       int64
	name     string
	color    string
	sections []models.Section
}

// LoadSampleNetwork inserts a small fixed subway network used for local runs and
// end-to-end tests. Rows that already exist are left untouched.
//
//	Gyodae --(Line 2, 10)-- Gangnam --(Sinbundang, 10)-- Yangjae
//	  |                                                   |
//	  +-(Line 3, 2)-- Nambu Bus Terminal --(Line 3, 3)---+
//	Sinseol-dong --(Seongsu Branch, 4)-- Yongdu            (disconnected)
//	Magok                                                  (no sections)
func (r *SQLRepository) LoadSampleNetwork(ctx context.Context) error {
	stations := []models.Station{
		{ID: 1, Name: "Gyodae"},
		{ID: 2, Name: "Gangnam"},
		{ID: 3, Name: "Yangjae"},
		{ID: 4, Name: "Nambu Bus Terminal"},
		{ID: 5, Name: "Sinseol-dong"},
		{ID: 6, Name: "Yongdu"},
		{ID: 7, Name: "Magok"},
	}
	lines := []sampleLine{
		{id: 1, name: "Line 2", color: "green", sections: []models.Section{{UpStationID: 1, DownStationID: 2, Distance: 10}}},
		{id: 2, name: "Sinbundang", color: "red", sections: []models.Section{{UpStationID: 2, DownStationID: 3, Distance: 10}}},
		{id: 3, name: "Line 3", color: "orange", sections: []models.Section{
			{UpStationID: 1, DownStationID: 4, Distance: 2},
			{UpStationID: 4, DownStationID: 3, Distance: 3},
		}},
		{id: 4, name: "Seongsu Branch", color: "green", sections: []models.Section{{UpStationID: 5, DownStationID: 6, Distance: 4}}},
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting sample network transaction: %w", err)
	}
	defer tx.Rollback()

	stationsInsert := r.sb.Insert("stations").Columns("id", "name")
	for _, s := range stations {
		stationsInsert = stationsInsert.Values(s.ID, s.Name)
	}
	query, args, err := stationsInsert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("building stations insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting sample stations: %w", err)
	}

	for _, l := range lines {
		query, args, err := r.sb.Insert("lines").
			Columns("id", "name", "color").
			Values(l.id, l.name, l.color).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("building line insert: %w", err)
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("inserting sample line %s: %w", l.name, err)
		}
		// Sections are only written together with a freshly created line.
		if n, _ := result.RowsAffected(); n == 0 {
			continue
		}

		sectionsInsert := r.sb.Insert("sections").Columns("line_id", "up_station_id", "down_station_id", "distance")
		for _, s := range l.sections {
			sectionsInsert = sectionsInsert.Values(l.id, s.UpStationID, s.DownStationID, s.Distance)
		}
		query, args, err = sectionsInsert.ToSql()
		if err != nil {
			return fmt.Errorf("building sections insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting sample sections for %s: %w", l.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sample network: %w", err)
	}
	return nil
}
