package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/giannis84/subway-favorites/internal/models"
)

// SQLRepository implements the favorites, sections and members repositories on
// top of database/sql. It works with both the PostgreSQL and the SQLite driver.
type SQLRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewSQLRepository creates a new SQLRepository backed by the given *sql.DB.
// driver selects the SQL placeholder style.
func NewSQLRepository(db *sql.DB, driver string) *SQLRepository {
	return &SQLRepository{db: db, sb: statementBuilder(driver)}
}

func (r *SQLRepository) GetMemberFavoritesFromDB(ctx context.Context, memberID string) ([]*models.Favorite, error) {
	query, args, err := r.sb.
		Select(
			"f.id", "f.member_id",
			"f.source_station_id", "COALESCE(s.name, '')",
			"f.target_station_id", "COALESCE(t.name, '')",
			"f.created_at",
		).
		From("favorites f").
		LeftJoin("stations s ON s.id = f.source_station_id").
		LeftJoin("stations t ON t.id = f.target_station_id").
		Where(sq.Eq{"f.member_id": memberID}).
		OrderBy("f.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building favorites query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying member favorites: %w", err)
	}
	defer rows.Close()

	favorites := []*models.Favorite{}
	for rows.Next() {
		var fav models.Favorite
		err := rows.Scan(
			&fav.ID, &fav.MemberID,
			&fav.Source.ID, &fav.Source.Name,
			&fav.Target.ID, &fav.Target.Name,
			&fav.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning favorite row: %w", err)
		}
		favorites = append(favorites, &fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member favorites: %w", err)
	}

	return favorites, nil
}

func (r *SQLRepository) AddFavoriteInDB(ctx context.Context, favorite *models.Favorite) error {
	query, args, err := r.sb.
		Insert("favorites").
		Columns("member_id", "source_station_id", "target_station_id", "created_at").
		Values(favorite.MemberID, favorite.Source.ID, favorite.Target.ID, favorite.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert favorite query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&favorite.ID); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUnknownStation
		}
		return fmt.Errorf("inserting favorite: %w", err)
	}
	return nil
}

func (r *SQLRepository) DeleteFavoriteFromDB(ctx context.Context, memberID string, favoriteID int64) error {
	query, args, err := r.sb.
		Delete("favorites").
		Where("member_id = ? AND id = ?", memberID, favoriteID).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete favorite query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
