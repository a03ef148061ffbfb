package database

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// LocationHeadcount is the number of active persons assigned to a location.
// LocationID is nil for persons without a location.
type LocationHeadcount struct {
	LocationID   *uint  `json:"location_id"`
	LocationName string `json:"location_name"`
	Headcount    int64  `json:"headcount"`
}

// CategoryUsage counts the distinct active persons holding skills in a category.
type CategoryUsage struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Persons      int64  `json:"persons"`
}

// HeadcountByLocation groups active persons by location, largest first.
func HeadcountByLocation(ctx context.Context, db *sql.DB) ([]LocationHeadcount, error) {
	queryBuilder := psql.Select("p.location_id", "COALESCE(l.name, '')", "COUNT(p.id) AS headcount").
		From("people p").
		LeftJoin("locations l ON l.id = p.location_id").
		Where(sq.Eq{"p.status": true}).
		GroupBy("p.location_id", "l.name").
		OrderBy("headcount DESC", "l.name ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for HeadcountByLocation: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query headcount by location: %w", err)
	}
	defer rows.Close()

	var result []LocationHeadcount
	for rows.Next() {
		var (
			row        LocationHeadcount
			locationID sql.NullInt64
		)
		if err := rows.Scan(&locationID, &row.LocationName, &row.Headcount); err != nil {
			return nil, fmt.Errorf("failed to scan headcount row: %w", err)
		}
		if locationID.Valid {
			id := uint(locationID.Int64)
			row.LocationID = &id
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating headcount rows: %w", err)
	}
	return result, nil
}

// UsageByCategory lists every active category with the number of distinct
// active persons that hold a skill entry in it.
func UsageByCategory(ctx context.Context, db *sql.DB) ([]CategoryUsage, error) {
	queryBuilder := psql.Select("c.id", "c.name", "COUNT(DISTINCT p.id) AS persons").
		From("categories c").
		LeftJoin("category_persons cp ON cp.category_id = c.id AND cp.status = ?", true).
		LeftJoin("people p ON p.id = cp.person_id AND p.status = ?", true).
		Where(sq.Eq{"c.status": true}).
		GroupBy("c.id", "c.name").
		OrderBy("persons DESC", "c.name ASC")

	sqlStr, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query for UsageByCategory: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query category usage: %w", err)
	}
	defer rows.Close()

	var result []CategoryUsage
	for rows.Next() {
		var row CategoryUsage
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Persons); err != nil {
			return nil, fmt.Errorf("failed to scan category usage row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category usage rows: %w", err)
	}
	return result, nil
}
