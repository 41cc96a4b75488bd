package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
)

// SeedResources inserts rs when the resources table is empty. It reports
// whether anything was written.
func (db *DB) SeedResources(ctx context.Context, rs []resources.Resource) (bool, error) {
	n, err := db.CountResources(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	for i, r := range rs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO resources (id, position, name, type, location, contact, description, website)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.Name, r.Type, r.Location, r.Contact, r.Description, nullString(r.Website),
		); err != nil {
			return false, fmt.Errorf("inserting resource %s: %w", r.ID, err)
		}
		for j, s := range r.Services {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO resource_services (resource_id, position, service) VALUES (?, ?, ?)",
				r.ID, j, s,
			); err != nil {
				return false, fmt.Errorf("inserting service for %s: %w", r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// CountResources returns the number of stored providers.
func (db *DB) CountResources(ctx context.Context) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM resources").Scan(&n)
	return n, err
}

// ListResources returns all providers in catalog order. It satisfies
// resources.Source.
func (db *DB) ListResources(ctx context.Context) ([]resources.Resource, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, type, location, contact, description, website
		FROM resources ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []resources.Resource
	index := make(map[string]int)
	for rows.Next() {
		var r resources.Resource
		var website sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Type, &r.Location, &r.Contact, &r.Description, &website); err != nil {
			return nil, err
		}
		r.Website = website.String
		r.Services = []string{}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	svc, err := db.conn.QueryContext(ctx,
		"SELECT resource_id, service FROM resource_services ORDER BY resource_id, position")
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	for svc.Next() {
		var id, s string
		if err := svc.Scan(&id, &s); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			out[i].Services = append(out[i].Services, s)
		}
	}
	return out, svc.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
