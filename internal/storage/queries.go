package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pable/gridscout/internal/model"
)

// TeamInfo is one cached team with its series footprint, for `list`.
type TeamInfo struct {
	ID          string
	Name        string
	SeriesCount int
	WithState   int
	FetchedAt   string
}

// UpsertTeam stores a team record. INSERT OR REPLACE keeps re-fetches
// idempotent.
func (db *DB) UpsertTeam(team model.Team) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO teams(id, name, fetched_at)
		VALUES (?, ?, ?)`,
		team.ID, team.Name, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetTeamByName returns the cached team with this exact name, or nil.
func (db *DB) GetTeamByName(name string) (*model.Team, error) {
	var t model.Team
	err := db.conn.QueryRow(
		"SELECT id, name FROM teams WHERE name = ? LIMIT 1", name).
		Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTeams returns all cached teams with their series counts.
func (db *DB) ListTeams() ([]TeamInfo, error) {
	rows, err := db.conn.Query(`
		SELECT t.id, t.name, t.fetched_at,
		       COUNT(s.id), COALESCE(SUM(s.has_state), 0)
		FROM teams t
		LEFT JOIN series s ON s.team_id = t.id
		GROUP BY t.id
		ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TeamInfo
	for rows.Next() {
		var ti TeamInfo
		if err := rows.Scan(&ti.ID, &ti.Name, &ti.FetchedAt, &ti.SeriesCount, &ti.WithState); err != nil {
			return nil, err
		}
		out = append(out, ti)
	}
	return out, rows.Err()
}

// UpsertSeries stores one raw series record as compressed JSON, replacing
// any previous payload for the same id.
func (db *DB) UpsertSeries(teamID string, rec *model.SeriesRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal series %s: %w", rec.ID, err)
	}
	titleCode := ""
	if rec.Title != nil {
		titleCode = rec.Title.NameShortened
	}
	updatedAt := ""
	if rec.State != nil {
		updatedAt = rec.State.UpdatedAt
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO series(
			id, team_id, title_code, start_time, state_updated_at,
			has_state, payload, fetched_at
		) VALUES (?,?,?,?,?,?,?,?)`,
		rec.ID, teamID, titleCode, rec.StartTime, updatedAt,
		boolInt(rec.State != nil), db.compress(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// UpsertSeriesBatch stores a batch of series records in one transaction.
func (db *DB) UpsertSeriesBatch(teamID string, records []model.SeriesRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO series(
			id, team_id, title_code, start_time, state_updated_at,
			has_state, payload, fetched_at
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range records {
		rec := &records[i]
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal series %s: %w", rec.ID, err)
		}
		titleCode := ""
		if rec.Title != nil {
			titleCode = rec.Title.NameShortened
		}
		updatedAt := ""
		if rec.State != nil {
			updatedAt = rec.State.UpdatedAt
		}
		_, err = stmt.Exec(
			rec.ID, teamID, titleCode, rec.StartTime, updatedAt,
			boolInt(rec.State != nil), db.compress(payload), now,
		)
		if err != nil {
			return fmt.Errorf("insert series %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// SeriesSince loads the cached records for a team whose scheduled start is
// at or after since (RFC 3339), newest first. Payloads that no longer
// decode are skipped; the second return is how many were.
func (db *DB) SeriesSince(teamID, since string) ([]model.SeriesRecord, int, error) {
	rows, err := db.conn.Query(`
		SELECT payload FROM series
		WHERE team_id = ? AND start_time >= ?
		ORDER BY start_time DESC`, teamID, since)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.SeriesRecord
	skipped := 0
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, skipped, err
		}
		payload, err := db.decompress(blob)
		if err != nil {
			skipped++
			continue
		}
		var rec model.SeriesRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			skipped++
			continue
		}
		out = append(out, rec)
	}
	return out, skipped, rows.Err()
}

// CountSeries returns how many series are cached for a team.
func (db *DB) CountSeries(teamID string) (int, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(1) FROM series WHERE team_id = ?", teamID).Scan(&n)
	return n, err
}

// DeleteTeamSeries removes every cached series for a team, and the team row
// itself. Returns how many series rows went.
func (db *DB) DeleteTeamSeries(teamID string) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM series WHERE team_id = ?", teamID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	if _, err := db.conn.Exec("DELETE FROM teams WHERE id = ?", teamID); err != nil {
		return n, err
	}
	return n, nil
}

// DeleteSeries removes one cached series by id.
func (db *DB) DeleteSeries(id string) (bool, error) {
	res, err := db.conn.Exec("DELETE FROM series WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DeleteAll empties the cache.
func (db *DB) DeleteAll() error {
	if _, err := db.conn.Exec("DELETE FROM series"); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM teams")
	return err
}
