package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"archivehub/pkg/models"
)

// Repo persists feed snapshots in sqlite. It is a cache, not the
// authoritative store: ReplaceVideos swaps the whole table for the new
// collection rather than merging.
type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) ReplaceVideos(ctx context.Context, videos []models.Video) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM videos`); err != nil {
		return fmt.Errorf("clear videos: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO videos (id, title, url, date, topics, thumb, notes, refs, related)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			date = excluded.date,
			topics = excluded.topics,
			thumb = excluded.thumb,
			notes = excluded.notes,
			refs = excluded.refs,
			related = excluded.related
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, v := range videos {
		if v.ID == "" {
			continue
		}
		topics, _ := json.Marshal(v.Topics)
		refs, _ := json.Marshal(v.Refs)
		related, _ := json.Marshal(v.Related)

		if _, err := stmt.ExecContext(ctx,
			v.ID, v.Title, v.URL, v.Date,
			string(topics), v.Thumb, v.Notes, string(refs), string(related),
		); err != nil {
			return fmt.Errorf("insert video %s: %w", v.ID, err)
		}
	}

	return tx.Commit()
}

func (r *Repo) ListVideos(ctx context.Context) ([]models.Video, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, url, date, topics, thumb, notes, refs, related
		FROM videos
		ORDER BY date DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var out []models.Video
	for rows.Next() {
		var (
			v                    models.Video
			topics, refs, related string
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Date, &topics, &v.Thumb, &v.Notes, &refs, &related); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		_ = json.Unmarshal([]byte(topics), &v.Topics)
		_ = json.Unmarshal([]byte(refs), &v.Refs)
		_ = json.Unmarshal([]byte(related), &v.Related)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, title, url, date, topics, thumb, notes, refs, related
		FROM videos
		WHERE id = ?
	`, id)

	var (
		v                    models.Video
		topics, refs, related string
	)
	if err := row.Scan(&v.ID, &v.Title, &v.URL, &v.Date, &topics, &v.Thumb, &v.Notes, &refs, &related); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	_ = json.Unmarshal([]byte(topics), &v.Topics)
	_ = json.Unmarshal([]byte(refs), &v.Refs)
	_ = json.Unmarshal([]byte(related), &v.Related)
	return &v, nil
}

func (r *Repo) ReplaceSponsors(ctx context.Context, sponsors []models.Sponsor) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sponsor tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sponsors`); err != nil {
		return fmt.Errorf("clear sponsors: %w", err)
	}
	for _, s := range sponsors {
		if s.Brand == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sponsors (brand, logo, link, expires, disclosure)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(brand) DO UPDATE SET
				logo = excluded.logo,
				link = excluded.link,
				expires = excluded.expires,
				disclosure = excluded.disclosure
		`, s.Brand, s.Logo, s.Link, s.Expires, s.Disclosure); err != nil {
			return fmt.Errorf("insert sponsor %s: %w", s.Brand, err)
		}
	}
	return tx.Commit()
}

func (r *Repo) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT brand, logo, link, expires, disclosure
		FROM sponsors
		ORDER BY brand ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	defer rows.Close()

	var out []models.Sponsor
	for rows.Next() {
		var s models.Sponsor
		if err := rows.Scan(&s.Brand, &s.Logo, &s.Link, &s.Expires, &s.Disclosure); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
