package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lybamughees/mobile-project/internal/model"
)

type activityRepo struct {
	db *pgxpool.Pool
}

func newActivityRepo(db *pgxpool.Pool) Activity {
	return &activityRepo{
		db: db,
	}
}

// Append writes one log entry attributed to the affected user. The log
// is append-only: nothing here ever updates or deletes rows.
func (r *activityRepo) Append(ctx context.Context, affectedUser string, event model.ActivityEvent) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO activity(action_id, "user", action_user, action, post_id, datetime) VALUES($1, $2, $3, $4, $5, $6)`,
		uuid.New(),
		affectedUser,
		event.ActingUser(),
		string(event.Kind()),
		event.PostID(),
		time.Now(),
	)
	return err
}

func (r *activityRepo) ListByUser(ctx context.Context, username string) ([]*model.ActivityEntry, error) {
	rows, err := r.db.Query(ctx, `
	SELECT a.action_user, a.action, a.post_id, a.datetime, u.full_name, u.avatar_url
	FROM activity a
	JOIN users u ON u.username = a.action_user
	WHERE a."user" = $1
	ORDER BY a.datetime DESC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.ActivityEntry
	for rows.Next() {
		var entry model.ActivityEntry
		if err := rows.Scan(
			&entry.ActionUser,
			&entry.Action,
			&entry.PostID,
			&entry.Datetime,
			&entry.FullName,
			&entry.AvatarURL,
		); err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
