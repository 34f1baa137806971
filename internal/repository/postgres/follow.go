package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Follow inserts both directed edges in one transaction so the
// following/followers tables can never drift apart. Re-following is a
// no-op; the returned bool reports whether a new edge was created.
func (r *followRepo) Follow(ctx context.Context, follower string, followee string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`INSERT INTO following("user", following) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		follower,
		followee,
	)
	if err != nil {
		return false, err
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO followers("user", follower) VALUES($1, $2) ON CONFLICT DO NOTHING`,
		followee,
		follower,
	); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (r *followRepo) Followers(ctx context.Context, username string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT f.follower FROM followers f WHERE f."user" = $1`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followers []string
	for rows.Next() {
		var follower string
		if err := rows.Scan(&follower); err != nil {
			return nil, err
		}

		followers = append(followers, follower)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return followers, nil
}

func (r *followRepo) Following(ctx context.Context, username string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT f.following FROM following f WHERE f."user" = $1`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var following []string
	for rows.Next() {
		var followee string
		if err := rows.Scan(&followee); err != nil {
			return nil, err
		}

		following = append(following, followee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return following, nil
}

func (r *followRepo) FollowerCount(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM followers f WHERE f."user" = $1`, username).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followRepo) FollowingCount(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM following f WHERE f."user" = $1`, username).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followRepo) IsFollowing(ctx context.Context, observer string, subject string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM following f WHERE f."user" = $1 AND f.following = $2)`,
		observer,
		subject,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
