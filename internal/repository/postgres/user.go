package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lybamughees/mobile-project/internal/model"
)

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) User {
	return &userRepo{
		db: db,
	}
}

// Create inserts the user row and its credential row in one
// transaction: either both commit or neither does.
func (r *userRepo) Create(ctx context.Context, user model.User, cred model.Credential) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		"INSERT INTO users(username, full_name, avatar_url, bio) VALUES($1, $2, $3, $4)",
		user.Username,
		user.FullName,
		user.AvatarURL,
		user.Bio,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		"INSERT INTO user_credentials(username, hashed_password, salt, disabled, date_created) VALUES($1, $2, $3, $4, $5)",
		cred.Username,
		cred.HashedPassword,
		cred.Salt,
		cred.Disabled,
		time.Now(),
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(ctx, `
	SELECT u.username, u.full_name, u.avatar_url, u.bio
	FROM users u
	WHERE u.username = $1
	`, username).Scan(
		&user.Username,
		&user.FullName,
		&user.AvatarURL,
		&user.Bio,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) FindWithCredential(ctx context.Context, username string) (*model.UserCredential, error) {
	var user model.UserCredential
	if err := r.db.QueryRow(ctx, `
	SELECT u.username, u.full_name, u.avatar_url, u.bio, c.hashed_password, c.salt, c.disabled
	FROM users u
	JOIN user_credentials c ON c.username = u.username
	WHERE u.username = $1
	`, username).Scan(
		&user.Username,
		&user.FullName,
		&user.AvatarURL,
		&user.Bio,
		&user.HashedPassword,
		&user.Salt,
		&user.Disabled,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users u WHERE u.username = $1)", username).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *userRepo) UpdateBio(ctx context.Context, username string, bio string) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET bio = $1 WHERE username = $2", bio, username)
	return err
}

func (r *userRepo) UpdateAvatar(ctx context.Context, username string, avatarURL string) error {
	_, err := r.db.Exec(ctx, "UPDATE users SET avatar_url = $1 WHERE username = $2", avatarURL, username)
	return err
}

// Profile returns the user row with follower/following counts folded
// in. Posts are attached by the service layer.
func (r *userRepo) Profile(ctx context.Context, username string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.QueryRow(ctx, `
	SELECT
	u.username, u.full_name, u.avatar_url, u.bio,
	COALESCE(fr.followers, 0) AS followers,
	COALESCE(fg.following, 0) AS following
	FROM users u
	LEFT JOIN (SELECT "user", COUNT(*) AS followers FROM followers GROUP BY "user") fr ON fr."user" = u.username
	LEFT JOIN (SELECT "user", COUNT(*) AS following FROM following GROUP BY "user") fg ON fg."user" = u.username
	WHERE u.username = $1
	`, username).Scan(
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
		&profile.Followers,
		&profile.Following,
	); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Search matches the query as a case-sensitive substring of the
// username or the full name, annotating each hit with whether the
// viewer already follows it.
func (r *userRepo) Search(ctx context.Context, query string, viewer string) ([]*model.SearchResult, error) {
	rows, err := r.db.Query(ctx, `
	SELECT
	u.username, u.full_name, u.avatar_url,
	COALESCE(f.is_following, FALSE) AS is_following
	FROM users u
	LEFT JOIN (
		SELECT following, BOOL_OR("user" = $2) AS is_following
		FROM following
		GROUP BY following
	) f ON f.following = u.username
	WHERE u.username LIKE '%' || $1 || '%' OR u.full_name LIKE '%' || $1 || '%'
	`, query, viewer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*model.SearchResult
	for rows.Next() {
		var result model.SearchResult
		if err := rows.Scan(
			&result.Username,
			&result.FullName,
			&result.AvatarURL,
			&result.IsFollowing,
		); err != nil {
			return nil, err
		}

		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
