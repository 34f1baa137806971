package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lybamughees/mobile-project/internal/model"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

// postViewSelect folds derived comment/like counts and the viewer's
// liked flag into each post row. $1 is the viewer username; callers
// append their own joins and WHERE clause.
const postViewSelect = `
	SELECT
	p.post_id, p.username, u.full_name, u.avatar_url, p.content, p.date_posted,
	pi.image_url, pl.latitude, pl.longitude,
	COALESCE(c.comments, 0) AS comments,
	COALESCE(l.likes, 0) AS likes,
	COALESCE(lk.liked, FALSE) AS liked
	FROM posts p
	JOIN users u ON u.username = p.username
	LEFT JOIN (SELECT post_id, COUNT(*) AS comments FROM comments GROUP BY post_id) c ON c.post_id = p.post_id
	LEFT JOIN (SELECT post_id, COUNT(*) AS likes FROM likes GROUP BY post_id) l ON l.post_id = p.post_id
	LEFT JOIN (SELECT post_id, BOOL_OR(username = $1) AS liked FROM likes GROUP BY post_id) lk ON lk.post_id = p.post_id
	LEFT JOIN post_images pi ON pi.post_id = p.post_id
	LEFT JOIN post_locations pl ON pl.post_id = p.post_id
`

// Create inserts the post row plus its optional image and location
// rows in one transaction; a failed sub-insert rolls the post back too.
func (r *postRepo) Create(ctx context.Context, post model.Post, imageURL *string, location *model.Location) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		"INSERT INTO posts(post_id, username, content, date_posted) VALUES($1, $2, $3, $4)",
		post.ID,
		post.Username,
		post.Content,
		post.DatePosted,
	); err != nil {
		return err
	}

	if imageURL != nil {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO post_images(post_id, image_url) VALUES($1, $2)",
			post.ID,
			*imageURL,
		); err != nil {
			return err
		}
	}

	if location != nil {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO post_locations(post_id, latitude, longitude) VALUES($1, $2, $3)",
			post.ID,
			location.Latitude,
			location.Longitude,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postRepo) Find(ctx context.Context, postID uuid.UUID, viewer string) (*model.PostView, error) {
	var view model.PostView
	if err := r.db.QueryRow(ctx, postViewSelect+" WHERE p.post_id = $2", viewer, postID).Scan(
		&view.ID,
		&view.Username,
		&view.FullName,
		&view.AvatarURL,
		&view.Content,
		&view.DatePosted,
		&view.ImageURL,
		&view.Latitude,
		&view.Longitude,
		&view.Comments,
		&view.Likes,
		&view.Liked,
	); err != nil {
		return nil, err
	}

	return &view, nil
}

func (r *postRepo) FindByAuthor(ctx context.Context, author string, viewer string) ([]*model.PostView, error) {
	rows, err := r.db.Query(
		ctx,
		postViewSelect+" WHERE p.username = $2 ORDER BY p.date_posted DESC",
		viewer,
		author,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostViews(rows)
}

// Feed returns every post authored by someone the viewer follows,
// newest first. A viewer who follows no one gets an empty feed.
func (r *postRepo) Feed(ctx context.Context, viewer string) ([]*model.PostView, error) {
	rows, err := r.db.Query(
		ctx,
		postViewSelect+`
		JOIN following f ON f.following = p.username
		WHERE f."user" = $2
		ORDER BY p.date_posted DESC`,
		viewer,
		viewer,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPostViews(rows)
}

func scanPostViews(rows pgx.Rows) ([]*model.PostView, error) {
	var views []*model.PostView
	for rows.Next() {
		var view model.PostView
		if err := rows.Scan(
			&view.ID,
			&view.Username,
			&view.FullName,
			&view.AvatarURL,
			&view.Content,
			&view.DatePosted,
			&view.ImageURL,
			&view.Latitude,
			&view.Longitude,
			&view.Comments,
			&view.Likes,
			&view.Liked,
		); err != nil {
			return nil, err
		}

		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func (r *postRepo) Author(ctx context.Context, postID uuid.UUID) (string, error) {
	var author string
	if err := r.db.QueryRow(ctx, "SELECT p.username FROM posts p WHERE p.post_id = $1", postID).Scan(&author); err != nil {
		return "", err
	}

	return author, nil
}

// ToggleLike flips the like row for (post, user): delete it if present,
// insert it otherwise. Both branches are single conditional statements,
// so concurrent identical toggles cannot double-insert. Returns whether
// the post is liked after the call.
func (r *postRepo) ToggleLike(ctx context.Context, postID uuid.UUID, username string) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM likes WHERE post_id = $1 AND username = $2",
		postID,
		username,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.db.Exec(
		ctx,
		"INSERT INTO likes(post_id, username) VALUES($1, $2) ON CONFLICT DO NOTHING",
		postID,
		username,
	); err != nil {
		return false, err
	}

	return true, nil
}

func (r *postRepo) Likes(ctx context.Context, postID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, "SELECT l.username FROM likes l WHERE l.post_id = $1", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}

		usernames = append(usernames, username)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usernames, nil
}

func (r *postRepo) CreateComment(ctx context.Context, comment model.Comment) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO comments(comment_id, post_id, username, content, date_posted) VALUES($1, $2, $3, $4, $5)",
		comment.ID,
		comment.PostID,
		comment.Username,
		comment.Content,
		comment.DatePosted,
	)
	return err
}

func (r *postRepo) Comments(ctx context.Context, postID uuid.UUID) ([]*model.CommentView, error) {
	rows, err := r.db.Query(ctx, `
	SELECT c.comment_id, c.post_id, c.username, u.full_name, u.avatar_url, c.content, c.date_posted
	FROM comments c
	JOIN users u ON u.username = c.username
	WHERE c.post_id = $1
	ORDER BY c.date_posted DESC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.CommentView
	for rows.Next() {
		var comment model.CommentView
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Username,
			&comment.FullName,
			&comment.AvatarURL,
			&comment.Content,
			&comment.DatePosted,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
