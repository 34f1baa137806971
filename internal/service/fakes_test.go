package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"github.com/lybamughees/mobile-project/internal/repository/postgres"
	"github.com/lybamughees/mobile-project/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
)

// fakeStore is an in-memory stand-in for the postgres repositories,
// faithful to their contracts (pgx.ErrNoRows on misses, dual follow
// edges kept in lockstep, append-only activity).
type fakeStore struct {
	mu sync.Mutex

	users     map[string]model.User
	creds     map[string]model.Credential
	following map[string][]string
	followers map[string][]string
	posts     map[uuid.UUID]model.Post
	images    map[uuid.UUID]string
	locations map[uuid.UUID]model.Location
	likes     map[uuid.UUID][]string
	comments  []model.Comment
	activity  []fakeActivityRow
}

type fakeActivityRow struct {
	affected string
	event    model.ActivityEvent
	at       time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]model.User),
		creds:     make(map[string]model.Credential),
		following: make(map[string][]string),
		followers: make(map[string][]string),
		posts:     make(map[uuid.UUID]model.Post),
		images:    make(map[uuid.UUID]string),
		locations: make(map[uuid.UUID]model.Location),
		likes:     make(map[uuid.UUID][]string),
	}
}

func newFakeRepository(s *fakeStore) *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:     s,
			Follow:   s,
			Post:     fakePosts{s},
			Activity: s,
		},
		Redis: &redisrepo.RedisRepository{Default: fakeRedis{}},
	}
}

func (s *fakeStore) seedUser(username, fullName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = model.User{Username: username, FullName: fullName}
}

// --- postgres.User ---

func (s *fakeStore) Create(ctx context.Context, user model.User, cred model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
	s.creds[cred.Username] = cred
	return nil
}

func (s *fakeStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (s *fakeStore) FindWithCredential(ctx context.Context, username string) (*model.UserCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cred, ok := s.creds[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &model.UserCredential{
		User:           user,
		HashedPassword: cred.HashedPassword,
		Salt:           cred.Salt,
		Disabled:       cred.Disabled,
	}, nil
}

func (s *fakeStore) Exists(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[username]
	return ok, nil
}

func (s *fakeStore) UpdateBio(ctx context.Context, username string, bio string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[username]
	user.Bio = &bio
	s.users[username] = user
	return nil
}

func (s *fakeStore) UpdateAvatar(ctx context.Context, username string, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[username]
	user.AvatarURL = &avatarURL
	s.users[username] = user
	return nil
}

func (s *fakeStore) Profile(ctx context.Context, username string) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &model.Profile{
		Username:  user.Username,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		Followers: int64(len(s.followers[username])),
		Following: int64(len(s.following[username])),
	}, nil
}

func (s *fakeStore) Search(ctx context.Context, query string, viewer string) ([]*model.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var results []*model.SearchResult
	for _, user := range s.users {
		if !strings.Contains(user.Username, query) && !strings.Contains(user.FullName, query) {
			continue
		}
		results = append(results, &model.SearchResult{
			Username:    user.Username,
			FullName:    user.FullName,
			AvatarURL:   user.AvatarURL,
			IsFollowing: containsString(s.following[viewer], user.Username),
		})
	}
	return results, nil
}

// --- postgres.Follow ---

func (s *fakeStore) Follow(ctx context.Context, follower string, followee string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if containsString(s.following[follower], followee) {
		return false, nil
	}
	s.following[follower] = append(s.following[follower], followee)
	s.followers[followee] = append(s.followers[followee], follower)
	return true, nil
}

func (s *fakeStore) Followers(ctx context.Context, username string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.followers[username]...), nil
}

func (s *fakeStore) Following(ctx context.Context, username string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.following[username]...), nil
}

func (s *fakeStore) FollowerCount(ctx context.Context, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.followers[username])), nil
}

func (s *fakeStore) FollowingCount(ctx context.Context, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.following[username])), nil
}

func (s *fakeStore) IsFollowing(ctx context.Context, observer string, subject string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsString(s.following[observer], subject), nil
}

// --- postgres.Post ---

// fakePosts exists because both the user and post repositories name
// their insert Create; its own Create shadows the promoted one.
type fakePosts struct {
	*fakeStore
}

func (f fakePosts) Create(ctx context.Context, post model.Post, imageURL *string, location *model.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts[post.ID] = post
	if imageURL != nil {
		f.images[post.ID] = *imageURL
	}
	if location != nil {
		f.locations[post.ID] = *location
	}
	return nil
}

func (s *fakeStore) Find(ctx context.Context, postID uuid.UUID, viewer string) (*model.PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	view := s.viewLocked(post, viewer)
	return &view, nil
}

func (s *fakeStore) FindByAuthor(ctx context.Context, author string, viewer string) ([]*model.PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var views []*model.PostView
	for _, post := range s.posts {
		if post.Username != author {
			continue
		}
		view := s.viewLocked(post, viewer)
		views = append(views, &view)
	}
	sortViewsNewestFirst(views)
	return views, nil
}

func (s *fakeStore) Feed(ctx context.Context, viewer string) ([]*model.PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var views []*model.PostView
	for _, post := range s.posts {
		if !containsString(s.following[viewer], post.Username) {
			continue
		}
		view := s.viewLocked(post, viewer)
		views = append(views, &view)
	}
	sortViewsNewestFirst(views)
	return views, nil
}

func (s *fakeStore) Author(ctx context.Context, postID uuid.UUID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return post.Username, nil
}

// ToggleLike is deliberately permissive about unknown posts so tests
// can exercise the author-lookup-miss path in activity recording.
func (s *fakeStore) ToggleLike(ctx context.Context, postID uuid.UUID, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if containsString(s.likes[postID], username) {
		s.likes[postID] = removeString(s.likes[postID], username)
		return false, nil
	}
	s.likes[postID] = append(s.likes[postID], username)
	return true, nil
}

func (s *fakeStore) Likes(ctx context.Context, postID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.likes[postID]...), nil
}

func (s *fakeStore) CreateComment(ctx context.Context, comment model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, comment)
	return nil
}

func (s *fakeStore) Comments(ctx context.Context, postID uuid.UUID) ([]*model.CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var views []*model.CommentView
	for _, comment := range s.comments {
		if comment.PostID != postID {
			continue
		}
		user := s.users[comment.Username]
		views = append(views, &model.CommentView{
			ID:         comment.ID,
			PostID:     comment.PostID,
			Username:   comment.Username,
			FullName:   user.FullName,
			AvatarURL:  user.AvatarURL,
			Content:    comment.Content,
			DatePosted: comment.DatePosted,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DatePosted.After(views[j].DatePosted)
	})
	return views, nil
}

// --- postgres.Activity ---

func (s *fakeStore) Append(ctx context.Context, affectedUser string, event model.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activity = append(s.activity, fakeActivityRow{affected: affectedUser, event: event, at: time.Now()})
	return nil
}

func (s *fakeStore) ListByUser(ctx context.Context, username string) ([]*model.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []*model.ActivityEntry
	for i := len(s.activity) - 1; i >= 0; i-- {
		row := s.activity[i]
		if row.affected != username {
			continue
		}
		actor := s.users[row.event.ActingUser()]
		entries = append(entries, &model.ActivityEntry{
			ActionUser: row.event.ActingUser(),
			Action:     row.event.Kind(),
			FullName:   actor.FullName,
			AvatarURL:  actor.AvatarURL,
			PostID:     row.event.PostID(),
			Datetime:   row.at,
		})
	}
	return entries, nil
}

func (s *fakeStore) viewLocked(post model.Post, viewer string) model.PostView {
	user := s.users[post.Username]
	view := model.PostView{
		ID:         post.ID,
		Username:   post.Username,
		FullName:   user.FullName,
		AvatarURL:  user.AvatarURL,
		Content:    post.Content,
		DatePosted: post.DatePosted,
		Comments:   0,
		Likes:      int64(len(s.likes[post.ID])),
		Liked:      containsString(s.likes[post.ID], viewer),
	}
	for _, comment := range s.comments {
		if comment.PostID == post.ID {
			view.Comments++
		}
	}
	if imageURL, ok := s.images[post.ID]; ok {
		view.ImageURL = &imageURL
	}
	if location, ok := s.locations[post.ID]; ok {
		view.Latitude = &location.Latitude
		view.Longitude = &location.Longitude
	}
	return view
}

func sortViewsNewestFirst(views []*model.PostView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DatePosted.After(views[j].DatePosted)
	})
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	var out []string
	for _, item := range list {
		if item != s {
			out = append(out, item)
		}
	}
	return out
}

// fakeRedis always misses so services fall through to the fake store.
type fakeRedis struct{}

func (fakeRedis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, nil)
}
