package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lybamughees/mobile-project/internal/avatar"
	"github.com/lybamughees/mobile-project/internal/dto"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/model"
	"github.com/lybamughees/mobile-project/internal/repository"
	"github.com/lybamughees/mobile-project/internal/repository/redisrepo"
	"github.com/lybamughees/mobile-project/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	ACCESS_TOKEN_EXPIRY = time.Minute * 300
	SESSION_USER_TTL    = time.Minute * 15
)

type authService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	media     *media.Store
	avatars   *avatar.Client
	community string
}

func newAuthService(logger *zap.Logger, repo *repository.Repository, mediaStore *media.Store, avatars *avatar.Client, community string) Auth {
	return &authService{
		logger:    logger,
		repo:      repo,
		media:     mediaStore,
		avatars:   avatars,
		community: community,
	}
}

// normalizeUsername lower-cases the name and appends the community
// suffix unless the name already carries it.
func (s *authService) normalizeUsername(username string) string {
	username = strings.ToLower(strings.TrimSpace(username))
	if !strings.Contains(username, "@"+s.community) {
		username = username + "@" + s.community
	}
	return username
}

func newSalt() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// SignUp creates the user row and its credential atomically, after
// generating a default avatar for the display name.
func (s *authService) SignUp(ctx context.Context, signUpDto dto.SignUpDto) error {
	username := s.normalizeUsername(signUpDto.Username)

	exists, err := s.repo.Postgres.User.Exists(ctx, username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check user(%s) existence in postgres: %s", username, err.Error())
		return ErrInternal
	}
	if exists {
		return ErrUsernameTaken
	}

	salt, err := newSalt()
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate salt: %s", err.Error())
		return ErrInternal
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(signUpDto.Password+salt), 10)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return ErrInternal
	}

	image, err := s.avatars.Generate(ctx, signUpDto.FullName)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate avatar for user(%s): %s", username, err.Error())
		return ErrInternal
	}

	avatarURL := username + ".png"
	if err := s.media.Save(avatarURL, bytes.NewReader(image)); err != nil {
		s.logger.Sugar().Errorf("failed to save avatar for user(%s): %s", username, err.Error())
		return ErrInternal
	}

	user := model.User{
		Username:  username,
		FullName:  signUpDto.FullName,
		AvatarURL: &avatarURL,
	}
	cred := model.Credential{
		Username:       username,
		HashedPassword: string(passwordHash),
		Salt:           salt,
	}
	if err := s.repo.Postgres.User.Create(ctx, user, cred); err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) in postgres: %s", username, err.Error())
		return ErrInternal
	}

	return nil
}

// SignIn verifies the password against the stored salted hash and
// issues a bearer token with the username as subject.
func (s *authService) SignIn(ctx context.Context, signInDto dto.SignInDto) (string, error) {
	username := strings.ToLower(strings.TrimSpace(signInDto.Username))

	user, err := s.repo.Postgres.User.FindWithCredential(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from postgres: %s", username, err.Error())
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(signInDto.Password+user.Salt)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(utils.GenerateJWTDto{
		Method:  jwt.SigningMethodHS256,
		Secret:  []byte(os.Getenv("JWT_SECRET")),
		Subject: user.Username,
		Expiry:  ACCESS_TOKEN_EXPIRY,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt: %s", err.Error())
		return "", ErrInternal
	}

	return token, nil
}

// UserFromToken resolves a bearer token to its user, caching the lookup
// since every authenticated request goes through here. Any malformed,
// expired or subject-less token fails the same way.
func (s *authService) UserFromToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := utils.DecodeJWT(token, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, ErrUnauthorized
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, ErrUnauthorized
	}

	userCache, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, redisrepo.SessionUserKey(username))
	if err == nil {
		return userCache, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get session user(%s) from redis: %s", username, err.Error())
	}

	user, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUnauthorized
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.SessionUserKey(username), user, SESSION_USER_TTL); err != nil {
		s.logger.Sugar().Errorf("failed to set session user(%s) in redis: %s", username, err.Error())
	}

	return user, nil
}
