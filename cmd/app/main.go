package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lybamughees/mobile-project/internal/avatar"
	"github.com/lybamughees/mobile-project/internal/handler"
	"github.com/lybamughees/mobile-project/internal/media"
	"github.com/lybamughees/mobile-project/internal/repository"
	"github.com/lybamughees/mobile-project/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Fatalf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	db, err := pgxpool.New(ctx, os.Getenv("POSTGRES_URL"))
	if err != nil {
		logger.Sugar().Fatalf("failed to create postgres pool: %s", err.Error())
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Fatalf("failed to ping postgres: %s", err.Error())
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.addr"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Sugar().Fatalf("failed to ping redis: %s", err.Error())
	}

	mediaStore, err := media.NewStore(viper.GetString("media.root"))
	if err != nil {
		logger.Sugar().Fatalf("failed to initialize media store: %s", err.Error())
	}

	avatars := avatar.NewClient(viper.GetString("avatar.endpoint"))

	repo := repository.New(db, rdb)
	services := service.New(logger, repo, mediaStore, avatars, viper.GetString("community"))
	handlers := handler.New(services, mediaStore)

	if err := handlers.InitRoutes().Run(":" + viper.GetString("port")); err != nil {
		logger.Sugar().Fatalf("failed to run http server: %s", err.Error())
	}
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
