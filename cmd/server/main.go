package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/di"
	"account_backend/internal/app/router"
	accounthandler "account_backend/internal/feature/accounts/transport/handler"
	accountusecase "account_backend/internal/feature/accounts/usecase"
	"account_backend/internal/platform/config"
	infradb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hasher"
	jwtmw "account_backend/internal/platform/jwt"
	infraredis "account_backend/internal/platform/redis"
)

func main() {
	// 設定読み込み（JWT_SECRET必須）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB()

	// Redis（任意。未設定・接続失敗時はキャッシュなしで稼働）
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db, cfg.CacheTTL)

	// Token service / Hasher
	tokens := jwtmw.NewService(cfg.JWTSecret, cfg.TokenTTL)
	pwHasher := hasher.NewBcryptHasher(hasher.DefaultCost)

	// Usecase
	accountUC := accountusecase.NewAccountUsecase(userRepo, pwHasher, tokens)

	// Handler
	accountH := accounthandler.NewAccountHandler(accountUC)

	// ルータ生成
	r := router.NewRouter(accountH, tokens)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
