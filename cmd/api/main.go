package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/middleware"
	"adboard/internal/modules/advertisement"
	"adboard/internal/modules/auth"
	jwtsvc "adboard/internal/pkg/jwt"
	"adboard/internal/repository"
)

func main() {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	adService := advertisement.NewService(adRepo, favoriteRepo)
	adHandler := advertisement.NewHandler(adService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// advertisements: list/retrieve открыты анонимам, запись и избранное
		// требуют токен — проверяется по-операционно в хендлерах
		ads := v1.Group("/")
		ads.Use(middleware.OptionalJWTAuth(j))
		{
			adHandler.RegisterRoutes(ads)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
