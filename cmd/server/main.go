package main // Entry point

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/config"
	"github.com/petfriendly/petfriendly/internal/database"
	"github.com/petfriendly/petfriendly/internal/event"
	"github.com/petfriendly/petfriendly/internal/handler"
	"github.com/petfriendly/petfriendly/internal/localstore"
	appmw "github.com/petfriendly/petfriendly/internal/middleware"
	"github.com/petfriendly/petfriendly/internal/queue"
	"github.com/petfriendly/petfriendly/internal/repository"
	"github.com/petfriendly/petfriendly/internal/router"
	"github.com/petfriendly/petfriendly/internal/service"
	"github.com/petfriendly/petfriendly/internal/store"
	"github.com/petfriendly/petfriendly/internal/weather"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	local, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		log.Fatalf("localstore: %v", err)
	}

	// Repositories (the remote side of every store).
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	reviews := repository.NewReviewRepo(db)
	likes := repository.NewLikeRepo(db)
	comments := repository.NewCommentRepo(db)
	chats := repository.NewChatRepo(db)
	notifications := repository.NewNotificationRepo(db)

	// Stores: local/remote sync plus the change bus.
	bus := event.NewBus()
	var announcer store.ReservationAnnouncer
	if cfg.RabbitURL != "" {
		announcer = service.NewReservationPublisher(cfg.RabbitURL)
	}
	favStore := store.NewFavoriteStore(favorites, local, bus)
	revStore := store.NewReviewStore(reviews, likes, comments, local, bus)
	cmtStore := store.NewCommentStore(comments, local, bus)
	resStore := store.NewReservationStore(local, bus, announcer)
	prefStore := store.NewPreferenceStore(local)
	notifStore := store.NewNotificationStore(notifications, local, bus)

	// Background consumer mirrors confirmations into logs/reservation.log
	// and the booking user's notification center.
	if cfg.RabbitURL != "" {
		go func() {
			if err := queue.StartReservationConsumer(cfg.RabbitURL, notifStore); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()

	// Redis-backed rate limiting and response caching; both degrade to
	// pass-through when Redis is unavailable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	e.Use(appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cached := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.Register(e, router.Handlers{
		Auth:           handler.NewAuthHandler(cfg, users, tokens),
		Accommodations: handler.NewAccommodationHandler(),
		Favorites:      handler.NewFavoriteHandler(favStore),
		Reviews:        handler.NewReviewHandler(revStore, cmtStore),
		Reservations:   handler.NewReservationHandler(resStore),
		Chat:           handler.NewChatHandler(chats),
		Weather:        handler.NewWeatherHandler(weather.New(cfg.WeatherBaseURL, cfg.WeatherAPIKey)),
		Preferences:    handler.NewPreferenceHandler(prefStore),
		Notifications:  handler.NewNotificationHandler(notifStore),
	}, cfg.JWTSecret, cached)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
