package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-treasure/api"
	huntapi "github.com/beka-birhanu/vinom-treasure/api/hunt"
	api_i "github.com/beka-birhanu/vinom-treasure/api/i"
	"github.com/beka-birhanu/vinom-treasure/api/identity"
	"github.com/beka-birhanu/vinom-treasure/config"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/cache"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/logger"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/repo"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-treasure/infrastruture/token"
	"github.com/beka-birhanu/vinom-treasure/service"
	"github.com/beka-birhanu/vinom-treasure/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	explorerRepo   *repo.ExplorerRepo
	huntRepo       *repo.HuntRepo
	huntCache      i.HuntCache
	huntLocker     i.Locker
	leaderboard    i.Leaderboard
	huntService    i.HuntService
	huntController api_i.Controller
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	authController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	explorerRepo = repo.NewExplorerRepo(client, config.Envs.DBName, "explorers")
	if err := explorerRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating explorer indexes: %v", err))
		os.Exit(1)
	}

	huntRepo = repo.NewHuntRepo(client, config.Envs.DBName, "hunts")
	if err := huntRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Explorer and hunt repositories initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRedisStores() {
	var err error
	huntCache, err = cache.NewRedisHuntCache(redisClient, "hunt")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt cache: %v", err))
		os.Exit(1)
	}

	huntLocker, err = cache.NewRedsyncLocker(redisClient, 0)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt locker: %v", err))
		os.Exit(1)
	}

	leaderboard, err = sortedstorage.NewRedisLeaderboard(redisClient, "hunt:leaderboard")
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Hunt cache, locker and leaderboard initialized")
}

func initHuntService() {
	huntLogger, err := logger.New("HUNT", logger.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt logger: %v", err))
		os.Exit(1)
	}

	huntService, err = service.NewHuntService(service.HuntConfig{
		Hunts:             huntRepo,
		Explorers:         explorerRepo,
		Cache:             huntCache,
		Locker:            huntLocker,
		Leaderboard:       leaderboard,
		Logger:            huntLogger,
		CacheTTL:          time.Duration(config.Envs.CacheTTLSeconds) * time.Second,
		MaxRecursiveItems: config.Envs.MaxRecursiveItems,
		MaxTableCells:     config.Envs.MaxTableCells,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Hunt service initialized")
}

func initHuntController() {
	apiLogger, err := logger.New("API", logger.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating api logger: %v", err))
		os.Exit(1)
	}

	huntController, err = huntapi.NewHuntController(huntService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating hunt controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Hunt controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(explorerRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, huntController},
		AuthorizationMiddleware: identity.Authorize(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", logger.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRepos(ctx, mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initRedisStores()

	initHuntService()
	initHuntController()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
