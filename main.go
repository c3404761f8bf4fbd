package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beka-birhanu/maze-registry/api"
	api_i "github.com/beka-birhanu/maze-registry/api/i"
	"github.com/beka-birhanu/maze-registry/api/identity"
	mazesapi "github.com/beka-birhanu/maze-registry/api/mazes"
	"github.com/beka-birhanu/maze-registry/config"
	"github.com/beka-birhanu/maze-registry/infrastructure/rankstore"
	"github.com/beka-birhanu/maze-registry/infrastructure/repo"
	"github.com/beka-birhanu/maze-registry/infrastructure/token"
	"github.com/beka-birhanu/maze-registry/logging"
	"github.com/beka-birhanu/maze-registry/mazefile"
	"github.com/beka-birhanu/maze-registry/service"
	"github.com/beka-birhanu/maze-registry/service/i"
)

// Global variables for dependencies
var (
	appLogger   *logging.PrefixLogger
	mongoClient *mongo.Client
	redisClient *redis.Client

	userRepo i.UserRepo
	mazeRepo i.MazeRepo

	jwtTokenizer i.Tokenizer
	authService  i.Authenticator

	codec       *mazefile.Codec
	leaderboard i.Leaderboard
	catalog     i.Catalog

	authController    api_i.Controller
	catalogController api_i.Controller
	router            *api.Router
)

func initLogger() {
	var err error
	appLogger, err = logging.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create application logger: %v\n", err)
		os.Exit(1)
	}
}

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

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos() {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
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

func initCodec() {
	codecLogger, err := logging.New("MAZE-FILE", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze file logger: %v", err))
		os.Exit(1)
	}

	codec = mazefile.New(codecLogger)
	appLogger.Info("Maze file codec initialized")
}

func initLeaderboard() {
	var err error
	leaderboard, err = rankstore.NewRedisLeaderboard(redisClient, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initCatalog() {
	catalogLogger, err := logging.New("CATALOG", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating catalog logger: %v", err))
		os.Exit(1)
	}

	catalog, err = service.NewCatalog(service.CatalogConfig{
		MazeRepo:    mazeRepo,
		Codec:       codec,
		Leaderboard: leaderboard,
		Logger:      catalogLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating catalog service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Catalog service initialized")
}

func initCatalogController() {
	var err error
	catalogController, err = mazesapi.NewCatalogController(catalog)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating catalog controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Catalog controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, catalogController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)
	initLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error(fmt.Sprintf("Disconnecting MongoDB: %v", err))
		}
	}()
	initRedis(ctx)
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error(fmt.Sprintf("Closing Redis client: %v", err))
		}
	}()

	initRepos()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initCodec()
	initLeaderboard()
	initCatalog()
	initCatalogController()
	initRouter()

	appLogger.Info(fmt.Sprintf("Starting REST API on %s:%d", config.Envs.HostIP, config.Envs.RESTPort))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("REST API stopped: %v", err))
		os.Exit(1)
	}
}
