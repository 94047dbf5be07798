package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"creatorlab/internal/cache"
	"creatorlab/internal/config"
	"creatorlab/internal/llm"
	"creatorlab/internal/logger"
	"creatorlab/internal/mockdata"
	"creatorlab/internal/repository"
	"creatorlab/internal/service"
	"creatorlab/internal/transcript"
	"creatorlab/internal/transport/rest"
	"creatorlab/internal/transport/ws"
	"creatorlab/internal/validation"
)

const contentCacheTTL = 5 * time.Minute

// App owns every long-lived dependency of the server
type App struct {
	Store    repository.ContentStore
	Feedback *service.FeedbackService
	Contents *service.ContentService
	Insights *service.InsightService
	Auth     *service.AuthService
	Hub      *ws.Hub
	Router   http.Handler

	log     *logger.Logger
	mongo   *mongo.Client
	redis   *redis.Client
	gemini  *llm.GeminiProvider
	closers []func(context.Context) error
}

// New wires the application from configuration. Without MONGO_URI the
// in-memory store seeded with the sample corpus is used; without a model
// credential every feedback request degrades to canned feedback.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{log: log}

	corpus, err := mockdata.Load()
	if err != nil {
		return nil, fmt.Errorf("load sample corpus: %w", err)
	}

	if err := a.connect(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, err
	}

	if a.mongo != nil {
		db := a.mongo.Database(cfg.MongoDB)
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			log.Warn("failed to ensure content indexes", "error", err)
		}
		a.Store = repository.NewContentRepo(db)
		log.Info("using mongo content store", "db", cfg.MongoDB)
	} else {
		a.Store = repository.NewMemoryStore(corpus.CloneContents())
		log.Info("using in-memory content store", "seeded", len(corpus.Contents))
	}
	if a.redis != nil {
		a.Store = cache.NewContentCache(a.Store, a.redis, contentCacheTTL, log)
	}

	v := validation.New()
	ai := cfg.AI
	if ai == nil {
		ai = config.DefaultAIConfig()
	}

	var provider llm.Provider
	if ai.IsEnabled() {
		a.gemini, err = llm.NewGeminiProvider(ctx, ai.APIKey, ai.Model)
		if err != nil {
			// a broken client is treated like a missing credential
			log.Warn("gemini client unavailable, feedback will degrade", "error", err)
		} else {
			provider = a.gemini
		}
	}
	client := llm.NewClient(provider, v, ai.ModelTimeout(), log)
	hasCredential := provider != nil
	log.Info("model configuration", "model", ai.Model, "credential", hasCredential)

	language := service.DefaultLanguage
	fetcher := transcript.NewFetcher(
		transcript.NewYouTubeService(&http.Client{Timeout: ai.TranscriptFetchTimeout()}, transcript.CaptionLanguages(language)...),
		language,
		ai.TranscriptFetchTimeout(),
		log,
	)
	pipeline := service.NewFeedbackPipeline(v, fetcher, client, language, log)

	a.Hub = ws.NewHub(log)
	a.Feedback = service.NewFeedbackService(service.FeedbackPolicy{
		HasCredential: hasCredential,
		Pipeline:      pipeline,
		Canned:        corpus.CannedFeedback(),
		Logger:        log,
	})
	a.Contents = service.NewContentService(a.Store, v, a.Hub, log)
	a.Insights = service.NewInsightService(service.InsightConfig{
		HasCredential: hasCredential,
		Validator:     v,
		Model:         client,
		Store:         a.Store,
		Corpus:        corpus,
		Language:      language,
		Logger:        log,
	})
	a.Auth = service.NewAuthService(cfg.JWTSecret, v)

	a.Router = rest.NewRouter(&rest.Container{
		AuthService:     a.Auth,
		FeedbackService: a.Feedback,
		ContentService:  a.Contents,
		InsightService:  a.Insights,
		WSHub:           a.Hub,
		Logger:          log,
		CORSOrigins:     cfg.CORSOrigins,
	})
	return a, nil
}

// connect opens the optional backing services and pings them concurrently
func (a *App) connect(ctx context.Context, cfg *config.Config) error {
	if cfg.UseMongo() {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		a.mongo = client
	}
	if cfg.UseRedis() {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	g, gctx := errgroup.WithContext(pingCtx)
	if a.mongo != nil {
		g.Go(func() error {
			if err := a.mongo.Ping(gctx, nil); err != nil {
				return fmt.Errorf("ping mongo: %w", err)
			}
			a.log.Info("connected to mongo")
			return nil
		})
	}
	if a.redis != nil {
		g.Go(func() error {
			if err := a.redis.Ping(gctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			a.log.Info("connected to redis", "addr", cfg.RedisAddr)
			return nil
		})
	}
	return g.Wait()
}

// OnClose registers an extra shutdown hook, run before the backing services close
func (a *App) OnClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// Close releases every resource. Safe to call on a partially built App.
func (a *App) Close(ctx context.Context) {
	for _, fn := range a.closers {
		if err := fn(ctx); err != nil {
			a.log.Warn("shutdown hook failed", "error", err)
		}
	}
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.gemini != nil {
		_ = a.gemini.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.log.Warn("mongo disconnect failed", "error", err)
		}
	}
}
