package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/content"
	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/datasources/firecrawl"
	"github.com/oneevent/oneevent-api/internal/datasources/gemini"
	"github.com/oneevent/oneevent-api/internal/datasources/httpfetch"
	"github.com/oneevent/oneevent-api/internal/datasources/mysql"
	"github.com/oneevent/oneevent-api/internal/datasources/openai"
	"github.com/oneevent/oneevent-api/internal/datasources/openrouter"
	"github.com/oneevent/oneevent-api/internal/domain"
	"github.com/oneevent/oneevent-api/internal/transport/web/router"
	"github.com/oneevent/oneevent-api/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := SetupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	selectConfig, err := setupSelectEventsConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up selection config: %w", err)
	}

	extractEventCmd, err := SetupExtractEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up extraction: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	formatter := content.NewImplicationsFormatter(selectConfig.Relevance)
	eventConfig := DefaultEventConfig()

	commands := router.Commands{
		GetProfile:        command.NewGetProfile(repo),
		UpdatePreferences: command.NewUpdatePreferences(repo, repo),
		SelectActiveEvent: command.NewSelectActiveEvent(repo, repo, repo, formatter, selectConfig),
		SelectTopEvents:   command.NewSelectTopEvents(repo, repo, formatter, selectConfig),
		ExtractDraft:      command.NewExtractDraft(extractEventCmd, repo, repo),
		ListDrafts:        command.NewListDrafts(repo),
		CreateDraft:       command.NewCreateDraft(repo),
		UpdateDraft:       command.NewUpdateDraft(repo, repo),
		DeleteDraft:       command.NewDeleteDraft(repo),
		PublishDraft:      command.NewPublishDraft(repo, repo, eventConfig),
		RejectDraft:       command.NewRejectDraft(repo, repo),
		CreateEvent:       command.NewCreateEvent(repo, eventConfig),
	}

	httpRouter, err := router.MakeRouter(
		repo,
		repo,
		commands,
		router.RSSConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			CacheMaxAge: MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		},
		GetEnvAsIntOrDefault(ctx, "EXTRACTION_RATE_PER_MINUTE", DefaultExtractionsPerMinute),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func SetupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

// SetupExtractEvent builds the extraction pipeline from the configured scraper and model drivers.
func SetupExtractEvent(ctx context.Context) (*command.ExtractEvent, error) {
	model, err := setupLanguageModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up language model: %w", err)
	}

	fetcher, err := setupPageFetcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up page fetcher: %w", err)
	}

	return command.NewExtractEvent(fetcher, model), nil
}

func setupSelectEventsConfig(ctx context.Context) (command.SelectEventsConfig, error) {
	path, ok := os.LookupEnv("RELEVANCE_CONFIG_FILE")
	if !ok || path == "" {
		return DefaultSelectEventsConfig(), nil
	}

	config, err := LoadSelectEventsConfig(path)
	if err != nil {
		return command.SelectEventsConfig{}, err
	}
	domain.LoggerFromContext(ctx).InfoContext(ctx, "loaded relevance config",
		"path", path, "min_score", config.MinScore)
	return config, nil
}

func setupLanguageModel(ctx context.Context) (datasources.LanguageModel, error) {
	switch driver := GetEnvAsStringOrDefault("LLM_DRIVER", "null"); driver {
	case "null":
		return datasources.NullLanguageModel{}, nil
	case "gemini":
		client, err := gemini.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
			GetEnvAsStringOrDefault("GEMINI_MODEL", gemini.DefaultModel),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to gemini: %w", err)
		}
		return client, nil
	case "openai":
		return openai.NewClient(openai.Config{
			APIKey: MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			Model:  GetEnvAsStringOrDefault("OPENAI_MODEL", openai.DefaultModel),
		}), nil
	case "openrouter":
		return openrouter.NewClient(openrouter.Config{
			APIKey: MustGetEnvAsString(ctx, "OPENROUTER_API_KEY"),
			Model:  GetEnvAsStringOrDefault("OPENROUTER_MODEL", openrouter.DefaultModel),
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM driver [%s]", driver)
	}
}

func setupPageFetcher(ctx context.Context) (datasources.PageFetcher, error) {
	direct := httpfetch.NewClient(httpfetch.Config{
		Timeout: GetEnvAsDurationOrDefault(ctx, "FETCH_TIMEOUT", 0),
	})

	switch driver := GetEnvAsStringOrDefault("SCRAPER_DRIVER", "none"); driver {
	case "none":
		return direct, nil
	case "firecrawl":
		return datasources.FallbackPageFetcher{
			Primary: firecrawl.NewClient(firecrawl.Config{
				APIKey:  MustGetEnvAsString(ctx, "FIRECRAWL_API_KEY"),
				Timeout: GetEnvAsDurationOrDefault(ctx, "FETCH_TIMEOUT", 0),
			}),
			Fallback: direct,
		}, nil
	default:
		return nil, fmt.Errorf("unknown scraper driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator
	var jwtSecret router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "jwt_secret":
			v, err := router.NewJWTSecretValidator(
				MustGetEnvAsString(ctx, "JWT_SECRET"),
				MustGetEnvAsString(ctx, "JWT_ISSUER"),
				MustGetEnvAsString(ctx, "JWT_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating JWT secret validator: %w", err)
			}
			jwtSecret = v
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	// The shared-secret validator claims every bearer token, so it runs last.
	if jwtSecret != nil {
		validators = append(validators, jwtSecret)
	}

	return router.NewAuthMiddleware(validators), nil
}
