package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jessig1/life-goals-gateway/internal/adapters/driven/connectors/notion"
	"github.com/jessig1/life-goals-gateway/internal/adapters/driven/connectors/todoist"
	"github.com/jessig1/life-goals-gateway/internal/adapters/driven/corestore"
	"github.com/jessig1/life-goals-gateway/internal/adapters/driven/memory"
	redisadapter "github.com/jessig1/life-goals-gateway/internal/adapters/driven/redis"
	"github.com/jessig1/life-goals-gateway/internal/adapters/driving/http"
	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
	"github.com/jessig1/life-goals-gateway/internal/core/services"
)

var version = "dev"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	log.Printf("life-goals-gateway %s starting", version)

	// Configuration from environment
	port := getEnvInt("PORT", 8000)
	sessionSecret := getEnv("SESSION_SECRET", "development-secret-change-in-production")
	frontendBase := getEnv("FRONTEND_BASE", "http://localhost:5173")
	corsOrigins := getEnvList("CORS_ORIGINS", frontendBase)
	sameSiteNone := getEnvBool("SAME_SITE_NONE", false)
	redisURL := getEnv("REDIS_URL", "")

	todoistCreds := services.ProviderCredentials{
		ClientID:     os.Getenv("TODOIST_CLIENT_ID"),
		ClientSecret: os.Getenv("TODOIST_CLIENT_SECRET"),
		RedirectURI:  getEnv("TODOIST_REDIRECT_URI", "http://localhost:8000/api/oauth/callback"),
	}
	notionCreds := services.ProviderCredentials{
		ClientID:     os.Getenv("NOTION_CLIENT_ID"),
		ClientSecret: os.Getenv("NOTION_CLIENT_SECRET"),
		RedirectURI:  getEnv("NOTION_REDIRECT_URI", "http://localhost:8000/api/notion/callback"),
	}
	if todoistCreds.ClientID == "" || todoistCreds.ClientSecret == "" {
		log.Println("Warning: TODOIST_CLIENT_ID/TODOIST_CLIENT_SECRET not set, Todoist login will fail")
	}

	coreBase := getEnv("CORE_BASE", "http://localhost:8080")
	coreSecret := getEnv("CORE_SHARED_SECRET", "devsecret")

	// ===== Session Store (Redis if available, otherwise in-memory) =====
	var sessionStore driven.SessionStore
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		sessionStore = redisadapter.NewSessionStore(redisClient)
		log.Println("Using Redis session store")
	} else {
		sessionStore = memory.NewSessionStore()
		log.Println("Using in-memory session store")
	}

	// ===== Driven adapters =====
	todoistClient := todoist.NewClient()
	notionClient := notion.NewClient()
	coreClient := corestore.NewClient(coreBase, coreSecret)

	// ===== Services =====
	oauthService := services.NewOAuthService(services.OAuthServiceConfig{
		SessionStore: sessionStore,
		Handlers: map[domain.Provider]driven.OAuthHandler{
			domain.ProviderTodoist: todoist.NewOAuthHandler(),
			domain.ProviderNotion:  notion.NewOAuthHandler(),
		},
		Credentials: map[domain.Provider]services.ProviderCredentials{
			domain.ProviderTodoist: todoistCreds,
			domain.ProviderNotion:  notionCreds,
		},
	})
	sessionService := services.NewSessionService(sessionStore)
	taskService := services.NewTaskService(services.TaskServiceConfig{
		SessionStore: sessionStore,
		Provider:     todoistClient,
		Mirror:       coreClient,
		Logger:       slog.Default(),
	})
	notionService := services.NewNotionService(sessionStore, notionClient)

	// ===== HTTP server =====
	cfg := http.Config{
		Host:          "0.0.0.0",
		Port:          port,
		Version:       version,
		FrontendBase:  frontendBase,
		CORSOrigins:   corsOrigins,
		SessionSecret: sessionSecret,
		SameSiteNone:  sameSiteNone,
	}

	server := http.NewServer(cfg, sessionService, oauthService, taskService, notionService)

	log.Printf("API server starting on :%d", port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
