package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	crownpages "github.com/phn-team/crown-pages-types"
	"github.com/phn-team/crown-pages-types/internal/source"
)

// Server serves the content type catalog over HTTP. It holds its own
// registry instances so supplemental definitions loaded at startup sit next
// to the compiled-in catalog without mutating package state.
type Server struct {
	sections *crownpages.Registry[*crownpages.SectionDefinition]
	pages    *crownpages.Registry[*crownpages.FullPageDefinition]
	mux      *http.ServeMux
}

// NewServer creates a Server over the given definitions.
func NewServer(sections []*crownpages.SectionDefinition, pages []*crownpages.FullPageDefinition) *Server {
	return &Server{
		sections: crownpages.NewRegistry(sections...),
		pages:    crownpages.NewRegistry(pages...),
		mux:      http.NewServeMux(),
	}
}

// RegisterRoutes registers all API routes
func (s *Server) RegisterRoutes() {
	s.mux.HandleFunc("/api/v1/bundle", s.handleBundle)
	s.mux.HandleFunc("/api/v1/version", s.handleVersion)
	s.mux.HandleFunc("/api/v1/", s.apiHandler)
}

// Start starts the HTTP server on the given port
func (s *Server) Start(port string) error {
	zap.S().Infow("starting server", "port", port,
		"sections", s.sections.Len(), "full_pages", s.pages.Len())
	return http.ListenAndServe(":"+port, s.mux)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	sections := crownpages.AllSections()
	pages := crownpages.AllFullPages()

	// Optional supplemental section definitions from disk.
	if dir := os.Getenv("DEFINITIONS_DIR"); dir != "" {
		extra, err := source.LoadDirectory(dir)
		if err != nil {
			sugar.Fatalf("failed to load definitions from %s: %v", dir, err)
		}
		sugar.Infow("loaded supplemental definitions", "dir", dir, "count", len(extra))
		sections = append(sections, extra...)
	}

	// Optional supplemental section definitions from Postgres.
	if table := os.Getenv("DEFINITIONS_TABLE"); table != "" {
		pool, err := createDatabasePool()
		if err != nil {
			sugar.Fatalf("failed to create database pool: %v", err)
		}
		defer pool.Close()

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 30))*time.Second)
		defer cancel()

		extra, err := source.NewPostgresLoader(pool, table).Load(ctx)
		if err != nil {
			sugar.Fatalf("failed to load definitions from table %s: %v", table, err)
		}
		sugar.Infow("loaded supplemental definitions", "table", table, "count", len(extra))
		sections = append(sections, extra...)
	}

	server := NewServer(sections, pages)
	server.RegisterRoutes()

	port := getEnv("PORT", "8080")
	if err := server.Start(port); err != nil {
		sugar.Fatalf("server error: %v", err)
	}
}

// createDatabasePool creates a PostgreSQL connection pool from environment
// variables.
func createDatabasePool() (*pgxpool.Pool, error) {
	connString := "postgres://" + getEnv("DB_USER", "postgres") +
		":" + getEnv("DB_PASSWORD", "") +
		"@" + getEnv("DB_HOST", "localhost") +
		":" + getEnv("DB_PORT", "5432") +
		"/" + getEnv("DB_NAME", "crownpages") +
		"?sslmode=" + getEnv("DB_SSL_MODE", "disable")

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return pool, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
