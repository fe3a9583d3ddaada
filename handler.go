package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	db *pgxpool.Pool
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// querier is the read side shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryOne runs sql and scans the first row into T by column name.
// pgx.ErrNoRows comes back unlogged since callers map it to 404 or a fallback.
func queryOne[T any](db querier, ctx context.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := db.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryOne] query: %v", err)
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		log.Printf("[queryOne] scan: %v", err)
	}
	return result, err
}

// queryMany runs sql and scans every row into []T by column name.
func queryMany[T any](db querier, ctx context.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := db.Query(ctx, sql, args)
	if err != nil {
		log.Printf("[queryMany] query: %v", err)
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("[queryMany] scan: %v", err)
	}
	return results, err
}

// apiError writes {"error": message}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newDBPool parses dbURL, opens a pool and pings it within timeout.
func newDBPool(ctx context.Context, dbURL string, timeout time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB_URL: %w", err)
	}
	// Simple protocol sidesteps "cached plan must not change result type"
	// after migrations alter a table under a live pool.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public routes
	router.POST("/api/login", h.login)
	router.POST("/api/targets/preview", h.previewTargets)
	router.POST("/api/exercise/estimate", h.estimateExercise)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/profile", h.getProfile)
	api.PATCH("/profile", h.patchProfile)
	api.GET("/targets", h.getTargets)
	api.GET("/targets/report", h.getTargetsReport)
	api.GET("/calorie-log/daily", h.getDailySummary)
	api.GET("/calorie-log/week-summary", h.getWeekSummary)
	api.GET("/calorie-log/progress", h.getProgress)
	api.GET("/calorie-log/earliest-date", h.getEarliestLogDate)
	api.POST("/calorie-log/items", h.createCalorieLogItem)
	api.PUT("/calorie-log/items/:id", h.updateCalorieLogItem)
	api.DELETE("/calorie-log/items/:id", h.deleteCalorieLogItem)
	api.POST("/calorie-log/exercise", h.logExercise)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
}

// newServer builds the full HTTP handler: gin router with rate limiting,
// wrapped by CORS so preflight requests never reach the limiter or auth.
func newServer(cfg appConfig, h *Handler) http.Handler {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetTrustedProxies(nil)
	router.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	h.registerRoutes(router)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "Retry-After"},
	}).Handler(router)
}
