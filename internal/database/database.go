// Package database owns the PostgreSQL connection for the whole process.
//
// The process may be invoked by a stateless host that reuses a warm
// instance across many requests, so the pool is NOT opened at startup.
// EnsureConnected opens it on first use and every later call returns
// immediately; a failed attempt leaves the "connected" flag unset so the
// next request retries. The flag is never reset once set: a pool that
// connected successfully is reused until process exit.
//
// It also wires the pgx driver into the logger/tracer stack: New Relic
// query instrumentation (nrpgx5) and, in local env, SQL logging through
// pgx tracelog bridged to zerolog.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"

	"github.com/sarhadcorp/catalog-api/internal/config"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	loggerConfig "github.com/sarhadcorp/catalog-api/internal/logger"
)

// ConnectTimeout bounds how long one connect attempt (pool creation plus
// ping) may take before it is reported as a connectivity failure.
const ConnectTimeout = 10 * time.Second

// Database is the connection manager handed to every persistence-using
// component. Its lifecycle is {uninitialized -> connected}, driven by
// EnsureConnected.
type Database struct {
	cfg           *config.Config
	log           *zerolog.Logger
	loggerService *loggerConfig.LoggerService

	mu        sync.Mutex
	pool      *pgxpool.Pool
	connected bool
}

// multiTracer chains multiple pgx tracers.
//
// pgx supports a single Tracer in ConnConfig. This adapter fans the hooks
// out so the New Relic tracer and the local SQL log tracer can both run.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements the pgx tracer interface.
//
// Called at the start of query execution; the context is threaded through
// each tracer so they can stash values for TraceQueryEnd.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements the pgx tracer interface.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// New constructs the connection manager without touching the network.
// The first EnsureConnected call performs the actual connect.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *Database {
	return &Database{
		cfg:           cfg,
		log:           logger,
		loggerService: loggerService,
	}
}

// EnsureConnected opens the connection pool on first invocation and is a
// no-op afterwards.
//
// Failure modes:
//   - missing database settings: SERVER_MISCONFIGURED (500); nothing was
//     attempted, the flag stays unset
//   - connect/ping failure: generic 500; the flag stays unset so the next
//     request retries the connect
//
// Safe for concurrent use; at most one goroutine performs the connect.
func (db *Database) EnsureConnected(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.connected {
		return nil
	}

	if db.cfg.Database.Host == "" || db.cfg.Database.Name == "" || db.cfg.Database.User == "" {
		return errs.NewServerMisconfiguredError("Database is not configured on the server")
	}

	pgxPoolConfig, err := db.poolConfig()
	if err != nil {
		db.log.Error().Err(err).Msg("failed to build pgx pool config")
		return errs.NewInternalServerError()
	}

	connectCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, pgxPoolConfig)
	if err != nil {
		db.log.Error().Err(err).Msg("failed to create pgx pool")
		return errs.NewInternalServerError()
	}

	// Ping so "connected" means a usable database, not just a parsed DSN.
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		db.log.Error().Err(err).Msg("failed to ping database")
		return errs.NewInternalServerError()
	}

	db.pool = pool
	db.connected = true
	db.log.Info().Msg("connected to the database")

	return nil
}

// Pool returns the connection pool. Nil until EnsureConnected succeeds;
// callers go through EnsureConnected first.
func (db *Database) Pool() *pgxpool.Pool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.pool
}

// poolConfig builds the pgxpool configuration: DSN, pool tuning, and the
// tracer chain.
func (db *Database) poolConfig() (*pgxpool.Config, error) {
	dsn := BuildDSN(db.cfg)

	pgxPoolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if db.cfg.Database.MaxOpenConns > 0 {
		pgxPoolConfig.MaxConns = int32(db.cfg.Database.MaxOpenConns)
	}
	if db.cfg.Database.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(db.cfg.Database.ConnMaxLifetime) * time.Second
	}
	if db.cfg.Database.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(db.cfg.Database.ConnMaxIdleTime) * time.Second
	}

	// New Relic query instrumentation, only when the agent is configured.
	if db.loggerService != nil && db.loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// In local env, log SQL through pgx tracelog + zerolog. Noisy, which is
	// why it is local-only.
	if db.cfg.Primary.Env == "local" {
		globalLevel := db.log.GetLevel()

		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: loggerConfig.GetPgxTraceLogLevel(globalLevel),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			// Chain New Relic + local SQL logging.
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	return pgxPoolConfig, nil
}

// BuildDSN assembles the postgres connection string from config.
//
// The password is URL-escaped so characters like '@' or ':' cannot break
// the URL structure; host+port are joined with net.JoinHostPort so IPv6
// addresses get their brackets.
func BuildDSN(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// Close closes the connection pool if one was ever opened.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool == nil {
		return nil
	}
	db.log.Info().Msg("closing database connection pool")
	db.pool.Close()
	db.pool = nil
	db.connected = false
	return nil
}
