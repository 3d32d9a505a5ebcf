// Command wall runs the client-side interaction engine: it restores the
// session, seeds the demo feed, and keeps the update simulator running
// until interrupted.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eventwall/internal/authclient"
	"eventwall/internal/config"
	"eventwall/internal/feed"
	"eventwall/internal/notifications"
	"eventwall/internal/observability"
	"eventwall/internal/seed"
	"eventwall/internal/session"
	"eventwall/internal/simulator"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.GlobalLogger
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := openRedis(cfg.RedisURL)

	repo := session.NewRedisRepository(rdb, cfg.SessionKey)
	auth := authclient.New(cfg.AuthBaseURL)
	sessions := session.New(ctx, repo, auth)

	feedStore := feed.NewStore()
	seed.DemoFeed(feedStore)

	center := notifications.NewCenter(notifications.NewNotifier(rdb))

	sim := simulator.New(
		feedStore,
		center,
		time.Duration(cfg.SimTickSeconds)*time.Second,
		simulator.Bernoulli(cfg.SimLikeProb, time.Now().UnixNano()),
		sessions.Authenticated,
	)
	if err := sim.Start(ctx); err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}

	attrs := []any{
		slog.String("state", string(sessions.State())),
		slog.Int("posts", feedStore.Len()),
		slog.Int("tick_seconds", cfg.SimTickSeconds),
	}
	if user := sessions.User(); user != nil {
		attrs = append(attrs, slog.String("user", user.DisplayName()))
	}
	logger.Info("event wall engine running", attrs...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	sim.Stop()
	if rdb != nil {
		_ = rdb.Close()
	}
}

// openRedis connects to Redis, accepting either a bare address or a
// redis:// URL. A failed connection degrades to a nil client: the
// session becomes ephemeral and notification fan-out is skipped.
func openRedis(addr string) *redis.Client {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("Redis connection warning: invalid REDIS_URL %q: %v (continuing without persistence)", addr, err)
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without persistence)", err)
		return nil
	}
	return client
}
