package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// ConnectRedis initializes a singleton Redis client from environment
// variables. Returns the client (or nil) and an error when the connection
// ping failed; a nil client is a supported degraded mode, not a fatal state.
func ConnectRedis() (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		if cfg := LoadConfig(); cfg != nil && cfg.AppEnv == "test" {
			// Tests inject their own client.
			return
		}

		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		dbNum := 0
		if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
			if v, e := strconv.Atoi(dbStr); e == nil {
				dbNum = v
			}
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       dbNum,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err = rdb.Ping(ctx).Err(); err != nil {
			redisClient = nil
			err = fmt.Errorf("redis ping failed: %w", err)
			return
		}

		redisClient = rdb
		log.Printf("connected to Redis at %s", addr)
	})
	return redisClient, err
}

// GetRedisClient returns the initialized Redis client; nil when ConnectRedis
// failed or was never called.
func GetRedisClient() *redis.Client {
	return redisClient
}

// SetRedisClientForTesting injects a client. Only for tests.
func SetRedisClientForTesting(client *redis.Client) {
	redisClient = client
}
