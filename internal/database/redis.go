package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/surawits/vibeLink/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

var ErrCacheDisabled = errors.New("redis cache not available")

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Link and policy caching will be disabled.", err)
		Redis = nil
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// Caching. All helpers degrade to ErrCacheDisabled when Redis is down so
// callers fall through to the database.

func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return ErrCacheDisabled
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return ErrCacheDisabled
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func CacheDelete(keys ...string) error {
	if Redis == nil {
		return ErrCacheDisabled
	}
	if len(keys) == 0 {
		return nil
	}
	return Redis.Del(Ctx, keys...).Err()
}
