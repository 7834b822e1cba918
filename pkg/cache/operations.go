package cache

import (
	"context"
	"encoding/json"
	"time"

	"terravista-listings/pkg/logger"
	"terravista-listings/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// GetJSON reads a key and unmarshals it into dest. A miss is reported via the
// boolean, not an error.
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	start := time.Now()
	data, err := RedisClient.Get(ctx, key).Bytes()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get cache key %s: %v", key, err)
		return false, NewCacheError("get", err, true)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal cache key %s: %v", key, err)
		return false, NewCacheError("unmarshal", err, false)
	}
	return true, nil
}

// SetJSON marshals value and stores it under key with the given expiration.
func SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("marshal").Inc()
		return NewCacheError("marshal", err, false)
	}
	start := time.Now()
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set cache key %s: %v", key, err)
		return NewCacheError("set", err, true)
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		logger.GlobalLogger.Errorf("failed to delete cache key %s: %v", key, err)
		return NewCacheError("del", err, true)
	}
	return nil
}
