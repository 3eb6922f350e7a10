// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	logger "github.com/dev-mohitbeniwal/shop/api/logging"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	return ConnectRedis(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	}, []byte(viper.GetString("redis.encryptionKey")))
}

// ConnectRedis opens the shared client. key encrypts cached client records and must be 32 bytes.
func ConnectRedis(opts *redis.Options, key []byte) error {
	if len(key) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	encryptionKey = key

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func clientKey(clientID string) string {
	return fmt.Sprintf("client:%s", clientID)
}

// CacheClient stores an encrypted copy of client. The password hash is not
// part of the JSON form, so cached copies never carry it.
func CacheClient(ctx context.Context, client *model.Client) error {
	record := *client
	record.Password = ""
	clientJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal client: %w", shop_errors.ErrCacheOperation, err)
	}

	encryptedClient, err := encrypt(clientJSON)
	if err != nil {
		return fmt.Errorf("%w: failed to encrypt client: %w", shop_errors.ErrCacheOperation, err)
	}

	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, clientKey(client.ID), base64.StdEncoding.EncodeToString(encryptedClient), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("%w: failed to cache client: %w", shop_errors.ErrCacheOperation, err)
	}

	logger.Debug("Client cached successfully", zap.String("clientID", client.ID))
	return nil
}

// GetCachedClient returns nil, nil on a cache miss.
func GetCachedClient(ctx context.Context, clientID string) (*model.Client, error) {
	encryptedClientStr, err := RedisClient.Get(ctx, clientKey(clientID)).Result()
	if err == redis.Nil {
		logger.Debug("Client not found in cache", zap.String("clientID", clientID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: failed to get client from cache: %w", shop_errors.ErrCacheOperation, err)
	}

	encryptedClient, err := base64.StdEncoding.DecodeString(encryptedClientStr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode client: %w", shop_errors.ErrCacheOperation, err)
	}

	clientJSON, err := decrypt(encryptedClient)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt client: %w", shop_errors.ErrCacheOperation, err)
	}

	var client model.Client
	err = json.Unmarshal(clientJSON, &client)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal client: %w", shop_errors.ErrCacheOperation, err)
	}
	logger.Debug("Client retrieved from cache", zap.String("clientID", clientID))
	return &client, nil
}

func DeleteCachedClient(ctx context.Context, clientID string) error {
	err := RedisClient.Del(ctx, clientKey(clientID)).Err()
	if err != nil {
		return fmt.Errorf("%w: failed to delete client from cache: %w", shop_errors.ErrCacheOperation, err)
	}
	logger.Debug("Client deleted from cache", zap.String("clientID", clientID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
