package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Hàm kết nối đến Redis
func ConnectRedis(ctx context.Context, s *Settings) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     s.Redis.Addr,
		Username: s.Redis.User,
		Password: s.Redis.Password,
		DB:       0,
	})

	// Kiểm tra kết nối
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
