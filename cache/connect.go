package cache

import (
	"context"
	"log"

	"petwell_client/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// ConnectCache mở kết nối Redis dùng làm kho lưu store phía client.
// Toàn bộ store của một người dùng nằm dưới đúng một key namespace,
// giống blanket persistence của bản web.
func ConnectCache() {
	addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := RDB.Ping(context.Background()).Err(); err != nil {
		panic("failed to connect redis: " + err.Error())
	}

	log.Println("Connection Opened to Redis")
}
