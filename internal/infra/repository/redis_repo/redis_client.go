package redis_repo

import (
	"sync"

	"github.com/redis/go-redis/v9"
)

// 商品快取用的連線池大小，讀多寫少
const defaultPoolSize = 10

var (
	_instances = sync.Map{}
)

// GetRedisClient 同address共用單一client，認證與DB編號為必要參數
func GetRedisClient(address, password string, db int, options ...Option) (*redis.Client, error) {
	client, ok := _instances.Load(address)
	if !ok {
		var err error
		client, err = createRedisClient(address, password, db, options...)
		if err != nil {
			return nil, err
		}
		_instances.Store(address, client)
	}

	return client.(*redis.Client), nil
}

func createRedisClient(address, password string, db int, options ...Option) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
		PoolSize: defaultPoolSize,
	}

	for _, option := range options {
		option(opts)
	}

	return redis.NewClient(opts), nil
}

type Option func(*redis.Options)

func WithPoolSize(poolSize int) Option {
	return func(o *redis.Options) {
		o.PoolSize = poolSize
	}
}
