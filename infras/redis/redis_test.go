package redis_test

import (
	"testing"

	"hotel/config"
	"hotel/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledCacheReturnsNil(t *testing.T) {
	cfg := &config.Config{}

	assert.Nil(t, redis.New(cfg))
}

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2

	opts := redis.Options(cfg)

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
}
