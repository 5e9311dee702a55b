package config

import (
	"github.com/spf13/viper"
)

func initDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.static", "static")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("search.timeout", 10)
	viper.SetDefault("videoinfo.timeout", 5)
	viper.SetDefault("cache.search", 300)
	viper.SetDefault("cache.title", 3600)
}
