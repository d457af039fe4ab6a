package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	return LoadConfigFrom("./configs")
}

// LoadConfigFrom 从指定目录加载 config.yaml，环境变量 REUNITE_* 覆盖文件中的值
func LoadConfigFrom(dir string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("REUNITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.directory_port", 5001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("mongo.database", "reunite")
	v.SetDefault("mongo.alumni_collection", "alumnis")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("policy.gate_general_feed", false)
	v.SetDefault("policy.gate_college_feed", true)
	v.SetDefault("policy.pending_review_hours", 72)
	v.SetDefault("cron.pending_review", "0 0 9 * * *")
	v.SetDefault("upload.max_image_mb", 5)
	v.SetDefault("upload.avatar_size", 256)
	v.SetDefault("bootstrap.admin_email", "admin@alumni.com")
	v.SetDefault("bootstrap.admin_username", "admin")
}
