package config

// Config 配置主体
type Config struct {
	Server              ServerConfig        `mapstructure:"server"`
	DB                  DBConfig            `mapstructure:"database"`
	Redis               RedisConfig         `mapstructure:"redis"`
	Mongo               MongoConfig         `mapstructure:"mongo"`
	MinIO               MinIOConfig         `mapstructure:"minio"`
	JWT                 JWTConfig           `mapstructure:"jwt"`
	Policy              PolicyConfig        `mapstructure:"policy"`
	Upload              UploadConfig        `mapstructure:"upload"`
	Cron                CronConfig          `mapstructure:"cron"`
	Bootstrap           BootstrapConfig     `mapstructure:"bootstrap"`
	Kafka               KafkaConfig         `mapstructure:"kafka"`
	KafkaAlumniConsumer KafkaAlumniConsumer `mapstructure:"kafka_alumni_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port          int    `mapstructure:"port"`
	DirectoryPort int    `mapstructure:"directory_port"`
	LogLevel      string `mapstructure:"log_level"`
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL              string `mapstructure:"url"`
	Database         string `mapstructure:"database"`
	AlumniCollection string `mapstructure:"alumni_collection"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	Bucket     string `mapstructure:"bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	PublicBase string `mapstructure:"public_base"`
}

// JWTConfig Token 签发配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// PolicyConfig 账号状态门禁策略
type PolicyConfig struct {
	GateGeneralFeed    bool `mapstructure:"gate_general_feed"`
	GateCollegeFeed    bool `mapstructure:"gate_college_feed"`
	PendingReviewHours int  `mapstructure:"pending_review_hours"`
}

type UploadConfig struct {
	MaxImageMB int `mapstructure:"max_image_mb"`
	AvatarSize int `mapstructure:"avatar_size"`
}

type CronConfig struct {
	PendingReview string `mapstructure:"pending_review"`
}

// BootstrapConfig 启动时写入的默认管理员
type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaAlumniConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
