package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env           string
	Port          int
	APIPrefix     string
	PublicBaseURL string

	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Approval      ApprovalConfig
	Mail          MailConfig
	Storage       StorageConfig
	Notifications NotificationsConfig
	Cache         CacheConfig
	RateLimit     RateLimitConfig
	Upload        UploadConfig
	CORS          CORSConfig
	Log           LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// ApprovalConfig governs the signed approve/reject links sent to reviewers.
type ApprovalConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
	SyncTimeout time.Duration
}

// MailConfig configures the SMTP transport used for notifications.
type MailConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
	Timeout    time.Duration
}

// StorageConfig points at the object store holding uploads, videos and synced vendor folders.
type StorageConfig struct {
	Region         string
	Bucket         string
	Endpoint       string
	VideoURLTTL    time.Duration
	DocumentURLTTL time.Duration
	DrivePrefix    string
	UploadPrefix   string
	VideoPrefix    string
	LocalDir       string
}

// NotificationsConfig sizes the email dispatch queue.
type NotificationsConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
}

// CacheConfig toggles Redis caching for public content reads.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// RateLimitConfig throttles admin login attempts per client IP.
type RateLimitConfig struct {
	LoginRPS   float64
	LoginBurst int
}

// UploadConfig bounds multipart uploads.
type UploadConfig struct {
	MaxDocumentBytes int64
	MaxVideoBytes    int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.PublicBaseURL = strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	approvalSecret := v.GetString("APPROVAL_TOKEN_SECRET")
	if approvalSecret == "" {
		approvalSecret = cfg.JWT.Secret
	}
	cfg.Approval = ApprovalConfig{
		TokenSecret: approvalSecret,
		TokenTTL:    parseDuration(v.GetString("APPROVAL_TOKEN_TTL"), 7*24*time.Hour),
		SyncTimeout: parseDuration(v.GetString("APPROVAL_SYNC_TIMEOUT"), 45*time.Second),
	}

	cfg.Mail = MailConfig{
		Enabled:    v.GetBool("MAIL_ENABLED"),
		Host:       v.GetString("SMTP_HOST"),
		Port:       v.GetInt("SMTP_PORT"),
		Username:   v.GetString("SMTP_USERNAME"),
		Password:   v.GetString("SMTP_PASSWORD"),
		From:       v.GetString("MAIL_FROM"),
		AdminEmail: v.GetString("ADMIN_EMAIL"),
		Timeout:    parseDuration(v.GetString("SMTP_TIMEOUT"), 15*time.Second),
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}

	cfg.Storage = StorageConfig{
		Region:         v.GetString("AWS_REGION"),
		Bucket:         v.GetString("S3_BUCKET_NAME"),
		Endpoint:       v.GetString("S3_ENDPOINT"),
		VideoURLTTL:    parseDuration(v.GetString("S3_VIDEO_URL_TTL"), 5*time.Minute),
		DocumentURLTTL: parseDuration(v.GetString("S3_DOCUMENT_URL_TTL"), 24*time.Hour),
		DrivePrefix:    strings.Trim(v.GetString("DRIVE_PREFIX"), "/"),
		UploadPrefix:   strings.Trim(v.GetString("S3_UPLOAD_PREFIX"), "/"),
		VideoPrefix:    strings.Trim(v.GetString("S3_VIDEO_PREFIX"), "/"),
		LocalDir:       v.GetString("LOCAL_STORAGE_DIR"),
	}

	cfg.Notifications = NotificationsConfig{
		Workers:    v.GetInt("NOTIFY_WORKERS"),
		BufferSize: v.GetInt("NOTIFY_BUFFER_SIZE"),
		MaxRetries: v.GetInt("NOTIFY_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("NOTIFY_RETRY_DELAY"), 5*time.Second),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 10*time.Minute),
	}

	cfg.RateLimit = RateLimitConfig{
		LoginRPS:   v.GetFloat64("LOGIN_RATE_LIMIT_RPS"),
		LoginBurst: v.GetInt("LOGIN_RATE_LIMIT_BURST"),
	}

	cfg.Upload = UploadConfig{
		MaxDocumentBytes: v.GetInt64("UPLOAD_MAX_DOCUMENT_BYTES"),
		MaxVideoBytes:    v.GetInt64("UPLOAD_MAX_VIDEO_BYTES"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5000)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:5000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "csm_aviation")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "1h")
	v.SetDefault("JWT_ISSUER", "csm-aviation-api")

	v.SetDefault("APPROVAL_TOKEN_SECRET", "")
	v.SetDefault("APPROVAL_TOKEN_TTL", "168h")
	v.SetDefault("APPROVAL_SYNC_TIMEOUT", "45s")

	v.SetDefault("MAIL_ENABLED", false)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("SMTP_TIMEOUT", "15s")

	v.SetDefault("AWS_REGION", "us-west-1")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_VIDEO_URL_TTL", "5m")
	v.SetDefault("S3_DOCUMENT_URL_TTL", "24h")
	v.SetDefault("DRIVE_PREFIX", "Charter_OPERATORS")
	v.SetDefault("S3_UPLOAD_PREFIX", "vendors")
	v.SetDefault("S3_VIDEO_PREFIX", "videos")
	v.SetDefault("LOCAL_STORAGE_DIR", "./data/objects")

	v.SetDefault("NOTIFY_WORKERS", 2)
	v.SetDefault("NOTIFY_BUFFER_SIZE", 64)
	v.SetDefault("NOTIFY_MAX_RETRIES", 3)
	v.SetDefault("NOTIFY_RETRY_DELAY", "5s")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "10m")

	v.SetDefault("LOGIN_RATE_LIMIT_RPS", 0.2)
	v.SetDefault("LOGIN_RATE_LIMIT_BURST", 5)

	v.SetDefault("UPLOAD_MAX_DOCUMENT_BYTES", 25*1024*1024)
	v.SetDefault("UPLOAD_MAX_VIDEO_BYTES", 100*1024*1024)

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
