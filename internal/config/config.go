package config

import (
	"time"

	"photodrop/internal/core/domain"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env        Env
	Minio      MinioConfig
	Validation ValidationConfig
	NATS       NATSConfig
	Database   DatabaseConfig
	Server     ServerConfig
	Auth       AuthConfig
	Cleanup    CleanupConfig
	RateLimit  RateLimitConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"15m"`
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

// ValidationConfig mirrors domain.ValidationConfig so the whole validation
// policy can be overridden from the environment. Defaults match
// domain.DefaultValidationConfig.
type ValidationConfig struct {
	MaxFileSizeMB        float64       `envconfig:"VALIDATION_MAX_FILE_SIZE_MB" default:"10"`
	MinImageWidth        int           `envconfig:"VALIDATION_MIN_IMAGE_WIDTH" default:"800"`
	MinImageHeight       int           `envconfig:"VALIDATION_MIN_IMAGE_HEIGHT" default:"600"`
	TimeBufferMinutes    int           `envconfig:"VALIDATION_TIME_BUFFER_MINUTES" default:"60"`
	AllowedMimeTypes     []string      `envconfig:"VALIDATION_ALLOWED_MIME_TYPES" default:"image/jpeg,image/png,image/heic,image/heif"`
	RequireOriginalPhoto bool          `envconfig:"VALIDATION_REQUIRE_ORIGINAL_PHOTO" default:"false"`
	MinQualityScore      float64       `envconfig:"VALIDATION_MIN_QUALITY_SCORE" default:"0.5"`
	MetadataTimeout      time.Duration `envconfig:"VALIDATION_METADATA_TIMEOUT" default:"5s"`
}

// ToDomain converts into the immutable value the validators consume
func (v ValidationConfig) ToDomain() domain.ValidationConfig {
	return domain.ValidationConfig{
		MaxFileSizeMB:        v.MaxFileSizeMB,
		MinImageWidth:        v.MinImageWidth,
		MinImageHeight:       v.MinImageHeight,
		TimeBufferMinutes:    v.TimeBufferMinutes,
		AllowedMimeTypes:     v.AllowedMimeTypes,
		RequireOriginalPhoto: v.RequireOriginalPhoto,
		MinQualityScore:      v.MinQualityScore,
		MetadataTimeout:      v.MetadataTimeout,
	}
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"PHOTODROP"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"photodrop.photo.accepted"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"photodrop-notifier"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"notifier"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

type AuthConfig struct {
	JWTSecret string        `envconfig:"AUTH_JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type CleanupConfig struct {
	Retention time.Duration `envconfig:"CLEANUP_RETENTION" default:"168h"`
	Every     time.Duration `envconfig:"CLEANUP_EVERY" default:"1h"`
}

type RateLimitConfig struct {
	UploadPerSecond float64 `envconfig:"RATE_LIMIT_UPLOAD_PER_SECOND" default:"1"`
	UploadBurst     int     `envconfig:"RATE_LIMIT_UPLOAD_BURST" default:"5"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
