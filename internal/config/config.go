package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	PublicBaseURL  string
	Buckets        []string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	GenAIEndpoint string
	GenAIAPIKey   string
	GenAIModel    string

	FfmpegPath  string
	FfprobePath string
	StagingDir  string

	TranslationCacheSize int
	StagingSweepMaxAge   time.Duration
}

// DefaultBuckets are the object-storage buckets the service writes to.
var DefaultBuckets = []string{"videos", "attachments", "descriptions", "thumbnails"}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"MARIADB_DSN",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"PUBLIC_BASE_URL",
		"JWT_SECRET",
		"GENAI_API_KEY",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 25)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("GENAI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GENAI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("FFMPEG_PATH", "ffmpeg")
	viper.SetDefault("FFPROBE_PATH", "ffprobe")
	viper.SetDefault("STAGING_DIR", filepath.Join(os.TempDir(), "lessons-staging"))
	viper.SetDefault("TRANSLATION_CACHE_SIZE", 256)
	viper.SetDefault("STAGING_SWEEP_MAX_AGE", 86400)

	buckets := DefaultBuckets
	if viper.IsSet("BUCKETS") {
		buckets = splitList(viper.GetString("BUCKETS"))
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		PublicBaseURL:  strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/"),
		Buckets:        buckets,

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		JWTSecret: viper.GetString("JWT_SECRET"),

		GenAIEndpoint: strings.TrimRight(viper.GetString("GENAI_ENDPOINT"), "/"),
		GenAIAPIKey:   viper.GetString("GENAI_API_KEY"),
		GenAIModel:    viper.GetString("GENAI_MODEL"),

		FfmpegPath:  viper.GetString("FFMPEG_PATH"),
		FfprobePath: viper.GetString("FFPROBE_PATH"),
		StagingDir:  viper.GetString("STAGING_DIR"),

		TranslationCacheSize: viper.GetInt("TRANSLATION_CACHE_SIZE"),
		StagingSweepMaxAge:   time.Duration(viper.GetInt("STAGING_SWEEP_MAX_AGE")) * time.Second,
	}, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
