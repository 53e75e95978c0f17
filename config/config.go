package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort     string
	MetricsPort     string
	Environment     string
	MongoDBConfig   MongoDBConfig
	MediaHostConfig MediaHostConfig
	KafkaConfig     KafkaConfig
	SearchConfig    SearchConfig
	JWTSecret       string
	TracingConfig   TracingConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type MediaHostConfig struct {
	BaseURL       string
	CloudName     string
	APIKey        string
	APISecret     string
	UploadTimeout time.Duration
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type SearchConfig struct {
	DBHost string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		MediaHostConfig: MediaHostConfig{
			BaseURL:   os.Getenv("MEDIA_HOST_BASE_URL"),
			CloudName: os.Getenv("MEDIA_HOST_CLOUD_NAME"),
			APIKey:    os.Getenv("MEDIA_HOST_API_KEY"),
			APISecret: os.Getenv("MEDIA_HOST_API_SECRET"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		SearchConfig: SearchConfig{
			DBHost: os.Getenv("SEARCH_DB_HOST"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	brokerPartition, _ := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	conf.KafkaConfig.BrokerPartition = brokerPartition

	uploadTimeout, err := strconv.Atoi(os.Getenv("MEDIA_HOST_UPLOAD_TIMEOUT_SECONDS"))
	if err != nil || uploadTimeout <= 0 {
		uploadTimeout = 10
	}
	conf.MediaHostConfig.UploadTimeout = time.Duration(uploadTimeout) * time.Second

	return &conf
}
