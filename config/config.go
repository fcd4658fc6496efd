package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	CacheDir         string
	RemoteConfig     RemoteConfig
	PostgreSQLConfig PostgreSQLConfig
	KafkaConfig      KafkaConfig
	MidtransConfig   MidtransConfig
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
}

type RemoteConfig struct {
	// Driver selects the remote data service client: "rest" or "postgres".
	Driver     string
	BaseURL    string
	ServiceKey string
	// SessionPollSeconds is the interval of the auth session watcher.
	SessionPollSeconds int
}

type PostgreSQLConfig struct {
	DBHost     string
	DBName     string
	DBPort     string
	DBUsername string
	DBPassword string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type MidtransConfig struct {
	ServerKey string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
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
		CacheDir:    os.Getenv("CACHE_DIR"),
		RemoteConfig: RemoteConfig{
			Driver:     os.Getenv("REMOTE_DRIVER"),
			BaseURL:    os.Getenv("REMOTE_BASE_URL"),
			ServiceKey: os.Getenv("REMOTE_SERVICE_KEY"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.RemoteConfig.Driver == "" {
		conf.RemoteConfig.Driver = "rest"
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	pollSeconds, err := strconv.Atoi(os.Getenv("SESSION_POLL_SECONDS"))
	if err != nil || pollSeconds <= 0 {
		pollSeconds = 15
	}
	conf.RemoteConfig.SessionPollSeconds = pollSeconds

	return &conf
}
