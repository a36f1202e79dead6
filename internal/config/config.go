package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type TargetConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	TargetDB     `yaml:"target_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Reconcile    `yaml:"reconcile"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type TargetDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Reconcile struct {
	IntervalMinutes int    `yaml:"interval_minutes" env-default:"60"`
	Workers         int    `yaml:"workers" env-default:"4"`
	Timezone        string `yaml:"timezone" env-default:"UTC"`
}

func MustLoad() *TargetConfig {

	// Processing env config variable and file
	configPath := os.Getenv("TARGET_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("TARGET_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg TargetConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
