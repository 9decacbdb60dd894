package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type address struct {
	Host string
	Port string `validate:"required"`
}

type mongoDB struct {
	URI  string
	Name string
}

type postgresDB struct {
	DSN string
}

// Config is the configuration of the application
type Config struct {
	Verbose     bool
	Environment string
	App         string  `validate:"required"`
	HTTP        address `mapstructure:"http"`
	GRPC        address `mapstructure:"grpc"`
	Storage     string  `validate:"required,oneof=memory mongo postgres"`
	UserDB      mongoDB `mapstructure:"user_db"`
	Postgres    postgresDB
}

// Load loads the configuration from the given path yml file
func (config *Config) Load(path string) error {
	env := os.Getenv(AppEnvironmentKey)
	if env == "" {
		env = LocalEnvironment
	}
	config.Environment = env

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	// Environment variables take priority over the file
	prefix := fmt.Sprintf("%s_ENV", strings.ToUpper(env))
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Err(fmt.Errorf("Error loading configuration file: %v", err)).Send()
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("Error unmarshaling configuration: %v", err)
	}

	config.Verbose = os.Getenv(VerboseKey) == "true"

	return config.Validate()
}

// Validate checks the loaded values, including the settings the chosen storage needs
func (config *Config) Validate() error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	switch config.Storage {
	case MongoStorage:
		if config.UserDB.URI == "" || config.UserDB.Name == "" {
			return &Error{Message: "Mongo storage requires user_db.uri and user_db.name"}
		}
	case PostgresStorage:
		if config.Postgres.DSN == "" {
			return &Error{Message: "Postgres storage requires postgres.dsn"}
		}
	}
	return nil
}

// Error is a configuration error
type Error struct {
	Message string
}

// Error returns the error message
func (e *Error) Error() string {
	return e.Message
}
