package config

// Key constants for config
const (
	AppEnvironmentKey      = "APP_ENV"
	VerboseKey             = "VERBOSE"
	LocalEnvironment       = "local"
	TestEnvironment        = "test"
	DevelopmentEnvironment = "dev"
	ProductionEnvironment  = "prod"
)

// Storage backends
const (
	MemoryStorage   = "memory"
	MongoStorage    = "mongo"
	PostgresStorage = "postgres"
)
