package config

import (
	"github.com/JaimeStill/endpoint-providers/pkg/database"
	"github.com/JaimeStill/endpoint-providers/pkg/logging"
	"github.com/JaimeStill/endpoint-providers/pkg/middleware"
)

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Source: "LOGGING_SOURCE",
}

var databaseEnv = &database.Env{
	Enabled:         "DATABASE_ENABLED",
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CORS_ENABLED",
	Origins:          "CORS_ORIGINS",
	AllowedMethods:   "CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CORS_ALLOWED_HEADERS",
	AllowCredentials: "CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CORS_MAX_AGE",
}
