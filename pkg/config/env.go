package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = "/.env"
	defaultOverrideFileName = "/.local.env"
)

type EnvLoader struct {
	logger logger
}

type logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// NewEnvFile loads environment files from configFolder into the process
// environment. Precedence, lowest to highest: .env, .local.env,
// .<APP_ENV>.env, then variables already present in the environment.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	var (
		defaultFile  = folder + defaultFileName
		overrideFile = folder + defaultOverrideFileName
		env          = os.Getenv("APP_ENV")
	)

	err := godotenv.Load(defaultFile)
	if err != nil {
		e.logger.Warnf("Failed to load config from file: %v, Err: %v", defaultFile, err)
	} else {
		e.logger.Infof("Loaded config from file: %v", defaultFile)
	}

	if env != "" {
		overrideFile = fmt.Sprintf("%s/.%s.env", folder, env)
	}

	if _, err = os.Stat(overrideFile); err == nil {
		// overrides the values read from the default file
		err = godotenv.Overload(overrideFile)
		if err != nil {
			e.logger.Warnf("Failed to load config from file: %v, Err: %v", overrideFile, err)
		} else {
			e.logger.Infof("Loaded config from file: %v", overrideFile)
		}
	}
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
