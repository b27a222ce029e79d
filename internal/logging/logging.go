package logging

import (
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logger. Output is JSON and the level follows
// the application environment.
func Setup(appEnv string) {
	log.SetFormatter(&log.JSONFormatter{})
	switch appEnv {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
