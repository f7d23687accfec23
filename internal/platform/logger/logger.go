// Package logger configures the process-wide logrus logger.
package logger

import "github.com/sirupsen/logrus"

// Init sets up logrus output for the given environment. Production gets
// JSON lines; everything else keeps the human-readable text formatter.
func Init(env string) {
	if env == "prod" {
		logrus.SetFormatter(new(logrus.JSONFormatter))
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
