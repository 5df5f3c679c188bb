package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable with default settings
// before Init is called, which keeps tests independent of startup order.
var Log = logrus.New()

// Init configures the shared logger for normal application runs.
func Init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Log.SetLevel(logrus.InfoLevel)
}
