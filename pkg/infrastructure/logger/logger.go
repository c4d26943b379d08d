package logger

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const envPrefix = "order"

type Config struct {
	Level  string `envconfig:"log_level" default:"info"`
	Format string `envconfig:"log_format" default:"json"`
}

// LoadConfig reads ORDER_LOG_LEVEL and ORDER_LOG_FORMAT.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return c, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

func New(c Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
	}

	l := logrus.New()
	l.SetLevel(level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, errors.Errorf("unknown log format %q", c.Format)
	}
	return l, nil
}
