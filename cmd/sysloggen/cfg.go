package main

import (
	"encoding/json"
	"io/ioutil"
	"strconv"

	"github.com/ginuerzh/sysloggen"
	"github.com/go-log/log"
	"github.com/pkg/errors"
)

type config struct {
	Destination string  `json:"destination"`
	Port        int     `json:"port"`
	Messages    int64   `json:"messages"`
	Workers     int     `json:"workers"`
	Source      string  `json:"source"`
	SourceFile  string  `json:"source_file"`
	MessageFile string  `json:"message_file"`
	HostFile    string  `json:"host_file"`
	DelayMS     int     `json:"delay_ms"`
	Rate        float64 `json:"rate"`
	TTL         int     `json:"ttl"`
	Strategy    string  `json:"strategy"`
	Seed        int64   `json:"seed"`
	Quiet       bool    `json:"quiet"`
	Metrics     string  `json:"metrics"`
	Debug       bool    `json:"debug"`

	configFile   string
	printVersion bool
}

func defaultConfig() *config {
	return &config{
		Port:     sysloggen.DefaultPort,
		Strategy: sysloggen.DefaultStrategy,
	}
}

func loadConfigureFile(cfg *config, configureFile string) error {
	if configureFile == "" {
		return nil
	}
	content, err := ioutil.ReadFile(configureFile)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, cfg); err != nil {
		return errors.Wrapf(err, "invalid config file %s", configureFile)
	}
	return nil
}

// setPositional applies the positional arguments
// <destination> <port> <messages> <workers>, in that order.
func (cfg *config) setPositional(args []string) error {
	for i, arg := range args {
		var err error
		switch i {
		case 0:
			cfg.Destination = arg
		case 1:
			cfg.Port, err = strconv.Atoi(arg)
		case 2:
			cfg.Messages, err = strconv.ParseInt(arg, 10, 64)
		case 3:
			cfg.Workers, err = strconv.Atoi(arg)
		default:
			log.Logf("[config] warning: unknown argument: %s", arg)
		}
		if err != nil {
			return errors.Wrapf(err, "invalid argument #%d %q", i+1, arg)
		}
	}
	return nil
}

func (cfg *config) validate() error {
	switch {
	case cfg.Destination == "":
		return errors.New("missing destination address")
	case cfg.Workers == 0:
		return errors.New("missing number of threads")
	case cfg.Workers < 0:
		return errors.Errorf("number of threads must be positive, got %d", cfg.Workers)
	case cfg.Messages < 0:
		return errors.Errorf("number of messages must not be negative, got %d", cfg.Messages)
	case cfg.DelayMS < 0:
		return errors.Errorf("delay must not be negative, got %d", cfg.DelayMS)
	case cfg.Source != "" && cfg.SourceFile != "":
		return sysloggen.ErrMutuallyExclusive
	}
	switch cfg.Strategy {
	case "random", "round":
	default:
		return errors.Errorf("unknown strategy %q", cfg.Strategy)
	}
	return nil
}
