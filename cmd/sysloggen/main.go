package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/ginuerzh/sysloggen"
	"github.com/go-log/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

const usageLine = "Usage: %s <Destination_IP> <Port> <NumMessages> <NumThreads> " +
	"[ -s <Source_IP> | -S <source_ip_file> ] [ -f <message_file> ] [ -h <host_file> ] [ -d <delay_ms> ]\n"

var errInsufficientArgs = errors.New("insufficient arguments")

func main() {
	sysloggen.SetLogger(sysloggen.NewLogLogger())

	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, usageLine, os.Args[0])
		os.Exit(1)
	}

	if cfg.printVersion {
		fmt.Fprintf(os.Stderr, "sysloggen %s (%s)\n", sysloggen.Version, runtime.Version())
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		log.Log(err)
		os.Exit(1)
	}
}

func newFlagSet(cfg *config, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sysloggen", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.StringVarP(&cfg.Source, "source", "s", cfg.Source, "source IP address of the outgoing packets (default: chosen by the OS)")
	fs.StringVarP(&cfg.SourceFile, "source-file", "S", cfg.SourceFile, "file (or redis:// list) of source IP addresses, one per line; cannot be used with -s")
	fs.StringVarP(&cfg.MessageFile, "message-file", "f", cfg.MessageFile, "file (or redis:// list) of messages, one per line")
	fs.StringVarP(&cfg.HostFile, "host-file", "h", cfg.HostFile, "file (or redis:// list) of hostnames, one per line")
	fs.IntVarP(&cfg.DelayMS, "delay", "d", cfg.DelayMS, "delay in milliseconds between the messages of each thread")
	fs.Float64VarP(&cfg.Rate, "rate", "r", cfg.Rate, "limit the total send rate to this many messages per second (0: no limit)")
	fs.IntVar(&cfg.TTL, "ttl", cfg.TTL, "IP TTL or IPv6 hop limit of the packets (0: OS default)")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "source IP selection from the source file: random or round")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base seed of the random generators (0: random)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "do not print every message")
	fs.StringVar(&cfg.Metrics, "metrics", cfg.Metrics, "serve Prometheus metrics on this address while running")
	fs.BoolVarP(&cfg.Debug, "debug", "D", cfg.Debug, "enable debug log")
	fs.BoolVarP(&cfg.printVersion, "version", "V", false, "print version")
	fs.StringVarP(&cfg.configFile, "config", "C", "", "configure file")

	fs.Usage = func() {
		fmt.Fprintf(output, usageLine, "sysloggen")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses the command line. Values from the configure file (-C) are
// used as defaults, flags and positional arguments override them.
func parseArgs(args []string, output io.Writer) (*config, error) {
	cfg := defaultConfig()
	fs := newFlagSet(cfg, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.printVersion {
		return cfg, nil
	}

	if configFile := cfg.configFile; configFile != "" {
		cfg = defaultConfig()
		if err := loadConfigureFile(cfg, configFile); err != nil {
			return nil, err
		}
		fs = newFlagSet(cfg, output)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	} else if fs.NArg() < 4 {
		return nil, errInsufficientArgs
	}

	if err := cfg.setPositional(fs.Args()); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config) error {
	sysloggen.Debug = cfg.Debug

	dst, err := sysloggen.ParseDestination(cfg.Destination, cfg.Port)
	if err != nil {
		return err
	}

	ctx, cancel := notifyContext(context.Background())
	defer cancel()

	pools, err := sysloggen.LoadPools(ctx, sysloggen.PoolPaths{
		Messages:  cfg.MessageFile,
		Hostnames: cfg.HostFile,
		Sources:   cfg.SourceFile,
	})
	if err != nil {
		return err
	}

	plan, err := sysloggen.NewPlan(dst, cfg.Messages, cfg.Workers, cfg.Source,
		time.Duration(cfg.DelayMS)*time.Millisecond)
	if err != nil {
		return err
	}

	var out sysloggen.Output = sysloggen.NewConsoleOutput(os.Stdout)
	if cfg.Quiet {
		out = sysloggen.DiscardOutput
	}
	engine := &sysloggen.Engine{
		Pools: pools,
		Sender: &sysloggen.Sender{
			Listener: sysloggen.NetListener(),
			Output:   out,
			TTL:      cfg.TTL,
		},
		Limiter:  sysloggen.NewRateLimiter(cfg.Rate),
		Strategy: cfg.Strategy,
		Seed:     cfg.Seed,
	}

	if cfg.Metrics != "" {
		reg := prometheus.NewRegistry()
		engine.Metrics = sysloggen.NewMetrics(reg)
		go func() {
			if err := sysloggen.ServeMetrics(cfg.Metrics, reg); err != nil {
				log.Logf("[metrics] %s", err)
			}
		}()
	}

	go progressHandler(ctx, engine)

	result, err := engine.Run(ctx, plan)
	if err != nil {
		return err
	}
	return result.WriteSummary(os.Stdout, cfg.Destination, cfg.Source)
}
