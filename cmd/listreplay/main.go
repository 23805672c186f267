// listreplay applies replay scripts to positional lists and reports every failed expectation.
//
//	listreplay [--config config.yaml] [--replay.workers 4] script.yaml [script.json ...]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/containers.go/configuration"
	"github.com/iotaledger/containers.go/logger"
	"github.com/iotaledger/containers.go/replay"
)

const (
	configurationKeyScripts     = "replay.scripts"
	configurationKeyWorkers     = "replay.workers"
	configurationKeyHistorySize = "replay.historySize"
	configurationKeyPrintConfig = "printConfig"

	envPrefix = "LISTREPLAY"
)

// errScriptsFailed is returned if at least one script did not meet its expectations.
var errScriptsFailed = ierrors.New("scripts failed")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newFlagSet() *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("listreplay", flag.ContinueOnError)
	flagSet.String("config", "", "path to a JSON, YAML or TOML config file")
	flagSet.Bool(configurationKeyPrintConfig, false, "print the loaded configuration before replaying")
	flagSet.StringSlice(configurationKeyScripts, nil, "the replay scripts to run")
	flagSet.Int(configurationKeyWorkers, 4, "the number of scripts that are replayed in parallel")
	flagSet.Int(configurationKeyHistorySize, replay.DefaultHistorySize, "the number of recent results that are logged with a failure")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (options: \"json\", \"console\")")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "a list of file paths or stdout/stderr to write logging output to")

	return flagSet
}

func loadConfiguration(args []string) (*configuration.Configuration, []string, error) {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	config := configuration.New()
	if configFile := lo.PanicOnErr(flagSet.GetString("config")); configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, nil, err
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, nil, err
	}

	return config, append(config.Strings(configurationKeyScripts), flagSet.Args()...), nil
}

func run(ctx context.Context, args []string) error {
	config, scriptPaths, err := loadConfiguration(args)
	if err != nil {
		return err
	}

	if config.Bool(configurationKeyPrintConfig) {
		if err := config.Print(os.Stdout); err != nil {
			return err
		}
	}

	if len(scriptPaths) == 0 {
		return ierrors.New("no replay scripts given")
	}

	rootLogger, err := logger.NewRootLogger(logger.ConfigFromConfiguration(config))
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stdout fails on some platforms
	defer rootLogger.Sync()

	scripts := make([]*replay.Script, 0, len(scriptPaths))
	for _, scriptPath := range scriptPaths {
		script, err := replay.LoadScript(scriptPath)
		if err != nil {
			return ierrors.Wrapf(err, "failed to load %s", scriptPath)
		}
		scripts = append(scripts, script)
	}

	runner := replay.NewRunner(
		replay.WithLogger(rootLogger.Named("Replay")),
		replay.WithHistorySize(config.Int(configurationKeyHistorySize)),
	)

	reports, err := runner.RunAll(ctx, scripts, config.Int(configurationKeyWorkers))
	if err != nil {
		return err
	}

	var failures []error
	for _, report := range reports {
		if report.Failed() {
			failures = append(failures, ierrors.Wrapf(report.Err(), "script %s", report.Script))
		}
	}

	rootLogger.Sugar().Infof("replay finished: %s", runner.Stats())

	if len(failures) > 0 {
		return ierrors.Join(append([]error{errScriptsFailed}, failures...)...)
	}

	return nil
}
