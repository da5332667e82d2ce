package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

func init() {
	InitializeLogger()
}

// Populated by ldflags
var (
	version            string
	buildUnixTimestamp string
	commitHash         string
)

func main() {
	ts, _ := strconv.ParseInt(buildUnixTimestamp, 10, 64)
	buildTime := time.Unix(ts, 0)

	var flags Flags
	versionFlag := flag.Bool("version", false, "Print version")
	listFlag := flag.Bool("list", false, "List stored scenarios")
	initFlag := flag.Bool("init", false, "Store the demo scenario in the data dir so it can be edited")
	flag.StringVar(&flags.ConfigPath, "config", "", "Path to the config file (default ./"+ConfigFileName+" or ~/."+ConfigFileName+")")
	flag.StringVar(&flags.Scenario, "scenario", "", "Scenario to run (default "+DemoScenarioName+")")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Log every step")
	flag.Parse()

	if *versionFlag {
		fmt.Println("clist version:", version)
		fmt.Println("Built on:", buildTime)
		fmt.Println("Commit hash:", commitHash)
		return
	}

	fs := newClistOSFS()

	config, err := NewConfig(fs, flags, os.Getenv)
	if err != nil {
		log.Fatal().Err(err).Msg("Config initialization failed")
	}
	SetLogLevel(config.LogLevel())

	log.Debug().
		Str("version", version).
		Str("config", config.Path()).
		Str("data_dir", config.DataDir()).
		Msg("Initialized clist")

	storage := NewStorage(fs, config)

	if *listFlag {
		names, err := storage.ListScenarios()
		if err != nil {
			log.Fatal().Err(err).Msg("Could not list scenarios")
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *initFlag {
		if err := storage.WriteScenario(DefaultScenario()); err != nil {
			log.Fatal().Err(err).Msg("Could not store demo scenario")
		}
		log.Info().Str("data_dir", config.DataDir()).Msg("Stored demo scenario")
		return
	}

	runner := NewRunner(config, storage, os.Stdout)

	scenario, err := runner.Load(config.Scenario())
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load scenario")
	}

	report, err := runner.Run(scenario)
	if err != nil {
		log.Fatal().Err(err).Msg("Scenario aborted")
	}

	log.Info().
		Str("scenario", report.Scenario).
		Int("steps", len(report.Results)).
		Int("rejected", len(report.Rejected())).
		Ints("final", report.Final).
		Msg("Scenario finished")
}
