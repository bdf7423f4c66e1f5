package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chrissnell/astrotime/internal/examples"
	"github.com/chrissnell/astrotime/internal/log"
	"github.com/chrissnell/astrotime/pkg/config"
	"github.com/chrissnell/astrotime/pkg/responseformat"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML scenario file. The textbook examples run when omitted")
	format := flag.String("format", "", "Output format: 'text', 'json' or 'msgpack' (overrides the scenario file)")
	leapRule := flag.String("leap-rule", "", "Leap year rule for day-of-year conversions: 'vallado' or 'gregorian' (overrides the scenario file)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vallado-examples %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfgData, err := loadConfig(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *format != "" {
		cfgData.Format = *format
	}
	if *leapRule != "" {
		cfgData.LeapRule = *leapRule
	}

	outFormat, err := responseformat.ParseFormat(cfgData.Format)
	if err != nil {
		log.Fatalf("Invalid output format: %v", err)
	}

	runner, err := examples.New(cfgData, log.GetSugaredLogger())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	report, err := runner.Run()
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}
	log.Debugw("conversions complete", "format", outFormat, "leap_rule", report.LeapRule)

	if err := responseformat.NewFormatter(outFormat).Write(os.Stdout, report); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}

func loadConfig(cfgFile string) (*config.ConfigData, error) {
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}

	filename, _ := filepath.Abs(cfgFile)
	var provider config.ConfigProvider = config.NewYAMLProvider(filename)

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file %s: %w", filename, err)
	}
	log.Infow("loaded scenario", "file", filename)

	return cfgData, nil
}
