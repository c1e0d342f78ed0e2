package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/baryfold/gopm"
	"github.com/baryfold/gopm/io"
)

func main() {
	var (
		configPath, outPath, txtPath string
		logPath, pprofPath           string
		exampleConfig                bool
	)

	flag.StringVar(&configPath, "Config", "",
		"Simulation config file with a [Sim] section.")
	flag.StringVar(&outPath, "Out", "",
		"Location to write the surface density map to as .npy.")
	flag.StringVar(&txtPath, "Txt", "",
		"Location to write the map to as plain text. Mostly for debugging.")
	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.StringVar(&pprofPath, "PProf", "",
		"Location to write profile to. Default is no profiling.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Prints an example config file to stdout and exits.")

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleSimFile)
		return
	}

	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatalln(err.Error())
		}
		log.SetOutput(lf)
		defer lf.Close()
	}

	if pprofPath != "" {
		f, err := os.Create(pprofPath)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := gopm.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = io.ReadSimFile(configPath)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Running %d^3 grid, %d particles, %d steps.",
		cfg.GridWidth, cfg.Particles, cfg.Steps,
	)

	res, err := gopm.Run(cfg)
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Map stats: mean=%.3e std=%.3e min=%.3e max=%.3e",
		res.Stats.Mean, res.Stats.Std, res.Stats.Min, res.Stats.Max,
	)

	if outPath != "" {
		if err := io.WriteMapNpy(
			outPath, res.Map, res.Height, res.Width,
		); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote map to %s.", outPath)
	}
	if txtPath != "" {
		if err := io.WriteMapTxt(
			txtPath, res.Map, res.Height, res.Width,
		); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote map to %s.", txtPath)
	}
}
