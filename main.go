// Command deepdelve generates a 3D grid-based dungeon topology and prints it
// as per-layer ASCII maps. It is a thin consumer of pkg/dungeon: all the
// generation logic lives there.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/leonelquinteros/gotext"

	"deepdelve/pkg/atlas"
	"deepdelve/pkg/dungeon"
)

// config holds the CLI settings. Environment variables provide defaults;
// flags override them.
type config struct {
	Rooms   int    `env:"DEEPDELVE_ROOMS" envDefault:"32"`
	Seed    int64  `env:"DEEPDELVE_SEED" envDefault:"0"`
	Dump    string `env:"DEEPDELVE_DUMP"`
	NoColor bool   `env:"DEEPDELVE_NO_COLOR"`
}

func initLocale() {
	gotext.Configure("locales", "en_GB.utf8", "default")
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	flag.IntVar(&cfg.Rooms, "rooms", cfg.Rooms, "number of rooms to generate (minimum 2)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible dungeons (0 = random)")
	flag.StringVar(&cfg.Dump, "dump", cfg.Dump, "write a full topology dump to this file")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored layer output")
	flag.Parse()

	return cfg, nil
}

func run() error {
	initLocale()

	cfg, err := parseConfig()
	if err != nil {
		return err
	}

	var generator *dungeon.Generator
	if cfg.Seed != 0 {
		generator = dungeon.NewSeededGenerator(cfg.Seed)
	} else {
		generator = dungeon.NewGenerator()
	}

	d, err := generator.Generate(cfg.Rooms)
	if err != nil {
		return fmt.Errorf("generate %d rooms: %w", cfg.Rooms, err)
	}

	min, max := d.Bounds()
	fmt.Printf("%s: %d\n", gotext.Get("Rooms"), d.Size())
	fmt.Printf("%s: %s -> %s\n", gotext.Get("Bounds"), min, max)
	if end := d.End(); end != nil {
		fmt.Printf("%s: %s\n", gotext.Get("End room"), end.Coord())
	}
	if msg := d.Validate(); msg != "" {
		fmt.Printf("%s: %s\n", gotext.Get("Warning"), msg)
	}
	fmt.Println()

	atlas.FprintLayers(os.Stdout, d, !cfg.NoColor)

	if cfg.Dump != "" {
		path, err := atlas.DumpToFile(d, cfg.Dump)
		if err != nil {
			return fmt.Errorf("dump topology: %w", err)
		}
		fmt.Printf("%s: %s\n", gotext.Get("Dump written"), path)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
