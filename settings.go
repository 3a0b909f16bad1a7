package main

import (
	"log"

	"github.com/midbel/toml"
)

const (
	MERGED = "merged.h5"
	GROUP  = "injections"
)

const DefaultMaxTheta = 90.0

type Settings struct {
	Output   string   `toml:"output"`
	Group    string   `toml:"group"`
	MaxTheta float64  `toml:"max-theta"`
	FLower   float64  `toml:"f-lower"`
	Files    []string `toml:"files"`
}

func Default() Settings {
	return Settings{
		Output:   MERGED,
		Group:    GROUP,
		MaxTheta: DefaultMaxTheta,
	}
}

func (s *Settings) Load(file string) error {
	if err := toml.DecodeFile(file, s); err != nil {
		return badUsage("invalid configuration file: " + err.Error())
	}
	if s.Output == "" {
		s.Output = MERGED
	}
	if s.Group == "" {
		s.Group = GROUP
	}
	return nil
}

func (s Settings) Can() error {
	if len(s.Files) == 0 {
		return noInput()
	}
	for _, f := range s.Files {
		if f == s.Output {
			return sameFile(f)
		}
	}
	if s.FLower <= 0 {
		return badUsage("reference frequency must be positive")
	}
	return nil
}

func dumpSettings(s Settings) {
	log.Printf("%s-%s (build: %s)", Program, Version, BuildTime)
	log.Printf("settings: max theta: %.2f deg", s.MaxTheta)
	log.Printf("settings: reference frequency: %.2f Hz", s.FLower)
	log.Printf("settings: injection group: %s", s.Group)
	log.Printf("settings: output file: %s", s.Output)
	log.Printf("settings: input files: %d", len(s.Files))
}
