// Package config loads gridpath job files.
//
// Priority is env > file > defaults: a YAML job file is decoded over
// Default(), then GRIDPATH_* variables (optionally from a .env file) override
// the run settings, and the result is validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/tunnels"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Kind names the search a job performs.
type Kind string

const (
	// KindDistances finds the shortest distance between two markers of a grid.
	KindDistances Kind = "distances"
	// KindNearest finds the nearest cell holding one of the target runes.
	KindNearest Kind = "nearest"
	// KindJourney crosses a blizzard valley one or more times.
	KindJourney Kind = "journey"
	// KindRelease plans valve opening in a tunnel network.
	KindRelease Kind = "release"
	// KindSurface measures the surface of a voxel volume.
	KindSurface Kind = "surface"
)

// File is a decoded job file.
type File struct {
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
	Workers int     `yaml:"workers" validate:"gte=1,lte=256"`
	Jobs    []Job   `yaml:"jobs"    validate:"required,min=1,dive"`

	// dir is the directory relative job inputs are resolved against.
	dir string
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"  validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the Prometheus textfile dump. An empty File disables it.
type Metrics struct {
	File string `yaml:"file"`
}

// Job describes one search. Which fields apply depends on Kind.
type Job struct {
	Name string `yaml:"name" validate:"required"`
	Kind Kind   `yaml:"kind" validate:"required,oneof=distances nearest journey release surface"`

	// Input: inline rows or a file path, never both.
	Rows []string `yaml:"rows"`
	File string   `yaml:"file"`

	// Grid jobs.
	Legend    string `yaml:"legend"    validate:"omitempty,oneof=maze elevation"`
	Start     string `yaml:"start"`
	Goal      string `yaml:"goal"`
	Target    string `yaml:"target"`
	Rule      string `yaml:"rule"`
	Traversal string `yaml:"traversal" validate:"omitempty,oneof=forward reverse"`
	Diagonal  bool   `yaml:"diagonal"`

	// Journey jobs: number of crossings, alternating entrance and exit.
	Legs int `yaml:"legs" validate:"gte=0"`

	// Release jobs.
	Budget int             `yaml:"budget" validate:"gte=0"`
	Agents int             `yaml:"agents" validate:"omitempty,oneof=1 2"`
	Valves []tunnels.Valve `yaml:"valves" validate:"dive"`

	// Surface jobs.
	Exterior bool `yaml:"exterior"`
}

// Default returns the settings used when the file and environment are silent.
func Default() File {
	return File{
		Log:     Log{Level: "info", Format: "text"},
		Workers: 4,
	}
}

// Load reads the job file at path, applies environment overrides and
// validates the result. envFiles are loaded into the environment first;
// missing ones are ignored.
func Load(path string, envFiles ...string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)

	if err := ApplyEnv(f, envFiles...); err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}

	return f, nil
}

// Decode parses YAML over Default and fills per-job defaults. It does not
// read the environment or validate.
func Decode(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	for i := range f.Jobs {
		fillJobDefaults(&f.Jobs[i])
	}

	return &f, nil
}

func fillJobDefaults(j *Job) {
	switch j.Kind {
	case KindDistances, KindNearest:
		if j.Legend == "" {
			j.Legend = "elevation"
		}
		if j.Traversal == "" {
			j.Traversal = "forward"
		}
	case KindJourney:
		if j.Legs == 0 {
			j.Legs = 1
		}
	case KindRelease:
		if j.Agents == 0 {
			j.Agents = 1
		}
		if j.Start == "" {
			j.Start = "AA"
		}
	}
}

// Input returns the job's input lines: Rows as given, or the contents of
// File split into lines. A relative File is resolved against the job
// file's directory.
func (f *File) Input(j Job) ([]string, error) {
	if j.File == "" {
		return j.Rows, nil
	}
	path := j.File
	if !filepath.IsAbs(path) && f.dir != "" {
		path = filepath.Join(f.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: job %q: %w", j.Name, err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
