// Package io loads programs and machine configurations from files, and
// writes machine state and traces back out.
//
// Configurations may be JSON, TOML or YAML, and hold the inbox and the
// initial memory contents. Programs may be assembler text, or the JSON
// operation list used by earlier tooling.
package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/hrm/cpu"
)

// Format is a configuration file format.
type Format int

const (
	FORMAT_JSON = Format(0)
	FORMAT_TOML = Format(1)
	FORMAT_YAML = Format(2)
)

// FormatOf determines the file format from a file name extension.
func FormatOf(path string) (format Format, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FORMAT_JSON
	case ".toml":
		format = FORMAT_TOML
	case ".yaml", ".yml":
		format = FORMAT_YAML
	default:
		err = ErrFormatUnknown
	}
	return
}

// Config is the initial state of a machine.
type Config struct {
	Inbox  []cpu.Value // Inbox contents, front first.
	Memory []cpu.Value // Memory contents, len(Memory) == Size.
	Size   int         // Number of memory cells.
}

// configFile is the on-disk layout of a Config.
type configFile struct {
	Inbox  []any `json:"inbox" toml:"inbox" yaml:"inbox"`
	Memory any   `json:"memory" toml:"memory" yaml:"memory"`
	Size   int   `json:"size" toml:"size" yaml:"size"`
}

// LoadConfig reads a configuration file, in the format given by its
// extension.
func LoadConfig(path string) (config *Config, err error) {
	format, err := FormatOf(path)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	config, err = ReadConfig(inf, format)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}
	return
}

// ReadConfig reads a configuration.
func ReadConfig(input io.Reader, format Format) (config *Config, err error) {
	var raw configFile

	switch format {
	case FORMAT_JSON:
		err = json.NewDecoder(input).Decode(&raw)
	case FORMAT_TOML:
		_, err = toml.NewDecoder(input).Decode(&raw)
	case FORMAT_YAML:
		err = yaml.NewDecoder(input).Decode(&raw)
	default:
		err = ErrFormatUnknown
	}
	if errors.Is(err, io.EOF) {
		// Empty document.
		err = nil
	}
	if err != nil {
		return
	}

	return raw.config()
}

// config converts the decoded file into a Config.
func (raw *configFile) config() (config *Config, err error) {
	config = &Config{}

	for n, item := range raw.Inbox {
		var value cpu.Value
		value, err = cpu.ValueOf(item)
		if err == nil && value.Empty() {
			err = cpu.ErrParseValue(fmt.Sprintf("%v", item))
		}
		if err != nil {
			err = &ErrInbox{Index: n, Err: err}
			return
		}
		config.Inbox = append(config.Inbox, value)
	}

	cells, err := memoryCells(raw.Memory)
	if err != nil {
		return
	}

	// Without a size, memory holds every given cell, and at least
	// MEMORY_SIZE_DEFAULT cells.
	size := raw.Size
	if size < 0 {
		err = ErrSizeInvalid
		return
	}
	if size == 0 {
		size = cpu.MEMORY_SIZE_DEFAULT
		for index := range cells {
			size = max(size, index+1)
		}
	}

	config.Size = size
	config.Memory = make([]cpu.Value, size)
	for index, item := range cells {
		if index >= size {
			err = &ErrMemory{Cell: strconv.Itoa(index), Err: cpu.ErrCellRange(index)}
			return
		}
		config.Memory[index], err = cpu.ValueOf(item)
		if err != nil {
			err = &ErrMemory{Cell: strconv.Itoa(index), Err: err}
			return
		}
	}

	return
}

// memoryCells maps cell indexes to raw values, from either a list or a
// table keyed by cell index.
func memoryCells(memory any) (cells map[int]any, err error) {
	cells = make(map[int]any)

	keyed := func(key string, item any) error {
		index, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || index < 0 {
			return &ErrMemory{Cell: key, Err: cpu.ErrParseLocation(key)}
		}
		cells[index] = item
		return nil
	}

	switch mem := memory.(type) {
	case nil:
	case []any:
		for index, item := range mem {
			cells[index] = item
		}
	case map[string]any:
		keys := make([]string, 0, len(mem))
		for key := range mem {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			err = keyed(key, mem[key])
			if err != nil {
				return
			}
		}
	case map[any]any:
		for key, item := range mem {
			err = keyed(fmt.Sprintf("%v", key), item)
			if err != nil {
				return
			}
		}
	default:
		err = ErrMemorySyntax
	}

	return
}
