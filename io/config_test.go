package io

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hrm/cpu"
)

func TestFormatOf(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Format{
		"floor.json":    FORMAT_JSON,
		"floor.TOML":    FORMAT_TOML,
		"a/b/floor.yml": FORMAT_YAML,
		"floor.yaml":    FORMAT_YAML,
	}

	for path, format := range table {
		got, err := FormatOf(path)
		assert.NoError(err, path)
		assert.Equal(format, got, path)
	}

	_, err := FormatOf("floor.ini")
	assert.ErrorIs(err, ErrFormatUnknown)
}

func TestReadConfig(t *testing.T) {
	assert := assert.New(t)

	documents := map[Format]string{
		FORMAT_JSON: `{
			"inbox": [3, "a", -2, "Z"],
			"memory": [null, 5, "", "q"],
			"size": 6
		}`,
		FORMAT_TOML: strings.Join([]string{
			`inbox = [3, "a", -2, "Z"]`,
			`memory = ["", 5, "", "q"]`,
			`size = 6`,
		}, "\n"),
		FORMAT_YAML: strings.Join([]string{
			`inbox: [3, a, -2, Z]`,
			`memory: [~, 5, "", q]`,
			`size: 6`,
		}, "\n"),
	}

	expected := &Config{
		Inbox:  []cpu.Value{cpu.Number(3), cpu.Character('a'), cpu.Number(-2), cpu.Character('Z')},
		Memory: []cpu.Value{{}, cpu.Number(5), {}, cpu.Character('q'), {}, {}},
		Size:   6,
	}

	for format, document := range documents {
		config, err := ReadConfig(strings.NewReader(document), format)
		assert.NoError(err, document)
		assert.Equal(expected, config, document)
	}
}

func TestReadConfigTable(t *testing.T) {
	assert := assert.New(t)

	documents := map[Format]string{
		FORMAT_JSON: `{"memory": {"0": 1, "20": "x"}}`,
		FORMAT_TOML: "[memory]\n0 = 1\n20 = \"x\"\n",
		FORMAT_YAML: "memory:\n  0: 1\n  20: x\n",
	}

	for format, document := range documents {
		config, err := ReadConfig(strings.NewReader(document), format)
		assert.NoError(err, document)
		if err != nil {
			continue
		}
		assert.Equal(21, config.Size, document)
		assert.Equal(cpu.Number(1), config.Memory[0], document)
		assert.Equal(cpu.Character('x'), config.Memory[20], document)
		assert.True(config.Memory[1].Empty(), document)
		assert.Equal(0, len(config.Inbox), document)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	config, err := ReadConfig(strings.NewReader(""), FORMAT_JSON)
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SIZE_DEFAULT, config.Size)
	assert.Equal(cpu.MEMORY_SIZE_DEFAULT, len(config.Memory))

	config, err = ReadConfig(strings.NewReader("inbox: [1]\n"), FORMAT_YAML)
	assert.NoError(err)
	assert.Equal([]cpu.Value{cpu.Number(1)}, config.Inbox)
	assert.Equal(cpu.MEMORY_SIZE_DEFAULT, config.Size)

	config, err = ReadConfig(strings.NewReader(`{"memory": [1, 2, 3]}`), FORMAT_JSON)
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SIZE_DEFAULT, config.Size)
	assert.Equal(cpu.Number(3), config.Memory[2])

	long := make([]string, 20)
	for n := range long {
		long[n] = "0"
	}
	config, err = ReadConfig(strings.NewReader(`{"memory": [`+strings.Join(long, ",")+`]}`), FORMAT_JSON)
	assert.NoError(err)
	assert.Equal(20, config.Size)
	assert.Equal(20, len(config.Memory))
}

func TestReadConfigErrors(t *testing.T) {
	assert := assert.New(t)

	var inbox *ErrInbox
	_, err := ReadConfig(strings.NewReader(`{"inbox": [1, ""]}`), FORMAT_JSON)
	if assert.ErrorAs(err, &inbox) {
		assert.Equal(1, inbox.Index)
	}

	_, err = ReadConfig(strings.NewReader(`{"inbox": ["abc"]}`), FORMAT_JSON)
	assert.ErrorIs(err, cpu.ErrParseValue("abc"))

	var memory *ErrMemory
	_, err = ReadConfig(strings.NewReader(`{"memory": [1, 2, 3], "size": 2}`), FORMAT_JSON)
	if assert.ErrorAs(err, &memory) {
		assert.Equal("2", memory.Cell)
	}
	assert.ErrorIs(err, cpu.ErrCellRange(2))

	_, err = ReadConfig(strings.NewReader(`{"memory": {"x": 1}}`), FORMAT_JSON)
	assert.ErrorIs(err, cpu.ErrParseLocation("x"))

	_, err = ReadConfig(strings.NewReader(`{"memory": 7}`), FORMAT_JSON)
	assert.ErrorIs(err, ErrMemorySyntax)

	_, err = ReadConfig(strings.NewReader(`{"size": -1}`), FORMAT_JSON)
	assert.ErrorIs(err, ErrSizeInvalid)

	_, err = ReadConfig(strings.NewReader(`{}`), Format(9))
	assert.ErrorIs(err, ErrFormatUnknown)

	_, err = ReadConfig(strings.NewReader(`inbox = [`), FORMAT_TOML)
	assert.Error(err)
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	path := filepath.Join(dir, "floor.toml")
	err := os.WriteFile(path, []byte("inbox = [\"b\"]\nsize = 3\n"), 0o644)
	assert.NoError(err)

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal([]cpu.Value{cpu.Character('b')}, config.Inbox)
	assert.Equal(3, config.Size)

	_, err = LoadConfig(filepath.Join(dir, "floor.txt"))
	assert.ErrorIs(err, ErrFormatUnknown)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.True(errors.Is(err, os.ErrNotExist))
}
