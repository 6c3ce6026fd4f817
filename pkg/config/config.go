// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the user's preferences for the baghchal command.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var BaseConfigFile []byte

type Config struct {
	Symbols  Symbols `yaml:"symbols"`
	Color    bool    `yaml:"color"`
	LogLevel string  `yaml:"log-level"`
}

// Symbols are the strings used to draw each kind of cell.
type Symbols struct {
	Tiger string `yaml:"tiger"`
	Goat  string `yaml:"goat"`
	Empty string `yaml:"empty"`
}

// Default returns the configuration used when the user hasn't written one.
func Default() Config {
	var config Config
	if err := yaml.Unmarshal(BaseConfigFile, &config); err != nil {
		panic("config: invalid default configuration: " + err.Error())
	}

	return config
}

// Load reads the configuration file at the given path. Settings missing
// from the file, or the whole file, fall back to their defaults.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Trace("No configuration file, using defaults")
		return config, nil
	case err != nil:
		return Config{}, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(file))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// Init writes the default configuration to the given path unless a file
// is already present there.
func Init(path string) (bool, error) {
	return TryCreate(path, BaseConfigFile)
}

// Validate checks that the configuration can be used.
func (config Config) Validate() error {
	symbols := map[string]string{}
	for name, symbol := range map[string]string{
		"tiger": config.Symbols.Tiger,
		"goat":  config.Symbols.Goat,
		"empty": config.Symbols.Empty,
	} {
		if symbol == "" {
			return fmt.Errorf("symbol for %s is empty", name)
		}

		if other, found := symbols[symbol]; found {
			return fmt.Errorf("%s and %s share the symbol %q", name, other, symbol)
		}

		symbols[symbol] = name
	}

	_, err := config.Level()
	return err
}

// Level returns the logging level set by the configuration.
func (config Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(config.LogLevel)
}

// String returns the configuration in the format it is stored in.
func (config Config) String() string {
	data, _ := yaml.Marshal(config)
	return string(data)
}
