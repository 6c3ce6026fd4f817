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

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is the path to the directory holding baghchal's files.
	Directory = filepath.Join(xdg.ConfigHome, "baghchal")

	// File is the path to the user's configuration file.
	File = filepath.Join(Directory, "config.yaml")
)

// TryMkdir creates the given directory and its parents if it doesn't exist.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes the given data to the file if it doesn't exist. It
// reports whether a new file was written.
func TryCreate(file string, data []byte) (bool, error) {
	if _, err := os.Stat(file); !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := TryMkdir(filepath.Dir(file)); err != nil {
		return false, err
	}

	return true, os.WriteFile(file, data, 0644)
}
