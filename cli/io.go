// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cogentcore.org/gradients/base/fsx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MaxIncludeDepth is the deepest chain of included config files
// that [Open] follows before reporting an include cycle.
const MaxIncludeDepth = 10

// Includer is implemented by config types that can include other
// config files, listed by path relative to the including file.
type Includer interface {
	IncludesPtr() *[]string
}

// Open reads the config struct from the given TOML (.toml) or YAML
// (.yaml, .yml) file. Only the fields present in the file are set.
// A leading ~ in file and include paths is the home directory.
// If cfg is an [Includer], the included files are opened first in
// order, so that the including file overrides their settings, and
// the Includes of cfg are left as listed in the given file.
func Open(cfg any, file string) error {
	return openWithIncludes(cfg, file, 0)
}

func openWithIncludes(cfg any, file string, depth int) error {
	if depth > MaxIncludeDepth {
		return fmt.Errorf("cli.Open: includes nested deeper than %d at %q", MaxIncludeDepth, file)
	}
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if err := openFile(cfg, file); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs := *incfg.IncludesPtr()
	if len(incs) == 0 {
		return nil
	}
	for _, inc := range incs {
		inc, err := IncludePath(file, inc)
		if err != nil {
			return err
		}
		*incfg.IncludesPtr() = nil
		if err := openWithIncludes(cfg, inc, depth+1); err != nil {
			return fmt.Errorf("cli.Open: including %q from %q: %w", inc, file, err)
		}
	}
	// reopen original
	if err := openFile(cfg, file); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}

// IncludePath returns the path of the file included as inc by the
// config file from: inc with a leading ~ expanded, and relative to
// the directory of from unless it is absolute.
func IncludePath(from, inc string) (string, error) {
	inc, err := homedir.Expand(inc)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(inc) {
		return inc, nil
	}
	return filepath.Join(filepath.Dir(from), inc), nil
}

// openFile decodes a single file into cfg according to its extension.
func openFile(cfg any, file string) error {
	fsys, name, err := fsx.DirFS(file)
	if err != nil {
		return err
	}
	exists, err := fsx.FileExistsFS(fsys, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("cli.Open: config file %q not found", file)
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("cli.Open: unsupported config file extension %q for %q", ext, file)
	}
	if err != nil {
		return fmt.Errorf("cli.Open: %s: %w", file, err)
	}
	return nil
}
