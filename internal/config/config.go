// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// Type is the loaded configuration: the file it came from, the active
// command namespace (e.g. "dq", so "dq.sort" is preferred over "sort"),
// and the raw YAML tree. Values come out through the typed getters.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration. It loads lazily: getters reload
// when the tree is empty, so a missing file at startup is not fatal.
var Config Type

func init() {
	_, _ = Load()
}

// Load locates the YAML config file, parses it and replaces the global
// Config. The namespace survives only if the caller re-sets it.
func Load(cfgFilePath ...string) (Type, error) {
	path, err := locate()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, err
	}

	Config = Type{Source: path, Data: data}
	return Config, nil
}

// locate resolves the config file path: JCMP_CFG_FILE when set (must name an
// existing file), otherwise jcmp.yaml in the user config directory.
func locate() (string, error) {
	if path := os.Getenv("JCMP_CFG_FILE"); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("config file not found at JCMP_CFG_FILE path: %s", path)
		}
		if info.IsDir() {
			return "", fmt.Errorf("JCMP_CFG_FILE points to a directory: %s", path)
		}
		log.Debugf("using config file from JCMP_CFG_FILE: %s", path)
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "jcmp.yaml")
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		log.Debugf("using config file: %s", path)
		return path, nil
	}

	return "", fmt.Errorf("no config file found in standard locations")
}

// resolve fetches the raw value at a dotted key, trying the namespaced key
// first when a namespace is active.
func resolve(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil && Config.Namespace != "" {
		val, err = Config.get(Config.Namespace + "." + key)
	}
	return val, err
}

// GetString returns the string at the dotted key. A single default is
// returned when the key is absent; a present non-string value is an error.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := resolve(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetInt returns the integer at the dotted key, converting the numeric
// shapes YAML can produce. A single default is returned when absent.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := resolve(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch n := val.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetStringSlice returns the string list at the dotted key. YAML sequences
// decode as []interface{}, so elements are checked one by one.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := resolve(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch items := val.(type) {
	case []string:
		return items, nil
	case []interface{}:
		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, errors.New("value is not a slice")
	}
}

// get walks the tree along a dotted key. With a namespace set, the
// namespaced key is tried before the bare one.
func (cfg *Type) get(kspec string) (any, error) {
	if len(cfg.Data) == 0 {
		_, _ = Load(cfg.Source)
	}

	candidates := []string{kspec}
	if cfg.Namespace != "" {
		candidates = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, candidate := range candidates {
		current := interface{}(cfg.Data)
		found := true
		for _, part := range strings.Split(candidate, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			if current, ok = m[part]; !ok {
				found = false
				break
			}
		}
		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidates)
}
