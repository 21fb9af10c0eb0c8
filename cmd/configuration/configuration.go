// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const (
	// DefaultConfigFileName is the name of the user configuration file in SitecfgHomeDir
	DefaultConfigFileName = "config"
	// SitecfgHomeDir is the directory in the user home holding configuration and cache
	SitecfgHomeDir = ".sitecfg"
	// SitecfgConfigEnv overrides the path of the user configuration file
	SitecfgConfigEnv = "SITECFGCONFIG"
)

// Loader loads the user configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader reads the file named by SITECFGCONFIG or ~/.sitecfg/config
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	if configFilePath, found := os.LookupEnv(SitecfgConfigEnv); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", SitecfgConfigEnv)
		}
		return load(configFilePath)
	}

	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	return load(filepath.Join(userHomeDir, SitecfgHomeDir, DefaultConfigFileName))
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			klog.V(4).Infof("no configuration file at %s", configFilePath)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("parsing configuration file %s failed: %w", configFilePath, err)
	}
	return config, nil
}
