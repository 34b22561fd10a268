// Package config manages user-level settings stored at ~/.sitekit/config.yaml.
// It provides functions to load, read, and write keys such as the default
// probe driver and the dotenv file the probe loads.
package config
