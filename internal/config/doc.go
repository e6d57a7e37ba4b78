// Package config defines the application configuration structure and its
// viper-based loader. Configuration is read once at process start; there is
// no runtime reconfiguration.
package config
