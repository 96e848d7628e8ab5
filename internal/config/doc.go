// Package config manages the user-level configuration file
// (~/.stencil/config.yaml) through Viper. Values can also be supplied via
// STENCIL_* environment variables.
package config
