package config

// Package config holds the configuration of the numconv command: the YAML
// file, its defaults and the limits shared with the exercise generator.
