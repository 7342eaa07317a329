// Package config provides configuration structures and utilities for
// taskfmt. It defines the command line options, the optional .taskfmt
// configuration file with named table profiles, and the translation of
// both into a tabulate request.
package config
