// Package cli provides the terminal interface to the dictionary. It
// handles flag parsing, command creation, and configuration management
// using cobra and viper.
package cli
