// Package file is a TOML-backed implementation of the SettingsStore
// port. The settings file plays the role the secret payload plays in a
// hosted deployment: credential exchange fields plus sync options,
// read once at startup.
package file
