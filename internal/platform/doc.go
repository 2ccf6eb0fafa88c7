package platform

// Package platform contains OS integration glue: locating the per-user
// configuration directory and safe file helpers used by the config layer.
