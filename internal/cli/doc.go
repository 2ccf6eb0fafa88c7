package cli

// Package cli implements the numconv command tree on top of cobra. Commands
// print reports to the command's stdout and logs to its stderr so they can
// be driven from tests with plain buffers.
