package model

// Package model defines domain data structures used across the app: the base
// enumeration, reverse-conversion results, generated exercises and their
// status enum. Structures are plain values so they can be rendered or encoded
// as JSON without adapters.
