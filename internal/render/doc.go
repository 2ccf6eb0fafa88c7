package render

// Package render turns solved exercises into localized text reports.
