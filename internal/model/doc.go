package model

// Package model defines domain data structures shared across the app: job
// status values, the progress record polled by clients, and its wire shape.
// Records are immutable snapshots; state changes replace the whole record.
