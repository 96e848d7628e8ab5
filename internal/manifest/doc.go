// Package manifest loads, diffs, and mutates the project manifest
// (package.json). It owns the in-memory manifest state for a project,
// computes which requested dependencies are not yet installed, drives the
// package manager to install them, and merges script entries under a
// caller-supplied confirmation policy.
package manifest
