// Package mocks provides hand-rolled test doubles for the store and auth
// interfaces. Each mock exposes function fields for per-test behavior plus
// sensible map-backed defaults.
package mocks
