// Package service implements the application's use cases: principal-scoped
// CRUD over tasks and tags, with ownership enforcement on every
// resource-scoped operation.
package service
