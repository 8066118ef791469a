// Package store defines the persistence interfaces and shared error
// vocabulary used by the service and API layers.
package store
