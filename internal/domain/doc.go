// Package domain contains the core entities of the application and the
// validation rules that protect their invariants.
package domain
