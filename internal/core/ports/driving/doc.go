// Package driving provides interfaces for the application's entry points
// (primary/inbound ports). The CLI depends on these interfaces; services
// implement them.
package driving
