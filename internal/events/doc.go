// Package events provides types and interfaces for publishing enrollment
// changes.
//
// Services emit an Event after every successful mutation without knowing
// which handlers will process it. The only handler shipped with the
// application records events in the log as an audit trail.
//
// The primary components are:
// - Event: a record of one change to students, courses or enrollments
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
