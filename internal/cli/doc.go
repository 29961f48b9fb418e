// Package cli implements the interactive console menu.
//
// An App reads one line at a time from its input, dispatches the numbered
// menu choice to a handler, and prints results and errors as plain text.
// Handlers collect their fields into small form structs that are checked
// with go-playground/validator before the enrollment service is called.
// End of input ends the session the same way the Exit choice does.
package cli
