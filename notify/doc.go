// Package notify surfaces user visible sign-in messages.
//
// Messages either carry a message key (looked up by the presentation layer) or
// a server supplied text that is shown as is.
package notify
