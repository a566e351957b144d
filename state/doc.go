// Package state holds the sign-in request state: which sign-in methods have an
// attempt outstanding.
//
// State is changed only by dispatching one of a closed set of actions through
// Reduce. Store serializes dispatches and notifies listeners synchronously, so a
// flag transition is visible to every listener before any effect it triggers
// starts.
package state
