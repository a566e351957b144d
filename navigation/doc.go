// Package navigation performs the terminal transitions of a sign-in: replacing
// the in-app route after a credential login and leaving for an external
// authorization URL after an OAuth initiation.
package navigation
