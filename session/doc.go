// Package session persists the console session token issued by a successful
// credential login.
//
// It ships with in-memory, file (any afs supported URL) and redis backends. The
// sign-in flow only writes; TokenSource and HTTPClient serve whatever request
// layer reads the token later.
package session
