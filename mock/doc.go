// Package mock provides an in-memory console backend and recording
// collaborators that facilitate testing the sign-in flow.
//
// The backend serves the credential login and OAuth initiation endpoints on an
// httptest server; the recorders capture navigation and notifications instead
// of performing them.
package mock
