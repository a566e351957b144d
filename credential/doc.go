// Package credential implements the email and password sign-in.
//
// An Authenticator validates the email locally, submits the login, persists the
// returned session token and navigates home. At most one submission runs at a
// time; a submission made while another is outstanding is rejected with ErrBusy
// without issuing a request.
package credential
