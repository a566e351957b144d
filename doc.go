// Package signin coordinates the console sign-in paths: one email and password
// path and one path per configured OAuth provider, sharing a single state
// store.
//
// A Controller is the only surface the presentation layer talks to. It exposes
// the user intents (SubmitCredentials, StartOAuth) and the flags used to
// disable buttons (Busy, InFlight); nothing else changes sign-in state.
//
// Example:
//
//	config, _ := signin.LoadConfig()
//	ctrl, _ := signin.New(config)
//	defer ctrl.Close()
//	if err := ctrl.StartOAuth("github"); err != nil { /* … */ }
//	ctrl.Wait()
package signin
