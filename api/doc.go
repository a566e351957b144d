// Package api implements the console endpoints the sign-in flow depends on:
// the credential login endpoint and the OAuth initiation endpoint.
//
// The package only shapes requests and decodes responses; it leaves retries and
// timeouts to the underlying http.Client.
package api
