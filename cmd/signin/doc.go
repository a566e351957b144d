// Command signin signs in to the console API from a terminal.
//
// With --email and --password it performs a credential login and stores the
// session token. With --provider it asks the console for the provider
// authorization URL and opens it in the system browser.
package main
