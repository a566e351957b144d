// Package oauth coordinates sign-in through external identity providers.
//
// A Coordinator watches the in-flight flag of a single provider in a
// state.Store. Every start action for its provider spawns one authorization
// request; a successful response leaves for the returned redirect URL, a
// failed one clears the flag so the user can try again. Nothing starts a flow
// except the start action.
//
// Closing a coordinator marks it torn down: results that arrive afterwards are
// dropped without touching state, navigation or notifications.
package oauth
