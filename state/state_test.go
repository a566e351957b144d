package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	testCases := []struct {
		description string
		initial     State
		action      Action
		expect      State
	}{
		{
			description: "credential start marks attempt",
			initial:     New(),
			action:      StartCredential(),
			expect:      State{CredentialStarted: true, OAuthInFlight: map[string]bool{}},
		},
		{
			description: "credential failure keeps marker",
			initial:     State{CredentialStarted: true, OAuthInFlight: map[string]bool{}},
			action:      FailCredential(),
			expect:      State{CredentialStarted: true, OAuthInFlight: map[string]bool{}},
		},
		{
			description: "oauth start sets provider flag",
			initial:     New(),
			action:      StartOAuth("github"),
			expect:      State{OAuthInFlight: map[string]bool{"github": true}},
		},
		{
			description: "oauth start while in flight stays set",
			initial:     State{OAuthInFlight: map[string]bool{"github": true}},
			action:      StartOAuth("github"),
			expect:      State{OAuthInFlight: map[string]bool{"github": true}},
		},
		{
			description: "oauth failure clears only that provider",
			initial:     State{OAuthInFlight: map[string]bool{"github": true, "google": true}},
			action:      FailOAuth("google"),
			expect:      State{OAuthInFlight: map[string]bool{"github": true, "google": false}},
		},
	}

	for _, testCase := range testCases {
		before := testCase.initial.Clone()
		actual := Reduce(testCase.initial, testCase.action)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		assert.EqualValues(t, before, testCase.initial, testCase.description+": input mutated")
	}
}

func TestReduce_UnknownAction(t *testing.T) {
	for _, action := range []Action{
		{Kind: "reset", Method: MethodCredential},
		{Kind: KindStart, Method: "passkey"},
		{Kind: KindStart, Method: MethodOAuth},
		{},
	} {
		assert.PanicsWithError(t, (&ProgrammingError{Action: action}).Error(), func() {
			Reduce(New(), action)
		}, action.String())
	}
}

func TestStore_Dispatch(t *testing.T) {
	store := NewStore(New())
	var seen []Action
	var flags []bool
	unsubscribe := store.Subscribe(func(prev, next State, action Action) {
		seen = append(seen, action)
		flags = append(flags, next.InFlight("github"))
		// listeners observe the committed state
		require.Equal(t, next.InFlight("github"), store.State().InFlight("github"))
	})

	assert.False(t, store.State().InFlight("github"))
	store.Dispatch(StartOAuth("github"))
	assert.True(t, store.State().InFlight("github"))
	assert.False(t, store.State().InFlight("google"))
	store.Dispatch(FailOAuth("github"))
	assert.False(t, store.State().InFlight("github"))

	unsubscribe()
	unsubscribe()
	store.Dispatch(StartOAuth("github"))

	assert.EqualValues(t, []Action{StartOAuth("github"), FailOAuth("github")}, seen)
	assert.EqualValues(t, []bool{true, false}, flags)
}

func TestStore_DispatchUnknownActionPanics(t *testing.T) {
	store := NewStore(New())
	assert.Panics(t, func() {
		store.Dispatch(Action{Kind: "noop", Method: MethodOAuth, Provider: "github"})
	})
	// the store remains usable
	store.Dispatch(StartOAuth("github"))
	assert.True(t, store.State().InFlight("github"))
}

func TestStore_SnapshotIsolation(t *testing.T) {
	store := NewStore(New())
	snapshot := store.State()
	snapshot.OAuthInFlight["github"] = true
	assert.False(t, store.State().InFlight("github"))
}
