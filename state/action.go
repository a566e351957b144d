package state

import "fmt"

// Method identifies a sign-in path.
type Method string

// Kind identifies an action kind.
type Kind string

const (
	MethodCredential Method = "credential"
	MethodOAuth      Method = "oauth"
)

const (
	KindStart Kind = "start"
	KindFail  Kind = "fail"
)

// Action is a request to change State. Provider is only used by MethodOAuth.
type Action struct {
	Kind     Kind
	Method   Method
	Provider string
}

func (a Action) String() string {
	if a.Method == MethodOAuth {
		return fmt.Sprintf("%s(%s, %s)", a.Kind, a.Method, a.Provider)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Method)
}

// StartCredential marks a credential attempt as begun.
func StartCredential() Action {
	return Action{Kind: KindStart, Method: MethodCredential}
}

// FailCredential reports a failed credential attempt.
func FailCredential() Action {
	return Action{Kind: KindFail, Method: MethodCredential}
}

// StartOAuth sets the in-flight flag of provider.
func StartOAuth(provider string) Action {
	return Action{Kind: KindStart, Method: MethodOAuth, Provider: provider}
}

// FailOAuth clears the in-flight flag of provider.
func FailOAuth(provider string) Action {
	return Action{Kind: KindFail, Method: MethodOAuth, Provider: provider}
}
