// Package testutils holds helpers shared by the API wrapper package
// tests.
package testutils

import (
	"context"

	sdk "github.com/apphost/sdk-go"
	"github.com/apphost/sdk-go/requestctx"
)

// Call records one dispatched service method call.
type Call struct {
	Service string
	Method  string
	In      interface{}
}

// FakeCaller scripts responses for service method calls and records what
// was dispatched.
type FakeCaller struct {
	// Respond populates out for the recorded call. Optional.
	Respond func(call Call, out interface{}) error
	Calls   []Call
}

// Call implements sdk.Caller.
func (f *FakeCaller) Call(ctx context.Context, service, method string, in, out interface{}) error {
	call := Call{Service: service, Method: method, In: in}
	f.Calls = append(f.Calls, call)
	if f.Respond != nil {
		return f.Respond(call, out)
	}
	return nil
}

var _ sdk.Caller = (*FakeCaller)(nil)

// FailWith returns a caller whose every call fails with a service error
// carrying the given code.
func FailWith(service string, code int32) *FakeCaller {
	return &FakeCaller{Respond: func(Call, interface{}) error {
		return &sdk.ApplicationError{Service: service, Code: code, Detail: "scripted failure"}
	}}
}

// RequestContext returns a context carrying a store seeded with the given
// key-value pairs.
func RequestContext(pairs ...string) context.Context {
	store := requestctx.NewStore()
	for i := 0; i+1 < len(pairs); i += 2 {
		store.Put(pairs[i], pairs[i+1])
	}
	return requestctx.WithStore(context.Background(), store)
}
