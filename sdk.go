// Package sdk provides the service-call plumbing shared by the API
// wrapper packages in this module.
//
// Wrappers such as the modules and oauth packages express every backend
// interaction as a call to a named service method. The Caller interface
// decouples them from any particular transport: production code plugs in
// a real RPC client, tests plug in a CallerFunc.
package sdk

import (
	"context"
	"fmt"
)

// Caller dispatches a single service method call. in and out are the
// request and response messages of the method; their concrete types are
// defined by the wrapper package making the call.
type Caller interface {
	Call(ctx context.Context, service, method string, in, out interface{}) error
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, service, method string, in, out interface{}) error

func (f CallerFunc) Call(ctx context.Context, service, method string, in, out interface{}) error {
	return f(ctx, service, method, in, out)
}

// ApplicationError is a service-level failure: the call reached the
// backend, which rejected it with a service-specific numeric code.
type ApplicationError struct {
	Service string
	Code    int32
	Detail  string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("API error %d (%s): %s", e.Code, e.Service, e.Detail)
}
