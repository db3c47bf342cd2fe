// Package modules controls the services and versions of an application.
//
// Services were formerly known as modules and the service protocol still
// reflects that naming. Calls are issued through an sdk.Caller against the
// "modules" backend service; metadata about the current instance is read
// from the request context store.
package modules

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	sdk "github.com/apphost/sdk-go"
	"github.com/apphost/sdk-go/requestctx"
)

// ServiceName is the backend service the client talks to.
const ServiceName = "modules"

// Numeric application error codes returned by the modules service.
const (
	codeInvalidModule    int32 = 1
	codeInvalidVersion   int32 = 2
	codeInvalidInstances int32 = 3
	codeTransientError   int32 = 4
	codeUnexpectedState  int32 = 5
)

var (
	// ErrInvalidModule means the given module is not known to the system.
	ErrInvalidModule = errors.New("modules: invalid module")
	// ErrInvalidVersion means the given module version is not known to the
	// system.
	ErrInvalidVersion = errors.New("modules: invalid version")
	// ErrInvalidInstances means the given instances value is not valid.
	ErrInvalidInstances = errors.New("modules: invalid instances")
	// ErrUnexpectedState means an unexpected current state was found when
	// starting or stopping a module.
	ErrUnexpectedState = errors.New("modules: unexpected state")
	// ErrTransient means a transient error was encountered; the operation
	// can be retried.
	ErrTransient = errors.New("modules: transient error")
)

// CurrentModuleName returns the module name of the current instance. For
// version "v1" of module "module5" this is "module5".
func CurrentModuleName(ctx context.Context) string {
	store := requestctx.FromContext(ctx)
	if store == nil {
		return ""
	}
	if v := store.Get("GAE_SERVICE"); v != "" {
		return v
	}
	return store.Get("CURRENT_MODULE_ID")
}

// CurrentVersionName returns the version of the current instance. For
// version "v1" of module "module5" this is "v1".
func CurrentVersionName(ctx context.Context) string {
	store := requestctx.FromContext(ctx)
	if store == nil {
		return ""
	}
	if v := store.Get("GAE_VERSION"); v != "" {
		return v
	}
	v := strings.SplitN(store.Get("CURRENT_VERSION_ID"), ".", 2)[0]
	if v == "None" {
		return ""
	}
	return v
}

// CurrentInstanceID returns the ID of the current instance. It is only
// set for automatically-scaled modules; otherwise the result is empty.
func CurrentInstanceID(ctx context.Context) string {
	store := requestctx.FromContext(ctx)
	if store == nil {
		return ""
	}
	if v := store.Get("GAE_INSTANCE"); v != "" {
		return v
	}
	return store.Get("INSTANCE_ID")
}

// A Client issues modules service calls.
type Client struct {
	caller sdk.Caller
	logger logrus.FieldLogger
}

// NewClient creates a client issuing calls through caller.
func NewClient(caller sdk.Caller) *Client {
	return &Client{caller: caller, logger: logrus.StandardLogger()}
}

// SetLogger replaces the logger used for suppressed service errors.
func (c *Client) SetLogger(logger logrus.FieldLogger) {
	c.logger = logger
}

// mapError translates a service-level failure to a typed error when its
// code is one the operation expects; other failures are passed through
// wrapped.
func mapError(err error, expected ...int32) error {
	if err == nil {
		return nil
	}
	var appErr *sdk.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	for _, code := range expected {
		if appErr.Code != code {
			continue
		}
		switch code {
		case codeInvalidModule:
			return ErrInvalidModule
		case codeInvalidVersion:
			return ErrInvalidVersion
		case codeInvalidInstances:
			return ErrInvalidInstances
		case codeTransientError:
			return ErrTransient
		case codeUnexpectedState:
			return ErrUnexpectedState
		}
	}
	return errors.Wrap(err, "modules")
}

// GetModules returns the names of all modules of the application. The
// "default" module is included if it exists.
func (c *Client) GetModules(ctx context.Context) ([]string, error) {
	res := &GetModulesResponse{}
	if err := c.caller.Call(ctx, ServiceName, "GetModules", &GetModulesRequest{}, res); err != nil {
		return nil, mapError(err)
	}
	return res.Module, nil
}

// GetVersions returns the version names of a module. An empty module
// means the module of the current instance.
func (c *Client) GetVersions(ctx context.Context, module string) ([]string, error) {
	req := &GetVersionsRequest{Module: module}
	res := &GetVersionsResponse{}
	if err := c.caller.Call(ctx, ServiceName, "GetVersions", req, res); err != nil {
		return nil, mapError(err, codeInvalidModule, codeTransientError)
	}
	return res.Version, nil
}

// GetDefaultVersion returns the name of the default version of a module.
// An empty module means the module of the current instance.
func (c *Client) GetDefaultVersion(ctx context.Context, module string) (string, error) {
	req := &GetDefaultVersionRequest{Module: module}
	res := &GetDefaultVersionResponse{}
	if err := c.caller.Call(ctx, ServiceName, "GetDefaultVersion", req, res); err != nil {
		return "", mapError(err, codeInvalidModule, codeInvalidVersion)
	}
	return res.Version, nil
}

// GetNumInstances returns the number of instances set for a module
// version. Only valid for fixed modules. Empty module or version mean
// those of the current instance.
func (c *Client) GetNumInstances(ctx context.Context, module, version string) (int64, error) {
	req := &GetNumInstancesRequest{Module: module, Version: version}
	res := &GetNumInstancesResponse{}
	if err := c.caller.Call(ctx, ServiceName, "GetNumInstances", req, res); err != nil {
		return 0, mapError(err, codeInvalidVersion)
	}
	return res.Instances, nil
}

// SetNumInstances sets the number of instances of a module version. Empty
// module or version mean those of the current instance.
func (c *Client) SetNumInstances(ctx context.Context, module, version string, instances int64) error {
	req := &SetNumInstancesRequest{Module: module, Version: version, Instances: instances}
	err := c.caller.Call(ctx, ServiceName, "SetNumInstances", req, &SetNumInstancesResponse{})
	return mapError(err, codeInvalidVersion, codeTransientError)
}

// StartVersion starts all instances of the given module version. Starting
// an already started version is not an error.
func (c *Client) StartVersion(ctx context.Context, module, version string) error {
	req := &StartModuleRequest{Module: module, Version: version}
	err := c.caller.Call(ctx, ServiceName, "StartModule", req, &StartModuleResponse{})
	if isUnexpectedState(err) {
		c.logger.Infof("the specified module: %s, version: %s is already started", module, version)
		return nil
	}
	return mapError(err, codeInvalidVersion, codeTransientError)
}

// StopVersion stops all instances of the given module version. Stopping
// an already stopped version is not an error. Empty module or version
// mean those of the current instance.
func (c *Client) StopVersion(ctx context.Context, module, version string) error {
	req := &StopModuleRequest{Module: module, Version: version}
	err := c.caller.Call(ctx, ServiceName, "StopModule", req, &StopModuleResponse{})
	if isUnexpectedState(err) {
		c.logger.Infof("the specified module: %s, version: %s is already stopped", module, version)
		return nil
	}
	return mapError(err, codeInvalidVersion, codeTransientError)
}

// GetHostname returns a hostname to use to contact a module version, for
// example "0.v1.module5.myapp.appspot.com". An empty instance yields a
// load-balanced hostname for the module.
func (c *Client) GetHostname(ctx context.Context, module, version, instance string) (string, error) {
	req := &GetHostnameRequest{Module: module, Version: version, Instance: instance}
	res := &GetHostnameResponse{}
	if err := c.caller.Call(ctx, ServiceName, "GetHostname", req, res); err != nil {
		return "", mapError(err, codeInvalidModule, codeInvalidInstances)
	}
	return res.Hostname, nil
}

func isUnexpectedState(err error) bool {
	var appErr *sdk.ApplicationError
	return errors.As(err, &appErr) && appErr.Code == codeUnexpectedState
}
