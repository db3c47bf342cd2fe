package datastorepbs

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIDResolver_ResolveProjectID(t *testing.T) {
	r := NewIDResolver([]string{"s~myapp"})
	if v := r.ResolveProjectID("s~myapp"); v != "myapp" {
		t.Errorf("unexpected project id: %s", v)
	}
	if v := r.ResolveProjectID("e~other"); v != "other" {
		t.Errorf("unexpected project id: %s", v)
	}
	// Only the segment after the last separator counts.
	if v := r.ResolveProjectID("s~a~b"); v != "b" {
		t.Errorf("unexpected project id: %s", v)
	}
	if v := r.ResolveProjectID("plain"); v != "plain" {
		t.Errorf("unexpected project id: %s", v)
	}
}

func TestIDResolver_ResolveAppID(t *testing.T) {
	r := NewIDResolver([]string{"s~myapp", "e~euro-app"})
	appID, err := r.ResolveAppID("myapp")
	if err != nil {
		t.Fatal(err)
	}
	if appID != "s~myapp" {
		t.Errorf("unexpected app id: %s", appID)
	}
	appID, err = r.ResolveAppID("euro-app")
	if err != nil {
		t.Fatal(err)
	}
	if appID != "e~euro-app" {
		t.Errorf("unexpected app id: %s", appID)
	}

	_, err = r.ResolveAppID("unknown")
	if err == nil {
		t.Fatal("expected error for unknown project id")
	}
	var convErr *InvalidConversionError
	if !errors.As(err, &convErr) {
		t.Errorf("unexpected error type: %T", err)
	}
}

func TestNewEntityConverter_DefaultResolverIsIdentity(t *testing.T) {
	c := NewEntityConverter(nil)
	appID, err := c.ProjectToAppID("s~myapp")
	if err != nil {
		t.Fatal(err)
	}
	if appID != "s~myapp" {
		t.Errorf("unexpected app id: %s", appID)
	}
	if v := c.AppToProjectID("s~myapp"); v != "s~myapp" {
		t.Errorf("unexpected project id: %s", v)
	}
}
