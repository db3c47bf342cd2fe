package datastorepbs

import "strings"

// An IDResolver translates between project ids and application ids. An
// application id carries a partition prefix ("s~" or "e~") that the modern
// schemas drop, so the reverse mapping needs a registry of known
// applications.
type IDResolver interface {
	// ResolveProjectID converts an application id to a project id.
	ResolveProjectID(appID string) string
	// ResolveAppID converts a project id to an application id. It fails
	// with an InvalidConversionError when the project is unknown.
	ResolveAppID(projectID string) (string, error)
}

// NewIDResolver creates an IDResolver from a list of application ids with
// their partition prefix set, e.g. "s~my-app" or "e~my-app".
func NewIDResolver(appIDs []string) IDResolver {
	r := staticIDResolver{resolverMap: make(map[string]string, len(appIDs))}
	for _, appID := range appIDs {
		r.resolverMap[r.ResolveProjectID(appID)] = appID
	}
	return r
}

type staticIDResolver struct {
	resolverMap map[string]string
}

func (r staticIDResolver) ResolveProjectID(appID string) string {
	// The project id is whatever follows the last partition separator.
	if i := strings.LastIndex(appID, "~"); i >= 0 {
		return appID[i+1:]
	}
	return appID
}

func (r staticIDResolver) ResolveAppID(projectID string) (string, error) {
	appID, ok := r.resolverMap[projectID]
	if err := checkConversion(ok,
		"cannot determine application id for provided project id: %q", projectID); err != nil {
		return "", err
	}
	return appID, nil
}

// identityIDResolver treats application ids and project ids as the same
// string. It is the default when no resolver is supplied.
type identityIDResolver struct{}

func (identityIDResolver) ResolveProjectID(appID string) string { return appID }

func (identityIDResolver) ResolveAppID(projectID string) (string, error) {
	return projectID, nil
}
