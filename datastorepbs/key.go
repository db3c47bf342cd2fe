package datastorepbs

import (
	"fmt"
	"strings"

	dspb "google.golang.org/genproto/googleapis/datastore/v1"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

// An EntityConverter converts entities, keys and values between the legacy
// and modern schemas. The zero value is not usable; construct one with
// NewEntityConverter.
type EntityConverter struct {
	idResolver IDResolver
}

// NewEntityConverter creates a converter using the given resolver for
// project id <-> application id translation. A nil resolver means ids are
// used verbatim.
func NewEntityConverter(idResolver IDResolver) *EntityConverter {
	if idResolver == nil {
		idResolver = identityIDResolver{}
	}
	return &EntityConverter{idResolver: idResolver}
}

// ProjectToAppID converts a project id to an application id.
func (c *EntityConverter) ProjectToAppID(projectID string) (string, error) {
	return c.idResolver.ResolveAppID(projectID)
}

// AppToProjectID converts an application id to a project id.
func (c *EntityConverter) AppToProjectID(appID string) string {
	return c.idResolver.ResolveProjectID(appID)
}

// V4ToV3Reference converts an intermediate-schema Key to a legacy
// Reference. The partition dataset id is copied verbatim.
func (c *EntityConverter) V4ToV3Reference(v4Key *entityv4.Key) *entityv3.Reference {
	v3Ref := &entityv3.Reference{}
	if part := v4Key.GetPartitionID(); part != nil {
		if part.DatasetID != nil {
			app := *part.DatasetID
			v3Ref.App = &app
		}
		if part.Namespace != nil {
			ns := *part.Namespace
			v3Ref.NameSpace = &ns
		}
	}
	for _, v4Element := range v4Key.GetPathElement() {
		v3Element := &entityv3.PathElement{}
		kind := v4Element.GetKind()
		v3Element.Type = &kind
		if v4Element.ID != nil {
			id := *v4Element.ID
			v3Element.ID = &id
		}
		if v4Element.Name != nil {
			name := *v4Element.Name
			v3Element.Name = &name
		}
		if v3Ref.Path == nil {
			v3Ref.Path = &entityv3.Path{}
		}
		v3Ref.Path.Element = append(v3Ref.Path.Element, v3Element)
	}
	return v3Ref
}

// V4ToV3References converts a list of intermediate-schema Keys.
func (c *EntityConverter) V4ToV3References(v4Keys []*entityv4.Key) []*entityv3.Reference {
	v3Refs := make([]*entityv3.Reference, 0, len(v4Keys))
	for _, v4Key := range v4Keys {
		v3Refs = append(v3Refs, c.V4ToV3Reference(v4Key))
	}
	return v3Refs
}

// V3ToV4Key converts a legacy Reference to an intermediate-schema Key. A
// reference without an app yields an empty key.
func (c *EntityConverter) V3ToV4Key(v3Ref *entityv3.Reference) *entityv4.Key {
	v4Key := &entityv4.Key{}
	if v3Ref.GetApp() == "" {
		return v4Key
	}
	app := v3Ref.GetApp()
	v4Key.PartitionID = &entityv4.PartitionID{DatasetID: &app}
	if v3Ref.GetNameSpace() != "" {
		ns := v3Ref.GetNameSpace()
		v4Key.PartitionID.Namespace = &ns
	}
	for _, v3Element := range v3Ref.GetPath().GetElement() {
		v4Element := &entityv4.KeyPathElement{}
		kind := v3Element.GetType()
		v4Element.Kind = &kind
		if v3Element.ID != nil {
			id := *v3Element.ID
			v4Element.ID = &id
		}
		if v3Element.Name != nil {
			name := *v3Element.Name
			v4Element.Name = &name
		}
		v4Key.PathElement = append(v4Key.PathElement, v4Element)
	}
	return v4Key
}

// V3ToV4Keys converts a list of legacy References.
func (c *EntityConverter) V3ToV4Keys(v3Refs []*entityv3.Reference) []*entityv4.Key {
	v4Keys := make([]*entityv4.Key, 0, len(v3Refs))
	for _, v3Ref := range v3Refs {
		v4Keys = append(v4Keys, c.V3ToV4Key(v3Ref))
	}
	return v4Keys
}

// V1ToV3Reference converts a modern Key to a legacy Reference, resolving
// the project id to an application id.
func (c *EntityConverter) V1ToV3Reference(v1Key *dspb.Key) (*entityv3.Reference, error) {
	v3Ref := &entityv3.Reference{}
	if part := v1Key.GetPartitionId(); part != nil {
		if part.GetProjectId() != "" {
			appID, err := c.idResolver.ResolveAppID(part.GetProjectId())
			if err != nil {
				return nil, err
			}
			v3Ref.App = &appID
		}
		if part.GetNamespaceId() != "" {
			ns := part.GetNamespaceId()
			v3Ref.NameSpace = &ns
		}
	}
	for _, v1Element := range v1Key.GetPath() {
		v3Element := &entityv3.PathElement{}
		kind := v1Element.GetKind()
		v3Element.Type = &kind
		switch idType := v1Element.GetIdType().(type) {
		case *dspb.Key_PathElement_Id:
			id := idType.Id
			v3Element.ID = &id
		case *dspb.Key_PathElement_Name:
			name := idType.Name
			v3Element.Name = &name
		}
		if v3Ref.Path == nil {
			v3Ref.Path = &entityv3.Path{}
		}
		v3Ref.Path.Element = append(v3Ref.Path.Element, v3Element)
	}
	return v3Ref, nil
}

// V1ToV3References converts a list of modern Keys.
func (c *EntityConverter) V1ToV3References(v1Keys []*dspb.Key) ([]*entityv3.Reference, error) {
	v3Refs := make([]*entityv3.Reference, 0, len(v1Keys))
	for _, v1Key := range v1Keys {
		v3Ref, err := c.V1ToV3Reference(v1Key)
		if err != nil {
			return nil, err
		}
		v3Refs = append(v3Refs, v3Ref)
	}
	return v3Refs, nil
}

// V3ToV1Key converts a legacy Reference to a modern Key, resolving the
// application id to a project id. A reference without an app yields an
// empty key.
func (c *EntityConverter) V3ToV1Key(v3Ref *entityv3.Reference) *dspb.Key {
	v1Key := &dspb.Key{}
	if v3Ref.GetApp() == "" {
		return v1Key
	}
	v1Key.PartitionId = &dspb.PartitionId{
		ProjectId: c.idResolver.ResolveProjectID(v3Ref.GetApp()),
	}
	if v3Ref.GetNameSpace() != "" {
		v1Key.PartitionId.NamespaceId = v3Ref.GetNameSpace()
	}
	for _, v3Element := range v3Ref.GetPath().GetElement() {
		v1Element := &dspb.Key_PathElement{Kind: v3Element.GetType()}
		if v3Element.ID != nil {
			v1Element.IdType = &dspb.Key_PathElement_Id{Id: *v3Element.ID}
		}
		if v3Element.Name != nil {
			v1Element.IdType = &dspb.Key_PathElement_Name{Name: *v3Element.Name}
		}
		v1Key.Path = append(v1Key.Path, v1Element)
	}
	return v1Key
}

// V3ToV1Keys converts a list of legacy References.
func (c *EntityConverter) V3ToV1Keys(v3Refs []*entityv3.Reference) []*dspb.Key {
	v1Keys := make([]*dspb.Key, 0, len(v3Refs))
	for _, v3Ref := range v3Refs {
		v1Keys = append(v1Keys, c.V3ToV1Key(v3Ref))
	}
	return v1Keys
}

// V3ReferenceToGroup derives the entity group of a Reference: a Path
// holding only the first element.
func (c *EntityConverter) V3ReferenceToGroup(v3Ref *entityv3.Reference) (*entityv3.Path, error) {
	elements := v3Ref.GetPath().GetElement()
	if err := checkConversion(len(elements) >= 1, "reference has an empty path"); err != nil {
		return nil, err
	}
	return &entityv3.Path{Element: []*entityv3.PathElement{CopyV3PathElement(elements[0])}}, nil
}

// V3ReferenceToV3PropertyValue wraps a Reference in a PropertyValue.
func (c *EntityConverter) V3ReferenceToV3PropertyValue(v3Ref *entityv3.Reference) *entityv3.PropertyValue {
	referenceValue := &entityv3.ReferenceValue{}
	if v3Ref.App != nil {
		app := *v3Ref.App
		referenceValue.App = &app
	}
	if v3Ref.NameSpace != nil {
		ns := *v3Ref.NameSpace
		referenceValue.NameSpace = &ns
	}
	for _, v3Element := range v3Ref.GetPath().GetElement() {
		el := &entityv3.ReferenceValuePathElement{}
		if v3Element.Type != nil {
			kind := *v3Element.Type
			el.Type = &kind
		}
		if v3Element.ID != nil {
			id := *v3Element.ID
			el.ID = &id
		}
		if v3Element.Name != nil {
			name := *v3Element.Name
			el.Name = &name
		}
		referenceValue.PathElement = append(referenceValue.PathElement, el)
	}
	return &entityv3.PropertyValue{ReferenceValue: referenceValue}
}

func (c *EntityConverter) v3ReferenceValueToV3Reference(v3RefValue *entityv3.ReferenceValue) *entityv3.Reference {
	v3Ref := &entityv3.Reference{}
	if v3RefValue.App != nil {
		app := *v3RefValue.App
		v3Ref.App = &app
	}
	if v3RefValue.NameSpace != nil {
		ns := *v3RefValue.NameSpace
		v3Ref.NameSpace = &ns
	}
	for _, el := range v3RefValue.GetPathElement() {
		v3Element := &entityv3.PathElement{}
		if el.Type != nil {
			kind := *el.Type
			v3Element.Type = &kind
		}
		if el.ID != nil {
			id := *el.ID
			v3Element.ID = &id
		}
		if el.Name != nil {
			name := *el.Name
			v3Element.Name = &name
		}
		if v3Ref.Path == nil {
			v3Ref.Path = &entityv3.Path{}
		}
		v3Ref.Path.Element = append(v3Ref.Path.Element, v3Element)
	}
	return v3Ref
}

// CopyV3PathElement returns a copy of a legacy path element, preserving
// field presence.
func CopyV3PathElement(src *entityv3.PathElement) *entityv3.PathElement {
	dst := &entityv3.PathElement{}
	if src.Type != nil {
		kind := *src.Type
		dst.Type = &kind
	}
	if src.ID != nil {
		id := *src.ID
		dst.ID = &id
	}
	if src.Name != nil {
		name := *src.Name
		dst.Name = &name
	}
	return dst
}

// V4KeyToString renders an intermediate-schema key path for debugging. The
// output does not escape special characters; if an element has both a name
// and an id the name is ignored.
func V4KeyToString(v4Key *entityv4.Key) string {
	pathElementStrings := make([]string, 0, len(v4Key.GetPathElement()))
	for _, pathElement := range v4Key.GetPathElement() {
		idOrName := ""
		if pathElement.ID != nil {
			idOrName = fmt.Sprintf("%d", *pathElement.ID)
		} else if pathElement.Name != nil {
			idOrName = *pathElement.Name
		}
		pathElementStrings = append(pathElementStrings,
			fmt.Sprintf("%s: %s", pathElement.GetKind(), idOrName))
	}
	return "[" + strings.Join(pathElementStrings, ", ") + "]"
}

// V1KeyToString renders a modern key path for debugging, with the same
// caveats as V4KeyToString.
func V1KeyToString(v1Key *dspb.Key) string {
	pathElementStrings := make([]string, 0, len(v1Key.GetPath()))
	for _, pathElement := range v1Key.GetPath() {
		idOrName := ""
		switch idType := pathElement.GetIdType().(type) {
		case *dspb.Key_PathElement_Id:
			idOrName = fmt.Sprintf("%d", idType.Id)
		case *dspb.Key_PathElement_Name:
			idOrName = idType.Name
		}
		pathElementStrings = append(pathElementStrings,
			fmt.Sprintf("%s: %s", pathElement.GetKind(), idOrName))
	}
	return "[" + strings.Join(pathElementStrings, ", ") + "]"
}

// IsCompleteV4Key reports whether the last path element carries an id or a
// name. A key with an empty path is incomplete.
func IsCompleteV4Key(v4Key *entityv4.Key) bool {
	elements := v4Key.GetPathElement()
	if len(elements) == 0 {
		return false
	}
	last := elements[len(elements)-1]
	return last.ID != nil || last.Name != nil
}

// IsCompleteV1Key reports whether the last path element carries an id or a
// name. A key with an empty path is incomplete.
func IsCompleteV1Key(v1Key *dspb.Key) bool {
	path := v1Key.GetPath()
	if len(path) == 0 {
		return false
	}
	return path[len(path)-1].GetIdType() != nil
}

// IsCompleteV3Key reports whether the last path element carries a nonzero
// id or a nonempty name. A key with an empty path is incomplete.
func IsCompleteV3Key(v3Key *entityv3.Reference) bool {
	elements := v3Key.GetPath().GetElement()
	if len(elements) == 0 {
		return false
	}
	last := elements[len(elements)-1]
	return last.GetID() != 0 || last.GetName() != ""
}

// V1MutationKeyAndEntity returns the key a mutation applies to and, for
// non-delete operations, the entity being written.
func V1MutationKeyAndEntity(v1Mutation *dspb.Mutation) (*dspb.Key, *dspb.Entity) {
	switch op := v1Mutation.GetOperation().(type) {
	case *dspb.Mutation_Delete:
		return op.Delete, nil
	case *dspb.Mutation_Insert:
		return op.Insert.GetKey(), op.Insert
	case *dspb.Mutation_Update:
		return op.Update.GetKey(), op.Update
	case *dspb.Mutation_Upsert:
		return op.Upsert.GetKey(), op.Upsert
	}
	return nil, nil
}
