package datastorepbs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

func testV3Reference() *entityv3.Reference {
	return &entityv3.Reference{
		App:       proto.String("s~myapp"),
		NameSpace: proto.String("ns"),
		Path: &entityv3.Path{
			Element: []*entityv3.PathElement{
				{Type: proto.String("Parent"), Name: proto.String("alpha")},
				{Type: proto.String("Child"), ID: proto.Int64(5)},
			},
		},
	}
}

func TestV3ToV1Key(t *testing.T) {
	c := NewEntityConverter(NewIDResolver([]string{"s~myapp"}))

	v1Key := c.V3ToV1Key(testV3Reference())
	if v := v1Key.GetPartitionId().GetProjectId(); v != "myapp" {
		t.Errorf("unexpected project id: %s", v)
	}
	if v := v1Key.GetPartitionId().GetNamespaceId(); v != "ns" {
		t.Errorf("unexpected namespace: %s", v)
	}
	if v := len(v1Key.GetPath()); v != 2 {
		t.Fatalf("unexpected path length: %d", v)
	}
	if v := v1Key.GetPath()[0].GetName(); v != "alpha" {
		t.Errorf("unexpected name: %s", v)
	}
	if v := v1Key.GetPath()[1].GetId(); v != 5 {
		t.Errorf("unexpected id: %d", v)
	}
}

func TestV3ToV1Key_NoApp(t *testing.T) {
	c := NewEntityConverter(nil)
	v1Key := c.V3ToV1Key(&entityv3.Reference{})
	if !proto.Equal(v1Key, &dspb.Key{}) {
		t.Errorf("unexpected key: %v", v1Key)
	}
}

func TestV1ToV3Reference_RoundTrip(t *testing.T) {
	c := NewEntityConverter(NewIDResolver([]string{"s~myapp"}))

	v3Ref, err := c.V1ToV3Reference(c.V3ToV1Key(testV3Reference()))
	if err != nil {
		t.Fatal(err)
	}
	if v := v3Ref.GetApp(); v != "s~myapp" {
		t.Errorf("unexpected app: %s", v)
	}
	if v := v3Ref.GetNameSpace(); v != "ns" {
		t.Errorf("unexpected namespace: %s", v)
	}
	els := v3Ref.GetPath().GetElement()
	if v := len(els); v != 2 {
		t.Fatalf("unexpected path length: %d", v)
	}
	if v := els[0].GetName(); v != "alpha" {
		t.Errorf("unexpected name: %s", v)
	}
	if v := els[1].GetID(); v != 5 {
		t.Errorf("unexpected id: %d", v)
	}
}

func TestV1ToV3Reference_UnknownProject(t *testing.T) {
	c := NewEntityConverter(NewIDResolver([]string{"s~myapp"}))
	v1Key := &dspb.Key{PartitionId: &dspb.PartitionId{ProjectId: "stranger"}}
	if _, err := c.V1ToV3Reference(v1Key); err == nil {
		t.Fatal("expected error for unknown project id")
	}
}

func TestV3ToV4Key_RoundTrip(t *testing.T) {
	c := NewEntityConverter(nil)

	v4Key := c.V3ToV4Key(testV3Reference())
	// The intermediate schema carries the app id verbatim.
	if v := v4Key.GetPartitionID().GetDatasetID(); v != "s~myapp" {
		t.Errorf("unexpected dataset id: %s", v)
	}
	if v := v4Key.GetPartitionID().GetNamespace(); v != "ns" {
		t.Errorf("unexpected namespace: %s", v)
	}

	v3Ref := c.V4ToV3Reference(v4Key)
	if v := v3Ref.GetApp(); v != "s~myapp" {
		t.Errorf("unexpected app: %s", v)
	}
	els := v3Ref.GetPath().GetElement()
	if v := len(els); v != 2 {
		t.Fatalf("unexpected path length: %d", v)
	}
	if v := els[0].GetType(); v != "Parent" {
		t.Errorf("unexpected kind: %s", v)
	}
	if v := els[1].GetID(); v != 5 {
		t.Errorf("unexpected id: %d", v)
	}
}

func TestIsCompleteV3Key(t *testing.T) {
	ref := &entityv3.Reference{Path: &entityv3.Path{Element: []*entityv3.PathElement{
		{Type: proto.String("Kind"), ID: proto.Int64(5)},
	}}}
	if !IsCompleteV3Key(ref) {
		t.Error("expected complete key")
	}
	// Presence alone is not enough in the legacy schema: a zero id and an
	// empty name mean incomplete.
	ref.Path.Element[0].ID = proto.Int64(0)
	if IsCompleteV3Key(ref) {
		t.Error("expected incomplete key")
	}
	ref.Path.Element[0].ID = nil
	ref.Path.Element[0].Name = proto.String("")
	if IsCompleteV3Key(ref) {
		t.Error("expected incomplete key")
	}
	if IsCompleteV3Key(&entityv3.Reference{}) {
		t.Error("expected incomplete key for empty path")
	}
}

func TestIsCompleteV4Key(t *testing.T) {
	key := &entityv4.Key{PathElement: []*entityv4.KeyPathElement{
		{Kind: proto.String("Kind")},
	}}
	if IsCompleteV4Key(key) {
		t.Error("expected incomplete key")
	}
	key.PathElement[0].ID = proto.Int64(0)
	if !IsCompleteV4Key(key) {
		t.Error("expected complete key")
	}
	if IsCompleteV4Key(&entityv4.Key{}) {
		t.Error("expected incomplete key for empty path")
	}
}

func TestIsCompleteV1Key(t *testing.T) {
	key := &dspb.Key{Path: []*dspb.Key_PathElement{{Kind: "Kind"}}}
	if IsCompleteV1Key(key) {
		t.Error("expected incomplete key")
	}
	key.Path[0].IdType = &dspb.Key_PathElement_Name{Name: "n"}
	if !IsCompleteV1Key(key) {
		t.Error("expected complete key")
	}
	if IsCompleteV1Key(&dspb.Key{}) {
		t.Error("expected incomplete key for empty path")
	}
}

func TestV4KeyToString(t *testing.T) {
	c := NewEntityConverter(nil)
	v4Key := c.V3ToV4Key(testV3Reference())
	if v := V4KeyToString(v4Key); v != "[Parent: alpha, Child: 5]" {
		t.Errorf("unexpected rendering: %s", v)
	}
}

func TestV1KeyToString(t *testing.T) {
	c := NewEntityConverter(nil)
	v1Key := c.V3ToV1Key(testV3Reference())
	if v := V1KeyToString(v1Key); v != "[Parent: alpha, Child: 5]" {
		t.Errorf("unexpected rendering: %s", v)
	}
	if v := V1KeyToString(&dspb.Key{Path: []*dspb.Key_PathElement{{Kind: "Kind"}}}); v != "[Kind: ]" {
		t.Errorf("unexpected rendering: %s", v)
	}
}

func TestV3ReferenceToGroup(t *testing.T) {
	c := NewEntityConverter(nil)
	group, err := c.V3ReferenceToGroup(testV3Reference())
	if err != nil {
		t.Fatal(err)
	}
	if v := len(group.GetElement()); v != 1 {
		t.Fatalf("unexpected element count: %d", v)
	}
	if v := group.GetElement()[0].GetType(); v != "Parent" {
		t.Errorf("unexpected kind: %s", v)
	}

	if _, err := c.V3ReferenceToGroup(&entityv3.Reference{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestV3ReferenceToV3PropertyValue(t *testing.T) {
	c := NewEntityConverter(nil)
	v3Value := c.V3ReferenceToV3PropertyValue(testV3Reference())
	rv := v3Value.GetReferenceValue()
	if v := rv.GetApp(); v != "s~myapp" {
		t.Errorf("unexpected app: %s", v)
	}
	if v := len(rv.GetPathElement()); v != 2 {
		t.Fatalf("unexpected element count: %d", v)
	}
	if v := rv.GetPathElement()[1].GetID(); v != 5 {
		t.Errorf("unexpected id: %d", v)
	}
}

func TestV1MutationKeyAndEntity(t *testing.T) {
	key := &dspb.Key{Path: []*dspb.Key_PathElement{{Kind: "Kind"}}}
	entity := &dspb.Entity{Key: key}

	gotKey, gotEntity := V1MutationKeyAndEntity(&dspb.Mutation{
		Operation: &dspb.Mutation_Delete{Delete: key},
	})
	if !proto.Equal(gotKey, key) {
		t.Errorf("unexpected key: %v", gotKey)
	}
	if gotEntity != nil {
		t.Errorf("unexpected entity: %v", gotEntity)
	}

	gotKey, gotEntity = V1MutationKeyAndEntity(&dspb.Mutation{
		Operation: &dspb.Mutation_Upsert{Upsert: entity},
	})
	if !proto.Equal(gotKey, key) {
		t.Errorf("unexpected key: %v", gotKey)
	}
	if !proto.Equal(gotEntity, entity) {
		t.Errorf("unexpected entity: %v", gotEntity)
	}
}
