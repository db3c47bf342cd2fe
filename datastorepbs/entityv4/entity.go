// Package entityv4 holds in-memory representations of the intermediate
// datastore schema. Fields use pointer presence so converters can
// distinguish an unset field from a zero one, matching the optional-field
// semantics of the wire schema.
package entityv4

// PartitionID identifies a dataset/namespace pair.
type PartitionID struct {
	DatasetID *string
	Namespace *string
}

func (p *PartitionID) GetDatasetID() string {
	if p != nil && p.DatasetID != nil {
		return *p.DatasetID
	}
	return ""
}

func (p *PartitionID) GetNamespace() string {
	if p != nil && p.Namespace != nil {
		return *p.Namespace
	}
	return ""
}

// Key identifies an entity within a partition.
type Key struct {
	PartitionID *PartitionID
	PathElement []*KeyPathElement
}

func (k *Key) GetPartitionID() *PartitionID {
	if k != nil {
		return k.PartitionID
	}
	return nil
}

func (k *Key) GetPathElement() []*KeyPathElement {
	if k != nil {
		return k.PathElement
	}
	return nil
}

// KeyPathElement is one kind/identifier step of a key path. At most one of
// ID and Name is set; a trailing element may have neither when the key is
// incomplete.
type KeyPathElement struct {
	Kind *string
	ID   *int64
	Name *string
}

func (e *KeyPathElement) GetKind() string {
	if e != nil && e.Kind != nil {
		return *e.Kind
	}
	return ""
}

func (e *KeyPathElement) GetID() int64 {
	if e != nil && e.ID != nil {
		return *e.ID
	}
	return 0
}

func (e *KeyPathElement) GetName() string {
	if e != nil && e.Name != nil {
		return *e.Name
	}
	return ""
}

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  *float64
	Longitude *float64
}

func (g *GeoPoint) GetLatitude() float64 {
	if g != nil && g.Latitude != nil {
		return *g.Latitude
	}
	return 0
}

func (g *GeoPoint) GetLongitude() float64 {
	if g != nil && g.Longitude != nil {
		return *g.Longitude
	}
	return 0
}

// Value is a single property value. At most one of the *Value fields is
// set; ListValue holds sub-values for list properties.
type Value struct {
	BooleanValue               *bool
	IntegerValue               *int64
	DoubleValue                *float64
	TimestampMicrosecondsValue *int64
	KeyValue                   *Key
	BlobKeyValue               *string
	StringValue                *string
	BlobValue                  []byte
	EntityValue                *Entity
	GeoPointValue              *GeoPoint
	ListValue                  []*Value

	Meaning *int32
	Indexed *bool
}

func (v *Value) GetBooleanValue() bool {
	if v != nil && v.BooleanValue != nil {
		return *v.BooleanValue
	}
	return false
}

func (v *Value) GetIntegerValue() int64 {
	if v != nil && v.IntegerValue != nil {
		return *v.IntegerValue
	}
	return 0
}

func (v *Value) GetDoubleValue() float64 {
	if v != nil && v.DoubleValue != nil {
		return *v.DoubleValue
	}
	return 0
}

func (v *Value) GetTimestampMicrosecondsValue() int64 {
	if v != nil && v.TimestampMicrosecondsValue != nil {
		return *v.TimestampMicrosecondsValue
	}
	return 0
}

func (v *Value) GetKeyValue() *Key {
	if v != nil {
		return v.KeyValue
	}
	return nil
}

func (v *Value) GetBlobKeyValue() string {
	if v != nil && v.BlobKeyValue != nil {
		return *v.BlobKeyValue
	}
	return ""
}

func (v *Value) GetStringValue() string {
	if v != nil && v.StringValue != nil {
		return *v.StringValue
	}
	return ""
}

func (v *Value) GetBlobValue() []byte {
	if v != nil {
		return v.BlobValue
	}
	return nil
}

func (v *Value) GetEntityValue() *Entity {
	if v != nil {
		return v.EntityValue
	}
	return nil
}

func (v *Value) GetGeoPointValue() *GeoPoint {
	if v != nil {
		return v.GeoPointValue
	}
	return nil
}

func (v *Value) GetListValue() []*Value {
	if v != nil {
		return v.ListValue
	}
	return nil
}

func (v *Value) GetMeaning() int32 {
	if v != nil && v.Meaning != nil {
		return *v.Meaning
	}
	return 0
}

// GetIndexed reports whether the value is indexed. The field defaults to
// true when unset.
func (v *Value) GetIndexed() bool {
	if v != nil && v.Indexed != nil {
		return *v.Indexed
	}
	return true
}

// Property is a named value within an entity.
type Property struct {
	Name  *string
	Value *Value
}

func (p *Property) GetName() string {
	if p != nil && p.Name != nil {
		return *p.Name
	}
	return ""
}

func (p *Property) GetValue() *Value {
	if p != nil {
		return p.Value
	}
	return nil
}

// Entity is a key plus a set of named properties.
type Entity struct {
	Key      *Key
	Property []*Property
}

func (e *Entity) GetKey() *Key {
	if e != nil {
		return e.Key
	}
	return nil
}

func (e *Entity) GetProperty() []*Property {
	if e != nil {
		return e.Property
	}
	return nil
}
