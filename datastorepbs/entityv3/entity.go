package entityv3

// Meaning is the legacy property meaning enum. It annotates a PropertyValue
// with a semantic type the value union itself cannot express.
type Meaning int32

const (
	MeaningNone            Meaning = 0
	MeaningAtomCategory    Meaning = 1
	MeaningAtomLink        Meaning = 2
	MeaningAtomTitle       Meaning = 3
	MeaningAtomContent     Meaning = 4
	MeaningAtomSummary     Meaning = 5
	MeaningAtomAuthor      Meaning = 6
	MeaningGDWhen          Meaning = 7
	MeaningGDEmail         Meaning = 8
	MeaningGeoRSSPoint     Meaning = 9
	MeaningGDIM            Meaning = 10
	MeaningGDPhoneNumber   Meaning = 11
	MeaningGDPostalAddress Meaning = 12
	MeaningGDRating        Meaning = 13
	MeaningBlob            Meaning = 14
	MeaningText            Meaning = 15
	MeaningByteString      Meaning = 16
	MeaningBlobKey         Meaning = 17
	MeaningIndexValue      Meaning = 18
	MeaningEntityProto     Meaning = 19
	MeaningEmptyList       Meaning = 24
)

// Enum returns a pointer to m, for populating optional enum fields.
func (m Meaning) Enum() *Meaning {
	return &m
}

// Reference is the legacy form of a key: an app id, an optional namespace
// and a hierarchical path.
type Reference struct {
	App       *string
	NameSpace *string
	Path      *Path
}

func (r *Reference) Reset() { *r = Reference{} }

func (r *Reference) GetApp() string {
	if r == nil || r.App == nil {
		return ""
	}
	return *r.App
}

func (r *Reference) GetNameSpace() string {
	if r == nil || r.NameSpace == nil {
		return ""
	}
	return *r.NameSpace
}

func (r *Reference) GetPath() *Path {
	if r == nil {
		return nil
	}
	return r.Path
}

// Path is an ordered sequence of (kind, id-or-name) elements.
type Path struct {
	Element []*PathElement
}

func (p *Path) Reset() { *p = Path{} }

func (p *Path) GetElement() []*PathElement {
	if p == nil {
		return nil
	}
	return p.Element
}

// PathElement identifies one level of a key path. At most one of ID and Name
// is populated; an element with neither is incomplete.
type PathElement struct {
	Type *string
	ID   *int64
	Name *string
}

func (e *PathElement) GetType() string {
	if e == nil || e.Type == nil {
		return ""
	}
	return *e.Type
}

func (e *PathElement) GetID() int64 {
	if e == nil || e.ID == nil {
		return 0
	}
	return *e.ID
}

func (e *PathElement) GetName() string {
	if e == nil || e.Name == nil {
		return ""
	}
	return *e.Name
}

// PropertyValue is the legacy value union. At most one field may be
// populated; a value with more than one populated field is malformed and its
// meaning annotations are untrustworthy.
type PropertyValue struct {
	Int64Value     *int64
	BooleanValue   *bool
	StringValue    *string // raw bytes, not necessarily valid UTF-8
	DoubleValue    *float64
	PointValue     *PointValue
	UserValue      *UserValue
	ReferenceValue *ReferenceValue
}

func (v *PropertyValue) Reset() { *v = PropertyValue{} }

func (v *PropertyValue) GetInt64Value() int64 {
	if v == nil || v.Int64Value == nil {
		return 0
	}
	return *v.Int64Value
}

func (v *PropertyValue) GetBooleanValue() bool {
	if v == nil || v.BooleanValue == nil {
		return false
	}
	return *v.BooleanValue
}

func (v *PropertyValue) GetStringValue() string {
	if v == nil || v.StringValue == nil {
		return ""
	}
	return *v.StringValue
}

func (v *PropertyValue) GetDoubleValue() float64 {
	if v == nil || v.DoubleValue == nil {
		return 0
	}
	return *v.DoubleValue
}

func (v *PropertyValue) GetPointValue() *PointValue {
	if v == nil {
		return nil
	}
	return v.PointValue
}

func (v *PropertyValue) GetUserValue() *UserValue {
	if v == nil {
		return nil
	}
	return v.UserValue
}

func (v *PropertyValue) GetReferenceValue() *ReferenceValue {
	if v == nil {
		return nil
	}
	return v.ReferenceValue
}

// PointValue is a legacy geographic point. x is latitude, y is longitude.
type PointValue struct {
	X *float64
	Y *float64
}

func (p *PointValue) Reset() { *p = PointValue{} }

func (p *PointValue) GetX() float64 {
	if p == nil || p.X == nil {
		return 0
	}
	return *p.X
}

func (p *PointValue) GetY() float64 {
	if p == nil || p.Y == nil {
		return 0
	}
	return *p.Y
}

// UserValue is a legacy user identity.
type UserValue struct {
	Email             *string
	AuthDomain        *string
	Nickname          *string
	Gaiaid            *int64
	ObfuscatedGaiaid  *string
	FederatedIdentity *string
	FederatedProvider *string
}

func (u *UserValue) Reset() { *u = UserValue{} }

func (u *UserValue) GetEmail() string {
	if u == nil || u.Email == nil {
		return ""
	}
	return *u.Email
}

func (u *UserValue) GetAuthDomain() string {
	if u == nil || u.AuthDomain == nil {
		return ""
	}
	return *u.AuthDomain
}

func (u *UserValue) GetGaiaid() int64 {
	if u == nil || u.Gaiaid == nil {
		return 0
	}
	return *u.Gaiaid
}

func (u *UserValue) GetObfuscatedGaiaid() string {
	if u == nil || u.ObfuscatedGaiaid == nil {
		return ""
	}
	return *u.ObfuscatedGaiaid
}

func (u *UserValue) GetFederatedIdentity() string {
	if u == nil || u.FederatedIdentity == nil {
		return ""
	}
	return *u.FederatedIdentity
}

func (u *UserValue) GetFederatedProvider() string {
	if u == nil || u.FederatedProvider == nil {
		return ""
	}
	return *u.FederatedProvider
}

// ReferenceValue is a key stored as a property value. It carries the same
// information as a Reference with the path inlined.
type ReferenceValue struct {
	App         *string
	NameSpace   *string
	PathElement []*ReferenceValuePathElement
}

func (r *ReferenceValue) Reset() { *r = ReferenceValue{} }

func (r *ReferenceValue) GetApp() string {
	if r == nil || r.App == nil {
		return ""
	}
	return *r.App
}

func (r *ReferenceValue) GetNameSpace() string {
	if r == nil || r.NameSpace == nil {
		return ""
	}
	return *r.NameSpace
}

func (r *ReferenceValue) GetPathElement() []*ReferenceValuePathElement {
	if r == nil {
		return nil
	}
	return r.PathElement
}

// ReferenceValuePathElement mirrors PathElement inside a ReferenceValue.
type ReferenceValuePathElement struct {
	Type *string
	ID   *int64
	Name *string
}

func (e *ReferenceValuePathElement) GetType() string {
	if e == nil || e.Type == nil {
		return ""
	}
	return *e.Type
}

func (e *ReferenceValuePathElement) GetID() int64 {
	if e == nil || e.ID == nil {
		return 0
	}
	return *e.ID
}

func (e *ReferenceValuePathElement) GetName() string {
	if e == nil || e.Name == nil {
		return ""
	}
	return *e.Name
}

// Property is a named, possibly repeated value with its meaning annotations.
type Property struct {
	Meaning    *Meaning
	MeaningURI *string
	Name       *string
	Value      *PropertyValue
	Multiple   *bool
}

func (p *Property) Reset() { *p = Property{} }

func (p *Property) GetMeaning() Meaning {
	if p == nil || p.Meaning == nil {
		return MeaningNone
	}
	return *p.Meaning
}

func (p *Property) GetMeaningURI() string {
	if p == nil || p.MeaningURI == nil {
		return ""
	}
	return *p.MeaningURI
}

func (p *Property) GetName() string {
	if p == nil || p.Name == nil {
		return ""
	}
	return *p.Name
}

func (p *Property) GetValue() *PropertyValue {
	if p == nil {
		return nil
	}
	return p.Value
}

func (p *Property) GetMultiple() bool {
	if p == nil || p.Multiple == nil {
		return false
	}
	return *p.Multiple
}

// EntityProto is a legacy record: a key, its entity group and two property
// lists. Properties in Property are indexed, properties in RawProperty are
// not; the split is the legacy encoding of the indexed flag.
type EntityProto struct {
	Key         *Reference
	EntityGroup *Path
	Property    []*Property
	RawProperty []*Property
}

func (e *EntityProto) Reset() { *e = EntityProto{} }

func (e *EntityProto) GetKey() *Reference {
	if e == nil {
		return nil
	}
	return e.Key
}

func (e *EntityProto) GetEntityGroup() *Path {
	if e == nil {
		return nil
	}
	return e.EntityGroup
}

func (e *EntityProto) GetProperty() []*Property {
	if e == nil {
		return nil
	}
	return e.Property
}

func (e *EntityProto) GetRawProperty() []*Property {
	if e == nil {
		return nil
	}
	return e.RawProperty
}
