package entityv3

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire field numbers of the legacy entity schema. The legacy schema encodes
// Path elements and the point/user/reference values as protobuf groups.
const (
	refAppField       = 13
	refPathField      = 14
	refNameSpaceField = 20

	pathElementGroup     = 1
	pathElementTypeField = 2
	pathElementIDField   = 3
	pathElementNameField = 4

	entityKeyField         = 13
	entityPropertyField    = 14
	entityRawPropertyField = 15
	entityGroupField       = 16

	propMeaningField    = 1
	propMeaningURIField = 2
	propNameField       = 3
	propMultipleField   = 4
	propValueField      = 5

	valueInt64Field   = 1
	valueBooleanField = 2
	valueStringField  = 3
	valueDoubleField  = 4

	pointValueGroup  = 5
	pointValueXField = 6
	pointValueYField = 7

	userValueGroup                  = 8
	userValueEmailField             = 9
	userValueAuthDomainField        = 10
	userValueNicknameField          = 11
	userValueGaiaidField            = 18
	userValueObfuscatedGaiaidField  = 19
	userValueFederatedIdentityField = 21
	userValueFederatedProviderField = 22

	refValueGroup          = 12
	refValueAppField       = 13
	refValueNameSpaceField = 20

	refValuePathElementGroup     = 14
	refValuePathElementTypeField = 15
	refValuePathElementIDField   = 16
	refValuePathElementNameField = 17
)

// MarshalReference serializes a Reference to the legacy wire format. The
// output is byte-compatible with encoded legacy keys.
func MarshalReference(r *Reference) []byte {
	return appendReference(nil, r)
}

func appendReference(b []byte, r *Reference) []byte {
	if r == nil {
		return b
	}
	if r.App != nil {
		b = protowire.AppendTag(b, refAppField, protowire.BytesType)
		b = protowire.AppendString(b, *r.App)
	}
	if r.Path != nil {
		b = protowire.AppendTag(b, refPathField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendPath(nil, r.Path))
	}
	if r.NameSpace != nil {
		b = protowire.AppendTag(b, refNameSpaceField, protowire.BytesType)
		b = protowire.AppendString(b, *r.NameSpace)
	}
	return b
}

func appendPath(b []byte, p *Path) []byte {
	for _, el := range p.GetElement() {
		b = protowire.AppendTag(b, pathElementGroup, protowire.StartGroupType)
		if el.Type != nil {
			b = protowire.AppendTag(b, pathElementTypeField, protowire.BytesType)
			b = protowire.AppendString(b, *el.Type)
		}
		if el.ID != nil {
			b = protowire.AppendTag(b, pathElementIDField, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(*el.ID))
		}
		if el.Name != nil {
			b = protowire.AppendTag(b, pathElementNameField, protowire.BytesType)
			b = protowire.AppendString(b, *el.Name)
		}
		b = protowire.AppendTag(b, pathElementGroup, protowire.EndGroupType)
	}
	return b
}

// MarshalEntityProto serializes an EntityProto to the legacy wire format.
// Unset fields are skipped, so a partially populated entity (for example one
// without a key, as stored for embedded entity values) is still encodable.
func MarshalEntityProto(e *EntityProto) []byte {
	var b []byte
	if e == nil {
		return b
	}
	if e.Key != nil {
		b = protowire.AppendTag(b, entityKeyField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendReference(nil, e.Key))
	}
	for _, p := range e.Property {
		b = protowire.AppendTag(b, entityPropertyField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendProperty(nil, p))
	}
	for _, p := range e.RawProperty {
		b = protowire.AppendTag(b, entityRawPropertyField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendProperty(nil, p))
	}
	if e.EntityGroup != nil {
		b = protowire.AppendTag(b, entityGroupField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendPath(nil, e.EntityGroup))
	}
	return b
}

func appendProperty(b []byte, p *Property) []byte {
	if p.Meaning != nil {
		b = protowire.AppendTag(b, propMeaningField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*p.Meaning))
	}
	if p.MeaningURI != nil {
		b = protowire.AppendTag(b, propMeaningURIField, protowire.BytesType)
		b = protowire.AppendString(b, *p.MeaningURI)
	}
	if p.Name != nil {
		b = protowire.AppendTag(b, propNameField, protowire.BytesType)
		b = protowire.AppendString(b, *p.Name)
	}
	if p.Multiple != nil {
		b = protowire.AppendTag(b, propMultipleField, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(*p.Multiple))
	}
	if p.Value != nil {
		b = protowire.AppendTag(b, propValueField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendPropertyValue(nil, p.Value))
	}
	return b
}

func appendPropertyValue(b []byte, v *PropertyValue) []byte {
	if v.Int64Value != nil {
		b = protowire.AppendTag(b, valueInt64Field, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*v.Int64Value))
	}
	if v.BooleanValue != nil {
		b = protowire.AppendTag(b, valueBooleanField, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(*v.BooleanValue))
	}
	if v.StringValue != nil {
		b = protowire.AppendTag(b, valueStringField, protowire.BytesType)
		b = protowire.AppendString(b, *v.StringValue)
	}
	if v.DoubleValue != nil {
		b = protowire.AppendTag(b, valueDoubleField, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(*v.DoubleValue))
	}
	if v.PointValue != nil {
		b = protowire.AppendTag(b, pointValueGroup, protowire.StartGroupType)
		if v.PointValue.X != nil {
			b = protowire.AppendTag(b, pointValueXField, protowire.Fixed64Type)
			b = protowire.AppendFixed64(b, math.Float64bits(*v.PointValue.X))
		}
		if v.PointValue.Y != nil {
			b = protowire.AppendTag(b, pointValueYField, protowire.Fixed64Type)
			b = protowire.AppendFixed64(b, math.Float64bits(*v.PointValue.Y))
		}
		b = protowire.AppendTag(b, pointValueGroup, protowire.EndGroupType)
	}
	if v.UserValue != nil {
		b = appendUserValue(b, v.UserValue)
	}
	if v.ReferenceValue != nil {
		b = appendReferenceValue(b, v.ReferenceValue)
	}
	return b
}

func appendUserValue(b []byte, u *UserValue) []byte {
	b = protowire.AppendTag(b, userValueGroup, protowire.StartGroupType)
	if u.Email != nil {
		b = protowire.AppendTag(b, userValueEmailField, protowire.BytesType)
		b = protowire.AppendString(b, *u.Email)
	}
	if u.AuthDomain != nil {
		b = protowire.AppendTag(b, userValueAuthDomainField, protowire.BytesType)
		b = protowire.AppendString(b, *u.AuthDomain)
	}
	if u.Nickname != nil {
		b = protowire.AppendTag(b, userValueNicknameField, protowire.BytesType)
		b = protowire.AppendString(b, *u.Nickname)
	}
	if u.Gaiaid != nil {
		b = protowire.AppendTag(b, userValueGaiaidField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*u.Gaiaid))
	}
	if u.ObfuscatedGaiaid != nil {
		b = protowire.AppendTag(b, userValueObfuscatedGaiaidField, protowire.BytesType)
		b = protowire.AppendString(b, *u.ObfuscatedGaiaid)
	}
	if u.FederatedIdentity != nil {
		b = protowire.AppendTag(b, userValueFederatedIdentityField, protowire.BytesType)
		b = protowire.AppendString(b, *u.FederatedIdentity)
	}
	if u.FederatedProvider != nil {
		b = protowire.AppendTag(b, userValueFederatedProviderField, protowire.BytesType)
		b = protowire.AppendString(b, *u.FederatedProvider)
	}
	return protowire.AppendTag(b, userValueGroup, protowire.EndGroupType)
}

func appendReferenceValue(b []byte, r *ReferenceValue) []byte {
	b = protowire.AppendTag(b, refValueGroup, protowire.StartGroupType)
	if r.App != nil {
		b = protowire.AppendTag(b, refValueAppField, protowire.BytesType)
		b = protowire.AppendString(b, *r.App)
	}
	for _, el := range r.PathElement {
		b = protowire.AppendTag(b, refValuePathElementGroup, protowire.StartGroupType)
		if el.Type != nil {
			b = protowire.AppendTag(b, refValuePathElementTypeField, protowire.BytesType)
			b = protowire.AppendString(b, *el.Type)
		}
		if el.ID != nil {
			b = protowire.AppendTag(b, refValuePathElementIDField, protowire.VarintType)
			b = protowire.AppendVarint(b, uint64(*el.ID))
		}
		if el.Name != nil {
			b = protowire.AppendTag(b, refValuePathElementNameField, protowire.BytesType)
			b = protowire.AppendString(b, *el.Name)
		}
		b = protowire.AppendTag(b, refValuePathElementGroup, protowire.EndGroupType)
	}
	if r.NameSpace != nil {
		b = protowire.AppendTag(b, refValueNameSpaceField, protowire.BytesType)
		b = protowire.AppendString(b, *r.NameSpace)
	}
	return protowire.AppendTag(b, refValueGroup, protowire.EndGroupType)
}

// UnmarshalReference parses a Reference from the legacy wire format.
// Unknown fields are skipped.
func UnmarshalReference(b []byte) (*Reference, error) {
	r := &Reference{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
		switch {
		case num == refAppField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, err
			}
			r.App = &s
			b = b[n:]
		case num == refPathField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			p, err := unmarshalPath(v)
			if err != nil {
				return nil, err
			}
			r.Path = p
			b = b[n:]
		case num == refNameSpaceField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, err
			}
			r.NameSpace = &s
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, parseError(n)
			}
			b = b[n:]
		}
	}
	return r, nil
}

func unmarshalPath(b []byte) (*Path, error) {
	p := &Path{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
		if num == pathElementGroup && typ == protowire.StartGroupType {
			el, n, err := consumePathElement(b)
			if err != nil {
				return nil, err
			}
			p.Element = append(p.Element, el)
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
	}
	return p, nil
}

func consumePathElement(b []byte) (*PathElement, int, error) {
	el := &PathElement{}
	total := 0
	for {
		if len(b) == 0 {
			return nil, 0, fmt.Errorf("entityv3: unterminated path element group")
		}
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, 0, parseError(n)
		}
		b = b[n:]
		total += n
		if typ == protowire.EndGroupType {
			if num != pathElementGroup {
				return nil, 0, fmt.Errorf("entityv3: mismatched group end %d", num)
			}
			return el, total, nil
		}
		switch {
		case num == pathElementTypeField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			el.Type = &s
			b = b[n:]
			total += n
		case num == pathElementIDField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			id := int64(v)
			el.ID = &id
			b = b[n:]
			total += n
		case num == pathElementNameField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			el.Name = &s
			b = b[n:]
			total += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			b = b[n:]
			total += n
		}
	}
}

// UnmarshalEntityProto parses an EntityProto from the legacy wire format.
// Missing fields are tolerated, matching the partial-parse behavior the
// converter relies on for embedded entity values.
func UnmarshalEntityProto(b []byte) (*EntityProto, error) {
	e := &EntityProto{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
		switch {
		case num == entityKeyField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			ref, err := UnmarshalReference(v)
			if err != nil {
				return nil, err
			}
			e.Key = ref
			b = b[n:]
		case num == entityPropertyField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			p, err := unmarshalProperty(v)
			if err != nil {
				return nil, err
			}
			e.Property = append(e.Property, p)
			b = b[n:]
		case num == entityRawPropertyField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			p, err := unmarshalProperty(v)
			if err != nil {
				return nil, err
			}
			e.RawProperty = append(e.RawProperty, p)
			b = b[n:]
		case num == entityGroupField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			p, err := unmarshalPath(v)
			if err != nil {
				return nil, err
			}
			e.EntityGroup = p
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, parseError(n)
			}
			b = b[n:]
		}
	}
	return e, nil
}

func unmarshalProperty(b []byte) (*Property, error) {
	p := &Property{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
		switch {
		case num == propMeaningField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, parseError(n)
			}
			m := Meaning(v)
			p.Meaning = &m
			b = b[n:]
		case num == propMeaningURIField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, err
			}
			p.MeaningURI = &s
			b = b[n:]
		case num == propNameField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, err
			}
			p.Name = &s
			b = b[n:]
		case num == propMultipleField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, parseError(n)
			}
			m := protowire.DecodeBool(v)
			p.Multiple = &m
			b = b[n:]
		case num == propValueField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, parseError(n)
			}
			pv, err := unmarshalPropertyValue(v)
			if err != nil {
				return nil, err
			}
			p.Value = pv
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, parseError(n)
			}
			b = b[n:]
		}
	}
	return p, nil
}

func unmarshalPropertyValue(b []byte) (*PropertyValue, error) {
	v := &PropertyValue{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, parseError(n)
		}
		b = b[n:]
		switch {
		case num == valueInt64Field && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, parseError(n)
			}
			i := int64(u)
			v.Int64Value = &i
			b = b[n:]
		case num == valueBooleanField && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, parseError(n)
			}
			bv := protowire.DecodeBool(u)
			v.BooleanValue = &bv
			b = b[n:]
		case num == valueStringField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, err
			}
			v.StringValue = &s
			b = b[n:]
		case num == valueDoubleField && typ == protowire.Fixed64Type:
			u, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, parseError(n)
			}
			d := math.Float64frombits(u)
			v.DoubleValue = &d
			b = b[n:]
		case num == pointValueGroup && typ == protowire.StartGroupType:
			pv, n, err := consumePointValue(b)
			if err != nil {
				return nil, err
			}
			v.PointValue = pv
			b = b[n:]
		case num == userValueGroup && typ == protowire.StartGroupType:
			uv, n, err := consumeUserValue(b)
			if err != nil {
				return nil, err
			}
			v.UserValue = uv
			b = b[n:]
		case num == refValueGroup && typ == protowire.StartGroupType:
			rv, n, err := consumeReferenceValue(b)
			if err != nil {
				return nil, err
			}
			v.ReferenceValue = rv
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, parseError(n)
			}
			b = b[n:]
		}
	}
	return v, nil
}

func consumePointValue(b []byte) (*PointValue, int, error) {
	pv := &PointValue{}
	total := 0
	for {
		if len(b) == 0 {
			return nil, 0, fmt.Errorf("entityv3: unterminated point value group")
		}
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, 0, parseError(n)
		}
		b = b[n:]
		total += n
		if typ == protowire.EndGroupType {
			if num != pointValueGroup {
				return nil, 0, fmt.Errorf("entityv3: mismatched group end %d", num)
			}
			return pv, total, nil
		}
		switch {
		case num == pointValueXField && typ == protowire.Fixed64Type:
			u, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			x := math.Float64frombits(u)
			pv.X = &x
			b = b[n:]
			total += n
		case num == pointValueYField && typ == protowire.Fixed64Type:
			u, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			y := math.Float64frombits(u)
			pv.Y = &y
			b = b[n:]
			total += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			b = b[n:]
			total += n
		}
	}
}

func consumeUserValue(b []byte) (*UserValue, int, error) {
	uv := &UserValue{}
	total := 0
	setString := func(dst **string, b []byte) (int, error) {
		s, n, err := consumeString(b)
		if err != nil {
			return 0, err
		}
		*dst = &s
		return n, nil
	}
	for {
		if len(b) == 0 {
			return nil, 0, fmt.Errorf("entityv3: unterminated user value group")
		}
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, 0, parseError(n)
		}
		b = b[n:]
		total += n
		if typ == protowire.EndGroupType {
			if num != userValueGroup {
				return nil, 0, fmt.Errorf("entityv3: mismatched group end %d", num)
			}
			return uv, total, nil
		}
		var dst **string
		switch {
		case num == userValueEmailField && typ == protowire.BytesType:
			dst = &uv.Email
		case num == userValueAuthDomainField && typ == protowire.BytesType:
			dst = &uv.AuthDomain
		case num == userValueNicknameField && typ == protowire.BytesType:
			dst = &uv.Nickname
		case num == userValueObfuscatedGaiaidField && typ == protowire.BytesType:
			dst = &uv.ObfuscatedGaiaid
		case num == userValueFederatedIdentityField && typ == protowire.BytesType:
			dst = &uv.FederatedIdentity
		case num == userValueFederatedProviderField && typ == protowire.BytesType:
			dst = &uv.FederatedProvider
		case num == userValueGaiaidField && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			id := int64(u)
			uv.Gaiaid = &id
			b = b[n:]
			total += n
			continue
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			b = b[n:]
			total += n
			continue
		}
		n, err := setString(dst, b)
		if err != nil {
			return nil, 0, err
		}
		b = b[n:]
		total += n
	}
}

func consumeReferenceValue(b []byte) (*ReferenceValue, int, error) {
	rv := &ReferenceValue{}
	total := 0
	for {
		if len(b) == 0 {
			return nil, 0, fmt.Errorf("entityv3: unterminated reference value group")
		}
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, 0, parseError(n)
		}
		b = b[n:]
		total += n
		if typ == protowire.EndGroupType {
			if num != refValueGroup {
				return nil, 0, fmt.Errorf("entityv3: mismatched group end %d", num)
			}
			return rv, total, nil
		}
		switch {
		case num == refValueAppField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			rv.App = &s
			b = b[n:]
			total += n
		case num == refValueNameSpaceField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			rv.NameSpace = &s
			b = b[n:]
			total += n
		case num == refValuePathElementGroup && typ == protowire.StartGroupType:
			el, n, err := consumeReferenceValuePathElement(b)
			if err != nil {
				return nil, 0, err
			}
			rv.PathElement = append(rv.PathElement, el)
			b = b[n:]
			total += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			b = b[n:]
			total += n
		}
	}
}

func consumeReferenceValuePathElement(b []byte) (*ReferenceValuePathElement, int, error) {
	el := &ReferenceValuePathElement{}
	total := 0
	for {
		if len(b) == 0 {
			return nil, 0, fmt.Errorf("entityv3: unterminated path element group")
		}
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, 0, parseError(n)
		}
		b = b[n:]
		total += n
		if typ == protowire.EndGroupType {
			if num != refValuePathElementGroup {
				return nil, 0, fmt.Errorf("entityv3: mismatched group end %d", num)
			}
			return el, total, nil
		}
		switch {
		case num == refValuePathElementTypeField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			el.Type = &s
			b = b[n:]
			total += n
		case num == refValuePathElementIDField && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			id := int64(u)
			el.ID = &id
			b = b[n:]
			total += n
		case num == refValuePathElementNameField && typ == protowire.BytesType:
			s, n, err := consumeString(b)
			if err != nil {
				return nil, 0, err
			}
			el.Name = &s
			b = b[n:]
			total += n
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, 0, parseError(n)
			}
			b = b[n:]
			total += n
		}
	}
}

func consumeString(b []byte) (string, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return "", 0, parseError(n)
	}
	return string(v), n, nil
}

func parseError(n int) error {
	return fmt.Errorf("entityv3: %v", protowire.ParseError(n))
}
