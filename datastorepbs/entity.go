package datastorepbs

import (
	"github.com/golang/protobuf/proto"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

// V4ToV3Entity converts an intermediate-schema Entity to a legacy
// EntityProto. isProjection marks entities produced by a projection query;
// their properties are tagged with the index-value meaning.
func (c *EntityConverter) V4ToV3Entity(v4Entity *entityv4.Entity, isProjection bool) (*entityv3.EntityProto, error) {
	v3Entity := &entityv3.EntityProto{}
	for _, v4Property := range v4Entity.GetProperty() {
		propertyName := v4Property.GetName()
		v4Value := v4Property.GetValue()
		if v4Value == nil {
			v4Value = &entityv4.Value{}
		}
		if len(v4Value.ListValue) > 0 {
			for _, v4SubValue := range v4Value.ListValue {
				if err := c.addV3PropertyFromV4(v3Entity, propertyName, true, isProjection, v4SubValue); err != nil {
					return nil, err
				}
			}
		} else {
			if err := c.addV3PropertyFromV4(v3Entity, propertyName, false, isProjection, v4Value); err != nil {
				return nil, err
			}
		}
	}
	if v4Entity.Key != nil {
		v3Entity.Key = c.V4ToV3Reference(v4Entity.Key)
		group, err := c.V3ReferenceToGroup(v3Entity.Key)
		if err != nil {
			return nil, err
		}
		v3Entity.EntityGroup = group
	}
	return v3Entity, nil
}

func (c *EntityConverter) addV3PropertyFromV4(v3Entity *entityv3.EntityProto, propertyName string, isMulti, isProjection bool, v4Value *entityv4.Value) error {
	prop, err := c.V4ToV3Property(propertyName, isMulti, isProjection, v4Value)
	if err != nil {
		return err
	}
	if v4Value.GetIndexed() {
		v3Entity.Property = append(v3Entity.Property, prop)
	} else {
		v3Entity.RawProperty = append(v3Entity.RawProperty, prop)
	}
	return nil
}

// V3ToV4Entity converts a legacy EntityProto to an intermediate-schema
// Entity. Properties sharing a name are merged back into a single list
// property. The key is dropped when the source has no app, as is the case
// for embedded entities.
func (c *EntityConverter) V3ToV4Entity(v3Entity *entityv3.EntityProto) (*entityv4.Entity, error) {
	v4Entity := &entityv4.Entity{}
	if v3Entity.GetKey() != nil && v3Entity.GetKey().App != nil {
		v4Entity.Key = c.V3ToV4Key(v3Entity.GetKey())
	}
	propertyMap := make(map[string]*entityv4.Property)
	for _, v3Property := range v3Entity.GetProperty() {
		if err := c.addV4PropertyToEntity(v4Entity, propertyMap, v3Property, true); err != nil {
			return nil, err
		}
	}
	for _, v3Property := range v3Entity.GetRawProperty() {
		if err := c.addV4PropertyToEntity(v4Entity, propertyMap, v3Property, false); err != nil {
			return nil, err
		}
	}
	return v4Entity, nil
}

func (c *EntityConverter) addV4PropertyToEntity(v4Entity *entityv4.Entity, propertyMap map[string]*entityv4.Property, v3Property *entityv3.Property, indexed bool) error {
	propertyName := v3Property.GetName()
	v4Property, ok := propertyMap[propertyName]
	if !ok {
		v4Property = &entityv4.Property{Name: proto.String(propertyName)}
		v4Entity.Property = append(v4Entity.Property, v4Property)
		propertyMap[propertyName] = v4Property
	}
	value, err := c.V3PropertyToV4Value(v3Property, indexed)
	if err != nil {
		return err
	}
	if v3Property.GetMultiple() {
		if v4Property.Value == nil {
			v4Property.Value = &entityv4.Value{}
		}
		v4Property.Value.ListValue = append(v4Property.Value.ListValue, value)
	} else {
		v4Property.Value = value
	}
	return nil
}

// V1ToV3Entity converts a modern Entity to a legacy EntityProto. An empty
// array value becomes an empty-list marker property. Property order in the
// result is unspecified because the modern schema stores properties in a
// map.
func (c *EntityConverter) V1ToV3Entity(v1Entity *dspb.Entity, isProjection bool) (*entityv3.EntityProto, error) {
	v3Entity := &entityv3.EntityProto{}
	for propertyName, v1Value := range v1Entity.GetProperties() {
		if arrayValue, ok := v1Value.GetValueType().(*dspb.Value_ArrayValue); ok {
			if len(arrayValue.ArrayValue.GetValues()) == 0 {
				emptyList := &entityv3.Property{
					Name:     proto.String(propertyName),
					Multiple: proto.Bool(false),
					Meaning:  entityv3.MeaningEmptyList.Enum(),
					Value:    &entityv3.PropertyValue{},
				}
				addV3Property(v3Entity, emptyList, !v1Value.GetExcludeFromIndexes())
			} else {
				for _, v1SubValue := range arrayValue.ArrayValue.GetValues() {
					listElement, err := c.V1ToV3Property(propertyName, true, isProjection, v1SubValue)
					if err != nil {
						return nil, err
					}
					addV3Property(v3Entity, listElement, !v1SubValue.GetExcludeFromIndexes())
				}
			}
		} else {
			prop, err := c.V1ToV3Property(propertyName, false, isProjection, v1Value)
			if err != nil {
				return nil, err
			}
			addV3Property(v3Entity, prop, !v1Value.GetExcludeFromIndexes())
		}
	}
	if v1Entity.GetKey() != nil {
		v3Ref, err := c.V1ToV3Reference(v1Entity.GetKey())
		if err != nil {
			return nil, err
		}
		v3Entity.Key = v3Ref
		group, err := c.V3ReferenceToGroup(v3Ref)
		if err != nil {
			return nil, err
		}
		v3Entity.EntityGroup = group
	}
	return v3Entity, nil
}

func addV3Property(v3Entity *entityv3.EntityProto, prop *entityv3.Property, indexed bool) {
	if indexed {
		v3Entity.Property = append(v3Entity.Property, prop)
	} else {
		v3Entity.RawProperty = append(v3Entity.RawProperty, prop)
	}
}

// V3ToV1Entity converts a legacy EntityProto to a modern Entity.
// Properties sharing a name are merged back into a single array value. The
// key is dropped when the source has no app, as is the case for embedded
// entities.
func (c *EntityConverter) V3ToV1Entity(v3Entity *entityv3.EntityProto) (*dspb.Entity, error) {
	v1Entity := &dspb.Entity{}
	if v3Entity.GetKey() != nil && v3Entity.GetKey().App != nil {
		v1Entity.Key = c.V3ToV1Key(v3Entity.GetKey())
	}
	for _, v3Property := range v3Entity.GetProperty() {
		if err := c.addV1PropertyToEntity(v1Entity, v3Property, true); err != nil {
			return nil, err
		}
	}
	for _, v3Property := range v3Entity.GetRawProperty() {
		if err := c.addV1PropertyToEntity(v1Entity, v3Property, false); err != nil {
			return nil, err
		}
	}
	return v1Entity, nil
}

func (c *EntityConverter) addV1PropertyToEntity(v1Entity *dspb.Entity, v3Property *entityv3.Property, indexed bool) error {
	propertyName := v3Property.GetName()
	value, err := c.V3PropertyToV1Value(v3Property, indexed)
	if err != nil {
		return err
	}
	if v1Entity.Properties == nil {
		v1Entity.Properties = make(map[string]*dspb.Value)
	}
	if v3Property.GetMultiple() {
		existing := v1Entity.Properties[propertyName]
		if existing == nil {
			existing = &dspb.Value{}
			v1Entity.Properties[propertyName] = existing
		}
		arrayValue, ok := existing.GetValueType().(*dspb.Value_ArrayValue)
		if !ok {
			arrayValue = &dspb.Value_ArrayValue{ArrayValue: &dspb.ArrayValue{}}
			existing.ValueType = arrayValue
		}
		arrayValue.ArrayValue.Values = append(arrayValue.ArrayValue.Values, value)
	} else {
		v1Entity.Properties[propertyName] = value
	}
	return nil
}
