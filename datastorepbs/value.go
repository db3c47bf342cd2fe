package datastorepbs

import (
	"unicode/utf8"

	"github.com/golang/protobuf/proto"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

func isValidUTF8(s string) bool {
	return utf8.ValidString(s)
}

func microsFromTimestamp(ts *timestamppb.Timestamp) int64 {
	return ts.GetSeconds()*1e6 + int64(ts.GetNanos())/1000
}

func microsToTimestamp(micros int64) *timestamppb.Timestamp {
	seconds := micros / 1e6
	nanos := (micros % 1e6) * 1000
	if nanos < 0 {
		seconds--
		nanos += 1e9
	}
	return &timestamppb.Timestamp{Seconds: seconds, Nanos: int32(nanos)}
}

// v3PropertyValueUnionValid reports whether at most one slot of the legacy
// value union is populated.
func v3PropertyValueUnionValid(v3Value *entityv3.PropertyValue) bool {
	numSubValues := 0
	if v3Value.BooleanValue != nil {
		numSubValues++
	}
	if v3Value.Int64Value != nil {
		numSubValues++
	}
	if v3Value.DoubleValue != nil {
		numSubValues++
	}
	if v3Value.ReferenceValue != nil {
		numSubValues++
	}
	if v3Value.StringValue != nil {
		numSubValues++
	}
	if v3Value.PointValue != nil {
		numSubValues++
	}
	if v3Value.UserValue != nil {
		numSubValues++
	}
	return numSubValues <= 1
}

// v3PropertyValueMeaningValid reports whether a meaning annotates the value
// slot it is defined for.
func v3PropertyValueMeaningValid(v3Value *entityv3.PropertyValue, meaning entityv3.Meaning) bool {
	switch meaning {
	case entityv3.MeaningNone, entityv3.MeaningIndexValue, entityv3.MeaningEmptyList:
		return true
	case entityv3.MeaningBlob, entityv3.MeaningText, entityv3.MeaningByteString,
		entityv3.MeaningAtomCategory, entityv3.MeaningAtomLink, entityv3.MeaningAtomTitle,
		entityv3.MeaningAtomContent, entityv3.MeaningAtomSummary, entityv3.MeaningAtomAuthor,
		entityv3.MeaningGDEmail, entityv3.MeaningGDIM, entityv3.MeaningGDPhoneNumber,
		entityv3.MeaningGDPostalAddress, entityv3.MeaningBlobKey, entityv3.MeaningEntityProto:
		return v3Value.StringValue != nil
	case entityv3.MeaningGDWhen, entityv3.MeaningGDRating:
		return v3Value.Int64Value != nil
	case entityv3.MeaningGeoRSSPoint:
		return v3Value.PointValue != nil
	}
	return false
}

// launderedV3Meaning returns the meaning and meaning URI of a legacy
// property with invalid annotations stripped: an overfull value union
// clears both, and a meaning that does not match the populated slot is
// dropped.
func launderedV3Meaning(v3Property *entityv3.Property, v3Value *entityv3.PropertyValue) (int32, string) {
	meaning := int32(v3Property.GetMeaning())
	uriMeaning := v3Property.GetMeaningURI()
	if !v3PropertyValueUnionValid(v3Value) {
		return 0, ""
	}
	if !v3PropertyValueMeaningValid(v3Value, entityv3.Meaning(meaning)) {
		meaning = 0
	}
	return meaning, uriMeaning
}

func nonNilV3Value(v3Property *entityv3.Property) *entityv3.PropertyValue {
	if v := v3Property.GetValue(); v != nil {
		return v
	}
	return &entityv3.PropertyValue{}
}

// V4ValueToV3PropertyValue converts an intermediate-schema Value to a
// legacy PropertyValue. The value must not hold a list.
func (c *EntityConverter) V4ValueToV3PropertyValue(v4Value *entityv4.Value) (*entityv3.PropertyValue, error) {
	v3Value := &entityv3.PropertyValue{}
	switch {
	case v4Value.BooleanValue != nil:
		v3Value.BooleanValue = proto.Bool(*v4Value.BooleanValue)
	case v4Value.IntegerValue != nil:
		v3Value.Int64Value = proto.Int64(*v4Value.IntegerValue)
	case v4Value.DoubleValue != nil:
		v3Value.DoubleValue = proto.Float64(*v4Value.DoubleValue)
	case v4Value.TimestampMicrosecondsValue != nil:
		v3Value.Int64Value = proto.Int64(*v4Value.TimestampMicrosecondsValue)
	case v4Value.KeyValue != nil:
		return c.V3ReferenceToV3PropertyValue(c.V4ToV3Reference(v4Value.KeyValue)), nil
	case v4Value.BlobKeyValue != nil:
		v3Value.StringValue = proto.String(*v4Value.BlobKeyValue)
	case v4Value.StringValue != nil:
		v3Value.StringValue = proto.String(*v4Value.StringValue)
	case v4Value.BlobValue != nil:
		v3Value.StringValue = proto.String(string(v4Value.BlobValue))
	case v4Value.EntityValue != nil:
		v4Meaning := v4Value.GetMeaning()
		switch {
		case v4Meaning == MeaningGeoRSSPoint || v4Meaning == MeaningPredefinedEntityPoint:
			pointValue, err := c.v4EntityToV3PointValue(v4Value.EntityValue)
			if err != nil {
				return nil, err
			}
			v3Value.PointValue = pointValue
		case v4Meaning == MeaningPredefinedEntityUser:
			userValue, err := c.V4EntityToV3UserValue(v4Value.EntityValue)
			if err != nil {
				return nil, err
			}
			v3Value.UserValue = userValue
		default:
			v3EntityValue, err := c.V4ToV3Entity(v4Value.EntityValue, false)
			if err != nil {
				return nil, err
			}
			v3Value.StringValue = proto.String(string(entityv3.MarshalEntityProto(v3EntityValue)))
		}
	case v4Value.GeoPointValue != nil:
		v3Value.PointValue = &entityv3.PointValue{
			X: proto.Float64(v4Value.GeoPointValue.GetLatitude()),
			Y: proto.Float64(v4Value.GeoPointValue.GetLongitude()),
		}
	}
	return v3Value, nil
}

// V3PropertyToV4Value converts a legacy Property to an intermediate-schema
// Value. indexed tells which property list the source came from; the
// indexed flag is always written on the result.
func (c *EntityConverter) V3PropertyToV4Value(v3Property *entityv3.Property, indexed bool) (*entityv4.Value, error) {
	v4Value := &entityv4.Value{}
	v3Value := nonNilV3Value(v3Property)
	v3Meaning, v3URIMeaning := launderedV3Meaning(v3Property, v3Value)

	isZlibValue := false
	if v3URIMeaning == URIMeaningZlib && v3Value.StringValue != nil {
		isZlibValue = true
		// A zlib URI meaning wins over whatever numeric meaning is set.
		v3Meaning = int32(entityv3.MeaningBlob)
	}

	switch {
	case v3Value.BooleanValue != nil:
		v4Value.BooleanValue = proto.Bool(*v3Value.BooleanValue)
	case v3Value.Int64Value != nil:
		if v3Meaning == int32(entityv3.MeaningGDWhen) {
			v4Value.TimestampMicrosecondsValue = proto.Int64(*v3Value.Int64Value)
			v3Meaning = 0
		} else {
			v4Value.IntegerValue = proto.Int64(*v3Value.Int64Value)
		}
	case v3Value.DoubleValue != nil:
		v4Value.DoubleValue = proto.Float64(*v3Value.DoubleValue)
	case v3Value.ReferenceValue != nil:
		v4Value.KeyValue = c.V3ToV4Key(c.v3ReferenceValueToV3Reference(v3Value.ReferenceValue))
	case v3Value.StringValue != nil:
		switch {
		case v3Meaning == int32(entityv3.MeaningEntityProto):
			v3EntityValue, err := entityv3.UnmarshalEntityProto([]byte(*v3Value.StringValue))
			if err != nil {
				return nil, invalidConversionf("malformed embedded entity: %v", err)
			}
			v4EntityValue, err := c.V3ToV4Entity(v3EntityValue)
			if err != nil {
				return nil, err
			}
			v4Value.EntityValue = v4EntityValue
			v3Meaning = 0
		case v3Meaning == int32(entityv3.MeaningBlob) || v3Meaning == int32(entityv3.MeaningByteString):
			v4Value.BlobValue = []byte(*v3Value.StringValue)
			// Only an unindexed bytestring keeps its meaning.
			if indexed || v3Meaning == int32(entityv3.MeaningBlob) {
				v3Meaning = 0
			}
		default:
			stringValue := *v3Value.StringValue
			if isValidUTF8(stringValue) {
				if v3Meaning == int32(entityv3.MeaningBlobKey) {
					v4Value.BlobKeyValue = proto.String(stringValue)
					v3Meaning = 0
				} else {
					v4Value.StringValue = proto.String(stringValue)
				}
			} else {
				// A legacy string is raw bytes; non-UTF-8 content can only
				// be a blob in the modern schemas.
				v4Value.BlobValue = []byte(stringValue)
				if v3Meaning != int32(entityv3.MeaningIndexValue) {
					v3Meaning = 0
				}
			}
		}
	case v3Value.PointValue != nil:
		if v3Meaning == int32(entityv3.MeaningGeoRSSPoint) {
			v4Value.GeoPointValue = &entityv4.GeoPoint{
				Latitude:  proto.Float64(v3Value.PointValue.GetX()),
				Longitude: proto.Float64(v3Value.PointValue.GetY()),
			}
		} else {
			v4Value.EntityValue = c.v3PointValueToV4Entity(v3Value.PointValue)
			v4Value.Meaning = proto.Int32(MeaningPredefinedEntityPoint)
		}
		v3Meaning = 0
	case v3Value.UserValue != nil:
		v4Value.EntityValue = c.V3UserValueToV4Entity(v3Value.UserValue)
		v4Value.Meaning = proto.Int32(MeaningPredefinedEntityUser)
		v3Meaning = 0
	}

	if isZlibValue {
		v4Value.Meaning = proto.Int32(MeaningZlib)
	} else if v3Meaning != 0 {
		v4Value.Meaning = proto.Int32(v3Meaning)
	}
	v4Value.Indexed = proto.Bool(indexed)
	return v4Value, nil
}

// V4ToV3Property converts an intermediate-schema value plus its property
// metadata to a legacy Property. The value must not hold a list.
func (c *EntityConverter) V4ToV3Property(propertyName string, isMulti, isProjection bool, v4Value *entityv4.Value) (*entityv3.Property, error) {
	if err := checkConversion(len(v4Value.ListValue) == 0, "list value not convertible"); err != nil {
		return nil, err
	}
	v3Property := &entityv3.Property{Name: proto.String(propertyName)}

	if v4Value.Meaning != nil && *v4Value.Meaning == MeaningEmptyList {
		v3Property.Meaning = entityv3.MeaningEmptyList.Enum()
		v3Property.Multiple = proto.Bool(false)
		v3Property.Value = &entityv3.PropertyValue{}
		return v3Property, nil
	}

	v3Property.Multiple = proto.Bool(isMulti)
	v3PropertyValue, err := c.V4ValueToV3PropertyValue(v4Value)
	if err != nil {
		return nil, err
	}
	v3Property.Value = v3PropertyValue

	var v4Meaning *int32
	if v4Value.Meaning != nil {
		v4Meaning = proto.Int32(*v4Value.Meaning)
	}
	switch {
	case v4Value.TimestampMicrosecondsValue != nil:
		v3Property.Meaning = entityv3.MeaningGDWhen.Enum()
	case v4Value.BlobKeyValue != nil:
		v3Property.Meaning = entityv3.MeaningBlobKey.Enum()
	case v4Value.BlobValue != nil:
		if v4Meaning != nil && *v4Meaning == MeaningZlib {
			v3Property.MeaningURI = proto.String(URIMeaningZlib)
		}
		if v4Meaning != nil && *v4Meaning == MeaningByteString {
			// An explicit bytestring meaning survives the round trip.
		} else {
			if v4Value.GetIndexed() {
				v3Property.Meaning = entityv3.MeaningByteString.Enum()
			} else {
				v3Property.Meaning = entityv3.MeaningBlob.Enum()
			}
			v4Meaning = nil
		}
	case v4Value.EntityValue != nil:
		if v4Value.GetMeaning() != MeaningGeoRSSPoint {
			if v4Value.GetMeaning() != MeaningPredefinedEntityPoint &&
				v4Value.GetMeaning() != MeaningPredefinedEntityUser {
				v3Property.Meaning = entityv3.MeaningEntityProto.Enum()
			}
			v4Meaning = nil
		}
	case v4Value.GeoPointValue != nil:
		v3Property.Meaning = entityv3.MeaningGeoRSSPoint.Enum()
	}
	if v4Meaning != nil {
		meaning := entityv3.Meaning(*v4Meaning)
		v3Property.Meaning = &meaning
	}

	if isProjection {
		v3Property.Meaning = entityv3.MeaningIndexValue.Enum()
	}
	return v3Property, nil
}

// V1ValueToV3PropertyValue converts a modern Value to a legacy
// PropertyValue. The value must not hold an array.
func (c *EntityConverter) V1ValueToV3PropertyValue(v1Value *dspb.Value) (*entityv3.PropertyValue, error) {
	v3Value := &entityv3.PropertyValue{}
	switch valueType := v1Value.GetValueType().(type) {
	case *dspb.Value_BooleanValue:
		v3Value.BooleanValue = proto.Bool(valueType.BooleanValue)
	case *dspb.Value_IntegerValue:
		v3Value.Int64Value = proto.Int64(valueType.IntegerValue)
	case *dspb.Value_DoubleValue:
		v3Value.DoubleValue = proto.Float64(valueType.DoubleValue)
	case *dspb.Value_TimestampValue:
		v3Value.Int64Value = proto.Int64(microsFromTimestamp(valueType.TimestampValue))
	case *dspb.Value_KeyValue:
		v3Ref, err := c.V1ToV3Reference(valueType.KeyValue)
		if err != nil {
			return nil, err
		}
		return c.V3ReferenceToV3PropertyValue(v3Ref), nil
	case *dspb.Value_StringValue:
		v3Value.StringValue = proto.String(valueType.StringValue)
	case *dspb.Value_BlobValue:
		v3Value.StringValue = proto.String(string(valueType.BlobValue))
	case *dspb.Value_EntityValue:
		if v1Value.GetMeaning() == MeaningPredefinedEntityUser {
			userValue, err := c.V1EntityToV3UserValue(valueType.EntityValue)
			if err != nil {
				return nil, err
			}
			v3Value.UserValue = userValue
		} else {
			v3EntityValue, err := c.V1ToV3Entity(valueType.EntityValue, false)
			if err != nil {
				return nil, err
			}
			v3Value.StringValue = proto.String(string(entityv3.MarshalEntityProto(v3EntityValue)))
		}
	case *dspb.Value_GeoPointValue:
		v3Value.PointValue = &entityv3.PointValue{
			X: proto.Float64(valueType.GeoPointValue.GetLatitude()),
			Y: proto.Float64(valueType.GeoPointValue.GetLongitude()),
		}
	case *dspb.Value_NullValue:
		// A null value maps to an empty legacy value.
	}
	return v3Value, nil
}

// V3PropertyToV1Value converts a legacy Property to a modern Value.
// indexed tells which property list the source came from; the
// exclude-from-indexes flag is always written on the result.
func (c *EntityConverter) V3PropertyToV1Value(v3Property *entityv3.Property, indexed bool) (*dspb.Value, error) {
	v1Value := &dspb.Value{}
	v3Value := nonNilV3Value(v3Property)
	v3Meaning, v3URIMeaning := launderedV3Meaning(v3Property, v3Value)

	isZlibValue := false
	if v3URIMeaning == URIMeaningZlib && v3Value.StringValue != nil {
		isZlibValue = true
		v3Meaning = int32(entityv3.MeaningBlob)
	}

	switch {
	case v3Property.GetMeaning() == entityv3.MeaningEmptyList:
		v1Value.ValueType = &dspb.Value_ArrayValue{ArrayValue: &dspb.ArrayValue{}}
		v3Meaning = 0
	case v3Value.BooleanValue != nil:
		v1Value.ValueType = &dspb.Value_BooleanValue{BooleanValue: *v3Value.BooleanValue}
	case v3Value.Int64Value != nil:
		if v3Meaning == int32(entityv3.MeaningGDWhen) && isInRFC3339Bounds(*v3Value.Int64Value) {
			v1Value.ValueType = &dspb.Value_TimestampValue{
				TimestampValue: microsToTimestamp(*v3Value.Int64Value),
			}
			v3Meaning = 0
		} else {
			v1Value.ValueType = &dspb.Value_IntegerValue{IntegerValue: *v3Value.Int64Value}
		}
	case v3Value.DoubleValue != nil:
		v1Value.ValueType = &dspb.Value_DoubleValue{DoubleValue: *v3Value.DoubleValue}
	case v3Value.ReferenceValue != nil:
		v1Value.ValueType = &dspb.Value_KeyValue{
			KeyValue: c.V3ToV1Key(c.v3ReferenceValueToV3Reference(v3Value.ReferenceValue)),
		}
	case v3Value.StringValue != nil:
		switch {
		case v3Meaning == int32(entityv3.MeaningEntityProto):
			v3EntityValue, err := entityv3.UnmarshalEntityProto([]byte(*v3Value.StringValue))
			if err != nil {
				return nil, invalidConversionf("malformed embedded entity: %v", err)
			}
			v1EntityValue, err := c.V3ToV1Entity(v3EntityValue)
			if err != nil {
				return nil, err
			}
			v1Value.ValueType = &dspb.Value_EntityValue{EntityValue: v1EntityValue}
			v3Meaning = 0
		case v3Meaning == int32(entityv3.MeaningBlob) || v3Meaning == int32(entityv3.MeaningByteString):
			v1Value.ValueType = &dspb.Value_BlobValue{BlobValue: []byte(*v3Value.StringValue)}
			if indexed || v3Meaning == int32(entityv3.MeaningBlob) {
				v3Meaning = 0
			}
		default:
			stringValue := *v3Value.StringValue
			if isValidUTF8(stringValue) {
				v1Value.ValueType = &dspb.Value_StringValue{StringValue: stringValue}
			} else {
				v1Value.ValueType = &dspb.Value_BlobValue{BlobValue: []byte(stringValue)}
				if v3Meaning != int32(entityv3.MeaningIndexValue) {
					v3Meaning = 0
				}
			}
		}
	case v3Value.PointValue != nil:
		if v3Meaning != int32(entityv3.MeaningGeoRSSPoint) {
			v1Value.Meaning = MeaningPointWithoutV3Meaning
		}
		v1Value.ValueType = &dspb.Value_GeoPointValue{GeoPointValue: &latlng.LatLng{
			Latitude:  v3Value.PointValue.GetX(),
			Longitude: v3Value.PointValue.GetY(),
		}}
		v3Meaning = 0
	case v3Value.UserValue != nil:
		v1Value.ValueType = &dspb.Value_EntityValue{
			EntityValue: c.V3UserValueToV1Entity(v3Value.UserValue),
		}
		v1Value.Meaning = MeaningPredefinedEntityUser
		v3Meaning = 0
	default:
		v1Value.ValueType = &dspb.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE}
	}

	if isZlibValue {
		v1Value.Meaning = MeaningZlib
	} else if v3Meaning != 0 {
		v1Value.Meaning = v3Meaning
	}
	v1Value.ExcludeFromIndexes = !indexed
	return v1Value, nil
}

// V1ToV3Property converts a modern value plus its property metadata to a
// legacy Property. The value must not hold an array.
func (c *EntityConverter) V1ToV3Property(propertyName string, isMulti, isProjection bool, v1Value *dspb.Value) (*entityv3.Property, error) {
	if _, isArray := v1Value.GetValueType().(*dspb.Value_ArrayValue); isArray {
		return nil, invalidConversionf("array value not convertible")
	}
	v3Property := &entityv3.Property{
		Name:     proto.String(propertyName),
		Multiple: proto.Bool(isMulti),
	}
	v3PropertyValue, err := c.V1ValueToV3PropertyValue(v1Value)
	if err != nil {
		return nil, err
	}
	v3Property.Value = v3PropertyValue

	var v1Meaning *int32
	if v1Value.GetMeaning() != 0 {
		v1Meaning = proto.Int32(v1Value.GetMeaning())
	}
	switch v1Value.GetValueType().(type) {
	case *dspb.Value_TimestampValue:
		v3Property.Meaning = entityv3.MeaningGDWhen.Enum()
	case *dspb.Value_BlobValue:
		if v1Meaning != nil && *v1Meaning == MeaningZlib {
			v3Property.MeaningURI = proto.String(URIMeaningZlib)
		}
		if v1Meaning != nil && *v1Meaning == MeaningByteString {
			// An explicit bytestring meaning survives the round trip.
		} else {
			if !v1Value.GetExcludeFromIndexes() {
				v3Property.Meaning = entityv3.MeaningByteString.Enum()
			} else {
				v3Property.Meaning = entityv3.MeaningBlob.Enum()
			}
			v1Meaning = nil
		}
	case *dspb.Value_EntityValue:
		if v1Value.GetMeaning() != MeaningPredefinedEntityUser {
			v3Property.Meaning = entityv3.MeaningEntityProto.Enum()
		}
		v1Meaning = nil
	case *dspb.Value_GeoPointValue:
		if v1Value.GetMeaning() != MeaningPointWithoutV3Meaning {
			v3Property.Meaning = entityv3.MeaningGeoRSSPoint.Enum()
		}
		v1Meaning = nil
	case *dspb.Value_IntegerValue:
		if v1Value.GetMeaning() == MeaningNonRFC3339Timestamp {
			v3Property.Meaning = entityv3.MeaningGDWhen.Enum()
			v1Meaning = nil
		}
	}
	if v1Meaning != nil {
		meaning := entityv3.Meaning(*v1Meaning)
		v3Property.Meaning = &meaning
	}

	if isProjection {
		v3Property.Meaning = entityv3.MeaningIndexValue.Enum()
	}
	return v3Property, nil
}

func buildNameToV4PropertyMap(v4Entity *entityv4.Entity) map[string]*entityv4.Property {
	propertyMap := make(map[string]*entityv4.Property, len(v4Entity.GetProperty()))
	for _, prop := range v4Entity.GetProperty() {
		propertyMap[prop.GetName()] = prop
	}
	return propertyMap
}

func v4IntegerValue(v4Property *entityv4.Property) (int64, error) {
	if v4Property.GetValue() == nil || v4Property.GetValue().IntegerValue == nil {
		return 0, invalidConversionf("property does not contain an integer value")
	}
	return *v4Property.GetValue().IntegerValue, nil
}

func v4DoubleValue(v4Property *entityv4.Property) (float64, error) {
	if v4Property.GetValue() == nil || v4Property.GetValue().DoubleValue == nil {
		return 0, invalidConversionf("property does not contain a double value")
	}
	return *v4Property.GetValue().DoubleValue, nil
}

func v4StringValue(v4Property *entityv4.Property) (string, error) {
	if v4Property.GetValue() == nil || v4Property.GetValue().StringValue == nil {
		return "", invalidConversionf("property does not contain a string value")
	}
	return *v4Property.GetValue().StringValue, nil
}

func newV4IntegerProperty(name string, value int64, indexed bool) *entityv4.Property {
	return &entityv4.Property{
		Name:  proto.String(name),
		Value: &entityv4.Value{IntegerValue: proto.Int64(value), Indexed: proto.Bool(indexed)},
	}
}

func newV4DoubleProperty(name string, value float64, indexed bool) *entityv4.Property {
	return &entityv4.Property{
		Name:  proto.String(name),
		Value: &entityv4.Value{DoubleValue: proto.Float64(value), Indexed: proto.Bool(indexed)},
	}
}

func newV4StringProperty(name, value string, indexed bool) *entityv4.Property {
	return &entityv4.Property{
		Name:  proto.String(name),
		Value: &entityv4.Value{StringValue: proto.String(value), Indexed: proto.Bool(indexed)},
	}
}

func (c *EntityConverter) v4EntityToV3PointValue(v4PointEntity *entityv4.Entity) (*entityv3.PointValue, error) {
	propertyMap := buildNameToV4PropertyMap(v4PointEntity)
	x, err := v4DoubleValue(propertyMap[PropertyNameX])
	if err != nil {
		return nil, err
	}
	y, err := v4DoubleValue(propertyMap[PropertyNameY])
	if err != nil {
		return nil, err
	}
	return &entityv3.PointValue{X: proto.Float64(x), Y: proto.Float64(y)}, nil
}

func (c *EntityConverter) v3PointValueToV4Entity(v3PointValue *entityv3.PointValue) *entityv4.Entity {
	return &entityv4.Entity{Property: []*entityv4.Property{
		newV4DoubleProperty(PropertyNameX, v3PointValue.GetX(), false),
		newV4DoubleProperty(PropertyNameY, v3PointValue.GetY(), false),
	}}
}

// V4EntityToV3UserValue converts a predefined user entity to a legacy
// UserValue. The email and auth domain properties are required.
func (c *EntityConverter) V4EntityToV3UserValue(v4UserEntity *entityv4.Entity) (*entityv3.UserValue, error) {
	v3UserValue := &entityv3.UserValue{}
	propertyMap := buildNameToV4PropertyMap(v4UserEntity)

	email, err := v4StringValue(propertyMap[PropertyNameEmail])
	if err != nil {
		return nil, err
	}
	v3UserValue.Email = proto.String(email)
	authDomain, err := v4StringValue(propertyMap[PropertyNameAuthDomain])
	if err != nil {
		return nil, err
	}
	v3UserValue.AuthDomain = proto.String(authDomain)
	if prop, ok := propertyMap[PropertyNameUserID]; ok {
		obfuscatedGaiaid, err := v4StringValue(prop)
		if err != nil {
			return nil, err
		}
		v3UserValue.ObfuscatedGaiaid = proto.String(obfuscatedGaiaid)
	}
	if prop, ok := propertyMap[PropertyNameInternalID]; ok {
		gaiaid, err := v4IntegerValue(prop)
		if err != nil {
			return nil, err
		}
		v3UserValue.Gaiaid = proto.Int64(gaiaid)
	} else {
		v3UserValue.Gaiaid = proto.Int64(0)
	}
	if prop, ok := propertyMap[PropertyNameFederatedIdentity]; ok {
		federatedIdentity, err := v4StringValue(prop)
		if err != nil {
			return nil, err
		}
		v3UserValue.FederatedIdentity = proto.String(federatedIdentity)
	}
	if prop, ok := propertyMap[PropertyNameFederatedProvider]; ok {
		federatedProvider, err := v4StringValue(prop)
		if err != nil {
			return nil, err
		}
		v3UserValue.FederatedProvider = proto.String(federatedProvider)
	}
	return v3UserValue, nil
}

// V3UserValueToV4Entity converts a legacy UserValue to a predefined user
// entity. All user properties are unindexed.
func (c *EntityConverter) V3UserValueToV4Entity(v3UserValue *entityv3.UserValue) *entityv4.Entity {
	v4Entity := &entityv4.Entity{}
	v4Entity.Property = append(v4Entity.Property,
		newV4StringProperty(PropertyNameEmail, v3UserValue.GetEmail(), false),
		newV4StringProperty(PropertyNameAuthDomain, v3UserValue.GetAuthDomain(), false))
	if v3UserValue.GetGaiaid() != 0 {
		v4Entity.Property = append(v4Entity.Property,
			newV4IntegerProperty(PropertyNameInternalID, v3UserValue.GetGaiaid(), false))
	}
	if v3UserValue.ObfuscatedGaiaid != nil {
		v4Entity.Property = append(v4Entity.Property,
			newV4StringProperty(PropertyNameUserID, *v3UserValue.ObfuscatedGaiaid, false))
	}
	if v3UserValue.FederatedIdentity != nil {
		v4Entity.Property = append(v4Entity.Property,
			newV4StringProperty(PropertyNameFederatedIdentity, *v3UserValue.FederatedIdentity, false))
	}
	if v3UserValue.FederatedProvider != nil {
		v4Entity.Property = append(v4Entity.Property,
			newV4StringProperty(PropertyNameFederatedProvider, *v3UserValue.FederatedProvider, false))
	}
	return v4Entity
}

func v1IntegerValue(v1Value *dspb.Value) (int64, error) {
	if iv, ok := v1Value.GetValueType().(*dspb.Value_IntegerValue); ok {
		return iv.IntegerValue, nil
	}
	return 0, invalidConversionf("value does not contain an integer value")
}

func v1StringValue(v1Value *dspb.Value) (string, error) {
	if sv, ok := v1Value.GetValueType().(*dspb.Value_StringValue); ok {
		return sv.StringValue, nil
	}
	return "", invalidConversionf("value does not contain a string value")
}

func setV1IntegerProperty(properties map[string]*dspb.Value, name string, value int64, indexed bool) {
	properties[name] = &dspb.Value{
		ValueType:          &dspb.Value_IntegerValue{IntegerValue: value},
		ExcludeFromIndexes: !indexed,
	}
}

func setV1StringProperty(properties map[string]*dspb.Value, name, value string, indexed bool) {
	properties[name] = &dspb.Value{
		ValueType:          &dspb.Value_StringValue{StringValue: value},
		ExcludeFromIndexes: !indexed,
	}
}

// V1EntityToV3UserValue converts a predefined user entity to a legacy
// UserValue. The email and auth domain properties are required.
func (c *EntityConverter) V1EntityToV3UserValue(v1UserEntity *dspb.Entity) (*entityv3.UserValue, error) {
	v3UserValue := &entityv3.UserValue{}
	properties := v1UserEntity.GetProperties()

	email, err := v1StringValue(properties[PropertyNameEmail])
	if err != nil {
		return nil, err
	}
	v3UserValue.Email = proto.String(email)
	authDomain, err := v1StringValue(properties[PropertyNameAuthDomain])
	if err != nil {
		return nil, err
	}
	v3UserValue.AuthDomain = proto.String(authDomain)
	if value, ok := properties[PropertyNameUserID]; ok {
		obfuscatedGaiaid, err := v1StringValue(value)
		if err != nil {
			return nil, err
		}
		v3UserValue.ObfuscatedGaiaid = proto.String(obfuscatedGaiaid)
	}
	if value, ok := properties[PropertyNameInternalID]; ok {
		gaiaid, err := v1IntegerValue(value)
		if err != nil {
			return nil, err
		}
		v3UserValue.Gaiaid = proto.Int64(gaiaid)
	} else {
		v3UserValue.Gaiaid = proto.Int64(0)
	}
	if value, ok := properties[PropertyNameFederatedIdentity]; ok {
		federatedIdentity, err := v1StringValue(value)
		if err != nil {
			return nil, err
		}
		v3UserValue.FederatedIdentity = proto.String(federatedIdentity)
	}
	if value, ok := properties[PropertyNameFederatedProvider]; ok {
		federatedProvider, err := v1StringValue(value)
		if err != nil {
			return nil, err
		}
		v3UserValue.FederatedProvider = proto.String(federatedProvider)
	}
	return v3UserValue, nil
}

// V3UserValueToV1Entity converts a legacy UserValue to a predefined user
// entity. All user properties are unindexed.
func (c *EntityConverter) V3UserValueToV1Entity(v3UserValue *entityv3.UserValue) *dspb.Entity {
	properties := make(map[string]*dspb.Value)
	setV1StringProperty(properties, PropertyNameEmail, v3UserValue.GetEmail(), false)
	setV1StringProperty(properties, PropertyNameAuthDomain, v3UserValue.GetAuthDomain(), false)
	if v3UserValue.GetGaiaid() != 0 {
		setV1IntegerProperty(properties, PropertyNameInternalID, v3UserValue.GetGaiaid(), false)
	}
	if v3UserValue.ObfuscatedGaiaid != nil {
		setV1StringProperty(properties, PropertyNameUserID, *v3UserValue.ObfuscatedGaiaid, false)
	}
	if v3UserValue.FederatedIdentity != nil {
		setV1StringProperty(properties, PropertyNameFederatedIdentity, *v3UserValue.FederatedIdentity, false)
	}
	if v3UserValue.FederatedProvider != nil {
		setV1StringProperty(properties, PropertyNameFederatedProvider, *v3UserValue.FederatedProvider, false)
	}
	return &dspb.Entity{Properties: properties}
}
