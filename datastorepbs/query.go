package datastorepbs

import (
	dspb "google.golang.org/genproto/googleapis/datastore/v1"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

// A QueryConverter converts legacy query fragments to their modern
// equivalents.
type QueryConverter struct {
	entityConverter *EntityConverter
}

// NewQueryConverter creates a converter on top of an EntityConverter,
// which handles the keys and values embedded in filters.
func NewQueryConverter(entityConverter *EntityConverter) *QueryConverter {
	return &QueryConverter{entityConverter: entityConverter}
}

// EntityConverter returns the underlying entity converter.
func (q *QueryConverter) EntityConverter() *EntityConverter {
	return q.entityConverter
}

func v3OperatorToV1(op entityv3.Operator) (dspb.PropertyFilter_Operator, error) {
	switch op {
	case entityv3.OperatorLessThan:
		return dspb.PropertyFilter_LESS_THAN, nil
	case entityv3.OperatorLessThanOrEqual:
		return dspb.PropertyFilter_LESS_THAN_OR_EQUAL, nil
	case entityv3.OperatorGreaterThan:
		return dspb.PropertyFilter_GREATER_THAN, nil
	case entityv3.OperatorGreaterThanOrEqual:
		return dspb.PropertyFilter_GREATER_THAN_OR_EQUAL, nil
	case entityv3.OperatorEqual:
		return dspb.PropertyFilter_EQUAL, nil
	}
	return dspb.PropertyFilter_OPERATOR_UNSPECIFIED,
		invalidConversionf("unsupported filter operator: %d", op)
}

func v3OperatorToV4(op entityv3.Operator) (entityv4.FilterOperator, error) {
	switch op {
	case entityv3.OperatorLessThan:
		return entityv4.FilterOperatorLessThan, nil
	case entityv3.OperatorLessThanOrEqual:
		return entityv4.FilterOperatorLessThanOrEqual, nil
	case entityv3.OperatorGreaterThan:
		return entityv4.FilterOperatorGreaterThan, nil
	case entityv3.OperatorGreaterThanOrEqual:
		return entityv4.FilterOperatorGreaterThanOrEqual, nil
	case entityv3.OperatorEqual:
		return entityv4.FilterOperatorEqual, nil
	}
	return entityv4.FilterOperatorUnspecified,
		invalidConversionf("unsupported filter operator: %d", op)
}

// V3FilterToV1PropertyFilter converts a legacy Filter to a modern
// PropertyFilter. Only single-property comparison filters convert;
// anything else fails with an InvalidConversionError.
func (q *QueryConverter) V3FilterToV1PropertyFilter(v3Filter *entityv3.Filter) (*dspb.PropertyFilter, error) {
	if err := checkConversion(len(v3Filter.GetProperty()) == 1, "invalid filter"); err != nil {
		return nil, err
	}
	op, err := v3OperatorToV1(v3Filter.GetOp())
	if err != nil {
		return nil, err
	}
	value, err := q.entityConverter.V3PropertyToV1Value(v3Filter.GetProperty()[0], true)
	if err != nil {
		return nil, err
	}
	return &dspb.PropertyFilter{
		Op:       op,
		Property: &dspb.PropertyReference{Name: v3Filter.GetProperty()[0].GetName()},
		Value:    value,
	}, nil
}

// V3QueryToV1AncestorFilter derives a modern ancestor PropertyFilter from
// a legacy Query. A query without an ancestor yields a null-valued filter.
// Shallow queries have no modern equivalent and fail.
func (q *QueryConverter) V3QueryToV1AncestorFilter(v3Query *entityv3.Query) (*dspb.PropertyFilter, error) {
	if err := checkConversion(!v3Query.GetShallow(), "shallow queries are not supported"); err != nil {
		return nil, err
	}
	v1PropertyFilter := &dspb.PropertyFilter{
		Op:       dspb.PropertyFilter_HAS_ANCESTOR,
		Property: &dspb.PropertyReference{Name: PropertyNameKey},
	}
	if v3Query.Ancestor != nil {
		v1PropertyFilter.Value = &dspb.Value{
			ValueType: &dspb.Value_KeyValue{KeyValue: q.entityConverter.V3ToV1Key(v3Query.Ancestor)},
		}
	} else {
		v1PropertyFilter.Value = &dspb.Value{
			ValueType: &dspb.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE},
		}
	}
	return v1PropertyFilter, nil
}

// V3OrderToV1Order converts a legacy Query order to a modern
// PropertyOrder.
func (q *QueryConverter) V3OrderToV1Order(v3Order *entityv3.Order) *dspb.PropertyOrder {
	v1Order := &dspb.PropertyOrder{
		Property: &dspb.PropertyReference{Name: v3Order.GetProperty()},
	}
	if v3Order.Direction != nil {
		switch *v3Order.Direction {
		case entityv3.DirectionAscending:
			v1Order.Direction = dspb.PropertyOrder_ASCENDING
		case entityv3.DirectionDescending:
			v1Order.Direction = dspb.PropertyOrder_DESCENDING
		}
	}
	return v1Order
}

// V3FilterToV4PropertyFilter converts a legacy Filter to an
// intermediate-schema PropertyFilter, with the same restrictions as the
// modern variant.
func (q *QueryConverter) V3FilterToV4PropertyFilter(v3Filter *entityv3.Filter) (*entityv4.PropertyFilter, error) {
	if err := checkConversion(len(v3Filter.GetProperty()) == 1, "invalid filter"); err != nil {
		return nil, err
	}
	op, err := v3OperatorToV4(v3Filter.GetOp())
	if err != nil {
		return nil, err
	}
	value, err := q.entityConverter.V3PropertyToV4Value(v3Filter.GetProperty()[0], true)
	if err != nil {
		return nil, err
	}
	name := v3Filter.GetProperty()[0].GetName()
	return &entityv4.PropertyFilter{
		Operator: op.Enum(),
		Property: &entityv4.PropertyReference{Name: &name},
		Value:    value,
	}, nil
}

// V3QueryToV4AncestorFilter derives an intermediate-schema ancestor
// PropertyFilter from a legacy Query.
func (q *QueryConverter) V3QueryToV4AncestorFilter(v3Query *entityv3.Query) *entityv4.PropertyFilter {
	name := PropertyNameKey
	return &entityv4.PropertyFilter{
		Operator: entityv4.FilterOperatorHasAncestor.Enum(),
		Property: &entityv4.PropertyReference{Name: &name},
		Value:    &entityv4.Value{KeyValue: q.entityConverter.V3ToV4Key(v3Query.GetAncestor())},
	}
}

// V3OrderToV4Order converts a legacy Query order to an intermediate-schema
// PropertyOrder.
func (q *QueryConverter) V3OrderToV4Order(v3Order *entityv3.Order) *entityv4.PropertyOrder {
	name := v3Order.GetProperty()
	v4Order := &entityv4.PropertyOrder{
		Property: &entityv4.PropertyReference{Name: &name},
	}
	if v3Order.Direction != nil {
		switch *v3Order.Direction {
		case entityv3.DirectionAscending:
			v4Order.Direction = entityv4.DirectionAscending.Enum()
		case entityv3.DirectionDescending:
			v4Order.Direction = entityv4.DirectionDescending.Enum()
		}
	}
	return v4Order
}
