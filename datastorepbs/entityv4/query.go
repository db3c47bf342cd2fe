package entityv4

// FilterOperator enumerates the comparison operators a PropertyFilter
// supports.
type FilterOperator int32

const (
	FilterOperatorUnspecified        FilterOperator = 0
	FilterOperatorLessThan           FilterOperator = 1
	FilterOperatorLessThanOrEqual    FilterOperator = 2
	FilterOperatorGreaterThan        FilterOperator = 3
	FilterOperatorGreaterThanOrEqual FilterOperator = 4
	FilterOperatorEqual              FilterOperator = 5
	FilterOperatorHasAncestor        FilterOperator = 11
)

func (op FilterOperator) Enum() *FilterOperator {
	p := new(FilterOperator)
	*p = op
	return p
}

// Direction enumerates sort directions for a PropertyOrder.
type Direction int32

const (
	DirectionUnspecified Direction = 0
	DirectionAscending   Direction = 1
	DirectionDescending  Direction = 2
)

func (d Direction) Enum() *Direction {
	p := new(Direction)
	*p = d
	return p
}

// PropertyReference names the property a filter or order applies to.
type PropertyReference struct {
	Name *string
}

func (r *PropertyReference) GetName() string {
	if r != nil && r.Name != nil {
		return *r.Name
	}
	return ""
}

// PropertyFilter compares a single property against a value.
type PropertyFilter struct {
	Property *PropertyReference
	Operator *FilterOperator
	Value    *Value
}

func (f *PropertyFilter) GetProperty() *PropertyReference {
	if f != nil {
		return f.Property
	}
	return nil
}

func (f *PropertyFilter) GetOperator() FilterOperator {
	if f != nil && f.Operator != nil {
		return *f.Operator
	}
	return FilterOperatorUnspecified
}

func (f *PropertyFilter) GetValue() *Value {
	if f != nil {
		return f.Value
	}
	return nil
}

// PropertyOrder sorts results by a single property.
type PropertyOrder struct {
	Property  *PropertyReference
	Direction *Direction
}

func (o *PropertyOrder) GetProperty() *PropertyReference {
	if o != nil {
		return o.Property
	}
	return nil
}

// GetDirection returns the sort direction, defaulting to ascending when
// unset.
func (o *PropertyOrder) GetDirection() Direction {
	if o != nil && o.Direction != nil {
		return *o.Direction
	}
	return DirectionAscending
}
