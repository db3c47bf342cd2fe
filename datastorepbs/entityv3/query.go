package entityv3

// Operator is the legacy filter operator enum.
type Operator int32

const (
	OperatorLessThan           Operator = 1
	OperatorLessThanOrEqual    Operator = 2
	OperatorGreaterThan        Operator = 3
	OperatorGreaterThanOrEqual Operator = 4
	OperatorEqual              Operator = 5
	OperatorIn                 Operator = 6
	OperatorExists             Operator = 7
)

func (o Operator) Enum() *Operator {
	return &o
}

// Direction is the legacy sort direction enum.
type Direction int32

const (
	DirectionAscending  Direction = 1
	DirectionDescending Direction = 2
)

func (d Direction) Enum() *Direction {
	return &d
}

// Filter is a legacy query filter: an operator over one or more properties.
// Only single-property filters are convertible to the modern schemas.
type Filter struct {
	Op       *Operator
	Property []*Property
}

func (f *Filter) GetOp() Operator {
	if f == nil || f.Op == nil {
		return 0
	}
	return *f.Op
}

func (f *Filter) GetProperty() []*Property {
	if f == nil {
		return nil
	}
	return f.Property
}

// Order is a legacy sort order over a single property.
type Order struct {
	Property  *string
	Direction *Direction
}

func (o *Order) GetProperty() string {
	if o == nil || o.Property == nil {
		return ""
	}
	return *o.Property
}

func (o *Order) GetDirection() Direction {
	if o == nil || o.Direction == nil {
		return DirectionAscending
	}
	return *o.Direction
}

// Query carries the legacy query fields the converter consumes.
type Query struct {
	App      *string
	Kind     *string
	Ancestor *Reference
	Filter   []*Filter
	Order    []*Order
	Shallow  *bool
}

func (q *Query) GetAncestor() *Reference {
	if q == nil {
		return nil
	}
	return q.Ancestor
}

func (q *Query) GetShallow() bool {
	if q == nil || q.Shallow == nil {
		return false
	}
	return *q.Shallow
}
