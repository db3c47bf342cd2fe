package datastorepbs

import (
	"testing"

	"github.com/golang/protobuf/proto"
	dspb "google.golang.org/genproto/googleapis/datastore/v1"

	"github.com/apphost/sdk-go/datastorepbs/entityv3"
	"github.com/apphost/sdk-go/datastorepbs/entityv4"
)

func testV3Filter(op entityv3.Operator) *entityv3.Filter {
	return &entityv3.Filter{
		Op: op.Enum(),
		Property: []*entityv3.Property{
			{
				Name:     proto.String("count"),
				Multiple: proto.Bool(false),
				Value:    &entityv3.PropertyValue{Int64Value: proto.Int64(42)},
			},
		},
	}
}

func TestV3FilterToV1PropertyFilter(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v1Filter, err := q.V3FilterToV1PropertyFilter(testV3Filter(entityv3.OperatorEqual))
	if err != nil {
		t.Fatal(err)
	}
	if v := v1Filter.GetOp(); v != dspb.PropertyFilter_EQUAL {
		t.Errorf("unexpected operator: %v", v)
	}
	if v := v1Filter.GetProperty().GetName(); v != "count" {
		t.Errorf("unexpected property: %s", v)
	}
	if v := v1Filter.GetValue().GetIntegerValue(); v != 42 {
		t.Errorf("unexpected value: %d", v)
	}
}

func TestV3FilterToV1PropertyFilter_UnsupportedOperator(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	for _, op := range []entityv3.Operator{entityv3.OperatorIn, entityv3.OperatorExists} {
		if _, err := q.V3FilterToV1PropertyFilter(testV3Filter(op)); err == nil {
			t.Errorf("operator %d: expected error", op)
		}
	}
}

func TestV3FilterToV1PropertyFilter_MultipleProperties(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v3Filter := testV3Filter(entityv3.OperatorEqual)
	v3Filter.Property = append(v3Filter.Property, v3Filter.Property[0])
	if _, err := q.V3FilterToV1PropertyFilter(v3Filter); err == nil {
		t.Fatal("expected error for multi-property filter")
	}
}

func TestV3QueryToV1AncestorFilter(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(NewIDResolver([]string{"s~myapp"})))

	v3Query := &entityv3.Query{
		App:      proto.String("s~myapp"),
		Ancestor: testV3Reference(),
	}
	v1Filter, err := q.V3QueryToV1AncestorFilter(v3Query)
	if err != nil {
		t.Fatal(err)
	}
	if v := v1Filter.GetOp(); v != dspb.PropertyFilter_HAS_ANCESTOR {
		t.Errorf("unexpected operator: %v", v)
	}
	if v := v1Filter.GetProperty().GetName(); v != PropertyNameKey {
		t.Errorf("unexpected property: %s", v)
	}
	key := v1Filter.GetValue().GetKeyValue()
	if v := key.GetPartitionId().GetProjectId(); v != "myapp" {
		t.Errorf("unexpected project id: %s", v)
	}
}

func TestV3QueryToV1AncestorFilter_NoAncestor(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v1Filter, err := q.V3QueryToV1AncestorFilter(&entityv3.Query{App: proto.String("s~myapp")})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v1Filter.GetValue().GetValueType().(*dspb.Value_NullValue); !ok {
		t.Fatalf("expected null value, got %v", v1Filter.GetValue())
	}
}

func TestV3QueryToV1AncestorFilter_ShallowRejected(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v3Query := &entityv3.Query{
		App:     proto.String("s~myapp"),
		Shallow: proto.Bool(true),
	}
	if _, err := q.V3QueryToV1AncestorFilter(v3Query); err == nil {
		t.Fatal("expected error for shallow query")
	}
}

func TestV3OrderToV1Order(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v1Order := q.V3OrderToV1Order(&entityv3.Order{
		Property:  proto.String("count"),
		Direction: entityv3.DirectionDescending.Enum(),
	})
	if v := v1Order.GetProperty().GetName(); v != "count" {
		t.Errorf("unexpected property: %s", v)
	}
	if v := v1Order.GetDirection(); v != dspb.PropertyOrder_DESCENDING {
		t.Errorf("unexpected direction: %v", v)
	}

	// Direction defaults to unspecified when the source leaves it unset.
	v1Order = q.V3OrderToV1Order(&entityv3.Order{Property: proto.String("count")})
	if v := v1Order.GetDirection(); v != dspb.PropertyOrder_DIRECTION_UNSPECIFIED {
		t.Errorf("unexpected direction: %v", v)
	}
}

func TestV3FilterToV4PropertyFilter(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v4Filter, err := q.V3FilterToV4PropertyFilter(testV3Filter(entityv3.OperatorLessThan))
	if err != nil {
		t.Fatal(err)
	}
	if v := v4Filter.GetOperator(); v != entityv4.FilterOperatorLessThan {
		t.Errorf("unexpected operator: %v", v)
	}
	if v := v4Filter.GetProperty().GetName(); v != "count" {
		t.Errorf("unexpected property: %s", v)
	}
	if v := v4Filter.GetValue().GetIntegerValue(); v != 42 {
		t.Errorf("unexpected value: %d", v)
	}
}

func TestV3QueryToV4AncestorFilter(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v3Query := &entityv3.Query{
		App:      proto.String("s~myapp"),
		Ancestor: testV3Reference(),
	}
	v4Filter := q.V3QueryToV4AncestorFilter(v3Query)
	if v := v4Filter.GetOperator(); v != entityv4.FilterOperatorHasAncestor {
		t.Errorf("unexpected operator: %v", v)
	}
	key := v4Filter.GetValue().GetKeyValue()
	if v := key.GetPartitionID().GetDatasetID(); v != "s~myapp" {
		t.Errorf("unexpected dataset id: %s", v)
	}
	if v := len(key.GetPathElement()); v != 2 {
		t.Errorf("unexpected path length: %d", v)
	}
}

func TestV3OrderToV4Order(t *testing.T) {
	q := NewQueryConverter(NewEntityConverter(nil))

	v4Order := q.V3OrderToV4Order(&entityv3.Order{
		Property:  proto.String("count"),
		Direction: entityv3.DirectionAscending.Enum(),
	})
	if v := v4Order.GetProperty().GetName(); v != "count" {
		t.Errorf("unexpected property: %s", v)
	}
	if v := v4Order.GetDirection(); v != entityv4.DirectionAscending {
		t.Errorf("unexpected direction: %v", v)
	}
}
