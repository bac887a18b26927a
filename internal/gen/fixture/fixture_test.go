package fixture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettersAssignAndChain(t *testing.T) {
	ts := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	o := new(Order)
	got := o.SetReference("ORD-17").SetCreatedAt(ts).SetTotal(42)

	require.Same(t, o, got)
	assert.Equal(t, "ORD-17", o.reference)
	assert.Equal(t, ts, o.createdAt)
	assert.Equal(t, 42, o.total)
}

func TestSetterLeavesSiblingFieldsUntouched(t *testing.T) {
	ts := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	o := (&Order{}).SetReference("ORD-17").SetCreatedAt(ts).AddLabel("rush")

	o.SetTotal(7)

	assert.Equal(t, "ORD-17", o.reference)
	assert.Equal(t, ts, o.createdAt)
	assert.Equal(t, []string{"rush"}, o.labels)
	assert.Equal(t, 7, o.total)
}

func TestSetterOnZeroValueTouchesOnlyItsField(t *testing.T) {
	o := new(Order).SetTotal(3)

	assert.Equal(t, 3, o.total)
	assert.Empty(t, o.reference)
	assert.True(t, o.createdAt.IsZero())
	assert.Nil(t, o.labels)
}

func TestAddLabelAppendsInOrder(t *testing.T) {
	o := new(Order).AddLabel("fragile").AddLabel("rush")

	assert.Equal(t, []string{"fragile", "rush"}, o.labels)
}
