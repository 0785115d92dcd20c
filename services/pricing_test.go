package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferUOM(t *testing.T) {
	tests := []struct {
		packaging string
		want      UOM
	}{
		{"200L Drum", UOMPerUnit},
		{"Carton 12x1L", UOMPerUnit},
		{"20L Pail", UOMPerUnit},
		{"1000L IBC", UOMPerUnit},
		{"25kg Bag", UOMPerUnit},
		{"Box", UOMPerUnit},
		{"Flexi Tank", UOMPerLiter},
		{"ISO Tank", UOMPerLiter},
		{"bulk", UOMPerMT},
		{"Bulk", UOMPerMT},
		{"Something Else", UOMPerMT},
		{"", UOMPerMT},
	}

	for _, tt := range tests {
		t.Run(tt.packaging, func(t *testing.T) {
			assert.Equal(t, tt.want, InferUOM(tt.packaging))
		})
	}
}

func TestConvertPrice(t *testing.T) {
	// per_unit: base x net weight fraction
	assert.InDelta(t, 200.0, ConvertPrice(1000, UOMPerUnit, 200, 0), 1e-9)
	// per_liter with known density
	assert.InDelta(t, 0.86, ConvertPrice(1000, UOMPerLiter, 0, 0.86), 1e-9)
	// per_liter without density: base unchanged
	assert.InDelta(t, 1000.0, ConvertPrice(1000, UOMPerLiter, 0, 0), 1e-9)
	// per_mt: no conversion
	assert.InDelta(t, 1000.0, ConvertPrice(1000, UOMPerMT, 200, 0.86), 1e-9)
}

func TestLineWeightMT(t *testing.T) {
	tests := []struct {
		name     string
		uom      UOM
		qty      float64
		netKG    float64
		expected float64
	}{
		{"per_unit with net weight", UOMPerUnit, 10, 200, 2},
		{"per_unit without net weight", UOMPerUnit, 10, 0, 0},
		{"per_liter with net weight", UOMPerLiter, 100, 0.9, 0.09},
		{"per_liter without net weight assumes density 1", UOMPerLiter, 1000, 0, 1},
		{"per_mt with net weight", UOMPerMT, 5, 1000, 5},
		{"per_mt bulk quantity is already MT", UOMPerMT, 25, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LineWeightMT(tt.uom, tt.qty, tt.netKG), 1e-9)
		})
	}
}

// Packaging switch round-trip: A -> B -> A restores the displayed price
// exactly because the base price per MT is retained unmodified.
func TestSwitchPackagingRoundTrip(t *testing.T) {
	line := ComputeLine(QuoteLine{
		ItemCode:       "PRD-001",
		PackagingName:  "200L Drum",
		Quantity:       10,
		NetWeightKG:    200,
		BasePricePerMT: 1000,
	})
	originalPrice := line.UnitPrice
	require.InDelta(t, 200.0, originalPrice, 1e-9)

	line = SwitchPackaging(line, "Flexi Tank", 0, 0.86)
	assert.Equal(t, UOMPerLiter, line.UOM)
	assert.InDelta(t, 0.86, line.UnitPrice, 1e-9)

	line = SwitchPackaging(line, "bulk", 0, 0)
	assert.Equal(t, UOMPerMT, line.UOM)
	assert.InDelta(t, 1000.0, line.UnitPrice, 1e-9)

	line = SwitchPackaging(line, "200L Drum", 200, 0.86)
	assert.Equal(t, UOMPerUnit, line.UOM)
	assert.InDelta(t, originalPrice, line.UnitPrice, 1e-9)
}

// Scenario from the quotation flow: 1000 USD/MT, 200L drum with 200 kg net
// weight, quantity 10.
func TestDrumPricingScenario(t *testing.T) {
	line := ComputeLine(QuoteLine{
		PackagingName:  "200L Drum",
		Quantity:       10,
		NetWeightKG:    200,
		BasePricePerMT: 1000,
	})

	assert.Equal(t, UOMPerUnit, line.UOM)
	assert.InDelta(t, 200.0, line.UnitPrice, 1e-9)
	assert.InDelta(t, 2.0, line.WeightMT, 1e-9)
	assert.InDelta(t, 2000.0, line.Total, 1e-9)
}

func TestAddItemContainerCapacity(t *testing.T) {
	q := QuoteState{
		OrderType:     "export",
		ContainerType: "20ft",
	}

	// fill container 1 to 27 MT
	var err error
	q, err = AddItem(q, QuoteLine{
		ContainerNumber: 1,
		UOM:             UOMPerMT,
		Quantity:        27,
		UnitPrice:       1000,
	})
	require.NoError(t, err)
	require.Len(t, q.Items, 1)

	// adding 2 MT must be rejected with current=27, adding=2, max=28
	before := q
	_, err = AddItem(q, QuoteLine{
		ContainerNumber: 1,
		UOM:             UOMPerMT,
		Quantity:        2,
		UnitPrice:       1000,
	})
	require.Error(t, err)

	var capErr *CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.InDelta(t, 27.0, capErr.CurrentMT, 1e-9)
	assert.InDelta(t, 2.0, capErr.AddingMT, 1e-9)
	assert.InDelta(t, 28.0, capErr.MaxMT, 1e-9)

	// all-or-nothing: state unchanged after rejection
	assert.Equal(t, before.Items, q.Items)

	// a different container is unaffected
	q, err = AddItem(q, QuoteLine{
		ContainerNumber: 2,
		UOM:             UOMPerMT,
		Quantity:        2,
		UnitPrice:       1000,
	})
	require.NoError(t, err)
	assert.Len(t, q.Items, 2)
}

func TestComputeTotalsLocalVat(t *testing.T) {
	q := QuoteState{
		OrderType:  "local",
		VatEnabled: true,
		Items: []QuoteLine{
			{UOM: UOMPerUnit, Quantity: 25, UnitPrice: 200, Total: 5000},
			{UOM: UOMPerUnit, Quantity: 25, UnitPrice: 200, Total: 5000},
		},
	}

	t1 := ComputeTotals(q)
	assert.InDelta(t, 10000.0, t1.Subtotal, 1e-9)
	assert.InDelta(t, 500.0, t1.VatAmount, 1e-9)
	assert.InDelta(t, 10500.0, t1.GrandTotal, 1e-9)

	// disabling VAT before submit
	q.VatEnabled = false
	t2 := ComputeTotals(q)
	assert.InDelta(t, 0.0, t2.VatAmount, 1e-9)
	assert.InDelta(t, 10000.0, t2.GrandTotal, 1e-9)
}

func TestComputeTotalsCFRFreight(t *testing.T) {
	q := QuoteState{
		OrderType:         "export",
		Incoterm:          "CFR",
		ContainerType:     "20ft",
		ContainerCount:    2,
		VatEnabled:        true, // must be ignored on export
		FreightRatePerFCL: 1200,
		Items: []QuoteLine{
			{UOM: UOMPerMT, Quantity: 20, UnitPrice: 1000, WeightMT: 20, Total: 20000},
		},
	}

	tt := ComputeTotals(q)
	assert.InDelta(t, 20000.0, tt.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, tt.VatAmount, 1e-9)
	assert.InDelta(t, 2400.0, tt.AdditionalFreight, 1e-9)
	assert.InDelta(t, 22400.0, tt.TotalReceivable, 1e-9)

	// freight only applies under CFR
	q.Incoterm = "FOB"
	tt = ComputeTotals(q)
	assert.InDelta(t, 0.0, tt.AdditionalFreight, 1e-9)
	assert.InDelta(t, 20000.0, tt.TotalReceivable, 1e-9)
}

func TestCheckOverweight(t *testing.T) {
	q := QuoteState{
		OrderType:      "export",
		ContainerType:  "20ft",
		ContainerCount: 1,
		Items: []QuoteLine{
			{UOM: UOMPerMT, Quantity: 30, WeightMT: 30},
		},
	}

	err := CheckOverweight(q)
	require.Error(t, err)

	var owErr *OverweightError
	require.ErrorAs(t, err, &owErr)
	assert.InDelta(t, 30.0, owErr.TotalWeightMT, 1e-9)
	assert.InDelta(t, 28.0, owErr.MaxCapacityMT, 1e-9)

	// within capacity with two containers
	q.ContainerCount = 2
	assert.NoError(t, CheckOverweight(q))

	// local orders are never overweight-checked
	q.OrderType = "local"
	q.ContainerCount = 0
	assert.NoError(t, CheckOverweight(q))
}

func TestContainerCapacityLookup(t *testing.T) {
	capMT, ok := ContainerCapacity("20ft")
	require.True(t, ok)
	assert.InDelta(t, 28.0, capMT, 1e-9)

	capMT, ok = ContainerCapacity("ISO Tank")
	require.True(t, ok)
	assert.InDelta(t, 25.0, capMT, 1e-9)

	_, ok = ContainerCapacity("zeppelin")
	assert.False(t, ok)

	// typo'd variants resolve to unknown rather than a wrong capacity;
	// callers gate export orders on this before pricing
	_, ok = ContainerCapacity("20 FT HC")
	assert.False(t, ok)

	// unknown types carry no capacity, so the weight checks have nothing
	// to enforce: both operations pass instead of guessing a limit
	q := QuoteState{OrderType: "export", ContainerType: "20 FT HC", ContainerCount: 1}
	q, err := AddItem(q, QuoteLine{ContainerNumber: 1, UOM: UOMPerMT, Quantity: 99})
	require.NoError(t, err)
	assert.NoError(t, CheckOverweight(q))
}
