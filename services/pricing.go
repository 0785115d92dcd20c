package services

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// UOM is the pricing basis of a quotation line.
type UOM string

const (
	UOMPerUnit  UOM = "per_unit"
	UOMPerLiter UOM = "per_liter"
	UOMPerMT    UOM = "per_mt"
)

// VatRate applies to local orders with VAT enabled.
const VatRate = 0.05

var perUnitKeywords = []string{"drum", "carton", "pail", "ibc", "bag", "box"}
var perLiterKeywords = []string{"flexi", "iso", "tank"}

// InferUOM derives the pricing basis from the packaging name. Only used
// when the caller did not choose a UOM explicitly.
func InferUOM(packaging string) UOM {
	p := strings.ToLower(strings.TrimSpace(packaging))
	if p == "bulk" {
		return UOMPerMT
	}
	for _, kw := range perUnitKeywords {
		if strings.Contains(p, kw) {
			return UOMPerUnit
		}
	}
	for _, kw := range perLiterKeywords {
		if strings.Contains(p, kw) {
			return UOMPerLiter
		}
	}
	return UOMPerMT
}

// ConvertPrice derives the displayed unit price from the base price per
// metric ton. The base price is never modified, so repeated packaging
// switches are lossless.
func ConvertPrice(basePerMT float64, uom UOM, netWeightKG, densityKgPerL float64) float64 {
	switch uom {
	case UOMPerUnit:
		return basePerMT * (netWeightKG / 1000)
	case UOMPerLiter:
		if densityKgPerL > 0 {
			return basePerMT * (densityKgPerL / 1000)
		}
		return basePerMT
	default:
		return basePerMT
	}
}

// LineWeightMT computes the line weight in metric tons. A zero net weight
// means "not configured".
func LineWeightMT(uom UOM, quantity, netWeightKG float64) float64 {
	switch uom {
	case UOMPerUnit:
		return netWeightKG * quantity / 1000
	case UOMPerLiter:
		if netWeightKG > 0 {
			return netWeightKG * quantity / 1000
		}
		// density ~1 kg/l for unconfigured liquids
		return quantity / 1000
	default:
		if netWeightKG > 0 {
			return netWeightKG * quantity / 1000
		}
		// bulk: quantity already is metric tons
		return quantity
	}
}

// LineTotal is the authoritative line amount: weight x price for per_mt
// lines, quantity x price otherwise.
func LineTotal(uom UOM, quantity, unitPrice, weightMT float64) float64 {
	if uom == UOMPerMT {
		return weightMT * unitPrice
	}
	return quantity * unitPrice
}

// containerCapacityMT is the max payload per container type in metric tons.
var containerCapacityMT = map[string]float64{
	"20ft":              28,
	"40ft":              28,
	"iso_tank":          25,
	"flexi":             24,
	"bulk_tanker":       45,
	"bulk_tanker_small": 25,
}

// ContainerCapacity looks up max MT for a container type. Lookup is
// case-insensitive with spaces folded to underscores.
func ContainerCapacity(containerType string) (float64, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(containerType)), " ", "_")
	capMT, ok := containerCapacityMT[key]
	return capMT, ok
}

// CapacityExceededError reports a rejected add against one container.
type CapacityExceededError struct {
	ContainerNumber int     `json:"container_number"`
	ContainerType   string  `json:"container_type"`
	CurrentMT       float64 `json:"current_mt"`
	AddingMT        float64 `json:"adding_mt"`
	MaxMT           float64 `json:"max_mt"`
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("container %d (%s) capacity exceeded: current %.3f MT + adding %.3f MT > max %.3f MT",
		e.ContainerNumber, e.ContainerType, e.CurrentMT, e.AddingMT, e.MaxMT)
}

// OverweightError blocks submission when total weight exceeds the booked
// container capacity.
type OverweightError struct {
	TotalWeightMT  float64 `json:"total_weight_mt"`
	MaxCapacityMT  float64 `json:"max_capacity_mt"`
	ContainerType  string  `json:"container_type"`
	ContainerCount int     `json:"container_count"`
}

func (e *OverweightError) Error() string {
	return fmt.Sprintf("total weight %.3f MT exceeds capacity %.3f MT (%d x %s)",
		e.TotalWeightMT, e.MaxCapacityMT, e.ContainerCount, e.ContainerType)
}

// QuoteLine is one quotation line inside the pricing engine.
type QuoteLine struct {
	ProductID       uint    `json:"product_id"`
	ItemCode        string  `json:"item_code"`
	ItemName        string  `json:"item_name"`
	PackagingName   string  `json:"packaging"`
	ContainerNumber int     `json:"container_number"`
	UOM             UOM     `json:"uom"`
	Quantity        float64 `json:"quantity"`
	NetWeightKG     float64 `json:"net_weight_kg"`
	DensityKgPerL   float64 `json:"density_kg_per_l"`
	BasePricePerMT  float64 `json:"base_price_per_mt"`
	UnitPrice       float64 `json:"unit_price"`
	WeightMT        float64 `json:"weight_mt"`
	Total           float64 `json:"total"`
}

// QuoteState is the immutable quotation form state the engine reduces
// over. Operations return a new state and never mutate their input.
type QuoteState struct {
	OrderType         string  `json:"order_type"` // local, export
	Incoterm          string  `json:"incoterm"`
	ContainerType     string  `json:"container_type"`
	ContainerCount    int     `json:"container_count"`
	VatEnabled        bool    `json:"vat_enabled"`
	FreightRatePerFCL float64 `json:"freight_rate_per_fcl"`

	Items []QuoteLine `json:"items"`
}

// ComputeLine fills the derived fields of a line: UOM (inferred from
// packaging when unset), displayed unit price (derived from the retained
// base price when one is set), weight and total.
func ComputeLine(line QuoteLine) QuoteLine {
	if line.UOM == "" {
		line.UOM = InferUOM(line.PackagingName)
	}
	if line.BasePricePerMT > 0 {
		line.UnitPrice = ConvertPrice(line.BasePricePerMT, line.UOM, line.NetWeightKG, line.DensityKgPerL)
	}
	line.WeightMT = LineWeightMT(line.UOM, line.Quantity, line.NetWeightKG)
	line.Total = LineTotal(line.UOM, line.Quantity, line.UnitPrice, line.WeightMT)
	return line
}

// SwitchPackaging re-derives a line for a new packaging selection. The
// retained base price makes A->B->A switches restore the original price
// exactly.
func SwitchPackaging(line QuoteLine, packaging string, netWeightKG, densityKgPerL float64) QuoteLine {
	line.PackagingName = packaging
	line.NetWeightKG = netWeightKG
	line.DensityKgPerL = densityKgPerL
	line.UOM = InferUOM(packaging)
	return ComputeLine(line)
}

// containerUsedMT sums weight already assigned to one container number.
func containerUsedMT(items []QuoteLine, containerNumber int) float64 {
	var sum float64
	for _, it := range items {
		if it.ContainerNumber == containerNumber {
			sum += it.WeightMT
		}
	}
	return sum
}

// AddItem computes the line and appends it, rejecting the add when it
// would overfill the line's assigned container on an export order. The
// operation is all-or-nothing: on error the input state is returned
// unchanged.
func AddItem(q QuoteState, line QuoteLine) (QuoteState, error) {
	line = ComputeLine(line)

	if q.OrderType == "export" && line.ContainerNumber > 0 {
		if maxMT, ok := ContainerCapacity(q.ContainerType); ok {
			current := containerUsedMT(q.Items, line.ContainerNumber)
			if current+line.WeightMT > maxMT {
				return q, &CapacityExceededError{
					ContainerNumber: line.ContainerNumber,
					ContainerType:   q.ContainerType,
					CurrentMT:       current,
					AddingMT:        line.WeightMT,
					MaxMT:           maxMT,
				}
			}
		}
	}

	q.Items = append(slices.Clone(q.Items), line)
	return q, nil
}

// QuoteTotals carries the aggregates of a priced quotation.
type QuoteTotals struct {
	Subtotal          float64 `json:"subtotal"`
	VatAmount         float64 `json:"vat_amount"`
	GrandTotal        float64 `json:"grand_total"`
	AdditionalFreight float64 `json:"additional_freight"`
	TotalReceivable   float64 `json:"total_receivable"`
	TotalWeightMT     float64 `json:"total_weight_mt"`
}

// ComputeTotals aggregates line totals. VAT applies only to local orders
// with the flag on; CFR freight applies only to export orders. The two
// extra-charge paths never combine.
func ComputeTotals(q QuoteState) QuoteTotals {
	var t QuoteTotals
	for _, it := range q.Items {
		t.Subtotal += it.Total
		t.TotalWeightMT += it.WeightMT
	}

	if q.OrderType == "local" && q.VatEnabled {
		t.VatAmount = t.Subtotal * VatRate
	}
	t.GrandTotal = t.Subtotal + t.VatAmount

	if q.OrderType == "export" && strings.EqualFold(strings.TrimSpace(q.Incoterm), "CFR") {
		t.AdditionalFreight = q.FreightRatePerFCL * float64(q.ContainerCount)
	}
	t.TotalReceivable = t.Subtotal + t.AdditionalFreight

	return t
}

// CheckOverweight blocks export submissions whose total weight exceeds
// booked container capacity. Orders without a recognized container type
// pass (nothing to check against).
func CheckOverweight(q QuoteState) error {
	if q.OrderType != "export" {
		return nil
	}
	maxMT, ok := ContainerCapacity(q.ContainerType)
	if !ok || q.ContainerCount <= 0 {
		return nil
	}
	total := ComputeTotals(q).TotalWeightMT
	maxCapacity := maxMT * float64(q.ContainerCount)
	if total > maxCapacity {
		return &OverweightError{
			TotalWeightMT:  total,
			MaxCapacityMT:  maxCapacity,
			ContainerType:  q.ContainerType,
			ContainerCount: q.ContainerCount,
		}
	}
	return nil
}
