package services

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Lane partitions transport records for display and booking workflow.
type Lane string

const (
	LaneInwardDDP       Lane = "INWARD_DDP"
	LaneInwardEXW       Lane = "INWARD_EXW"
	LaneInwardImport    Lane = "INWARD_IMPORT"
	LaneLocalDispatch   Lane = "LOCAL_DISPATCH"
	LaneExportContainer Lane = "EXPORT_CONTAINER"
)

// LaneOrder is the fixed processing order. The claimed-id accumulator is
// threaded through this order, so a job qualifying for two lanes is only
// ever synthesized into one of them.
var LaneOrder = []Lane{
	LaneInwardDDP,
	LaneInwardEXW,
	LaneInwardImport,
	LaneLocalDispatch,
	LaneExportContainer,
}

// Transport statuses as seen by clients. NOT_BOOKED is never stored; it is
// forced onto synthesized placeholders.
const (
	StatusNotBooked  = "NOT_BOOKED"
	StatusPending    = "PENDING"
	StatusScheduled  = "SCHEDULED"
	StatusInTransit  = "IN_TRANSIT"
	StatusLoading    = "LOADING"
	StatusArrived    = "ARRIVED"
	StatusDispatched = "DISPATCHED"
	StatusAtPort     = "AT_PORT"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCompleted  = "COMPLETED"
)

// TransportView is the unified row rendered per lane: either a real booked
// transport or a synthesized placeholder for a source order that still
// needs booking.
type TransportView struct {
	ID              string `json:"id"`
	Lane            Lane   `json:"lane"`
	TransportNumber string `json:"transport_number"`
	Status          string `json:"status"`

	POID       uint   `json:"po_id,omitempty"`
	PONumber   string `json:"po_number,omitempty"`
	ImportID   uint   `json:"import_id,omitempty"`
	JobOrderID uint   `json:"job_order_id,omitempty"`
	JobNumber  string `json:"job_number,omitempty"`

	PartyName      string `json:"party_name"`
	ProductSummary string `json:"product_summary"`

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`

	ContainerCount int    `json:"container_count,omitempty"`
	ContainerType  string `json:"container_type,omitempty"`

	DispatchDate     string `json:"dispatch_date,omitempty"`
	ETA              string `json:"eta,omitempty"`
	DeliveryDate     string `json:"delivery_date,omitempty"`
	ExpectedDelivery string `json:"expected_delivery,omitempty"`

	AutoCreated  bool `json:"auto_created,omitempty"`
	NeedsBooking bool `json:"needs_booking"`
}

// CandidateKind identifies the source table of a not-yet-booked order.
type CandidateKind string

const (
	CandidatePO     CandidateKind = "po"
	CandidateJob    CandidateKind = "job"
	CandidateImport CandidateKind = "import"
)

// CandidateOrder is a source order that may still need a transport booking.
type CandidateOrder struct {
	Kind   CandidateKind `json:"kind"`
	ID     uint          `json:"id"`
	Number string        `json:"number"`
	Status string        `json:"status"`

	Incoterm        string `json:"incoterm,omitempty"`
	TransportBooked bool   `json:"transport_booked"`
	TransportNumber string `json:"transport_number,omitempty"`

	PartyName      string `json:"party_name"`
	ProductSummary string `json:"product_summary"`

	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	TotalWeightMT float64 `json:"total_weight_mt,omitempty"`

	ContainerCount int    `json:"container_count,omitempty"`
	ContainerType  string `json:"container_type,omitempty"`

	DeliveryDate     string `json:"delivery_date,omitempty"`
	ExpectedDelivery string `json:"expected_delivery,omitempty"`
}

// ReconcileInput carries a snapshot of the five independently fetched
// sources. A source that failed to load contributes an empty slice.
type ReconcileInput struct {
	Booked  []TransportView
	POs     []CandidateOrder
	Jobs    []CandidateOrder
	Imports []CandidateOrder
}

func sourceKey(kind CandidateKind, id uint) string {
	return fmt.Sprintf("%s-%d", kind, id)
}

// candidateEligible reports whether a source order can still receive a
// booking at all, by kind-specific status.
func candidateEligible(c CandidateOrder) bool {
	switch c.Kind {
	case CandidatePO:
		return c.Status == "APPROVED"
	case CandidateJob:
		return c.Status == "ready_for_dispatch"
	case CandidateImport:
		switch c.Status {
		case StatusShipped, StatusAtPort, StatusArrived:
			return true
		}
		return false
	}
	return false
}

// candidateLane routes a candidate to its lane. POs with sea incoterms do
// not surface here; they arrive later as import shipments.
func candidateLane(c CandidateOrder) (Lane, bool) {
	switch c.Kind {
	case CandidatePO:
		switch strings.ToUpper(strings.TrimSpace(c.Incoterm)) {
		case "DDP":
			return LaneInwardDDP, true
		case "EXW":
			return LaneInwardEXW, true
		}
		return "", false
	case CandidateImport:
		return LaneInwardImport, true
	case CandidateJob:
		if c.ContainerCount > 0 || strings.TrimSpace(c.ContainerType) != "" {
			return LaneExportContainer, true
		}
		return LaneLocalDispatch, true
	}
	return "", false
}

// bookedSourceKey links a booked row back to its source order, if any.
func bookedSourceKey(v TransportView) (string, bool) {
	switch {
	case v.ImportID != 0:
		return sourceKey(CandidateImport, v.ImportID), true
	case v.POID != 0:
		return sourceKey(CandidatePO, v.POID), true
	case v.JobOrderID != 0:
		return sourceKey(CandidateJob, v.JobOrderID), true
	}
	return "", false
}

// newPlaceholder synthesizes the unbooked stand-in row for a candidate.
// Status is forced to NOT_BOOKED regardless of the stored source status.
func newPlaceholder(lane Lane, c CandidateOrder) TransportView {
	v := TransportView{
		ID:               fmt.Sprintf("unbooked-%s-%d", c.Kind, c.ID),
		Lane:             lane,
		Status:           StatusNotBooked,
		PartyName:        c.PartyName,
		ProductSummary:   c.ProductSummary,
		Quantity:         c.Quantity,
		Unit:             ResolveUnit(c.Unit),
		ContainerCount:   c.ContainerCount,
		ContainerType:    c.ContainerType,
		DeliveryDate:     c.DeliveryDate,
		ExpectedDelivery: c.ExpectedDelivery,
		NeedsBooking:     true,
	}
	switch c.Kind {
	case CandidatePO:
		v.POID = c.ID
		v.PONumber = c.Number
	case CandidateImport:
		v.ImportID = c.ID
		v.PONumber = c.Number
	case CandidateJob:
		v.JobOrderID = c.ID
		v.JobNumber = c.Number
	}
	return v
}

// Reconcile merges booked transports with unbooked candidates into one
// view list per lane. Per lane: real bookings first (rows without a
// transport number are ignored entirely), then synthesized placeholders
// for every eligible candidate not already referenced by a booking in
// that lane and not already claimed by an earlier lane.
func Reconcile(in ReconcileInput) map[Lane][]TransportView {
	bookedByLane := make(map[Lane][]TransportView, len(LaneOrder))
	for _, v := range in.Booked {
		if strings.TrimSpace(v.TransportNumber) == "" {
			continue
		}
		bookedByLane[v.Lane] = append(bookedByLane[v.Lane], v)
	}

	candidatesByLane := make(map[Lane][]CandidateOrder, len(LaneOrder))
	pools := [][]CandidateOrder{in.POs, in.Imports, in.Jobs}
	for _, pool := range pools {
		for _, c := range pool {
			lane, ok := candidateLane(c)
			if !ok {
				continue
			}
			candidatesByLane[lane] = append(candidatesByLane[lane], c)
		}
	}

	claimed := make(map[string]bool)
	out := make(map[Lane][]TransportView, len(LaneOrder))

	for _, lane := range LaneOrder {
		booked := slices.Clone(bookedByLane[lane])
		slices.SortStableFunc(booked, func(a, b TransportView) int {
			return strings.Compare(a.TransportNumber, b.TransportNumber)
		})

		referenced := make(map[string]bool, len(booked))
		for _, v := range booked {
			if key, ok := bookedSourceKey(v); ok {
				referenced[key] = true
				claimed[key] = true
			}
		}

		rows := booked
		for _, c := range candidatesByLane[lane] {
			key := sourceKey(c.Kind, c.ID)
			if !candidateEligible(c) {
				continue
			}
			if referenced[key] || claimed[key] {
				continue
			}
			if c.TransportBooked || strings.TrimSpace(c.TransportNumber) != "" {
				continue
			}
			claimed[key] = true
			rows = append(rows, newPlaceholder(lane, c))
		}

		out[lane] = rows
	}

	return out
}
