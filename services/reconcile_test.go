package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileNoDuplication(t *testing.T) {
	in := ReconcileInput{
		Booked: []TransportView{
			{ID: "1", Lane: LaneInwardDDP, TransportNumber: "TRI2508220001", Status: StatusInTransit, POID: 10, PONumber: "PO-010"},
		},
		POs: []CandidateOrder{
			{Kind: CandidatePO, ID: 10, Number: "PO-010", Status: "APPROVED", Incoterm: "DDP"},
			{Kind: CandidatePO, ID: 11, Number: "PO-011", Status: "APPROVED", Incoterm: "DDP"},
		},
	}

	lanes := Reconcile(in)
	ddp := lanes[LaneInwardDDP]
	require.Len(t, ddp, 2)

	// booked row first, then the one placeholder; PO 10 must not appear twice
	assert.Equal(t, "TRI2508220001", ddp[0].TransportNumber)
	assert.Equal(t, "unbooked-po-11", ddp[1].ID)
	for _, v := range ddp {
		if v.NeedsBooking {
			assert.NotEqual(t, uint(10), v.POID)
		}
	}
}

func TestReconcilePlaceholderShape(t *testing.T) {
	in := ReconcileInput{
		POs: []CandidateOrder{
			{
				Kind: CandidatePO, ID: 7, Number: "PO-007", Status: "APPROVED", Incoterm: "EXW",
				PartyName: "Gulf Chemicals", ProductSummary: "Base Oil SN500",
				Quantity: 20000, Unit: "", DeliveryDate: "2025-08-20",
			},
		},
	}

	lanes := Reconcile(in)
	exw := lanes[LaneInwardEXW]
	require.Len(t, exw, 1)

	p := exw[0]
	assert.Equal(t, "unbooked-po-7", p.ID)
	assert.Equal(t, StatusNotBooked, p.Status)
	assert.True(t, p.NeedsBooking)
	assert.Empty(t, p.TransportNumber)
	assert.Equal(t, "Gulf Chemicals", p.PartyName)
	assert.Equal(t, "KG", p.Unit) // unit fallthrough terminal default
}

func TestReconcileIneligibleCandidatesSkipped(t *testing.T) {
	in := ReconcileInput{
		POs: []CandidateOrder{
			{Kind: CandidatePO, ID: 1, Number: "PO-001", Status: "DRAFT", Incoterm: "DDP"},
			{Kind: CandidatePO, ID: 2, Number: "PO-002", Status: "APPROVED", Incoterm: "DDP", TransportBooked: true},
			{Kind: CandidatePO, ID: 3, Number: "PO-003", Status: "APPROVED", Incoterm: "DDP", TransportNumber: "TRI2508220009"},
			{Kind: CandidatePO, ID: 4, Number: "PO-004", Status: "APPROVED", Incoterm: "FOB"}, // sea leg, not a DDP/EXW lane
		},
		Jobs: []CandidateOrder{
			{Kind: CandidateJob, ID: 5, Number: "JOB-005", Status: "open"},
		},
	}

	lanes := Reconcile(in)
	assert.Empty(t, lanes[LaneInwardDDP])
	assert.Empty(t, lanes[LaneInwardEXW])
	assert.Empty(t, lanes[LaneLocalDispatch])
}

func TestReconcileBookedWithoutNumberIgnored(t *testing.T) {
	in := ReconcileInput{
		Booked: []TransportView{
			{ID: "9", Lane: LaneLocalDispatch, TransportNumber: "", Status: StatusPending, JobOrderID: 30},
		},
		Jobs: []CandidateOrder{
			{Kind: CandidateJob, ID: 30, Number: "JOB-030", Status: "ready_for_dispatch"},
		},
	}

	lanes := Reconcile(in)
	local := lanes[LaneLocalDispatch]
	require.Len(t, local, 1)
	// the numberless row is dropped and the job still surfaces as unbooked
	assert.Equal(t, "unbooked-job-30", local[0].ID)
}

func TestReconcileContainerJobClaimedOnce(t *testing.T) {
	job := CandidateOrder{
		Kind: CandidateJob, ID: 42, Number: "JOB-042", Status: "ready_for_dispatch",
		ContainerCount: 2, ContainerType: "40ft",
	}
	lanes := Reconcile(ReconcileInput{Jobs: []CandidateOrder{job}})

	assert.Empty(t, lanes[LaneLocalDispatch])
	require.Len(t, lanes[LaneExportContainer], 1)
	assert.Equal(t, "unbooked-job-42", lanes[LaneExportContainer][0].ID)

	// total appearances across every lane must be exactly one
	count := 0
	for _, lane := range LaneOrder {
		for _, v := range lanes[lane] {
			if v.JobOrderID == 42 {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestReconcileImports(t *testing.T) {
	in := ReconcileInput{
		Booked: []TransportView{
			{ID: "2", Lane: LaneInwardImport, TransportNumber: "TRI2508220002", ImportID: 8},
		},
		Imports: []CandidateOrder{
			{Kind: CandidateImport, ID: 8, Number: "IMP-008", Status: StatusAtPort},
			{Kind: CandidateImport, ID: 9, Number: "IMP-009", Status: StatusArrived},
			{Kind: CandidateImport, ID: 12, Number: "IMP-012", Status: "CLEARED"}, // already cleared, no longer a candidate
		},
	}

	lanes := Reconcile(in)
	imp := lanes[LaneInwardImport]
	require.Len(t, imp, 2)
	assert.Equal(t, "TRI2508220002", imp[0].TransportNumber)
	assert.Equal(t, "unbooked-import-9", imp[1].ID)
}

func TestUrgencyBuckets(t *testing.T) {
	today := time.Date(2025, 8, 24, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		deliveryDate string
		want         Urgency
	}{
		{"four days pending", "2025-08-20", UrgencyUrgent},
		{"three days pending", "2025-08-21", UrgencyWarning},
		{"two days pending", "2025-08-22", UrgencyWarning},
		{"one day pending", "2025-08-23", UrgencyNormal},
		{"due today", "2025-08-24", UrgencyNormal},
		{"future date", "2025-08-30", UrgencyNormal},
		{"no date", "", UrgencyNormal},
		{"garbage date", "soon", UrgencyNormal},
		{"timestamp with urgent prefix", "2025-08-19T16:00:00Z", UrgencyUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUrgency(tt.deliveryDate, today))
		})
	}
}

func TestSummarizeUrgency(t *testing.T) {
	today := time.Date(2025, 8, 24, 8, 0, 0, 0, time.UTC)
	lanes := map[Lane][]TransportView{
		LaneInwardDDP: {
			{NeedsBooking: true, DeliveryDate: "2025-08-19", Quantity: 4000, Unit: "KG"},
			{NeedsBooking: false, DeliveryDate: "2025-08-19", Quantity: 99, Unit: "MT"}, // booked, excluded
		},
		LaneLocalDispatch: {
			{NeedsBooking: true, DeliveryDate: "2025-08-22", Quantity: 12, Unit: "MT"},
			{NeedsBooking: true, Quantity: 3, Unit: "MT"},
		},
	}

	s := SummarizeUrgency(lanes, today)
	assert.Equal(t, 1, s.UrgentCount)
	assert.Equal(t, 1, s.WarningCount)
	assert.Equal(t, 1, s.NormalCount)
	assert.Equal(t, 3, s.TotalPending)
	assert.InDelta(t, 4.0, s.UrgentMT, 1e-9)
	assert.InDelta(t, 12.0, s.WarningMT, 1e-9)
	assert.InDelta(t, 3.0, s.NormalMT, 1e-9)
	assert.InDelta(t, 19.0, s.TotalMT, 1e-9)
}

func TestIsTodayDeliveryPriority(t *testing.T) {
	today := time.Date(2025, 8, 24, 23, 0, 0, 0, time.UTC)

	// dispatch_date wins over later fields even when those match today
	v := TransportView{DispatchDate: "2025-08-23", DeliveryDate: "2025-08-24"}
	assert.False(t, IsTodayDelivery(v, today))

	v = TransportView{ETA: "2025-08-24T06:00:00Z", DeliveryDate: "2025-08-30"}
	assert.True(t, IsTodayDelivery(v, today))

	v = TransportView{ExpectedDelivery: "2025-08-24"}
	assert.True(t, IsTodayDelivery(v, today))

	assert.False(t, IsTodayDelivery(TransportView{}, today))
}

func TestFilterTodayDeliveries(t *testing.T) {
	today := time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)
	lanes := map[Lane][]TransportView{
		LaneInwardDDP:       {{ID: "a", DeliveryDate: "2025-08-24"}},
		LaneExportContainer: {{ID: "b", ETA: "2025-08-25"}},
		LaneLocalDispatch:   {{ID: "c", DispatchDate: "2025-08-24T07:00:00Z"}},
	}

	out := FilterTodayDeliveries(lanes, today)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
}
