package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Job with 50 MT and two real bookings of 20 and 15 MT: booked 35,
// balance 15, still needs booking.
func TestEvaluateJobDispatchPartialBookings(t *testing.T) {
	job := CandidateOrder{
		Kind: CandidateJob, ID: 100, Number: "JOB-100", Status: "ready_for_dispatch",
		PartyName: "Al Noor Trading", TotalWeightMT: 50,
	}
	transports := []TransportView{
		{JobOrderID: 100, TransportNumber: "TRO2508220001", Quantity: 20},
		{JobOrderID: 100, TransportNumber: "TRO2508230002", Quantity: 15},
		{JobOrderID: 101, TransportNumber: "TRO2508230003", Quantity: 40}, // different job
	}

	s := EvaluateJobDispatch(job, transports)
	assert.InDelta(t, 35.0, s.QuantityBooked, 1e-9)
	assert.InDelta(t, 15.0, s.Balance, 1e-9)
	assert.True(t, s.NeedsBooking)
	assert.False(t, s.OverBooked)
}

func TestJobBookedQuantityExcludesNonReal(t *testing.T) {
	transports := []TransportView{
		{JobOrderID: 100, TransportNumber: "TRO2508220001", Quantity: 20},
		{JobOrderID: 100, TransportNumber: "", Quantity: 10},                                // not booked
		{JobOrderID: 100, TransportNumber: "TRO2508220002", Quantity: 5, AutoCreated: true}, // system row
	}

	assert.InDelta(t, 20.0, JobBookedQuantity(100, transports), 1e-9)
}

// Balance strictly decreases with each additional real booking.
func TestBalanceStrictlyDecreases(t *testing.T) {
	job := CandidateOrder{Kind: CandidateJob, ID: 7, Number: "JOB-007", Status: "ready_for_dispatch", TotalWeightMT: 50}

	var transports []TransportView
	prev := EvaluateJobDispatch(job, transports).Balance
	for i, qty := range []float64{10, 5, 20} {
		transports = append(transports, TransportView{
			JobOrderID: 7, TransportNumber: "TRO" + string(rune('A'+i)), Quantity: qty,
		})
		cur := EvaluateJobDispatch(job, transports).Balance
		assert.Less(t, cur, prev)
		prev = cur
	}
}

// Over-booking yields a negative balance, reported not clamped.
func TestOverBookedBalanceNotClamped(t *testing.T) {
	job := CandidateOrder{Kind: CandidateJob, ID: 9, Number: "JOB-009", Status: "ready_for_dispatch", TotalWeightMT: 30}
	transports := []TransportView{
		{JobOrderID: 9, TransportNumber: "TRO2508220004", Quantity: 35},
	}

	s := EvaluateJobDispatch(job, transports)
	assert.InDelta(t, -5.0, s.Balance, 1e-9)
	assert.False(t, s.NeedsBooking)
	assert.True(t, s.OverBooked)
}

func TestEvaluateJobsDispatchSkipsIneligible(t *testing.T) {
	jobs := []CandidateOrder{
		{Kind: CandidateJob, ID: 1, Number: "JOB-001", Status: "ready_for_dispatch", TotalWeightMT: 10},
		{Kind: CandidateJob, ID: 2, Number: "JOB-002", Status: "open", TotalWeightMT: 10},
	}

	out := EvaluateJobsDispatch(jobs, nil)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].JobOrderID)
}
