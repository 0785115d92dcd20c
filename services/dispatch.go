package services

import "strings"

// JobDispatchStatus is the dispatch-readiness row for one job order.
type JobDispatchStatus struct {
	JobOrderID     uint    `json:"job_order_id"`
	JobNumber      string  `json:"job_number"`
	CustomerName   string  `json:"customer_name"`
	TotalWeightMT  float64 `json:"total_weight_mt"`
	QuantityBooked float64 `json:"quantity_booked"`
	Balance        float64 `json:"balance"`
	NeedsBooking   bool    `json:"needs_booking"`
	// OverBooked flags a negative balance: bookings exceed the job weight.
	// A data-quality signal, never clamped away.
	OverBooked bool `json:"over_booked"`
}

// JobBookedQuantity sums quantity over real bookings referencing the job.
// Rows without a transport number and auto-created rows do not count.
func JobBookedQuantity(jobOrderID uint, transports []TransportView) float64 {
	var sum float64
	for _, t := range transports {
		if t.JobOrderID != jobOrderID {
			continue
		}
		if strings.TrimSpace(t.TransportNumber) == "" || t.AutoCreated {
			continue
		}
		sum += t.Quantity
	}
	return sum
}

// EvaluateJobDispatch computes the remaining balance for one job against
// its booked outward transports.
func EvaluateJobDispatch(job CandidateOrder, transports []TransportView) JobDispatchStatus {
	booked := JobBookedQuantity(job.ID, transports)
	balance := job.TotalWeightMT - booked
	return JobDispatchStatus{
		JobOrderID:     job.ID,
		JobNumber:      job.Number,
		CustomerName:   job.PartyName,
		TotalWeightMT:  job.TotalWeightMT,
		QuantityBooked: booked,
		Balance:        balance,
		NeedsBooking:   balance > 0,
		OverBooked:     balance < 0,
	}
}

// EvaluateJobsDispatch runs EvaluateJobDispatch over every eligible job.
func EvaluateJobsDispatch(jobs []CandidateOrder, transports []TransportView) []JobDispatchStatus {
	out := make([]JobDispatchStatus, 0, len(jobs))
	for _, job := range jobs {
		if !candidateEligible(job) {
			continue
		}
		out = append(out, EvaluateJobDispatch(job, transports))
	}
	return out
}
