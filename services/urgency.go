package services

import (
	"strings"
	"time"
)

// Urgency buckets for unbooked records. Mutually exclusive, exhaustive.
type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyNormal  Urgency = "normal"
)

const isoDateLayout = "2006-01-02"

// parseISODate accepts plain dates and anything with an ISO date prefix
// (e.g. RFC3339 timestamps).
func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(isoDateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(isoDateLayout, s[:len(isoDateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysPending returns whole days elapsed since the delivery date. Negative
// when the date is still in the future; ok=false when the date is absent
// or unparseable.
func DaysPending(deliveryDate string, today time.Time) (int, bool) {
	d, ok := parseISODate(deliveryDate)
	if !ok {
		return 0, false
	}
	return int(dateOnly(today).Sub(d).Hours() / 24), true
}

// ClassifyUrgency buckets an unbooked record by how long its delivery date
// has been pending: more than 3 days late is urgent, 2-3 days is warning,
// anything else (including no date) is normal.
func ClassifyUrgency(deliveryDate string, today time.Time) Urgency {
	days, ok := DaysPending(deliveryDate, today)
	if !ok {
		return UrgencyNormal
	}
	switch {
	case days > 3:
		return UrgencyUrgent
	case days >= 2:
		return UrgencyWarning
	}
	return UrgencyNormal
}

// UrgencySummary aggregates unbooked records system-wide.
type UrgencySummary struct {
	UrgentCount  int     `json:"urgent_count"`
	WarningCount int     `json:"warning_count"`
	NormalCount  int     `json:"normal_count"`
	UrgentMT     float64 `json:"urgent_mt"`
	WarningMT    float64 `json:"warning_mt"`
	NormalMT     float64 `json:"normal_mt"`
	TotalPending int     `json:"total_pending"`
	TotalMT      float64 `json:"total_mt"`
}

// viewWeightMT approximates a row's weight in metric tons from its
// quantity and unit. Unknown units are assumed to already be MT.
func viewWeightMT(v TransportView) float64 {
	switch strings.ToUpper(strings.TrimSpace(v.Unit)) {
	case "KG", "KGS":
		return v.Quantity / 1000
	case "L", "LTR", "LITER", "LITRE":
		return v.Quantity / 1000
	default:
		return v.Quantity
	}
}

// SummarizeUrgency classifies every unbooked record across all lanes.
func SummarizeUrgency(lanes map[Lane][]TransportView, today time.Time) UrgencySummary {
	var s UrgencySummary
	for _, lane := range LaneOrder {
		for _, v := range lanes[lane] {
			if !v.NeedsBooking {
				continue
			}
			mt := viewWeightMT(v)
			switch ClassifyUrgency(ResolveDate(v.DeliveryDate, v.ExpectedDelivery), today) {
			case UrgencyUrgent:
				s.UrgentCount++
				s.UrgentMT += mt
			case UrgencyWarning:
				s.WarningCount++
				s.WarningMT += mt
			default:
				s.NormalCount++
				s.NormalMT += mt
			}
			s.TotalPending++
			s.TotalMT += mt
		}
	}
	return s
}

// IsTodayDelivery reports whether any of the record's date fields falls on
// the current calendar day. The comparison is an ISO string prefix match,
// not a timezone-aware one; records stamped near midnight in non-UTC
// locales can misclassify. Kept as-is pending product-owner review.
func IsTodayDelivery(v TransportView, today time.Time) bool {
	d := ResolveDate(v.DispatchDate, v.ETA, v.DeliveryDate, v.ExpectedDelivery)
	if d == "" {
		return false
	}
	return strings.HasPrefix(d, today.Format(isoDateLayout))
}

// FilterTodayDeliveries keeps rows due today, preserving lane order.
func FilterTodayDeliveries(lanes map[Lane][]TransportView, today time.Time) []TransportView {
	var out []TransportView
	for _, lane := range LaneOrder {
		for _, v := range lanes[lane] {
			if IsTodayDelivery(v, today) {
				out = append(out, v)
			}
		}
	}
	return out
}
