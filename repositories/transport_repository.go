package repositories

import (
	"errors"
	"fiber-erp/models"
	"fiber-erp/services"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type TransportRepository struct {
	db *gorm.DB
}

func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return &TransportRepository{db: db}
}

// GenerateTransportNumber builds the next sequential document number for
// the given prefix (TRI inward, TRO outward), date-scoped: PREFIXYYMMDDNNNN.
func (r *TransportRepository) GenerateTransportNumber(prefix string) (string, error) {
	currentDate := time.Now().Format("060102")

	var lastNumber string
	err := r.db.Raw(
		"SELECT transport_number FROM inward_transports WHERE transport_number LIKE ? "+
			"UNION ALL SELECT transport_number FROM outward_transports WHERE transport_number LIKE ? "+
			"ORDER BY transport_number DESC LIMIT 1",
		prefix+currentDate+"%", prefix+currentDate+"%",
	).Scan(&lastNumber).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	seq := 1
	if len(lastNumber) >= len(prefix)+6+4 {
		if lastSeq, err := strconv.Atoi(lastNumber[len(lastNumber)-4:]); err == nil {
			seq = lastSeq + 1
		}
	}

	return fmt.Sprintf("%s%s%04d", prefix, currentDate, seq), nil
}

// inwardLane maps a stored source tag to its display lane.
func inwardLane(source string) services.Lane {
	switch source {
	case models.TransportSourcePOEXW:
		return services.LaneInwardEXW
	case models.TransportSourceImport:
		return services.LaneInwardImport
	default:
		return services.LaneInwardDDP
	}
}

func outwardLane(source string) services.Lane {
	if source == models.TransportSourceContainer {
		return services.LaneExportContainer
	}
	return services.LaneLocalDispatch
}

// GetInwardViews loads booked inward transports as reconciliation views.
func (r *TransportRepository) GetInwardViews() ([]services.TransportView, error) {
	var headers []models.InwardTransport
	if err := r.db.Preload("Items").Order("transport_number").Find(&headers).Error; err != nil {
		return nil, err
	}

	views := make([]services.TransportView, 0, len(headers))
	for _, h := range headers {
		firstItemUnit := ""
		if len(h.Items) > 0 {
			firstItemUnit = h.Items[0].Unit
		}
		views = append(views, services.TransportView{
			ID:               strconv.FormatUint(uint64(h.ID), 10),
			Lane:             inwardLane(h.Source),
			TransportNumber:  h.TransportNumber,
			Status:           h.Status,
			POID:             h.POID,
			PONumber:         h.PONumber,
			ImportID:         h.ImportID,
			PartyName:        h.SupplierName,
			ProductSummary:   h.ProductSummary,
			Quantity:         h.TotalQuantity,
			Unit:             services.ResolveUnit(h.TotalUnit, firstItemUnit),
			DispatchDate:     h.DispatchDate,
			ETA:              h.ETA,
			DeliveryDate:     h.DeliveryDate,
			ExpectedDelivery: h.ExpectedDelivery,
			AutoCreated:      h.AutoCreated,
		})
	}
	return views, nil
}

// GetOutwardViews loads booked outward transports as reconciliation views.
func (r *TransportRepository) GetOutwardViews() ([]services.TransportView, error) {
	var headers []models.OutwardTransport
	if err := r.db.Preload("Items").Order("transport_number").Find(&headers).Error; err != nil {
		return nil, err
	}

	views := make([]services.TransportView, 0, len(headers))
	for _, h := range headers {
		firstItemUnit := ""
		if len(h.Items) > 0 {
			firstItemUnit = h.Items[0].Unit
		}
		views = append(views, services.TransportView{
			ID:               strconv.FormatUint(uint64(h.ID), 10),
			Lane:             outwardLane(h.Source),
			TransportNumber:  h.TransportNumber,
			Status:           h.Status,
			JobOrderID:       h.JobOrderID,
			JobNumber:        h.JobNumber,
			PartyName:        h.CustomerName,
			ProductSummary:   h.ProductSummary,
			Quantity:         h.TotalQuantity,
			Unit:             services.ResolveUnit(h.TotalUnit, firstItemUnit),
			ContainerCount:   h.ContainerCount,
			ContainerType:    h.ContainerType,
			DispatchDate:     h.DispatchDate,
			ETA:              h.ETA,
			DeliveryDate:     h.DeliveryDate,
			ExpectedDelivery: h.ExpectedDelivery,
			AutoCreated:      h.AutoCreated,
		})
	}
	return views, nil
}

// GetEligiblePOs loads approved purchase orders as booking candidates.
func (r *TransportRepository) GetEligiblePOs() ([]services.CandidateOrder, error) {
	var pos []models.PurchaseOrder
	if err := r.db.Preload("Items").Where("status = ?", models.POStatusApproved).Find(&pos).Error; err != nil {
		return nil, err
	}

	out := make([]services.CandidateOrder, 0, len(pos))
	for _, po := range pos {
		firstItemUnit := ""
		if len(po.Items) > 0 {
			firstItemUnit = po.Items[0].Unit
		}
		out = append(out, services.CandidateOrder{
			Kind:             services.CandidatePO,
			ID:               po.ID,
			Number:           po.PONumber,
			Status:           po.Status,
			Incoterm:         po.Incoterm,
			TransportBooked:  po.TransportBooked,
			TransportNumber:  po.TransportNumber,
			PartyName:        po.SupplierName,
			ProductSummary:   po.ProductSummary,
			Quantity:         po.TotalQuantity,
			Unit:             services.ResolveUnit(po.TotalUnit, firstItemUnit),
			DeliveryDate:     po.DeliveryDate,
			ExpectedDelivery: po.ExpectedDelivery,
		})
	}
	return out, nil
}

// GetEligibleJobs loads ready_for_dispatch job orders as candidates.
func (r *TransportRepository) GetEligibleJobs() ([]services.CandidateOrder, error) {
	var jobs []models.JobOrder
	if err := r.db.Where("status = ?", models.JobStatusReadyForDispatch).Find(&jobs).Error; err != nil {
		return nil, err
	}

	out := make([]services.CandidateOrder, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, services.CandidateOrder{
			Kind:             services.CandidateJob,
			ID:               job.ID,
			Number:           job.JobNumber,
			Status:           job.Status,
			Incoterm:         job.Incoterm,
			TransportBooked:  job.TransportBooked,
			TransportNumber:  job.TransportNumber,
			PartyName:        job.CustomerName,
			ProductSummary:   job.ProductSummary,
			Quantity:         job.TotalWeightMT,
			Unit:             "MT",
			TotalWeightMT:    job.TotalWeightMT,
			ContainerCount:   job.ContainerCount,
			ContainerType:    job.ContainerType,
			DeliveryDate:     job.DeliveryDate,
			ExpectedDelivery: job.ExpectedDelivery,
		})
	}
	return out, nil
}

// GetPendingImports loads import shipments still on the water or at port.
func (r *TransportRepository) GetPendingImports() ([]services.CandidateOrder, error) {
	var imports []models.ImportShipment
	err := r.db.Where("status IN ?", []string{
		models.ImportStatusShipped, models.ImportStatusAtPort, models.ImportStatusArrived,
	}).Find(&imports).Error
	if err != nil {
		return nil, err
	}

	out := make([]services.CandidateOrder, 0, len(imports))
	for _, imp := range imports {
		out = append(out, services.CandidateOrder{
			Kind:             services.CandidateImport,
			ID:               imp.ID,
			Number:           imp.ImportNumber,
			Status:           imp.Status,
			TransportBooked:  imp.TransportBooked,
			TransportNumber:  imp.TransportNumber,
			PartyName:        imp.SupplierName,
			ProductSummary:   imp.ProductSummary,
			Quantity:         imp.TotalQuantity,
			Unit:             services.ResolveUnit("", imp.TotalUom),
			DeliveryDate:     imp.ETA,
			ExpectedDelivery: imp.ExpectedDelivery,
		})
	}
	return out, nil
}
