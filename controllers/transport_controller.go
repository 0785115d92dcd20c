package controllers

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fiber-erp/controllers/idgen"
	"fiber-erp/logger"
	"fiber-erp/models"
	"fiber-erp/repositories"
	"fiber-erp/services"
	"fiber-erp/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type TransportController struct {
	DB *gorm.DB
}

func NewTransportController(db *gorm.DB) *TransportController {
	return &TransportController{DB: db}
}

func (c *TransportController) GetInwardTransports(ctx *fiber.Ctx) error {
	var transports []models.InwardTransport

	query := c.DB.Preload("Items")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("transport_number DESC").Find(&transports).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward transports found", "data": transports})
}

func (c *TransportController) GetOutwardTransports(ctx *fiber.Ctx) error {
	var transports []models.OutwardTransport

	query := c.DB.Preload("Items")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("transport_number DESC").Find(&transports).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outward transports found", "data": transports})
}

// fetchReconcileInput loads the five reconciliation sources concurrently.
// Each source degrades independently: a failed fetch contributes an empty
// list and a log line, never an aborted response.
func (c *TransportController) fetchReconcileInput() services.ReconcileInput {
	repo := repositories.NewTransportRepository(c.DB)

	var in services.ReconcileInput
	var inward, outward []services.TransportView

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		views, err := repo.GetInwardViews()
		if err != nil {
			logger.Error("fetch inward transports failed", err)
			return
		}
		inward = views
	}()
	go func() {
		defer wg.Done()
		views, err := repo.GetOutwardViews()
		if err != nil {
			logger.Error("fetch outward transports failed", err)
			return
		}
		outward = views
	}()
	go func() {
		defer wg.Done()
		pos, err := repo.GetEligiblePOs()
		if err != nil {
			logger.Error("fetch eligible purchase orders failed", err)
			return
		}
		in.POs = pos
	}()
	go func() {
		defer wg.Done()
		jobs, err := repo.GetEligibleJobs()
		if err != nil {
			logger.Error("fetch eligible job orders failed", err)
			return
		}
		in.Jobs = jobs
	}()
	go func() {
		defer wg.Done()
		imports, err := repo.GetPendingImports()
		if err != nil {
			logger.Error("fetch pending imports failed", err)
			return
		}
		in.Imports = imports
	}()

	wg.Wait()

	in.Booked = append(inward, outward...)
	return in
}

// GetReconciliation merges booked transports with unbooked source orders
// into the five-lane view.
func (c *TransportController) GetReconciliation(ctx *fiber.Ctx) error {
	lanes := services.Reconcile(c.fetchReconcileInput())

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Transport reconciliation",
		"data":    lanes,
	})
}

func (c *TransportController) GetUrgencySummary(ctx *fiber.Ctx) error {
	lanes := services.Reconcile(c.fetchReconcileInput())
	summary := services.SummarizeUrgency(lanes, time.Now())

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Urgency summary",
		"data":    summary,
	})
}

func (c *TransportController) GetTodayDeliveries(ctx *fiber.Ctx) error {
	lanes := services.Reconcile(c.fetchReconcileInput())
	today := services.FilterTodayDeliveries(lanes, time.Now())

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Deliveries scheduled today",
		"data":    today,
	})
}

// GetJobsReady reports the dispatch-readiness balance for every eligible
// job order.
func (c *TransportController) GetJobsReady(ctx *fiber.Ctx) error {
	repo := repositories.NewTransportRepository(c.DB)

	jobs, err := repo.GetEligibleJobs()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	outward, err := repo.GetOutwardViews()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	statuses := services.EvaluateJobsDispatch(jobs, outward)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Job dispatch readiness",
		"data":    statuses,
	})
}

// BookInward creates an inward transport against an approved DDP/EXW
// purchase order. The reconciliation placeholder is replaced by the new
// row, never mutated.
func (c *TransportController) BookInward(ctx *fiber.Ctx) error {
	var bookInput struct {
		POID            uint    `json:"po_id" validate:"required"`
		TransporterCode string  `json:"transporter_code" validate:"required"`
		TruckNo         string  `json:"truck_no"`
		DriverName      string  `json:"driver_name"`
		TotalQuantity   float64 `json:"total_quantity" validate:"gt=0"`
		TotalUnit       string  `json:"total_unit"`
		DispatchDate    string  `json:"dispatch_date"`
		ETA             string  `json:"eta"`
		DeliveryDate    string  `json:"delivery_date"`
	}

	if err := ctx.BodyParser(&bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var po models.PurchaseOrder
	if err := c.DB.First(&po, bookInput.POID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if po.Status != models.POStatusApproved {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Purchase order is not approved"})
	}
	if po.TransportBooked {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transport already booked for this purchase order"})
	}

	source := models.TransportSourcePODDP
	if strings.EqualFold(po.Incoterm, "EXW") {
		source = models.TransportSourcePOEXW
	} else if !strings.EqualFold(po.Incoterm, "DDP") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only DDP and EXW purchases book inland transport directly"})
	}

	userID := int(ctx.Locals("userID").(float64))

	var transport models.InwardTransport
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewTransportRepository(tx)
		transportNumber, err := repo.GenerateTransportNumber("TRI")
		if err != nil {
			return err
		}

		transport = models.InwardTransport{
			RefID:           types.SnowflakeID(idgen.GenerateID()),
			TransportNumber: transportNumber,
			Source:          source,
			POID:            po.ID,
			PONumber:        po.PONumber,
			SupplierName:    po.SupplierName,
			ProductSummary:  po.ProductSummary,
			TotalQuantity:   bookInput.TotalQuantity,
			TotalUnit:       services.ResolveUnit(bookInput.TotalUnit, po.TotalUnit),
			Status:          services.StatusPending,
			TransporterCode: bookInput.TransporterCode,
			TruckNo:         bookInput.TruckNo,
			DriverName:      bookInput.DriverName,
			DispatchDate:    bookInput.DispatchDate,
			ETA:             bookInput.ETA,
			DeliveryDate:    bookInput.DeliveryDate,
			CreatedBy:       userID,
		}
		if err := tx.Create(&transport).Error; err != nil {
			return err
		}

		return tx.Model(&po).Updates(map[string]interface{}{
			"transport_booked": true,
			"transport_number": transportNumber,
			"updated_by":       userID,
		}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward transport booked successfully", "data": transport})
}

// BookImport creates an inward transport for an import shipment sitting at
// or approaching the port.
func (c *TransportController) BookImport(ctx *fiber.Ctx) error {
	var bookInput struct {
		ImportID        uint    `json:"import_id" validate:"required"`
		TransporterCode string  `json:"transporter_code" validate:"required"`
		TruckNo         string  `json:"truck_no"`
		DriverName      string  `json:"driver_name"`
		TotalQuantity   float64 `json:"total_quantity" validate:"gt=0"`
		TotalUnit       string  `json:"total_unit"`
		DispatchDate    string  `json:"dispatch_date"`
		ETA             string  `json:"eta"`
		DeliveryDate    string  `json:"delivery_date"`
	}

	if err := ctx.BodyParser(&bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var shipment models.ImportShipment
	if err := c.DB.First(&shipment, bookInput.ImportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Import shipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if shipment.Status == models.ImportStatusCleared {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Import shipment already cleared"})
	}
	if shipment.TransportBooked {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transport already booked for this import shipment"})
	}

	userID := int(ctx.Locals("userID").(float64))

	var transport models.InwardTransport
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewTransportRepository(tx)
		transportNumber, err := repo.GenerateTransportNumber("TRI")
		if err != nil {
			return err
		}

		transport = models.InwardTransport{
			RefID:           types.SnowflakeID(idgen.GenerateID()),
			TransportNumber: transportNumber,
			Source:          models.TransportSourceImport,
			POID:            shipment.POID,
			PONumber:        shipment.PONumber,
			ImportID:        shipment.ID,
			ImportNumber:    shipment.ImportNumber,
			SupplierName:    shipment.SupplierName,
			ProductSummary:  shipment.ProductSummary,
			TotalQuantity:   bookInput.TotalQuantity,
			TotalUnit:       services.ResolveUnit(bookInput.TotalUnit, shipment.TotalUom),
			Status:          services.StatusPending,
			TransporterCode: bookInput.TransporterCode,
			TruckNo:         bookInput.TruckNo,
			DriverName:      bookInput.DriverName,
			DispatchDate:    bookInput.DispatchDate,
			ETA:             bookInput.ETA,
			DeliveryDate:    bookInput.DeliveryDate,
			CreatedBy:       userID,
		}
		if err := tx.Create(&transport).Error; err != nil {
			return err
		}

		return tx.Model(&shipment).Updates(map[string]interface{}{
			"transport_booked": true,
			"transport_number": transportNumber,
			"updated_by":       userID,
		}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import transport booked successfully", "data": transport})
}

// BookOutward creates an outward transport against a ready job order.
// Partial bookings are allowed; the job is only flagged transport_booked
// once the cumulative booked quantity covers its weight.
func (c *TransportController) BookOutward(ctx *fiber.Ctx) error {
	var bookInput struct {
		JobOrderID      uint    `json:"job_order_id" validate:"required"`
		TransporterCode string  `json:"transporter_code" validate:"required"`
		TruckNo         string  `json:"truck_no"`
		DriverName      string  `json:"driver_name"`
		TotalQuantity   float64 `json:"total_quantity" validate:"gt=0"`
		TotalUnit       string  `json:"total_unit"`
		ContainerCount  int     `json:"container_count" validate:"gte=0"`
		ContainerType   string  `json:"container_type"`
		DispatchDate    string  `json:"dispatch_date"`
		DeliveryDate    string  `json:"delivery_date"`
	}

	if err := ctx.BodyParser(&bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(bookInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var job models.JobOrder
	if err := c.DB.First(&job, bookInput.JobOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if job.Status != models.JobStatusReadyForDispatch {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Job order is not ready for dispatch"})
	}

	source := models.TransportSourceLocal
	if job.ContainerCount > 0 || job.ContainerType != "" {
		source = models.TransportSourceContainer
	}

	userID := int(ctx.Locals("userID").(float64))

	var transport models.OutwardTransport
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewTransportRepository(tx)
		transportNumber, err := repo.GenerateTransportNumber("TRO")
		if err != nil {
			return err
		}

		transport = models.OutwardTransport{
			RefID:           types.SnowflakeID(idgen.GenerateID()),
			TransportNumber: transportNumber,
			Source:          source,
			JobOrderID:      job.ID,
			JobNumber:       job.JobNumber,
			CustomerName:    job.CustomerName,
			ProductSummary:  job.ProductSummary,
			TotalQuantity:   bookInput.TotalQuantity,
			TotalUnit:       services.ResolveUnit(bookInput.TotalUnit, "MT"),
			ContainerCount:  bookInput.ContainerCount,
			ContainerType:   bookInput.ContainerType,
			Status:          services.StatusPending,
			TransporterCode: bookInput.TransporterCode,
			TruckNo:         bookInput.TruckNo,
			DriverName:      bookInput.DriverName,
			DispatchDate:    bookInput.DispatchDate,
			DeliveryDate:    bookInput.DeliveryDate,
			CreatedBy:       userID,
		}
		if err := tx.Create(&transport).Error; err != nil {
			return err
		}

		// Recompute the balance inside the transaction so concurrent
		// bookings cannot both leave the job unflagged.
		var booked float64
		err = tx.Model(&models.OutwardTransport{}).
			Where("job_order_id = ? AND transport_number <> '' AND auto_created = ?", job.ID, false).
			Select("COALESCE(SUM(total_quantity), 0)").
			Scan(&booked).Error
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"updated_by": userID}
		if job.TotalWeightMT-booked <= 0 {
			updates["transport_booked"] = true
			updates["transport_number"] = transportNumber
		}
		return tx.Model(&job).Updates(updates).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outward transport booked successfully", "data": transport})
}

var inwardStatuses = map[string]bool{
	services.StatusPending:   true,
	services.StatusScheduled: true,
	services.StatusInTransit: true,
	services.StatusArrived:   true,
	services.StatusDelivered: true,
	services.StatusCompleted: true,
}

var outwardStatuses = map[string]bool{
	services.StatusPending:    true,
	services.StatusScheduled:  true,
	services.StatusLoading:    true,
	services.StatusDispatched: true,
	services.StatusShipped:    true,
	services.StatusDelivered:  true,
	services.StatusCompleted:  true,
}

func (c *TransportController) UpdateInwardStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	if !inwardStatuses[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var transport models.InwardTransport
	if err := c.DB.First(&transport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inward transport not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	transport.Status = status
	transport.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&transport).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inward transport status updated", "data": transport})
}

func (c *TransportController) UpdateOutwardStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	if !outwardStatuses[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var transport models.OutwardTransport
	if err := c.DB.First(&transport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Outward transport not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	transport.Status = status
	transport.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&transport).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Outward transport status updated", "data": transport})
}

// ExportReconciliationExcel streams the reconciled five-lane view as an
// Excel workbook, one sheet per lane.
func (c *TransportController) ExportReconciliationExcel(ctx *fiber.Ctx) error {
	lanes := services.Reconcile(c.fetchReconcileInput())

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Transport No", "Status", "Source No", "Party", "Product", "Quantity", "Unit", "Dispatch Date", "ETA", "Delivery Date", "Needs Booking"}

	for i, lane := range services.LaneOrder {
		sheet := string(lane)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}

		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, v := range lanes[lane] {
			sourceNumber := v.PONumber
			if sourceNumber == "" {
				sourceNumber = v.JobNumber
			}
			values := []interface{}{
				v.TransportNumber, v.Status, sourceNumber, v.PartyName, v.ProductSummary,
				v.Quantity, v.Unit, v.DispatchDate, v.ETA,
				services.ResolveDate(v.DeliveryDate, v.ExpectedDelivery), v.NeedsBooking,
			}
			for col, val := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, val)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("transport_reconciliation_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}
