package controllers

import (
	"errors"

	"fiber-erp/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

func (c *ImportController) CreateImportShipment(ctx *fiber.Ctx) error {
	var importInput struct {
		POID             uint    `json:"po_id" validate:"required"`
		BLNumber         string  `json:"bl_number"`
		ProductSummary   string  `json:"product_summary"`
		TotalQuantity    float64 `json:"total_quantity" validate:"gt=0"`
		TotalUom         string  `json:"total_uom"`
		ETA              string  `json:"eta"`
		ExpectedDelivery string  `json:"expected_delivery"`
	}

	if err := ctx.BodyParser(&importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(importInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var po models.PurchaseOrder
	if err := c.DB.First(&po, importInput.POID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Only sea-leg purchases become import shipments.
	if po.Incoterm != "FOB" && po.Incoterm != "CFR" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Purchase order incoterm must be FOB or CFR"})
	}

	userID := int(ctx.Locals("userID").(float64))

	var shipment models.ImportShipment
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		importNumber, err := generateDocumentNumber(tx, "import_shipments", "import_number", "IMP")
		if err != nil {
			return err
		}

		shipment = models.ImportShipment{
			ImportNumber:     importNumber,
			POID:             po.ID,
			PONumber:         po.PONumber,
			SupplierCode:     po.SupplierCode,
			SupplierName:     po.SupplierName,
			BLNumber:         importInput.BLNumber,
			Status:           models.ImportStatusShipped,
			ProductSummary:   importInput.ProductSummary,
			TotalQuantity:    importInput.TotalQuantity,
			TotalUom:         importInput.TotalUom,
			ETA:              importInput.ETA,
			ExpectedDelivery: importInput.ExpectedDelivery,
			CreatedBy:        userID,
		}

		return tx.Create(&shipment).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import shipment created successfully", "data": shipment})
}

func (c *ImportController) GetAllImportShipments(ctx *fiber.Ctx) error {
	var shipments []models.ImportShipment

	query := c.DB.Model(&models.ImportShipment{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("created_at DESC").Find(&shipments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import shipments found", "data": shipments})
}

func (c *ImportController) GetImportShipmentByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var shipment models.ImportShipment
	if err := c.DB.First(&shipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Import shipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import shipment found", "data": shipment})
}

func (c *ImportController) UpdateImportStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	allowed := map[string]bool{
		models.ImportStatusShipped: true,
		models.ImportStatusAtPort:  true,
		models.ImportStatusArrived: true,
		models.ImportStatusCleared: true,
	}
	if !allowed[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var shipment models.ImportShipment
	if err := c.DB.First(&shipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Import shipment not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	shipment.Status = status
	shipment.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&shipment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import shipment status updated", "data": shipment})
}
