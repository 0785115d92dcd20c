package controllers

import (
	"errors"
	"fmt"
	"time"

	"fiber-erp/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseOrderController struct {
	DB *gorm.DB
}

func NewPurchaseOrderController(db *gorm.DB) *PurchaseOrderController {
	return &PurchaseOrderController{DB: db}
}

func generateDocumentNumber(tx *gorm.DB, table, column, prefix string) (string, error) {
	datePrefix := prefix + time.Now().Format("060102")

	var lastNumber string
	err := tx.Table(table).
		Select(column).
		Where(column+" LIKE ?", datePrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&lastNumber).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if len(lastNumber) > len(datePrefix) {
		fmt.Sscanf(lastNumber[len(datePrefix):], "%d", &seq)
		seq++
	}

	return fmt.Sprintf("%s%04d", datePrefix, seq), nil
}

func (c *PurchaseOrderController) CreatePurchaseOrder(ctx *fiber.Ctx) error {
	var poInput struct {
		SupplierCode     string  `json:"supplier_code" validate:"required"`
		Incoterm         string  `json:"incoterm" validate:"required,oneof=DDP EXW FOB CFR"`
		ProductSummary   string  `json:"product_summary"`
		TotalQuantity    float64 `json:"total_quantity" validate:"gte=0"`
		TotalUnit        string  `json:"total_unit"`
		OrderDate        string  `json:"order_date"`
		DeliveryDate     string  `json:"delivery_date"`
		ExpectedDelivery string  `json:"expected_delivery"`
		Items            []struct {
			ItemCode  string  `json:"item_code" validate:"required"`
			ItemName  string  `json:"item_name"`
			Quantity  float64 `json:"quantity" validate:"gt=0"`
			Unit      string  `json:"unit"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"items"`
	}

	if err := ctx.BodyParser(&poInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(poInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var supplier models.Supplier
	if err := c.DB.Where("supplier_code = ?", poInput.SupplierCode).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	var po models.PurchaseOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		poNumber, err := generateDocumentNumber(tx, "purchase_orders", "po_number", "PO")
		if err != nil {
			return err
		}

		po = models.PurchaseOrder{
			PONumber:         poNumber,
			SupplierCode:     supplier.SupplierCode,
			SupplierName:     supplier.SupplierName,
			Status:           models.POStatusDraft,
			Incoterm:         poInput.Incoterm,
			ProductSummary:   poInput.ProductSummary,
			TotalQuantity:    poInput.TotalQuantity,
			TotalUnit:        poInput.TotalUnit,
			OrderDate:        poInput.OrderDate,
			DeliveryDate:     poInput.DeliveryDate,
			ExpectedDelivery: poInput.ExpectedDelivery,
			CreatedBy:        userID,
		}
		for _, item := range poInput.Items {
			po.Items = append(po.Items, models.PurchaseOrderItem{
				PONumber:  poNumber,
				ItemCode:  item.ItemCode,
				ItemName:  item.ItemName,
				Quantity:  item.Quantity,
				Unit:      item.Unit,
				UnitPrice: item.UnitPrice,
				CreatedBy: userID,
			})
		}

		return tx.Create(&po).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order created successfully", "data": po})
}

func (c *PurchaseOrderController) GetAllPurchaseOrders(ctx *fiber.Ctx) error {
	var orders []models.PurchaseOrder

	query := c.DB.Model(&models.PurchaseOrder{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if incoterm := ctx.Query("incoterm"); incoterm != "" {
		query = query.Where("incoterm = ?", incoterm)
	}

	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase orders found", "data": orders})
}

func (c *PurchaseOrderController) GetPurchaseOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var po models.PurchaseOrder
	if err := c.DB.Preload("Items").First(&po, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order found", "data": po})
}

// UpdatePurchaseOrderStatus moves a PO through its lifecycle. Approval is
// what makes a DDP/EXW order visible to transport reconciliation.
func (c *PurchaseOrderController) UpdatePurchaseOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	allowed := map[string]bool{
		models.POStatusDraft:     true,
		models.POStatusApproved:  true,
		models.POStatusClosed:    true,
		models.POStatusCancelled: true,
	}
	if !allowed[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var po models.PurchaseOrder
	if err := c.DB.First(&po, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	po.Status = status
	po.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&po).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order status updated", "data": po})
}
