package controllers

import (
	"errors"
	"strconv"

	"fiber-erp/controllers/idgen"
	"fiber-erp/models"
	"fiber-erp/repositories"
	"fiber-erp/services"
	"fiber-erp/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuotationController struct {
	DB *gorm.DB
}

func NewQuotationController(db *gorm.DB) *QuotationController {
	return &QuotationController{DB: db}
}

type quotationLineInput struct {
	ProductID       uint    `json:"product_id" validate:"required"`
	PackagingName   string  `json:"packaging"`
	ContainerNumber int     `json:"container_number" validate:"gte=0"`
	Uom             string  `json:"uom" validate:"omitempty,oneof=per_unit per_liter per_mt"`
	Quantity        float64 `json:"quantity" validate:"gt=0"`
}

type quotationInput struct {
	CustomerCode      string               `json:"customer_code" validate:"required"`
	OrderType         string               `json:"order_type" validate:"required,oneof=local export"`
	Incoterm          string               `json:"incoterm"`
	Currency          string               `json:"currency"`
	ContainerType     string               `json:"container_type"`
	ContainerCount    int                  `json:"container_count" validate:"gte=0"`
	VatEnabled        bool                 `json:"vat_enabled"`
	FreightRatePerFCL float64              `json:"freight_rate_per_fcl" validate:"gte=0"`
	ValidUntil        string               `json:"valid_until"`
	Remarks           string               `json:"remarks"`
	Items             []quotationLineInput `json:"items" validate:"required,min=1,dive"`
}

// priceQuotation runs every line through the pricing engine and returns
// the final state with totals. Client-sent prices are ignored; the engine
// output is what gets persisted.
func (c *QuotationController) priceQuotation(input quotationInput) (services.QuoteState, services.QuoteTotals, []services.QuoteLine, error) {
	state := services.QuoteState{
		OrderType:         input.OrderType,
		Incoterm:          input.Incoterm,
		ContainerType:     input.ContainerType,
		ContainerCount:    input.ContainerCount,
		VatEnabled:        input.VatEnabled,
		FreightRatePerFCL: input.FreightRatePerFCL,
	}

	// An export order against a container type the capacity table does not
	// know would silently skip every weight check, so reject it up front.
	if input.OrderType == "export" && input.ContainerType != "" {
		if _, ok := services.ContainerCapacity(input.ContainerType); !ok {
			return state, services.QuoteTotals{}, nil,
				errors.New("unknown container type: " + input.ContainerType)
		}
	}

	for _, item := range input.Items {
		var product models.Product
		if err := c.DB.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return state, services.QuoteTotals{}, nil,
					errors.New("product " + strconv.Itoa(int(item.ProductID)) + " not found")
			}
			return state, services.QuoteTotals{}, nil, err
		}

		line := services.QuoteLine{
			ProductID:       product.ID,
			ItemCode:        product.ItemCode,
			ItemName:        product.ItemName,
			PackagingName:   item.PackagingName,
			ContainerNumber: item.ContainerNumber,
			UOM:             services.UOM(item.Uom),
			Quantity:        item.Quantity,
			DensityKgPerL:   product.DensityKgPerL,
			BasePricePerMT:  product.BasePricePerMT,
		}

		// Packaging config supplies net weight (and a density override)
		// when one is maintained for this product + packaging.
		if item.PackagingName != "" {
			var config models.ProductPackagingConfig
			query := c.DB.Where("product_id = ? AND packaging_name = ? AND is_active = ?",
				product.ID, item.PackagingName, true)
			if input.ContainerType != "" {
				query = query.Where("container_type = ? OR container_type = ''", input.ContainerType)
			}
			if err := query.Order("container_type DESC").First(&config).Error; err == nil {
				line.NetWeightKG = config.NetWeightKG
				if config.DensityKgPerL > 0 {
					line.DensityKgPerL = config.DensityKgPerL
				}
			}
		}

		next, err := services.AddItem(state, line)
		if err != nil {
			return state, services.QuoteTotals{}, nil, err
		}
		state = next
	}

	if err := services.CheckOverweight(state); err != nil {
		return state, services.QuoteTotals{}, nil, err
	}

	return state, services.ComputeTotals(state), state.Items, nil
}

// renderPricingError maps the engine's typed rejections to structured
// payloads the form can act on.
func renderPricingError(ctx *fiber.Ctx, err error) error {
	var capErr *services.CapacityExceededError
	if errors.As(err, &capErr) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   capErr.Error(),
			"data":    capErr,
		})
	}
	var owErr *services.OverweightError
	if errors.As(err, &owErr) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   owErr.Error(),
			"data":    owErr,
		})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func buildQuotationItems(lines []services.QuoteLine) []models.QuotationItem {
	items := make([]models.QuotationItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.QuotationItem{
			ProductID:       l.ProductID,
			ItemCode:        l.ItemCode,
			ItemName:        l.ItemName,
			PackagingName:   l.PackagingName,
			ContainerNumber: l.ContainerNumber,
			Uom:             string(l.UOM),
			Quantity:        l.Quantity,
			NetWeightKG:     l.NetWeightKG,
			BasePricePerMT:  l.BasePricePerMT,
			UnitPrice:       l.UnitPrice,
			WeightMT:        l.WeightMT,
			Total:           l.Total,
		})
	}
	return items
}

func (c *QuotationController) CreateQuotation(ctx *fiber.Ctx) error {
	var input quotationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer models.Customer
	if err := c.DB.Where("customer_code = ?", input.CustomerCode).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// VAT only ever applies to local customers.
	if input.VatEnabled && !customer.IsLocal {
		input.VatEnabled = false
	}

	_, totals, lines, err := c.priceQuotation(input)
	if err != nil {
		return renderPricingError(ctx, err)
	}

	repo := repositories.NewQuotationRepository(c.DB)
	quotationNumber, err := repo.GenerateQuotationNumber()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quotation := models.Quotation{
		RefID:             types.SnowflakeID(idgen.GenerateID()),
		QuotationNumber:   quotationNumber,
		CustomerCode:      customer.CustomerCode,
		CustomerName:      customer.CustomerName,
		Status:            models.QuotationStatusDraft,
		OrderType:         input.OrderType,
		Incoterm:          input.Incoterm,
		Currency:          input.Currency,
		ContainerType:     input.ContainerType,
		ContainerCount:    input.ContainerCount,
		VatEnabled:        input.VatEnabled,
		FreightRatePerFCL: input.FreightRatePerFCL,
		Subtotal:          totals.Subtotal,
		VatAmount:         totals.VatAmount,
		GrandTotal:        totals.GrandTotal,
		AdditionalFreight: totals.AdditionalFreight,
		TotalReceivable:   totals.TotalReceivable,
		TotalWeightMT:     totals.TotalWeightMT,
		ValidUntil:        input.ValidUntil,
		Remarks:           input.Remarks,
		Items:             buildQuotationItems(lines),
		CreatedBy:         int(ctx.Locals("userID").(float64)),
	}

	if err := repo.CreateWithItems(&quotation); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quotation created successfully", "data": quotation})
}

func (c *QuotationController) UpdateQuotation(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var quotation models.Quotation
	if err := c.DB.First(&quotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quotation not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if quotation.Status == models.QuotationStatusAccepted {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Accepted quotations cannot be modified"})
	}

	var input quotationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer models.Customer
	if err := c.DB.Where("customer_code = ?", input.CustomerCode).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.VatEnabled && !customer.IsLocal {
		input.VatEnabled = false
	}

	_, totals, lines, err := c.priceQuotation(input)
	if err != nil {
		return renderPricingError(ctx, err)
	}

	quotation.CustomerCode = customer.CustomerCode
	quotation.CustomerName = customer.CustomerName
	quotation.OrderType = input.OrderType
	quotation.Incoterm = input.Incoterm
	quotation.Currency = input.Currency
	quotation.ContainerType = input.ContainerType
	quotation.ContainerCount = input.ContainerCount
	quotation.VatEnabled = input.VatEnabled
	quotation.FreightRatePerFCL = input.FreightRatePerFCL
	quotation.Subtotal = totals.Subtotal
	quotation.VatAmount = totals.VatAmount
	quotation.GrandTotal = totals.GrandTotal
	quotation.AdditionalFreight = totals.AdditionalFreight
	quotation.TotalReceivable = totals.TotalReceivable
	quotation.TotalWeightMT = totals.TotalWeightMT
	quotation.ValidUntil = input.ValidUntil
	quotation.Remarks = input.Remarks
	quotation.Items = buildQuotationItems(lines)
	for i := range quotation.Items {
		quotation.Items[i].QuotationID = quotation.ID
	}
	quotation.UpdatedBy = int(ctx.Locals("userID").(float64))

	repo := repositories.NewQuotationRepository(c.DB)
	if err := repo.UpdateWithItems(&quotation); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quotation updated successfully", "data": quotation})
}

// PreviewQuotation prices a quotation without persisting anything. The
// form calls this to refresh totals while the user edits.
func (c *QuotationController) PreviewQuotation(ctx *fiber.Ctx) error {
	var input quotationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	_, totals, lines, err := c.priceQuotation(input)
	if err != nil {
		return renderPricingError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Quotation priced",
		"data": fiber.Map{
			"items":  lines,
			"totals": totals,
		},
	})
}

func (c *QuotationController) GetAllQuotations(ctx *fiber.Ctx) error {
	var quotations []models.Quotation
	var total int64

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	search := ctx.Query("search", "")

	offset := (page - 1) * limit

	query := c.DB.Model(&models.Quotation{})
	if search != "" {
		query = query.Where("quotation_number LIKE ? OR customer_name LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&quotations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data": quotations,
		"meta": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (c *QuotationController) GetQuotationByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var quotation models.Quotation
	if err := c.DB.Preload("Items").First(&quotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quotation not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quotation found", "data": quotation})
}

func (c *QuotationController) UpdateQuotationStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	allowed := map[string]bool{
		models.QuotationStatusDraft:    true,
		models.QuotationStatusSent:     true,
		models.QuotationStatusAccepted: true,
		models.QuotationStatusRejected: true,
	}
	if !allowed[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var quotation models.Quotation
	if err := c.DB.First(&quotation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quotation not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	quotation.Status = status
	quotation.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&quotation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Quotation status updated", "data": quotation})
}
