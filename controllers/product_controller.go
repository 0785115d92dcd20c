package controllers

import (
	"errors"
	"fiber-erp/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

var productInput struct {
	ItemCode       string  `json:"item_code" validate:"required,min=3"`
	ItemName       string  `json:"item_name" validate:"required,min=3"`
	Category       string  `json:"category" validate:"required"`
	Group          string  `json:"group"`
	HSCode         string  `json:"hs_code"`
	BasePricePerMT float64 `json:"base_price_per_mt" validate:"required,gt=0"`
	Currency       string  `json:"currency"`
	DensityKgPerL  float64 `json:"density_kg_per_l"`
	DefaultUom     string  `json:"default_uom"`
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product := models.Product{
		ItemCode:       productInput.ItemCode,
		ItemName:       productInput.ItemName,
		Category:       productInput.Category,
		Group:          productInput.Group,
		HSCode:         productInput.HSCode,
		BasePricePerMT: productInput.BasePricePerMT,
		Currency:       productInput.Currency,
		DensityKgPerL:  productInput.DensityKgPerL,
		DefaultUom:     productInput.DefaultUom,
		IsActive:       true,
		CreatedBy:      int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product created successfully", "data": product})
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	var products []models.Product

	query := c.DB.Model(&models.Product{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("item_code LIKE ? OR item_name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Products found", "data": products})
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Product
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product found", "data": result})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := ctx.BodyParser(&product); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Model(&product).Where("id = ?", id).Updates(product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product updated successfully", "data": product})
}
