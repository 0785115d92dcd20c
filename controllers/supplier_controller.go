package controllers

import (
	"errors"
	"fiber-erp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var supplier models.Supplier
	if err := ctx.BodyParser(&supplier); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.CreatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Create(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier created successfully", "data": supplier})
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := c.DB.Find(&suppliers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Suppliers found", "data": suppliers})
}

func (c *SupplierController) GetSupplierByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Supplier
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier found", "data": result})
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var supplier models.Supplier
	if err := ctx.BodyParser(&supplier); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Model(&supplier).Where("id = ?", id).Updates(supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier updated successfully", "data": supplier})
}
