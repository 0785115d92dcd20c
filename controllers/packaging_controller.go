package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"fiber-erp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type PackagingController struct {
	DB *gorm.DB
}

func NewPackagingController(db *gorm.DB) *PackagingController {
	return &PackagingController{DB: db}
}

// GetAll - list packaging configs with pagination
func (ctrl *PackagingController) GetAll(c *fiber.Ctx) error {
	var configs []models.ProductPackagingConfig
	var total int64

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")

	offset := (page - 1) * limit

	query := ctrl.DB.Model(&models.ProductPackagingConfig{})

	if search != "" {
		query = query.Where("item_code LIKE ? OR packaging_name LIKE ? OR container_type LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&configs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch packaging configs",
		})
	}

	return c.JSON(fiber.Map{
		"data": configs,
		"meta": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// Lookup - resolve one config for a product + packaging (optionally narrowed
// by container type). Quotation clients call this when the packaging on a
// line changes.
func (ctrl *PackagingController) Lookup(c *fiber.Ctx) error {
	productID, _ := strconv.Atoi(c.Query("product_id"))
	packaging := strings.TrimSpace(c.Query("packaging_name"))
	containerType := strings.TrimSpace(c.Query("container_type"))

	if productID == 0 || packaging == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "product_id and packaging_name are required",
		})
	}

	query := ctrl.DB.Where("product_id = ? AND packaging_name = ? AND is_active = ?",
		productID, packaging, true)
	if containerType != "" {
		query = query.Where("container_type = ? OR container_type = ''", containerType)
	}

	var config models.ProductPackagingConfig
	if err := query.Order("container_type DESC").First(&config).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Packaging config not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch packaging config",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    config,
	})
}

// Create - create new packaging config
func (ctrl *PackagingController) Create(c *fiber.Ctx) error {
	var config models.ProductPackagingConfig

	if err := c.BodyParser(&config); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var product models.Product
	if err := ctrl.DB.First(&product, config.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product",
		})
	}

	config.ItemCode = product.ItemCode
	config.IsActive = true
	config.CreatedBy = int(c.Locals("userID").(float64))

	if err := ctrl.DB.Create(&config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create packaging config",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Packaging config created successfully",
		"data":    config,
	})
}

// Update - update existing packaging config
func (ctrl *PackagingController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var config models.ProductPackagingConfig

	if err := ctrl.DB.First(&config, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Packaging config not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch packaging config",
		})
	}

	var updateData models.ProductPackagingConfig
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	config.PackagingName = updateData.PackagingName
	config.ContainerType = updateData.ContainerType
	config.NetWeightKG = updateData.NetWeightKG
	config.UnitsPerContainer = updateData.UnitsPerContainer
	config.DensityKgPerL = updateData.DensityKgPerL
	config.IsActive = updateData.IsActive
	config.UpdatedBy = int(c.Locals("userID").(float64))

	if err := ctrl.DB.Save(&config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update packaging config",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Packaging config updated successfully",
		"data":    config,
	})
}

// Delete - soft-delete packaging config
func (ctrl *PackagingController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	var config models.ProductPackagingConfig

	if err := ctrl.DB.First(&config, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Packaging config not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch packaging config",
		})
	}

	userID := int(c.Locals("userID").(float64))
	ctrl.DB.Model(&config).Update("deleted_by", userID)

	if err := ctrl.DB.Delete(&config).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete packaging config",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Packaging config deleted successfully",
	})
}

type PackagingUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateFromExcel - bulk load packaging configs from an Excel sheet.
// Columns: ITEM_CODE, PACKAGING_NAME, CONTAINER_TYPE, NET_WEIGHT_KG,
// UNITS_PER_CONTAINER, DENSITY_KG_PER_L
func (ctrl *PackagingController) CreateFromExcel(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := PackagingUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(c.Locals("userID").(float64))
	productCache := make(map[string]models.Product)

	tx := ctrl.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 4 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 4)", rowNum))
			continue
		}

		itemCode := strings.ToUpper(strings.TrimSpace(row[0]))
		packaging := strings.TrimSpace(row[1])
		containerType := strings.ToLower(strings.TrimSpace(row[2]))
		netWeightKG := parseFloat(row[3])
		unitsPerContainer := 0
		if len(row) > 4 {
			unitsPerContainer = int(parseFloat(row[4]))
		}
		density := 0.0
		if len(row) > 5 {
			density = parseFloat(row[5])
		}

		if itemCode == "" || packaging == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Missing required fields (ITEM_CODE, PACKAGING_NAME)", rowNum))
			continue
		}

		if netWeightKG < 0 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Net weight cannot be negative", rowNum))
			continue
		}

		product, exists := productCache[itemCode]
		if !exists {
			if err := tx.Where("item_code = ?", itemCode).First(&product).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Product '%s' not found", rowNum, itemCode))
				continue
			}
			productCache[itemCode] = product
		}

		var existing models.ProductPackagingConfig
		err := tx.Where("product_id = ? AND packaging_name = ? AND container_type = ?",
			product.ID, packaging, containerType).First(&existing).Error
		if err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems,
				fmt.Sprintf("%s (%s / %s)", itemCode, packaging, containerType))
			continue
		}

		config := models.ProductPackagingConfig{
			ProductID:         product.ID,
			ItemCode:          itemCode,
			PackagingName:     packaging,
			ContainerType:     containerType,
			NetWeightKG:       netWeightKG,
			UnitsPerContainer: unitsPerContainer,
			DensityKgPerL:     density,
			IsActive:          true,
			CreatedBy:         userID,
			UpdatedBy:         userID,
		}

		if err := tx.Create(&config).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create packaging config - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
