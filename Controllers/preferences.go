package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Momentum/Models"
)

// PreferencesController stores view preferences (theme, pomodoro
// durations) in the local database. Preferences never sync.
type PreferencesController struct {
	DB *gorm.DB
}

// NewPreferencesController creates a new PreferencesController
func NewPreferencesController(db *gorm.DB) *PreferencesController {
	return &PreferencesController{DB: db}
}

// PreferenceInput is the payload for setting a preference.
type PreferenceInput struct {
	Value string `json:"value" validate:"required"`
}

// GetPreferences returns every stored preference as a key-value map.
func (c *PreferencesController) GetPreferences(ctx *fiber.Ctx) error {
	var prefs []Models.UserPreference
	if err := c.DB.Find(&prefs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read preferences"})
	}

	out := make(map[string]string, len(prefs))
	for _, pref := range prefs {
		out[pref.Key] = pref.Value
	}
	return ctx.JSON(out)
}

// SetPreference upserts one preference by key.
func (c *PreferencesController) SetPreference(ctx *fiber.Ctx) error {
	var input PreferenceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErrors(err)})
	}

	pref := Models.UserPreference{Key: ctx.Params("key"), Value: input.Value}
	err := c.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&pref).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save preference"})
	}
	return ctx.JSON(pref)
}

// DeletePreference removes one preference by key.
func (c *PreferencesController) DeletePreference(ctx *fiber.Ctx) error {
	if err := c.DB.Unscoped().Where("key = ?", ctx.Params("key")).Delete(&Models.UserPreference{}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete preference"})
	}
	return ctx.JSON(fiber.Map{"message": "Preference deleted successfully"})
}
