package services

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

// completionChecks - 7 личных, 4 физических, 3 профессиональных и 1 проверка портфолио
const completionChecks = 15

// CalculateCompletion - floor(выполнено * 100 / 15)
func CalculateCompletion(p *models.TalentProfile, portfolioItems int64) int {
	checks := []bool{
		// Личные данные
		p.FirstName != "",
		p.LastName != "",
		p.DateOfBirth != nil,
		p.Gender != "",
		p.City != "",
		p.Bio != "",
		p.AvatarURL != "",

		// Физические параметры
		p.HeightCm != nil,
		p.WeightKg != nil,
		p.EyeColor != "",
		p.HairColor != "",

		// Профессиональные данные
		len(p.Skills) > 0,
		len(p.Languages) > 0,
		len(p.Categories) > 0,

		// Портфолио
		portfolioItems > 0,
	}

	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}
	return done * 100 / completionChecks
}
