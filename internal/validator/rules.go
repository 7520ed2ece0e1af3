package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// registerCustomRules регистрирует кастомные правила в экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правила приложение стартовать не должно
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// ===  Правила на основе statuses.go ===
	mustRegister("is-user-role", enumRule(models.UserRole.IsValid))
	mustRegister("is-job-status", enumRule(models.JobStatus.IsValid))
	mustRegister("is-application-status", enumRule(models.ApplicationStatus.IsValid))
	mustRegister("is-payout-status", enumRule(models.PayoutStatus.IsValid))
	mustRegister("is-verification-status", enumRule(models.VerificationStatus.IsValid))
	mustRegister("is-ticket-status", enumRule(models.TicketStatus.IsValid))
	mustRegister("is-ticket-priority", enumRule(models.TicketPriority.IsValid))
	mustRegister("is-audience", enumRule(models.Audience.IsValid))
	mustRegister("is-transaction-type", enumRule(models.TransactionType.IsValid))
	mustRegister("is-transaction-status", enumRule(models.TransactionStatus.IsValid))
	mustRegister("is-portfolio-kind", enumRule(models.PortfolioKind.IsValid))

	// === Прочие правила ===
	mustRegister("is-gender", validateGender)
	mustRegister("is-slug", validateSlug)
}

// enumRule превращает метод IsValid строкового enum в правило валидатора.
// Пустое значение пропускается, для этого есть 'required'.
func enumRule[T ~string](isValid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return isValid(T(value))
	}
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch strings.ToLower(value) {
	case "male", "female", "non_binary", "other", "any":
		return true
	default:
		return false
	}
}

func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for i, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' && i > 0 && i < len(value)-1:
		default:
			return false
		}
	}
	return true
}
