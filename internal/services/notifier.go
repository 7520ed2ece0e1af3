package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
)

// TemplatePicker выбирает шаблон письма из набора настроек
type TemplatePicker func(models.EmailTemplates) models.EmailTemplate

// Notifier рендерит шаблоны из SystemSettings и отправляет письма через Provider
type Notifier struct {
	provider     email.Provider
	settingsRepo repositories.SettingsRepository
}

func NewNotifier(provider email.Provider, settingsRepo repositories.SettingsRepository) *Notifier {
	return &Notifier{provider: provider, settingsRepo: settingsRepo}
}

// contextOf - контекст запроса, который DBMiddleware кладет в *gorm.DB
func contextOf(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}

// SendAll отправляет письмо каждому получателю отдельно и считает результат.
// Ошибка возвращается только если не удалось прочитать настройки.
func (n *Notifier) SendAll(db *gorm.DB, users []models.User, pick TemplatePicker, data email.TemplateData) (sent, failed int, err error) {
	if n == nil || n.provider == nil {
		return 0, 0, nil
	}
	ctx := contextOf(db)

	settings, err := n.settingsRepo.Get(db)
	if err != nil {
		return 0, 0, err
	}
	tpl := pick(settings.EmailTemplates.Data().WithDefaults())

	for i := range users {
		if sendErr := n.send(ctx, &users[i], tpl, settings.SiteName, data); sendErr != nil {
			failed++
			logger.CtxWithError(ctx, "failed to send email", sendErr, "to", users[i].Email)
			continue
		}
		sent++
	}
	return sent, failed, nil
}

// Notify - письмо одному пользователю, ошибки только логируются.
// Вызывать после коммита транзакции.
func (n *Notifier) Notify(db *gorm.DB, user *models.User, pick TemplatePicker, data email.TemplateData) {
	if n == nil || n.provider == nil || user == nil {
		return
	}
	if _, _, err := n.SendAll(db, []models.User{*user}, pick, data); err != nil {
		logger.CtxWithError(contextOf(db), "failed to load email templates", err)
	}
}

func (n *Notifier) send(ctx context.Context, user *models.User, tpl models.EmailTemplate, siteName string, data email.TemplateData) error {
	vars := email.TemplateData{"Name": user.Name, "Email": user.Email, "SiteName": siteName}
	for k, v := range data {
		vars[k] = v
	}

	msg, err := email.Render(tpl, vars)
	if err != nil {
		return err
	}
	msg.To = []string{user.Email}
	return n.provider.Send(ctx, msg)
}

// Выбор шаблонов

func welcomeTemplate(t models.EmailTemplates) models.EmailTemplate { return t.Welcome }

func applicationStatusTemplate(t models.EmailTemplates) models.EmailTemplate {
	return t.ApplicationStatus
}

func payoutApprovedTemplate(t models.EmailTemplates) models.EmailTemplate { return t.PayoutApproved }

func payoutRejectedTemplate(t models.EmailTemplates) models.EmailTemplate { return t.PayoutRejected }

func verificationApprovedTemplate(t models.EmailTemplates) models.EmailTemplate {
	return t.VerificationApproved
}

func verificationRejectedTemplate(t models.EmailTemplates) models.EmailTemplate {
	return t.VerificationRejected
}

func announcementTemplate(t models.EmailTemplates) models.EmailTemplate { return t.Announcement }
