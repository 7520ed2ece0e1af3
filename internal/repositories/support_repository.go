package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrTicketNotFound       = errors.New("support ticket not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

type SupportRepository interface {
	// Tickets
	CreateTicket(db *gorm.DB, ticket *models.SupportTicket) error
	FindTicketByID(db *gorm.DB, id string) (*models.SupportTicket, error)
	UpdateTicket(db *gorm.DB, id string, updates map[string]interface{}) error
	ListUserTickets(db *gorm.DB, userID string) ([]models.SupportTicket, error)
	ListTickets(db *gorm.DB, filter TicketFilter) ([]models.SupportTicket, int64, error)
	CountOpenTickets(db *gorm.DB) (int64, error)
	DeleteTicketsByUser(db *gorm.DB, userID string) error

	// Announcements
	CreateAnnouncement(db *gorm.DB, a *models.Announcement) error
	UpdateDeliveryCounts(db *gorm.DB, id string, sent, failed int) error
	ListAnnouncements(db *gorm.DB, p Pagination) ([]models.Announcement, int64, error)
	ListAnnouncementsFor(db *gorm.DB, audience models.Audience, limit int) ([]models.Announcement, error)
}

type TicketFilter struct {
	Status   models.TicketStatus
	Priority models.TicketPriority
	Pagination
}

type SupportRepositoryImpl struct{}

func NewSupportRepository() SupportRepository {
	return &SupportRepositoryImpl{}
}

// === Tickets ===

func (r *SupportRepositoryImpl) CreateTicket(db *gorm.DB, ticket *models.SupportTicket) error {
	return db.Omit("User").Create(ticket).Error
}

func (r *SupportRepositoryImpl) FindTicketByID(db *gorm.DB, id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := db.Preload("User").First(&ticket, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrTicketNotFound)
	}
	return &ticket, nil
}

func (r *SupportRepositoryImpl) UpdateTicket(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.SupportTicket{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (r *SupportRepositoryImpl) ListUserTickets(db *gorm.DB, userID string) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *SupportRepositoryImpl) ListTickets(db *gorm.DB, filter TicketFilter) ([]models.SupportTicket, int64, error) {
	query := db.Model(&models.SupportTicket{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []models.SupportTicket
	err := query.Preload("User").Order("created_at DESC").Scopes(paginate(filter.Pagination)).Find(&tickets).Error
	return tickets, total, err
}

// CountOpenTickets - всё, что еще не RESOLVED и не CLOSED
func (r *SupportRepositoryImpl) CountOpenTickets(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.SupportTicket{}).
		Where("status IN ?", []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress}).
		Count(&count).Error
	return count, err
}

func (r *SupportRepositoryImpl) DeleteTicketsByUser(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.SupportTicket{}).Error
}

// === Announcements ===

func (r *SupportRepositoryImpl) CreateAnnouncement(db *gorm.DB, a *models.Announcement) error {
	return db.Create(a).Error
}

func (r *SupportRepositoryImpl) UpdateDeliveryCounts(db *gorm.DB, id string, sent, failed int) error {
	return db.Model(&models.Announcement{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"emails_sent": sent, "emails_failed": failed}).Error
}

func (r *SupportRepositoryImpl) ListAnnouncements(db *gorm.DB, p Pagination) ([]models.Announcement, int64, error) {
	query := db.Model(&models.Announcement{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Announcement
	err := query.Order("created_at DESC").Scopes(paginate(p)).Find(&items).Error
	return items, total, err
}

// ListAnnouncementsFor - объявления для ALL и для конкретной аудитории
func (r *SupportRepositoryImpl) ListAnnouncementsFor(db *gorm.DB, audience models.Audience, limit int) ([]models.Announcement, error) {
	audiences := []models.Audience{models.AudienceAll}
	if audience != "" && audience != models.AudienceAll {
		audiences = append(audiences, audience)
	}

	var items []models.Announcement
	query := db.Where("audience IN ?", audiences).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&items).Error
	return items, err
}
