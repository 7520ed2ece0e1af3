package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrSlugTaken       = errors.New("slug already taken")
)

// ContentRepository - блог, категории, истории успеха и события
type ContentRepository interface {
	// Blog categories
	CreateCategory(db *gorm.DB, c *models.BlogCategory) error
	FindCategory(db *gorm.DB, id string) (*models.BlogCategory, error)
	SaveCategory(db *gorm.DB, c *models.BlogCategory) error
	DeleteCategory(db *gorm.DB, id string) error
	ListCategories(db *gorm.DB) ([]models.BlogCategory, error)

	// Blog posts
	CreatePost(db *gorm.DB, p *models.BlogPost) error
	FindPost(db *gorm.DB, id string) (*models.BlogPost, error)
	FindPublishedPostBySlug(db *gorm.DB, slug string) (*models.BlogPost, error)
	SavePost(db *gorm.DB, p *models.BlogPost) error
	DeletePost(db *gorm.DB, id string) error
	ListPosts(db *gorm.DB, filter ContentFilter) ([]models.BlogPost, int64, error)

	// Success stories
	CreateStory(db *gorm.DB, s *models.SuccessStory) error
	FindStory(db *gorm.DB, id string) (*models.SuccessStory, error)
	FindPublishedStoryBySlug(db *gorm.DB, slug string) (*models.SuccessStory, error)
	SaveStory(db *gorm.DB, s *models.SuccessStory) error
	DeleteStory(db *gorm.DB, id string) error
	ListStories(db *gorm.DB, filter ContentFilter) ([]models.SuccessStory, int64, error)

	// Events
	CreateEvent(db *gorm.DB, e *models.Event) error
	FindEvent(db *gorm.DB, id string) (*models.Event, error)
	FindPublishedEventBySlug(db *gorm.DB, slug string) (*models.Event, error)
	SaveEvent(db *gorm.DB, e *models.Event) error
	DeleteEvent(db *gorm.DB, id string) error
	ListEvents(db *gorm.DB, filter ContentFilter) ([]models.Event, int64, error)

	// SlugExists проверяет занятость slug в таблице модели, исключая excludeID
	SlugExists(db *gorm.DB, model interface{}, slug, excludeID string) (bool, error)
}

// ContentFilter - PublishedOnly для публичных страниц, Search по заголовку
type ContentFilter struct {
	PublishedOnly bool
	CategoryID    string
	Search        string
	Pagination
}

type ContentRepositoryImpl struct{}

func NewContentRepository() ContentRepository {
	return &ContentRepositoryImpl{}
}

// === Общие помощники ===

func createUnique(db *gorm.DB, value interface{}) error {
	if err := db.Create(value).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func saveUnique(db *gorm.DB, value interface{}, omit ...string) error {
	query := db
	if len(omit) > 0 {
		query = query.Omit(omit...)
	}
	if err := query.Save(value).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrSlugTaken
		}
		return err
	}
	return nil
}

func findBy[T any](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var item T
	if err := db.Where(query, args...).First(&item).Error; err != nil {
		return nil, mapNotFound(err, ErrContentNotFound)
	}
	return &item, nil
}

func deleteByID[T any](db *gorm.DB, id string) error {
	var item T
	result := db.Delete(&item, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

// listContent - опубликованные и избранные сначала, затем свежие
func listContent[T any](db *gorm.DB, filter ContentFilter, preload ...string) ([]T, int64, error) {
	var model T
	query := db.Model(&model).Scopes(searchScope(filter.Search, "title"))
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, p := range preload {
		query = query.Preload(p)
	}

	var items []T
	err := query.Order("is_featured DESC, published_at DESC, created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&items).Error
	return items, total, err
}

// === Blog categories ===

func (r *ContentRepositoryImpl) CreateCategory(db *gorm.DB, c *models.BlogCategory) error {
	return createUnique(db, c)
}

func (r *ContentRepositoryImpl) FindCategory(db *gorm.DB, id string) (*models.BlogCategory, error) {
	return findBy[models.BlogCategory](db, "id = ?", id)
}

func (r *ContentRepositoryImpl) SaveCategory(db *gorm.DB, c *models.BlogCategory) error {
	return saveUnique(db, c)
}

// DeleteCategory отвязывает посты от категории, сами посты остаются
func (r *ContentRepositoryImpl) DeleteCategory(db *gorm.DB, id string) error {
	if err := db.Model(&models.BlogPost{}).Where("category_id = ?", id).
		UpdateColumn("category_id", nil).Error; err != nil {
		return err
	}
	return deleteByID[models.BlogCategory](db, id)
}

func (r *ContentRepositoryImpl) ListCategories(db *gorm.DB) ([]models.BlogCategory, error) {
	var cats []models.BlogCategory
	err := db.Order("name ASC").Find(&cats).Error
	return cats, err
}

// === Blog posts ===

func (r *ContentRepositoryImpl) CreatePost(db *gorm.DB, p *models.BlogPost) error {
	return createUnique(db.Omit("Category"), p)
}

func (r *ContentRepositoryImpl) FindPost(db *gorm.DB, id string) (*models.BlogPost, error) {
	return findBy[models.BlogPost](db.Preload("Category"), "id = ?", id)
}

func (r *ContentRepositoryImpl) FindPublishedPostBySlug(db *gorm.DB, slug string) (*models.BlogPost, error) {
	return findBy[models.BlogPost](db.Preload("Category"), "slug = ? AND is_published = ?", slug, true)
}

func (r *ContentRepositoryImpl) SavePost(db *gorm.DB, p *models.BlogPost) error {
	return saveUnique(db, p, "Category")
}

func (r *ContentRepositoryImpl) DeletePost(db *gorm.DB, id string) error {
	return deleteByID[models.BlogPost](db, id)
}

func (r *ContentRepositoryImpl) ListPosts(db *gorm.DB, filter ContentFilter) ([]models.BlogPost, int64, error) {
	return listContent[models.BlogPost](db, filter, "Category")
}

// === Success stories ===

func (r *ContentRepositoryImpl) CreateStory(db *gorm.DB, s *models.SuccessStory) error {
	return createUnique(db, s)
}

func (r *ContentRepositoryImpl) FindStory(db *gorm.DB, id string) (*models.SuccessStory, error) {
	return findBy[models.SuccessStory](db, "id = ?", id)
}

func (r *ContentRepositoryImpl) FindPublishedStoryBySlug(db *gorm.DB, slug string) (*models.SuccessStory, error) {
	return findBy[models.SuccessStory](db, "slug = ? AND is_published = ?", slug, true)
}

func (r *ContentRepositoryImpl) SaveStory(db *gorm.DB, s *models.SuccessStory) error {
	return saveUnique(db, s)
}

func (r *ContentRepositoryImpl) DeleteStory(db *gorm.DB, id string) error {
	return deleteByID[models.SuccessStory](db, id)
}

func (r *ContentRepositoryImpl) ListStories(db *gorm.DB, filter ContentFilter) ([]models.SuccessStory, int64, error) {
	filter.CategoryID = ""
	return listContent[models.SuccessStory](db, filter)
}

// === Events ===

func (r *ContentRepositoryImpl) CreateEvent(db *gorm.DB, e *models.Event) error {
	return createUnique(db, e)
}

func (r *ContentRepositoryImpl) FindEvent(db *gorm.DB, id string) (*models.Event, error) {
	return findBy[models.Event](db, "id = ?", id)
}

func (r *ContentRepositoryImpl) FindPublishedEventBySlug(db *gorm.DB, slug string) (*models.Event, error) {
	return findBy[models.Event](db, "slug = ? AND is_published = ?", slug, true)
}

func (r *ContentRepositoryImpl) SaveEvent(db *gorm.DB, e *models.Event) error {
	return saveUnique(db, e)
}

func (r *ContentRepositoryImpl) DeleteEvent(db *gorm.DB, id string) error {
	return deleteByID[models.Event](db, id)
}

func (r *ContentRepositoryImpl) ListEvents(db *gorm.DB, filter ContentFilter) ([]models.Event, int64, error) {
	filter.CategoryID = ""
	return listContent[models.Event](db, filter)
}

func (r *ContentRepositoryImpl) SlugExists(db *gorm.DB, model interface{}, slug, excludeID string) (bool, error) {
	query := db.Model(model).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
