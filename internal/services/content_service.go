package services

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/utils"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// ContentService - блог, истории успеха и события. Публичные методы
// отдают только опубликованное.
type ContentService interface {
	// Categories
	CreateCategory(db *gorm.DB, req *dto.CategoryRequest) (*models.BlogCategory, error)
	UpdateCategory(db *gorm.DB, id string, req *dto.CategoryRequest) (*models.BlogCategory, error)
	DeleteCategory(db *gorm.DB, id string) error
	ListCategories(db *gorm.DB) ([]models.BlogCategory, error)

	// Blog posts
	CreatePost(db *gorm.DB, authorID string, req *dto.BlogPostRequest) (*models.BlogPost, error)
	UpdatePost(db *gorm.DB, id string, req *dto.BlogPostRequest) (*models.BlogPost, error)
	DeletePost(db *gorm.DB, id string) error
	GetPost(db *gorm.DB, id string) (*models.BlogPost, error)
	ListPosts(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.BlogPost], error)
	GetPublishedPost(db *gorm.DB, slug string) (*models.BlogPost, error)

	// Success stories
	CreateStory(db *gorm.DB, req *dto.SuccessStoryRequest) (*models.SuccessStory, error)
	UpdateStory(db *gorm.DB, id string, req *dto.SuccessStoryRequest) (*models.SuccessStory, error)
	DeleteStory(db *gorm.DB, id string) error
	GetStory(db *gorm.DB, id string) (*models.SuccessStory, error)
	ListStories(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.SuccessStory], error)
	GetPublishedStory(db *gorm.DB, slug string) (*models.SuccessStory, error)

	// Events
	CreateEvent(db *gorm.DB, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(db *gorm.DB, id string, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(db *gorm.DB, id string) error
	GetEvent(db *gorm.DB, id string) (*models.Event, error)
	ListEvents(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.Event], error)
	GetPublishedEvent(db *gorm.DB, slug string) (*models.Event, error)
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
}

func NewContentService(contentRepo repositories.ContentRepository) ContentService {
	return &ContentServiceImpl{contentRepo: contentRepo}
}

// resolveSlug - явный slug или slug из заголовка; занятый slug - ошибка
func (s *ContentServiceImpl) resolveSlug(db *gorm.DB, model interface{}, slug, title, excludeID string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	if slug == "" {
		return "", apperrors.ValidationError(map[string]string{"slug": "Cannot derive slug from title"})
	}

	taken, err := s.contentRepo.SlugExists(db, model, slug, excludeID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if taken {
		return "", apperrors.ErrSlugTaken
	}
	return slug, nil
}

// publishedAt сохраняет дату первой публикации
func publishedAt(current *time.Time, published bool) *time.Time {
	if current != nil || !published {
		return current
	}
	now := time.Now()
	return &now
}

func contentFilter(query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) repositories.ContentFilter {
	return repositories.ContentFilter{
		PublishedOnly: publishedOnly,
		CategoryID:    query.CategoryID,
		Search:        query.Search,
		Pagination:    repositories.Pagination{Page: page, PageSize: pageSize},
	}
}

// === Categories ===

func (s *ContentServiceImpl) CreateCategory(db *gorm.DB, req *dto.CategoryRequest) (*models.BlogCategory, error) {
	slug, err := s.resolveSlug(db, &models.BlogCategory{}, req.Slug, req.Name, "")
	if err != nil {
		return nil, err
	}
	c := &models.BlogCategory{
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.contentRepo.CreateCategory(db, c); err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (s *ContentServiceImpl) UpdateCategory(db *gorm.DB, id string, req *dto.CategoryRequest) (*models.BlogCategory, error) {
	c, err := s.contentRepo.FindCategory(db, id)
	if err != nil {
		return nil, mapError(err)
	}
	slug, err := s.resolveSlug(db, &models.BlogCategory{}, req.Slug, req.Name, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(req.Name)
	c.Slug = slug
	c.Description = strings.TrimSpace(req.Description)
	if err := s.contentRepo.SaveCategory(db, c); err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (s *ContentServiceImpl) DeleteCategory(db *gorm.DB, id string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return s.contentRepo.DeleteCategory(tx, id)
	})
	return mapError(err)
}

func (s *ContentServiceImpl) ListCategories(db *gorm.DB) ([]models.BlogCategory, error) {
	cats, err := s.contentRepo.ListCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orEmpty(cats), nil
}

// === Blog posts ===

func (s *ContentServiceImpl) CreatePost(db *gorm.DB, authorID string, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	slug, err := s.resolveSlug(db, &models.BlogPost{}, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}
	post := &models.BlogPost{AuthorID: authorID, Slug: slug}
	if err := s.applyPost(db, post, req); err != nil {
		return nil, err
	}
	if err := s.contentRepo.CreatePost(db, post); err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "blog post created", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

func (s *ContentServiceImpl) UpdatePost(db *gorm.DB, id string, req *dto.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.contentRepo.FindPost(db, id)
	if err != nil {
		return nil, mapError(err)
	}
	if post.Slug, err = s.resolveSlug(db, &models.BlogPost{}, req.Slug, req.Title, id); err != nil {
		return nil, err
	}
	if err := s.applyPost(db, post, req); err != nil {
		return nil, err
	}
	if err := s.contentRepo.SavePost(db, post); err != nil {
		return nil, mapError(err)
	}
	return s.GetPost(db, id)
}

func (s *ContentServiceImpl) applyPost(db *gorm.DB, post *models.BlogPost, req *dto.BlogPostRequest) error {
	post.CategoryID = nil
	post.Category = nil
	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		categoryID := strings.TrimSpace(*req.CategoryID)
		if _, err := s.contentRepo.FindCategory(db, categoryID); err != nil {
			return mapError(err)
		}
		post.CategoryID = &categoryID
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.CoverImageURL = strings.TrimSpace(req.CoverImageURL)
	post.Tags = datatypes.JSONSlice[string](cleanList(req.Tags))
	post.IsPublished = req.IsPublished
	post.IsFeatured = req.IsFeatured
	post.PublishedAt = publishedAt(post.PublishedAt, req.IsPublished)
	return nil
}

func (s *ContentServiceImpl) DeletePost(db *gorm.DB, id string) error {
	return mapError(s.contentRepo.DeletePost(db, id))
}

func (s *ContentServiceImpl) GetPost(db *gorm.DB, id string) (*models.BlogPost, error) {
	post, err := s.contentRepo.FindPost(db, id)
	return post, mapError(err)
}

func (s *ContentServiceImpl) ListPosts(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.BlogPost], error) {
	posts, total, err := s.contentRepo.ListPosts(db, contentFilter(query, publishedOnly, page, pageSize))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(posts, total, page, pageSize), nil
}

func (s *ContentServiceImpl) GetPublishedPost(db *gorm.DB, slug string) (*models.BlogPost, error) {
	post, err := s.contentRepo.FindPublishedPostBySlug(db, slug)
	return post, mapError(err)
}

// === Success stories ===

func (s *ContentServiceImpl) CreateStory(db *gorm.DB, req *dto.SuccessStoryRequest) (*models.SuccessStory, error) {
	slug, err := s.resolveSlug(db, &models.SuccessStory{}, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}
	story := &models.SuccessStory{Slug: slug}
	applyStory(story, req)
	if err := s.contentRepo.CreateStory(db, story); err != nil {
		return nil, mapError(err)
	}
	return story, nil
}

func (s *ContentServiceImpl) UpdateStory(db *gorm.DB, id string, req *dto.SuccessStoryRequest) (*models.SuccessStory, error) {
	story, err := s.contentRepo.FindStory(db, id)
	if err != nil {
		return nil, mapError(err)
	}
	if story.Slug, err = s.resolveSlug(db, &models.SuccessStory{}, req.Slug, req.Title, id); err != nil {
		return nil, err
	}
	applyStory(story, req)
	if err := s.contentRepo.SaveStory(db, story); err != nil {
		return nil, mapError(err)
	}
	return story, nil
}

func applyStory(story *models.SuccessStory, req *dto.SuccessStoryRequest) {
	story.Title = strings.TrimSpace(req.Title)
	story.TalentName = strings.TrimSpace(req.TalentName)
	story.Summary = strings.TrimSpace(req.Summary)
	story.Content = req.Content
	story.ImageURL = strings.TrimSpace(req.ImageURL)
	story.IsPublished = req.IsPublished
	story.IsFeatured = req.IsFeatured
	story.PublishedAt = publishedAt(story.PublishedAt, req.IsPublished)
}

func (s *ContentServiceImpl) DeleteStory(db *gorm.DB, id string) error {
	return mapError(s.contentRepo.DeleteStory(db, id))
}

func (s *ContentServiceImpl) GetStory(db *gorm.DB, id string) (*models.SuccessStory, error) {
	story, err := s.contentRepo.FindStory(db, id)
	return story, mapError(err)
}

func (s *ContentServiceImpl) ListStories(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.SuccessStory], error) {
	stories, total, err := s.contentRepo.ListStories(db, contentFilter(query, publishedOnly, page, pageSize))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(stories, total, page, pageSize), nil
}

func (s *ContentServiceImpl) GetPublishedStory(db *gorm.DB, slug string) (*models.SuccessStory, error) {
	story, err := s.contentRepo.FindPublishedStoryBySlug(db, slug)
	return story, mapError(err)
}

// === Events ===

func (s *ContentServiceImpl) CreateEvent(db *gorm.DB, req *dto.EventRequest) (*models.Event, error) {
	if err := validateEventDates(req); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(db, &models.Event{}, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}
	event := &models.Event{Slug: slug}
	applyEvent(event, req)
	if err := s.contentRepo.CreateEvent(db, event); err != nil {
		return nil, mapError(err)
	}
	return event, nil
}

func (s *ContentServiceImpl) UpdateEvent(db *gorm.DB, id string, req *dto.EventRequest) (*models.Event, error) {
	if err := validateEventDates(req); err != nil {
		return nil, err
	}
	event, err := s.contentRepo.FindEvent(db, id)
	if err != nil {
		return nil, mapError(err)
	}
	if event.Slug, err = s.resolveSlug(db, &models.Event{}, req.Slug, req.Title, id); err != nil {
		return nil, err
	}
	applyEvent(event, req)
	if err := s.contentRepo.SaveEvent(db, event); err != nil {
		return nil, mapError(err)
	}
	return event, nil
}

func validateEventDates(req *dto.EventRequest) error {
	if req.EndsAt != nil && req.EndsAt.Before(req.StartsAt) {
		return apperrors.ValidationError(map[string]string{"ends_at": "Must not be before starts_at"})
	}
	return nil
}

func applyEvent(event *models.Event, req *dto.EventRequest) {
	event.Title = strings.TrimSpace(req.Title)
	event.Description = req.Description
	event.Location = strings.TrimSpace(req.Location)
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	event.ImageURL = strings.TrimSpace(req.ImageURL)
	event.RegistrationURL = strings.TrimSpace(req.RegistrationURL)
	event.IsPublished = req.IsPublished
	event.IsFeatured = req.IsFeatured
	event.PublishedAt = publishedAt(event.PublishedAt, req.IsPublished)
}

func (s *ContentServiceImpl) DeleteEvent(db *gorm.DB, id string) error {
	return mapError(s.contentRepo.DeleteEvent(db, id))
}

func (s *ContentServiceImpl) GetEvent(db *gorm.DB, id string) (*models.Event, error) {
	event, err := s.contentRepo.FindEvent(db, id)
	return event, mapError(err)
}

func (s *ContentServiceImpl) ListEvents(db *gorm.DB, query *dto.ContentListQuery, publishedOnly bool, page, pageSize int) (*dto.ListResponse[models.Event], error) {
	events, total, err := s.contentRepo.ListEvents(db, contentFilter(query, publishedOnly, page, pageSize))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(events, total, page, pageSize), nil
}

func (s *ContentServiceImpl) GetPublishedEvent(db *gorm.DB, slug string) (*models.Event, error) {
	event, err := s.contentRepo.FindPublishedEventBySlug(db, slug)
	return event, mapError(err)
}
