package dto

// ListResponse - страница списка и общее количество записей
type ListResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewListResponse[T any](items []T, total int64, page, pageSize int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}
	return &ListResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
}

// PageQuery - page/page_size из query string
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ReasonRequest - тело для отклонения: причина обязательна
type ReasonRequest struct {
	Reason string `json:"reason" form:"reason"`
}
