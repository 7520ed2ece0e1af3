package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Pagination - страница и размер страницы, как их разбирает handlers.ParsePagination
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.limit()
}

func (p Pagination) limit() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// paginate - scope для Find после Count
func paginate(p Pagination) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.offset()).Limit(p.limit())
	}
}

// likeOp - ILIKE в postgres, LIKE (и так регистронезависимый для ASCII) в остальных
func likeOp(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// searchScope ищет подстроку в любом из столбцов
func searchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		op := likeOp(db)
		pattern := "%" + term + "%"

		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, c+" "+op+" ?")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// jsonArrayContains ищет значение в JSON-массиве строк по его текстовому представлению
func jsonArrayContains(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		expr := column
		if db.Dialector.Name() == "postgres" {
			expr = column + "::text"
		}
		return db.Where(expr+" "+likeOp(db)+" ?", `%"`+value+`"%`)
	}
}

// ErrAlreadyResolved - заявка уже не в статусе PENDING
var ErrAlreadyResolved = errors.New("request already resolved")

// mapNotFound заменяет gorm.ErrRecordNotFound на доменную ошибку репозитория
func mapNotFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// IsDuplicateKey - нарушение уникального индекса (нужен gorm.Config{TranslateError: true})
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
