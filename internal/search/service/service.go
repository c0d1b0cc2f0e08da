package searchservice

import (
	"context"
	"strings"

	"github.com/xw1nchester/foodcatalog-backend/internal/apperror"
	"github.com/xw1nchester/foodcatalog-backend/internal/search"
	"go.uber.org/zap"
)

const limit = 10

var ErrUnknownCategory = apperror.NewAppError("category should be one of: brand, product, recipe")

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocksearchservice
type Repository interface {
	SearchBrands(ctx context.Context, pattern string, limit int) ([]search.Result, error)
	SearchProducts(ctx context.Context, pattern string, limit int) ([]search.Result, error)
	SearchRecipes(ctx context.Context, pattern string, limit int) ([]search.Result, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern builds a substring pattern for ILIKE with the wildcards of
// query escaped.
func LikePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// Search returns at most ten matches of query in category. An empty query
// yields no results and never reaches the database.
func (s *service) Search(ctx context.Context, query string, category search.Category) ([]search.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []search.Result{}, nil
	}

	pattern := LikePattern(query)

	var (
		results []search.Result
		err     error
	)

	switch category {
	case search.CategoryBrand:
		results, err = s.repository.SearchBrands(ctx, pattern, limit)
	case search.CategoryProduct:
		results, err = s.repository.SearchProducts(ctx, pattern, limit)
	case search.CategoryRecipe:
		results, err = s.repository.SearchRecipes(ctx, pattern, limit)
	default:
		return nil, ErrUnknownCategory
	}

	if err != nil {
		s.logger.Error(
			"unexpected error when searching",
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return nil, err
	}

	return results, nil
}
