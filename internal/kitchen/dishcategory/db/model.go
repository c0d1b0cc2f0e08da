package dishcategorydb

import "errors"

var ErrDishCategoryNotFound = errors.New("dish category not found")
