package branddb

import "errors"

var ErrBrandNotFound = errors.New("brand not found")
