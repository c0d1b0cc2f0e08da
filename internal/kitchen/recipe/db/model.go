package recipedb

import "errors"

var ErrRecipeNotFound = errors.New("recipe not found")

const ProductForeignKey = "recipes_product_id_fkey"
