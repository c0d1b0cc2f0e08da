package searchhandler

import "github.com/xw1nchester/foodcatalog-backend/internal/search"

const noQueryMessage = "No query provided"

type SearchResponse struct {
	Results []search.Result `json:"results"`
	Message string          `json:"message,omitempty"`
}
