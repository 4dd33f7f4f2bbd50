package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/equipbook/equipbook/shared/api"
	"github.com/equipbook/equipbook/shared/domain"
	"github.com/equipbook/equipbook/shared/errors"
)

// === Equipment Methods ===

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func setPositive(query url.Values, key string, value int) {
	if value > 0 {
		query.Set(key, strconv.Itoa(value))
	}
}

func setNonEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func filterQuery(filter api.EquipmentFilter) url.Values {
	query := url.Values{}
	setNonEmpty(query, "category", filter.Category)
	setNonEmpty(query, "status", filter.Status)
	setNonEmpty(query, "search", filter.Search)
	setPositive(query, "page", filter.Page)
	setPositive(query, "per_page", filter.PerPage)
	return query
}

func (c *APIClient) equipmentPage(r *http.Request, op, path string) domain.EquipmentPage {
	var raw json.RawMessage
	if !c.read(r, op, path, &raw) {
		return c.Normalizer.EmptyPage()
	}
	page, err := c.Normalizer.Page(raw)
	if err != nil {
		c.fallback(op, errors.NewFailure(op, errors.ErrParse, err, "unexpected equipment list shape", http.StatusOK))
		return c.Normalizer.EmptyPage()
	}
	return page
}

func (c *APIClient) equipmentList(r *http.Request, op, path string) []domain.Equipment {
	var raw json.RawMessage
	if !c.read(r, op, path, &raw) {
		return []domain.Equipment{}
	}
	// some endpoints answer with a page object instead of a bare array
	page, err := c.Normalizer.Page(raw)
	if err != nil {
		c.fallback(op, errors.NewFailure(op, errors.ErrParse, err, "unexpected equipment list shape", http.StatusOK))
		return []domain.Equipment{}
	}
	return page.Items
}

// GetAllEquipment lists equipment. page and perPage are omitted when zero.
func (c *APIClient) GetAllEquipment(r *http.Request, page, perPage int) domain.EquipmentPage {
	query := url.Values{}
	setPositive(query, "page", page)
	setPositive(query, "per_page", perPage)
	return c.equipmentPage(r, "GetAllEquipment", withQuery("/equipment", query))
}

// FilterEquipment lists equipment matching filter.
func (c *APIClient) FilterEquipment(r *http.Request, filter api.EquipmentFilter) domain.EquipmentPage {
	return c.equipmentPage(r, "FilterEquipment", withQuery("/equipment/filter", filterQuery(filter)))
}

// SearchEquipment returns only the items of a free-text filter call.
func (c *APIClient) SearchEquipment(r *http.Request, search string) []domain.Equipment {
	path := withQuery("/equipment/filter", filterQuery(api.EquipmentFilter{Search: search}))
	return c.equipmentPage(r, "SearchEquipment", path).Items
}

// GetEquipmentByID returns nil when the item cannot be loaded.
func (c *APIClient) GetEquipmentByID(r *http.Request, id domain.EquipmentId) *domain.Equipment {
	const op = "GetEquipmentByID"
	var raw json.RawMessage
	if !c.read(r, op, fmt.Sprintf("/equipment/%d", id), &raw) {
		return nil
	}
	item, err := c.Normalizer.Item(raw)
	if err != nil {
		c.fallback(op, errors.NewFailure(op, errors.ErrParse, err, "unexpected equipment shape", http.StatusOK))
		return nil
	}
	return &item
}

func (c *APIClient) GetCategories(r *http.Request) []domain.Category {
	var categories []domain.Category
	if !c.read(r, "GetCategories", "/categories", &categories) || categories == nil {
		return []domain.Category{}
	}
	return categories
}

// CheckAvailability reports an item as unavailable when the check fails.
func (c *APIClient) CheckAvailability(r *http.Request, id domain.EquipmentId) domain.Availability {
	const op = "CheckAvailability"
	var availability domain.Availability
	path := fmt.Sprintf("/equipment/%d/availability", id)
	if err := c.call(r, op, http.MethodGet, path, nil, &availability, "failed to check availability"); err != nil {
		c.fallback(op, err)
		return domain.Availability{Available: false, Error: err.Error()}
	}
	return availability
}

// GetPopularEquipment returns the most favorited items. limit <= 0 uses the
// configured default.
func (c *APIClient) GetPopularEquipment(r *http.Request, limit int) []domain.Equipment {
	if limit <= 0 {
		limit = c.PopularLimit
	}
	query := url.Values{}
	setPositive(query, "limit", limit)
	return c.equipmentList(r, "GetPopularEquipment", withQuery("/equipment/popular", query))
}

func (c *APIClient) GetRecommendations(r *http.Request) []domain.Equipment {
	return c.equipmentList(r, "GetRecommendations", "/user/recommendations")
}
