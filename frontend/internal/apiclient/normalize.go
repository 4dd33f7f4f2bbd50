package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/equipbook/equipbook/shared/domain"
)

// Normalizer turns the backend's equipment payloads, which come in several
// shapes depending on the endpoint and backend version, into domain values.
type Normalizer struct {
	PlaceholderImage string
	EquipmentDir     string
	DefaultPerPage   int
}

var DefaultNormalizer = Normalizer{
	PlaceholderImage: "/static/images/placeholder.jpg",
	EquipmentDir:     "/static/images/equipment",
	DefaultPerPage:   12,
}

const defaultImageAlt = "Equipment"

// EmptyPage is the list fallback: no items, zero pages, first page.
func (n Normalizer) EmptyPage() domain.EquipmentPage {
	return domain.EquipmentPage{
		Items:       []domain.Equipment{},
		Total:       0,
		Pages:       0,
		CurrentPage: 1,
		PerPage:     n.DefaultPerPage,
	}
}

// ImagePath resolves an image reference to something a browser can load:
// empty becomes the placeholder, a bare file name is put under the equipment
// image directory, absolute paths and URLs are kept.
func (n Normalizer) ImagePath(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return n.PlaceholderImage
	}
	if strings.HasPrefix(image, "http") || strings.HasPrefix(image, "/") {
		return image
	}
	return strings.TrimRight(n.EquipmentDir, "/") + "/" + image
}

// rawEquipment accepts the image under any of the names backends used.
type rawEquipment struct {
	domain.Equipment
	Image     string `json:"image"`
	ImagePath string `json:"image_path"`
}

func (n Normalizer) item(raw rawEquipment) domain.Equipment {
	item := raw.Equipment
	image := item.ImageURL
	if image == "" {
		image = raw.Image
	}
	if image == "" {
		image = raw.ImagePath
	}
	item.ImageURL = n.ImagePath(image)

	if item.ImageAlt == "" {
		item.ImageAlt = item.Name
	}
	if item.ImageAlt == "" {
		item.ImageAlt = defaultImageAlt
	}
	if item.Status == "" {
		item.Status = "unavailable"
		if item.IsAvailable {
			item.Status = "available"
		}
	}
	return item
}

// Item decodes and normalizes a single equipment object.
func (n Normalizer) Item(data []byte) (domain.Equipment, error) {
	var raw rawEquipment
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Equipment{}, fmt.Errorf("cannot decode equipment: %w", err)
	}
	return n.item(raw), nil
}

// Items decodes and normalizes an array of equipment objects.
func (n Normalizer) Items(data []byte) ([]domain.Equipment, error) {
	var raws []rawEquipment
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("cannot decode equipment list: %w", err)
	}
	items := make([]domain.Equipment, len(raws))
	for i, raw := range raws {
		items[i] = n.item(raw)
	}
	return items, nil
}

// flexInt reads a JSON number or a numeric string. Anything else reads as 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexInt(v)
	}
	return nil
}

type rawPagination struct {
	Total       flexInt `json:"total"`
	Pages       flexInt `json:"pages"`
	TotalPages  flexInt `json:"total_pages"`
	LastPage    flexInt `json:"last_page"`
	CurrentPage flexInt `json:"current_page"`
	PerPage     flexInt `json:"per_page"`
}

type rawPage struct {
	rawPagination
	Items      json.RawMessage `json:"items"`
	Equipment  json.RawMessage `json:"equipment"`
	Data       json.RawMessage `json:"data"`
	Pagination *rawPagination  `json:"pagination"`
	Meta       *rawPagination  `json:"meta"`
}

// firstPositive returns the first value above zero, or def.
func firstPositive(def int, values ...flexInt) int {
	for _, v := range values {
		if v > 0 {
			return int(v)
		}
	}
	return def
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Page normalizes a list response into an EquipmentPage with every field
// set. Accepted shapes: a bare array; an object with the list under "items",
// "equipment" or "data", and pagination at the top level or under
// "pagination" or "meta" ("total_pages" and "last_page" both name the page
// count).
func (n Normalizer) Page(data []byte) (domain.EquipmentPage, error) {
	trimmed := bytes.TrimSpace(data)
	if isArray(trimmed) {
		items, err := n.Items(trimmed)
		if err != nil {
			return n.EmptyPage(), err
		}
		return domain.EquipmentPage{
			Items:       items,
			Total:       len(items),
			Pages:       1,
			CurrentPage: 1,
			PerPage:     n.DefaultPerPage,
		}, nil
	}

	var raw rawPage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return n.EmptyPage(), fmt.Errorf("cannot decode equipment page: %w", err)
	}

	items := []domain.Equipment{}
	for _, list := range []json.RawMessage{raw.Items, raw.Equipment, raw.Data} {
		if !isArray(list) {
			continue
		}
		decoded, err := n.Items(list)
		if err != nil {
			return n.EmptyPage(), err
		}
		items = decoded
		break
	}

	pagination := raw.Pagination
	if pagination == nil {
		pagination = raw.Meta
	}
	if pagination == nil {
		pagination = &rawPagination{}
	}

	return domain.EquipmentPage{
		Items:       items,
		Total:       firstPositive(len(items), raw.Total, pagination.Total),
		Pages:       firstPositive(1, raw.Pages, pagination.Pages, pagination.TotalPages, pagination.LastPage),
		CurrentPage: firstPositive(1, raw.CurrentPage, pagination.CurrentPage),
		PerPage:     firstPositive(n.DefaultPerPage, raw.PerPage, pagination.PerPage),
	}, nil
}
