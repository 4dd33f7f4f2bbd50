package domain

type Category struct {
	Id          CategoryId `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ItemCount   int        `json:"item_count,omitempty"`
}

// Equipment is a bookable item as the frontend sees it. ImageURL is always
// an absolute path or a full URL once it went through the API client.
type Equipment struct {
	Id             EquipmentId     `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
	Requirements   string          `json:"requirements,omitempty"`
	Status         EquipmentStatus `json:"status,omitempty"`
	IsAvailable    bool            `json:"is_available"`
	CategoryId     CategoryId      `json:"category_id,omitempty"`
	CategoryName   string          `json:"category_name,omitempty"`
	ImageURL       string          `json:"image_url"`
	ImageAlt       string          `json:"image_alt"`
	FavoritesCount int             `json:"favorites_count,omitempty"`
}

// EquipmentPage is the canonical paginated list. All five fields are set
// regardless of how the backend shaped its response.
type EquipmentPage struct {
	Items       []Equipment `json:"items"`
	Total       int         `json:"total"`
	Pages       int         `json:"pages"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
}

type Availability struct {
	Available bool   `json:"available"`
	NextFree  string `json:"next_free,omitempty"`
	Error     string `json:"error,omitempty"`
}
