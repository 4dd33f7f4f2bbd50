package domain

// Favorite is a row of the legacy /favorites listing.
type Favorite struct {
	Id          int64       `json:"id"`
	EquipmentId EquipmentId `json:"equipment_id"`
	CreatedAt   string      `json:"created_at,omitempty"`
	Equipment   *Equipment  `json:"equipment,omitempty"`
}

// FavoriteSet answers membership questions over a user's favorites listing.
type FavoriteSet map[EquipmentId]struct{}

func NewFavoriteSet(items []Equipment) FavoriteSet {
	set := make(FavoriteSet, len(items))
	for _, item := range items {
		set[item.Id] = struct{}{}
	}
	return set
}

func (s FavoriteSet) Contains(id EquipmentId) bool {
	_, ok := s[id]
	return ok
}
