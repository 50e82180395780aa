package domain

// Item is a catalog entry resolvable by name
type Item struct {
	ID       int    `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Emoji    string `json:"emoji,omitempty"`
}
