package domain

// Category groups link items under a titled, emoji-tagged card
type Category struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Emoji    string `json:"emoji"`
	Items    []Item `json:"items"`
}

// Item is a single link entry belonging to one category.
// Position is a zero-based rank unique within the category.
type Item struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Tag         string `json:"tag,omitempty"`
	IsPopular   bool   `json:"isPopular"`
	Position    int    `json:"position"`
}

// ItemFields are the mutable item attributes supplied on create/update
type ItemFields struct {
	Title       string
	Description string
	URL         string
	Tag         string
	IsPopular   bool
}

// ItemPosition is one entry of a bulk reorder request
type ItemPosition struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// User is the single admin account
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
