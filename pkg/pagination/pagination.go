package pagination

// DefaultSize is the number of items per page when the caller sends none.
const DefaultSize = 10

// MaxSize caps the number of items per page.
const MaxSize = 100

// MaxPage caps the page index so Offset stays far from int overflow.
const MaxPage = 1_000_000

// Params is a normalised, 0-based page request.
type Params struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// New clamps page and size into range.
func New(page, size int) Params {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Params{Page: page, Size: size}
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int { return p.Page * p.Size }
