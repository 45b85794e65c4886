package blogservice

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sushihentaime/blogway/internal/common"
	"github.com/sushihentaime/blogway/internal/userservice"
)

type BlogState string

const (
	StateDraft     BlogState = "draft"
	StatePublished BlogState = "published"
)

type Blog struct {
	ID          int              `json:"_id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Body        string           `json:"body"`
	Author      userservice.User `json:"author"`
	AuthorID    int              `json:"-"`
	State       BlogState        `json:"state"`
	ReadCount   int              `json:"read_count"`
	ReadingTime int              `json:"reading_time"`
	Tags        []string         `json:"tags"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
	c *common.Cache
}

// Filters carries the pagination and ordering settings shared by the listing
// operations. OrderBy must be one of the whitelisted sort columns; it is
// validated before being interpolated into a query.
type Filters struct {
	Page    int
	Limit   int
	Order   string
	OrderBy string
}

func (f Filters) offset() int {
	return (f.Page - 1) * f.Limit
}

func (f Filters) orderClause() string {
	direction := "DESC"
	if strings.EqualFold(f.Order, "asc") {
		direction = "ASC"
	}

	return fmt.Sprintf("b.%s %s, b.id %s", f.OrderBy, direction, direction)
}

// SearchParams carries the optional free-text filters for the published
// listing. Empty fields are ignored.
type SearchParams struct {
	Title  string
	Tags   string
	Author string
}
