package blogservice

import "github.com/sushihentaime/blogway/internal/common"

// SortColumns lists the columns the listing endpoints may sort by.
var SortColumns = []string{"created_at", "updated_at", "title", "read_count", "reading_time"}

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(len(title) >= 4, "title", "must be at least 4 characters long")
}

func validateDescription(v *common.Validator, description string) {
	if description != "" {
		v.Check(len(description) >= 4, "description", "must be at least 4 characters long")
	}
}

func validateBody(v *common.Validator, body string) {
	v.Check(body != "", "body", "must be provided")
	v.Check(len(body) >= 10, "body", "must be at least 10 characters long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}

func validateFilters(v *common.Validator, f Filters) {
	v.Check(f.Page >= 1, "page", "must be at least 1")
	v.Check(f.Limit >= 1, "limit", "must be at least 1")
	v.Check(common.PermittedValue(f.Order, "asc", "desc"), "order", "must be either asc or desc")
	v.Check(common.PermittedValue(f.OrderBy, SortColumns...), "order_by", "is not a valid sort column")
}

func validateState(v *common.Validator, state string) {
	if state != "" {
		v.Check(common.PermittedValue(state, string(StateDraft), string(StatePublished)), "state", "must be either draft or published")
	}
}
