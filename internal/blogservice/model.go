package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sushihentaime/blogway/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateTitle = errors.New("duplicate title")
	ErrNotOwner       = errors.New("caller does not own the blog")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

const blogColumns = `b.id, b.title, b.description, b.body, b.user_id, b.state, b.read_count, b.reading_time, b.tags, b.created_at, b.updated_at`

const authorColumns = `u.id, u.first_name, u.last_name, u.email, u.created_at, u.updated_at`

// scanBlog scans a joined blogs+users row into a Blog with its author
// populated. The column order must match blogColumns then authorColumns.
func scanBlog(row interface{ Scan(...any) error }) (*Blog, error) {
	var (
		blog        Blog
		description sql.NullString
	)

	err := row.Scan(
		&blog.ID, &blog.Title, &description, &blog.Body, &blog.AuthorID, &blog.State,
		&blog.ReadCount, &blog.ReadingTime, pq.Array(&blog.Tags), &blog.CreatedAt, &blog.UpdatedAt,
		&blog.Author.ID, &blog.Author.FirstName, &blog.Author.LastName, &blog.Author.Email,
		&blog.Author.CreatedAt, &blog.Author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	blog.Description = description.String

	return &blog, nil
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, description, body, user_id, tags, reading_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, state, read_count, created_at, updated_at`

	description := sql.NullString{String: blog.Description, Valid: blog.Description != ""}

	args := []any{blog.Title, description, blog.Body, blog.AuthorID, pq.Array(blog.Tags), blog.ReadingTime}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.State, &blog.ReadCount, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "blogs_title_key"):
			return ErrDuplicateTitle
		case common.ForeignKeyViolation(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getPublishedAndIncrement finds a published blog and bumps its read counter
// in a single statement, so concurrent fetches never lose an increment. A
// draft and a missing id are indistinguishable here on purpose.
func (m *BlogModel) getPublishedAndIncrement(ctx context.Context, id int) (*Blog, error) {
	query := fmt.Sprintf(`
		UPDATE blogs b
		SET read_count = b.read_count + 1
		FROM users u
		WHERE b.id = $1 AND b.state = 'published' AND u.id = b.user_id
		RETURNING %s, %s`, blogColumns, authorColumns)

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return blog, nil
}

// getBlogByID fetches a blog in any state, author populated. Used by the
// write paths for the existence check and as the merge base for partial
// updates.
func (m *BlogModel) getBlogByID(ctx context.Context, id int) (*Blog, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`, blogColumns, authorColumns)

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return blog, nil
}

// update persists the merged blog conditioned on ownership. Zero affected
// rows after a positive existence check means the caller is not the owner.
func (m *BlogModel) update(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, description = $2, body = $3, tags = $4, reading_time = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at`

	description := sql.NullString{String: blog.Description, Valid: blog.Description != ""}

	args := []any{blog.Title, description, blog.Body, pq.Array(blog.Tags), blog.ReadingTime, blog.ID, blog.AuthorID}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNotOwner
		case common.UniqueViolation(err, "blogs_title_key"):
			return ErrDuplicateTitle
		default:
			return err
		}
	}

	return nil
}

// publish flips the state to published. Publishing an already published blog
// is a no-op that still succeeds.
func (m *BlogModel) publish(ctx context.Context, blogID, userID int) error {
	query := `
		UPDATE blogs
		SET state = 'published', updated_at = now()
		WHERE id = $1 AND user_id = $2`

	res, err := m.db.ExecContext(ctx, query, blogID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotOwner
	}

	return nil
}

func (m *BlogModel) delete(ctx context.Context, blogID, userID int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1 AND user_id = $2`

	res, err := m.db.ExecContext(ctx, query, blogID, userID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotOwner
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// listByAuthor returns one page of the author's blogs in any state, plus the
// pre-pagination match count. state narrows the listing when non-empty.
func (m *BlogModel) listByAuthor(ctx context.Context, authorID int, state string, f Filters) ([]Blog, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1 AND ($2 = '' OR b.state = $2)
		ORDER BY %s
		LIMIT $3 OFFSET $4`, blogColumns, authorColumns, f.orderClause())

	rows, err := m.db.QueryContext(ctx, query, authorID, state, f.Limit, f.offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs, err := collectBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*)
		FROM blogs
		WHERE user_id = $1 AND ($2 = '' OR state = $2)`

	var total int
	if err := m.db.QueryRowContext(ctx, countQuery, authorID, state).Scan(&total); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// listPublished returns one page of published blogs plus the pre-pagination
// match count. title and tags match case-insensitively; authorIDs narrows to
// those owners when non-nil (an empty non-nil set matches nothing).
func (m *BlogModel) listPublished(ctx context.Context, title, tags string, authorIDs []int64, f Filters) ([]Blog, int, error) {
	where := `
		b.state = 'published'
		AND ($1 = '' OR b.title ILIKE '%' || $1 || '%')
		AND ($2 = '' OR EXISTS (SELECT 1 FROM unnest(b.tags) AS tag WHERE tag ILIKE '%' || $2 || '%'))
		AND ($3::bigint[] IS NULL OR b.user_id = ANY($3))`

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE %s
		ORDER BY %s
		LIMIT $4 OFFSET $5`, blogColumns, authorColumns, where, f.orderClause())

	rows, err := m.db.QueryContext(ctx, query, title, tags, pq.Array(authorIDs), f.Limit, f.offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs, err := collectBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM blogs b
		WHERE %s`, where)

	var total int
	if err := m.db.QueryRowContext(ctx, countQuery, title, tags, pq.Array(authorIDs)).Scan(&total); err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func collectBlogs(rows *sql.Rows) ([]Blog, error) {
	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// searchAuthorIDs resolves a free-text author search term into the matching
// user ids, matching either name part case-insensitively.
func (m *BlogModel) searchAuthorIDs(ctx context.Context, term string) ([]int64, error) {
	query := `
		SELECT id
		FROM users
		WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'`

	rows, err := m.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
