package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sushihentaime/blogway/internal/common"
)

const authorSearchCacheTime = 1 * time.Minute

func NewBlogService(db *sql.DB, c *common.Cache) *BlogService {
	return &BlogService{m: newBlogModel(db), c: c}
}

type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

// UpdateBlogRequest carries a partial update; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Body        *string  `json:"body"`
	Tags        []string `json:"tags"`
}

// CreateBlog creates a new draft owned by authorID. The reading time is
// derived from the body before the record is persisted.
func (s *BlogService) CreateBlog(ctx context.Context, authorID int, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateDescription(v, req.Description)
	validateBody(v, req.Body)
	validateInt(v, authorID, "author")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
		AuthorID:    authorID,
		ReadingTime: readingTime(req.Body),
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	err := s.m.insert(ctx, &blog)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateTitle):
			return nil, common.NewConflict("Blog with same title already exists")
		default:
			return nil, err
		}
	}

	created, err := s.m.getBlogByID(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetBlogByID returns a published blog and counts the read in the same
// storage operation. Drafts and missing ids yield the same failure so draft
// existence is not leaked.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getPublishedAndIncrement(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return nil, common.NewNotFound("Blog does not exist or is not published")
		default:
			return nil, err
		}
	}

	return blog, nil
}

// GetAllBlogs lists the blogs owned by authorID in any state, optionally
// narrowed by state, and returns the pre-pagination match count.
func (s *BlogService) GetAllBlogs(ctx context.Context, authorID int, state string, f Filters) ([]Blog, int, error) {
	v := common.NewValidator()
	validateInt(v, authorID, "author")
	validateState(v, state)
	validateFilters(v, f)
	if !v.Valid() {
		return nil, 0, v.ValidationError()
	}

	return s.m.listByAuthor(ctx, authorID, state, f)
}

// GetAllPublishedBlogs lists published blogs with the optional free-text
// filters applied. An author term is resolved to an id set against the user
// directory first; the resolution is cached briefly.
func (s *BlogService) GetAllPublishedBlogs(ctx context.Context, p SearchParams, f Filters) ([]Blog, int, error) {
	v := common.NewValidator()
	validateFilters(v, f)
	if !v.Valid() {
		return nil, 0, v.ValidationError()
	}

	var authorIDs []int64
	if p.Author != "" {
		ids, err := s.resolveAuthorIDs(ctx, p.Author)
		if err != nil {
			return nil, 0, err
		}
		authorIDs = ids
	}

	return s.m.listPublished(ctx, p.Title, p.Tags, authorIDs, f)
}

func (s *BlogService) resolveAuthorIDs(ctx context.Context, term string) ([]int64, error) {
	key := common.CacheKeyAuthorSearch(term)
	if cached, ok := s.c.Get(key); ok {
		if ids, ok := cached.([]int64); ok {
			return ids, nil
		}
	}

	ids, err := s.m.searchAuthorIDs(ctx, term)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, ids, authorSearchCacheTime)

	return ids, nil
}

// UpdateBlog applies a partial update to the caller's blog. Existence is
// checked before ownership so a non-owner probing a missing id sees a plain
// not-found, while an owner mismatch on a real blog is an authorization
// failure.
func (s *BlogService) UpdateBlog(ctx context.Context, blogID, authorID int, req *UpdateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateInt(v, authorID, "author")
	if req.Title != nil {
		validateTitle(v, *req.Title)
	}
	if req.Description != nil {
		validateDescription(v, *req.Description)
	}
	if req.Body != nil {
		validateBody(v, *req.Body)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogByID(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return nil, common.NewNotFound("Blog not found")
		default:
			return nil, err
		}
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Body != nil {
		blog.Body = *req.Body
		blog.ReadingTime = readingTime(blog.Body)
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}

	blog.AuthorID = authorID

	err = s.m.update(ctx, blog)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotOwner):
			return nil, common.NewUnauthorized("Not authorized to update this blog")
		case errors.Is(err, ErrDuplicateTitle):
			return nil, common.NewConflict("Blog with same title already exists")
		default:
			return nil, err
		}
	}

	return blog, nil
}

// PublishBlog moves the caller's blog to the published state. The transition
// is one-directional; republishing is a no-op success.
func (s *BlogService) PublishBlog(ctx context.Context, blogID, authorID int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateInt(v, authorID, "author")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	_, err := s.m.getBlogByID(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return nil, common.NewNotFound("Blog not found")
		default:
			return nil, err
		}
	}

	err = s.m.publish(ctx, blogID, authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotOwner):
			return nil, common.NewUnauthorized("Not authorized to publish blog")
		default:
			return nil, err
		}
	}

	return s.m.getBlogByID(ctx, blogID)
}

// DeleteBlog removes the caller's blog, with the same existence-then-
// ownership ordering as UpdateBlog.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID, authorID int) error {
	v := common.NewValidator()
	validateInt(v, blogID, "id")
	validateInt(v, authorID, "author")
	if !v.Valid() {
		return v.ValidationError()
	}

	_, err := s.m.getBlogByID(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			return common.NewNotFound("Blog not found")
		default:
			return err
		}
	}

	err = s.m.delete(ctx, blogID, authorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotOwner):
			return common.NewUnauthorized("Not authorized to delete blog")
		default:
			return err
		}
	}

	return nil
}
