package repository

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"
)

const blogPostsCollection = "blogPosts"

type docstoreBlogRepository struct {
	store docstore.Store
}

func NewDocstoreBlogRepository(store docstore.Store) repository.BlogRepository {
	return &docstoreBlogRepository{store: store}
}

func (r *docstoreBlogRepository) col() docstore.Collection {
	return r.store.Collection(blogPostsCollection)
}

func (r *docstoreBlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	col := r.col()
	if post.ID == "" {
		post.ID = col.NewID()
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	post.Views = 0

	if err := col.Set(ctx, post.ID, encodeBlogPost(post)); err != nil {
		return apperrors.Internal("Failed to create blog post", err)
	}
	return nil
}

func (r *docstoreBlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("Blog post", err)
		}
		return nil, apperrors.Unavailable("Failed to get blog post", err)
	}
	return decodeBlogPost(doc), nil
}

func (r *docstoreBlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	docs, err := r.col().Query().Where("slug", "==", slug).Limit(1).Documents(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to get blog post", err)
	}
	if len(docs) == 0 {
		return nil, apperrors.NotFound("Blog post", nil)
	}
	return decodeBlogPost(docs[0]), nil
}

func (r *docstoreBlogRepository) ListPublished(ctx context.Context, pageSize int, cursor string) ([]*entity.BlogPost, string, error) {
	return r.list(ctx, true, pageSize, cursor)
}

func (r *docstoreBlogRepository) ListAll(ctx context.Context, pageSize int, cursor string) ([]*entity.BlogPost, string, error) {
	return r.list(ctx, false, pageSize, cursor)
}

func (r *docstoreBlogRepository) list(ctx context.Context, publishedOnly bool, pageSize int, cursor string) ([]*entity.BlogPost, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := r.col().Query()
	if publishedOnly {
		q = q.Where("isPublished", "==", true)
	}
	q = q.OrderBy("createdAt", docstore.Descending).Limit(pageSize)
	if cursor != "" {
		q = q.StartAfter(cursor)
	}

	docs, err := q.Documents(ctx)
	if err != nil {
		return nil, "", apperrors.Unavailable("Failed to load blog posts", err)
	}

	posts := make([]*entity.BlogPost, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, decodeBlogPost(doc))
	}

	nextCursor := ""
	if len(docs) > 0 {
		nextCursor = docs[len(docs)-1].ID()
	}
	return posts, nextCursor, nil
}

func (r *docstoreBlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now()

	if err := r.col().Set(ctx, post.ID, encodeBlogPost(post)); err != nil {
		return apperrors.Internal("Failed to update blog post", err)
	}
	return nil
}

func (r *docstoreBlogRepository) Delete(ctx context.Context, id string) error {
	if err := r.col().Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete blog post", err)
	}
	return nil
}

func (r *docstoreBlogRepository) IncrementViews(ctx context.Context, id string) error {
	err := r.col().Update(ctx, id, []docstore.Update{
		docstore.Increment("views", 1),
	})
	if err != nil {
		return apperrors.Internal("Failed to increment blog post views", err)
	}
	return nil
}

func encodeBlogPost(p *entity.BlogPost) map[string]interface{} {
	data := map[string]interface{}{
		"title":       p.Title,
		"slug":        p.Slug,
		"excerpt":     p.Excerpt,
		"body":        p.Body,
		"coverImage":  p.CoverImage,
		"tags":        p.Tags,
		"isPublished": p.IsPublished,
		"views":       p.Views,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	if p.PublishedAt != nil {
		data["publishedAt"] = *p.PublishedAt
	}
	return data
}

func decodeBlogPost(doc docstore.Document) *entity.BlogPost {
	m := doc.Data()
	return &entity.BlogPost{
		ID:          doc.ID(),
		Title:       strField(m, "title"),
		Slug:        strField(m, "slug"),
		Excerpt:     strField(m, "excerpt"),
		Body:        strField(m, "body"),
		CoverImage:  strField(m, "coverImage"),
		Tags:        strSliceField(m, "tags"),
		IsPublished: boolField(m, "isPublished", false),
		PublishedAt: timePtrField(m, "publishedAt"),
		Views:       int64Field(m, "views"),
		CreatedAt:   timeField(m, "createdAt"),
		UpdatedAt:   timeField(m, "updatedAt"),
	}
}
