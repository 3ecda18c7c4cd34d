package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{blogRepo: blogRepo}
}

type BlogPostInput struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Body       string   `json:"body"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
}

func (uc *BlogUseCase) Create(ctx context.Context, input BlogPostInput) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}

	slug := slugify(input.Title)
	if existing, err := uc.blogRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().Unix())
	}

	post := &entity.BlogPost{
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Tags:       input.Tags,
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *BlogUseCase) Update(ctx context.Context, id string, input BlogPostInput) (*entity.BlogPost, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}

	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Body = input.Body
	post.CoverImage = input.CoverImage
	post.Tags = input.Tags

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *BlogUseCase) SetPublished(ctx context.Context, id string, published bool) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.IsPublished = published
	if published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetBySlug serves the public article page; drafts are hidden and a read
// bumps the view counter without blocking the response.
func (uc *BlogUseCase) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := uc.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, errors.NotFound("Blog post", nil)
	}

	go func(id string) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.blogRepo.IncrementViews(ctx, id)
	}(post.ID)

	return post, nil
}

func (uc *BlogUseCase) GetAdmin(ctx context.Context, id string) (*entity.BlogPost, error) {
	return uc.blogRepo.GetByID(ctx, id)
}

func (uc *BlogUseCase) ListPublished(ctx context.Context, limit int, cursor string) ([]*entity.BlogPost, string, error) {
	return uc.blogRepo.ListPublished(ctx, limit, cursor)
}

func (uc *BlogUseCase) ListAll(ctx context.Context, limit int, cursor string) ([]*entity.BlogPost, string, error) {
	return uc.blogRepo.ListAll(ctx, limit, cursor)
}

func (uc *BlogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.blogRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.blogRepo.Delete(ctx, id)
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
