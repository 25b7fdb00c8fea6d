package service

import (
	"context"

	"ai-writerbot-be/internal/dto"
	"ai-writerbot-be/internal/pkg/serverutils"
	"ai-writerbot-be/pkg/content"

	"github.com/google/uuid"
)

type IAuthorService interface {
	GetAll(ctx context.Context) ([]*dto.ListAuthorsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowAuthorResponse, error)
	GetBio(ctx context.Context, id uuid.UUID) (*dto.AuthorBioResponse, error)
	GetWorks(ctx context.Context, id uuid.UUID) ([]*dto.WorkGroupResponse, error)
	RandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*dto.RandomPoemResponse, error)
}

type authorService struct {
	provider content.Provider
}

func NewAuthorService(provider content.Provider) IAuthorService {
	return &authorService{
		provider: provider,
	}
}

func (s *authorService) GetAll(ctx context.Context) ([]*dto.ListAuthorsResponse, error) {
	authors, err := s.provider.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ListAuthorsResponse, 0, len(authors))
	for _, author := range authors {
		result = append(result, &dto.ListAuthorsResponse{
			Id:       author.Id,
			Name:     author.Name,
			ShortBio: author.ShortBio,
			Era:      author.Era,
		})
	}
	return result, nil
}

func (s *authorService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowAuthorResponse, error) {
	author, err := s.provider.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, serverutils.NewNotFoundError("Author not found")
	}

	facts := make([]dto.KeyFactItem, 0, len(author.KeyFacts))
	for _, fact := range author.KeyFacts {
		facts = append(facts, dto.KeyFactItem{Year: fact.Year, Fact: fact.Fact})
	}

	return &dto.ShowAuthorResponse{
		Id:        author.Id,
		Name:      author.Name,
		ShortBio:  author.ShortBio,
		Bio:       author.Bio,
		Era:       author.Era,
		KeyFacts:  facts,
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}, nil
}

func (s *authorService) GetBio(ctx context.Context, id uuid.UUID) (*dto.AuthorBioResponse, error) {
	author, err := s.provider.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, serverutils.NewNotFoundError("Author not found")
	}

	facts := make([]dto.KeyFactItem, 0, len(author.KeyFacts))
	for _, fact := range author.KeyFacts {
		facts = append(facts, dto.KeyFactItem{Year: fact.Year, Fact: fact.Fact})
	}

	return &dto.AuthorBioResponse{
		Id:       author.Id,
		Name:     author.Name,
		Bio:      author.Bio,
		Era:      author.Era,
		KeyFacts: facts,
	}, nil
}

func (s *authorService) GetWorks(ctx context.Context, id uuid.UUID) ([]*dto.WorkGroupResponse, error) {
	author, err := s.provider.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, serverutils.NewNotFoundError("Author not found")
	}

	groups, err := s.provider.GetAuthorWorks(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.WorkGroupResponse, 0, len(groups))
	for _, group := range groups {
		items := make([]dto.WorkItem, 0, len(group.Works))
		for _, work := range group.Works {
			items = append(items, dto.WorkItem{
				Title:   work.Title,
				Year:    work.Year,
				Summary: work.Summary,
				Excerpt: work.Excerpt,
			})
		}
		result = append(result, &dto.WorkGroupResponse{
			Category: group.Category,
			Works:    items,
		})
	}
	return result, nil
}

// RandomPoem serves a one-off random poem outside any dialogue session. The
// caller may pass already-seen titles to exclude.
func (s *authorService) RandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*dto.RandomPoemResponse, error) {
	poem, err := s.provider.PickRandomPoem(ctx, id, excludeTitles)
	if err != nil {
		return nil, err
	}
	if poem == nil {
		return nil, serverutils.NewNotFoundError("No poems available for this author")
	}

	return &dto.RandomPoemResponse{
		Title: poem.Title,
		Text:  poem.Text,
	}, nil
}
