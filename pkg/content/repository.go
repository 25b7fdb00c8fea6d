package content

import (
	"context"

	"ai-writerbot-be/internal/entity"
	"ai-writerbot-be/internal/repository/specification"
	"ai-writerbot-be/internal/repository/unitofwork"
	"ai-writerbot-be/pkg/dialog/pick"

	"github.com/google/uuid"
)

// repoProvider is the GORM-backed Provider. It goes through the unit-of-work
// factory like every other data consumer; all operations are plain reads.
type repoProvider struct {
	uowFactory unitofwork.RepositoryFactory
	picker     *pick.Picker
}

func NewRepositoryProvider(uowFactory unitofwork.RepositoryFactory, picker *pick.Picker) Provider {
	return &repoProvider{
		uowFactory: uowFactory,
		picker:     picker,
	}
}

func (p *repoProvider) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	return uow.AuthorRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (p *repoProvider) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	return uow.AuthorRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
}

func (p *repoProvider) GetAuthorWorks(ctx context.Context, id uuid.UUID) ([]WorkGroup, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	works, err := uow.WorkRepository().FindAll(ctx,
		specification.ByAuthorID{AuthorID: id},
		specification.OrderByCategoryRank{},
	)
	if err != nil {
		return nil, err
	}
	return groupWorks(works), nil
}

// groupWorks folds an ordered work list into category groups, preserving the
// query's category rank ordering.
func groupWorks(works []*entity.Work) []WorkGroup {
	var groups []WorkGroup
	index := make(map[string]int)
	for _, w := range works {
		i, ok := index[w.Category]
		if !ok {
			i = len(groups)
			index[w.Category] = i
			groups = append(groups, WorkGroup{Category: w.Category})
		}
		groups[i].Works = append(groups[i].Works, *w)
	}
	return groups
}

func (p *repoProvider) ListFaq(ctx context.Context, id uuid.UUID) ([]entity.FaqEntry, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.FaqRepository().FindAll(ctx, specification.ByAuthorID{AuthorID: id})
	if err != nil {
		return nil, err
	}
	result := make([]entity.FaqEntry, len(entries))
	for i, e := range entries {
		result[i] = *e
	}
	return result, nil
}

func (p *repoProvider) ListPoems(ctx context.Context, id uuid.UUID) ([]entity.PoemEntry, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	poems, err := uow.PoemRepository().FindAll(ctx, specification.ByAuthorID{AuthorID: id})
	if err != nil {
		return nil, err
	}
	result := make([]entity.PoemEntry, len(poems))
	for i, poem := range poems {
		result[i] = *poem
	}
	return result, nil
}

func (p *repoProvider) GetPoemTitles(ctx context.Context, id uuid.UUID) ([]string, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	poems, err := uow.PoemRepository().FindAll(ctx,
		specification.ByAuthorID{AuthorID: id},
		specification.OrderBy{Field: "title"},
	)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(poems))
	for i, poem := range poems {
		titles[i] = poem.Title
	}
	return titles, nil
}

func (p *repoProvider) ListCharacters(ctx context.Context, id uuid.UUID) ([]entity.CharacterEntry, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)
	characters, err := uow.CharacterRepository().FindAll(ctx, specification.ByAuthorID{AuthorID: id})
	if err != nil {
		return nil, err
	}
	result := make([]entity.CharacterEntry, len(characters))
	for i, c := range characters {
		result[i] = *c
	}
	return result, nil
}

func (p *repoProvider) PickRandomPoem(ctx context.Context, id uuid.UUID, excludeTitles map[string]bool) (*entity.PoemEntry, error) {
	poems, err := p.ListPoems(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := p.picker.Pick(poems, excludeTitles)
	if err != nil {
		// Zero poems for this author; callers translate to a user message.
		return nil, nil
	}
	return &res.Poem, nil
}

func (p *repoProvider) Snapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	author, err := p.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}

	poems, err := p.ListPoems(ctx, id)
	if err != nil {
		return nil, err
	}
	faq, err := p.ListFaq(ctx, id)
	if err != nil {
		return nil, err
	}
	characters, err := p.ListCharacters(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Author:     author,
		Poems:      poems,
		Faq:        faq,
		Characters: characters,
	}, nil
}
