package content

import (
	"errors"
	"fmt"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

// ErrArticleIsNotConstructed is returned when an Article instance was not
// created through the NewArticle or RestoreArticle factory methods.
var ErrArticleIsNotConstructed = errors.New("article must be created via NewArticle or RestoreArticle")

// Kind labels the section an article belongs to.
type Kind string

const (
	KindNews    Kind = "news"
	KindService Kind = "service"
	KindFAQ     Kind = "faq"
)

// Validate checks that the kind is one of the known sections.
func (k Kind) Validate() error {
	switch k {
	case KindNews, KindService, KindFAQ:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"article kind", fmt.Errorf("%q is not a valid article kind", string(k)))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Article is a marketing content entry. Only staff write articles, and only
// published articles are visible to customers. There is no workflow here,
// just a visibility flag.
type Article struct {
	guard guard.ConstructorGuard

	id        kernel.UUID
	kind      Kind
	title     string
	body      string
	published bool
	authorID  kernel.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewArticle creates an unpublished article. Staff only.
func NewArticle(id kernel.UUID, actor kernel.Actor, kind Kind, title, body string) (*Article, error) {
	if !actor.IsStaff() {
		return nil, errs.NewForbiddenError("create article")
	}

	now := time.Now().UTC()
	a := &Article{
		guard:     guard.NewConstructorGuard(),
		authorID:  actor.ID(),
		createdAt: now,
		updatedAt: now,
	}

	if err := errors.Join(
		a.setID(id),
		a.setKind(kind),
		a.setContent(title, body),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreArticle recreates an article from persistence.
func RestoreArticle(
	id kernel.UUID,
	kind Kind,
	title, body string,
	published bool,
	authorID kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if err := errors.Join(id.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &Article{
		guard:     guard.NewConstructorGuard(),
		id:        id,
		kind:      kind,
		title:     title,
		body:      body,
		published: published,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Validate ensures the article was created through a factory method.
func (a *Article) Validate() error {
	if a == nil {
		return ErrArticleIsNotConstructed
	}
	return a.guard.Validate(ErrArticleIsNotConstructed)
}

func (a *Article) ID() kernel.UUID       { return a.id }
func (a *Article) Kind() Kind            { return a.kind }
func (a *Article) Title() string         { return a.title }
func (a *Article) Body() string          { return a.body }
func (a *Article) IsPublished() bool     { return a.published }
func (a *Article) AuthorID() kernel.UUID { return a.authorID }
func (a *Article) CreatedAt() time.Time  { return a.createdAt }
func (a *Article) UpdatedAt() time.Time  { return a.updatedAt }

// Update replaces the article content. Staff only.
func (a *Article) Update(actor kernel.Actor, kind Kind, title, body string) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("update article")
	}

	if err := errors.Join(
		a.setKind(kind),
		a.setContent(title, body),
	); err != nil {
		return err
	}

	a.updatedAt = time.Now().UTC()
	return nil
}

// Publish makes the article visible to customers. Staff only.
func (a *Article) Publish(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("publish article")
	}
	a.published = true
	a.updatedAt = time.Now().UTC()
	return nil
}

// Unpublish hides the article from customers. Staff only.
func (a *Article) Unpublish(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("unpublish article")
	}
	a.published = false
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Article) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Article) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	a.kind = kind
	return nil
}

func (a *Article) setContent(title, body string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	a.title = title
	a.body = body
	return nil
}
