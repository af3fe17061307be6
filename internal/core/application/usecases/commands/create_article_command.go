package commands

import (
	"errors"

	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrCreateArticleCommandIsNotConstructed = errors.New(
	"CreateArticleCommand must be created via NewCreateArticleCommand constructor",
)

// CreateArticleCommand represents a request to create a content article.
// New articles start unpublished unless publish is set.
type CreateArticleCommand struct { //nolint:recvcheck //using for validation
	articleID kernel.UUID
	actor     kernel.Actor
	kind      content.Kind
	title     string
	body      string
	publish   bool

	guard guard.ConstructorGuard
}

// NewCreateArticleCommand creates a command to create an article.
func NewCreateArticleCommand(
	articleID kernel.UUID,
	actor kernel.Actor,
	kind content.Kind,
	title string,
	body string,
	publish bool,
) (CreateArticleCommand, error) {
	cmd := CreateArticleCommand{
		publish: publish,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setArticleID(articleID),
		cmd.setActor(actor),
		cmd.setKind(kind),
		cmd.setContent(title, body),
	); err != nil {
		return CreateArticleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateArticleCommand) Validate() error {
	return c.guard.Validate(ErrCreateArticleCommandIsNotConstructed)
}

func (c CreateArticleCommand) ArticleID() kernel.UUID { return c.articleID }
func (c CreateArticleCommand) Actor() kernel.Actor    { return c.actor }
func (c CreateArticleCommand) Kind() content.Kind     { return c.kind }
func (c CreateArticleCommand) Title() string          { return c.title }
func (c CreateArticleCommand) Body() string           { return c.body }
func (c CreateArticleCommand) ShouldPublish() bool    { return c.publish }

func (c *CreateArticleCommand) setArticleID(articleID kernel.UUID) error {
	if err := articleID.Validate(); err != nil {
		return err
	}
	c.articleID = articleID
	return nil
}

func (c *CreateArticleCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateArticleCommand) setKind(kind content.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateArticleCommand) setContent(title, body string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	c.title = title
	c.body = body
	return nil
}
