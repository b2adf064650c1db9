package client

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/google/uuid"
)

type Client struct {
	id        uuid.UUID
	name      contact.Name
	phone     contact.Phone
	email     contact.Email
	createdAt time.Time
}

func NewClient(id uuid.UUID, name, phone, email string, now time.Time) (*Client, error) {
	n, err := contact.NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := contact.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	e, err := contact.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Client{id: id, name: n, phone: p, email: e, createdAt: now}, nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) Name() contact.Name   { return c.name }
func (c *Client) Phone() contact.Phone { return c.phone }
func (c *Client) Email() contact.Email { return c.email }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
