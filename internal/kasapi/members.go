package kasapi

import (
	"context"
	"net/http"
	"net/url"

	"kas-dashboard-svc/internal/models"
)

// ListMembers returns every member
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	var out []models.Member
	if err := c.do(ctx, request{op: "list members", method: http.MethodGet, path: "/members", auth: true}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMember returns one member
func (c *Client) GetMember(ctx context.Context, id string) (*models.Member, error) {
	var out models.Member
	if err := c.do(ctx, request{op: "get member", method: http.MethodGet, path: "/members/" + url.PathEscape(id), auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMember creates a member
func (c *Client) CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out models.Member
	if err := c.do(ctx, request{op: "create member", method: http.MethodPost, path: "/members", body: body, auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMember replaces a member's fields
func (c *Client) UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out models.Member
	if err := c.do(ctx, request{op: "update member", method: http.MethodPut, path: "/members/" + url.PathEscape(id), body: body, auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMember deletes a member. The acknowledgement body is ignored.
func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, request{op: "delete member", method: http.MethodDelete, path: "/members/" + url.PathEscape(id), auth: true}, nil)
}
