package twift

import (
	"context"
	"strings"
)

const maxLookupIDs = 100

// UserResponse is returned by the single-user lookup routes.
type UserResponse = Envelope[User]

// UsersResponse is returned by the multi-user lookup route.
type UsersResponse = Envelope[[]User]

// GetUser looks up a single user by ID. GET /2/users/:id.
func (c *Client) GetUser(ctx context.Context, userID string, opts *UserOpts) (*UserResponse, error) {
	id, err := pathParam("id", userID)
	if err != nil {
		return nil, err
	}
	var out UserResponse
	if err := c.get(ctx, "/2/users/"+id, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserByUsername looks up a single user by handle.
// GET /2/users/by/username/:username.
func (c *Client) GetUserByUsername(ctx context.Context, username string, opts *UserOpts) (*UserResponse, error) {
	name, err := pathParam("username", username)
	if err != nil {
		return nil, err
	}
	var out UserResponse
	if err := c.get(ctx, "/2/users/by/username/"+name, opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUsers looks up up to 100 users by ID. GET /2/users?ids=...
func (c *Client) GetUsers(ctx context.Context, userIDs []string, opts *UserOpts) (*UsersResponse, error) {
	if len(userIDs) < 1 || len(userIDs) > maxLookupIDs {
		return nil, &RangeError{
			Field:  "ids",
			Min:    1,
			Max:    maxLookupIDs,
			Actual: len(userIDs),
		}
	}
	for _, id := range userIDs {
		if _, err := pathParam("ids", id); err != nil {
			return nil, err
		}
	}
	q := opts.query()
	q.Set("ids", strings.Join(userIDs, ","))
	var out UsersResponse
	if err := c.get(ctx, "/2/users", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
