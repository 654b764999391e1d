package twift

import "context"

// BlockStatus is the payload of block/unblock responses.
type BlockStatus struct {
	Blocking bool `json:"blocking"`
}

// BlockResponse is returned by POST and DELETE on the blocking routes.
type BlockResponse = Envelope[BlockStatus]

// UserListResponse is returned by the paginated user-list routes
// (blocking, muting, following, followers).
type UserListResponse = Envelope[[]User]

type targetUserRequest struct {
	TargetUserID string `json:"target_user_id"`
}

// GetBlockedUsers returns the users blocked by userID.
// GET /2/users/:id/blocking.
func (c *Client) GetBlockedUsers(ctx context.Context, userID string, opts *ListOpts) (*UserListResponse, error) {
	return c.getUserList(ctx, userID, "/blocking", opts)
}

// BlockUser blocks targetUserID on behalf of sourceUserID.
// POST /2/users/:id/blocking with body {"target_user_id": "..."}.
func (c *Client) BlockUser(ctx context.Context, sourceUserID, targetUserID string) (*BlockResponse, error) {
	source, err := pathParam("id", sourceUserID)
	if err != nil {
		return nil, err
	}
	if _, err := pathParam("target_user_id", targetUserID); err != nil {
		return nil, err
	}
	var out BlockResponse
	if err := c.post(ctx, "/2/users/"+source+"/blocking", &targetUserRequest{TargetUserID: targetUserID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnblockUser removes sourceUserID's block of targetUserID.
// DELETE /2/users/:source_user_id/blocking/:target_user_id.
func (c *Client) UnblockUser(ctx context.Context, sourceUserID, targetUserID string) (*BlockResponse, error) {
	source, err := pathParam("source_user_id", sourceUserID)
	if err != nil {
		return nil, err
	}
	target, err := pathParam("target_user_id", targetUserID)
	if err != nil {
		return nil, err
	}
	var out BlockResponse
	if err := c.delete(ctx, "/2/users/"+source+"/blocking/"+target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
