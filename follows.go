package twift

import "context"

// FollowStatus is the payload of follow/unfollow responses. PendingFollow
// is true when the target account is protected and the follow awaits
// approval.
type FollowStatus struct {
	Following     bool `json:"following"`
	PendingFollow bool `json:"pending_follow,omitempty"`
}

// FollowResponse is returned by POST and DELETE on the following routes.
type FollowResponse = Envelope[FollowStatus]

// GetFollowing returns the users userID follows.
// GET /2/users/:id/following.
func (c *Client) GetFollowing(ctx context.Context, userID string, opts *ListOpts) (*UserListResponse, error) {
	return c.getUserList(ctx, userID, "/following", opts)
}

// GetFollowers returns the users following userID.
// GET /2/users/:id/followers.
func (c *Client) GetFollowers(ctx context.Context, userID string, opts *ListOpts) (*UserListResponse, error) {
	return c.getUserList(ctx, userID, "/followers", opts)
}

// FollowUser follows targetUserID on behalf of sourceUserID.
// POST /2/users/:id/following.
func (c *Client) FollowUser(ctx context.Context, sourceUserID, targetUserID string) (*FollowResponse, error) {
	source, err := pathParam("id", sourceUserID)
	if err != nil {
		return nil, err
	}
	if _, err := pathParam("target_user_id", targetUserID); err != nil {
		return nil, err
	}
	var out FollowResponse
	if err := c.post(ctx, "/2/users/"+source+"/following", &targetUserRequest{TargetUserID: targetUserID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnfollowUser removes sourceUserID's follow of targetUserID.
// DELETE /2/users/:source_user_id/following/:target_user_id.
func (c *Client) UnfollowUser(ctx context.Context, sourceUserID, targetUserID string) (*FollowResponse, error) {
	source, err := pathParam("source_user_id", sourceUserID)
	if err != nil {
		return nil, err
	}
	target, err := pathParam("target_user_id", targetUserID)
	if err != nil {
		return nil, err
	}
	var out FollowResponse
	if err := c.delete(ctx, "/2/users/"+source+"/following/"+target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
