package twift

import "context"

// MuteStatus is the payload of mute/unmute responses.
type MuteStatus struct {
	Muting bool `json:"muting"`
}

// MuteResponse is returned by POST and DELETE on the muting routes.
type MuteResponse = Envelope[MuteStatus]

// GetMutedUsers returns the users muted by userID.
// GET /2/users/:id/muting.
func (c *Client) GetMutedUsers(ctx context.Context, userID string, opts *ListOpts) (*UserListResponse, error) {
	return c.getUserList(ctx, userID, "/muting", opts)
}

// MuteUser mutes targetUserID on behalf of sourceUserID.
// POST /2/users/:id/muting.
func (c *Client) MuteUser(ctx context.Context, sourceUserID, targetUserID string) (*MuteResponse, error) {
	source, err := pathParam("id", sourceUserID)
	if err != nil {
		return nil, err
	}
	if _, err := pathParam("target_user_id", targetUserID); err != nil {
		return nil, err
	}
	var out MuteResponse
	if err := c.post(ctx, "/2/users/"+source+"/muting", &targetUserRequest{TargetUserID: targetUserID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnmuteUser removes sourceUserID's mute of targetUserID.
// DELETE /2/users/:source_user_id/muting/:target_user_id.
func (c *Client) UnmuteUser(ctx context.Context, sourceUserID, targetUserID string) (*MuteResponse, error) {
	source, err := pathParam("source_user_id", sourceUserID)
	if err != nil {
		return nil, err
	}
	target, err := pathParam("target_user_id", targetUserID)
	if err != nil {
		return nil, err
	}
	var out MuteResponse
	if err := c.delete(ctx, "/2/users/"+source+"/muting/"+target, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
