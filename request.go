package twift

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const (
	minPageSize = 1
	maxPageSize = 1000
)

// Envelope is the decoded shape of a successful v2 response: the primary
// payload plus the optional includes and meta side channels. Includes and
// Meta are nil unless the server returned them.
type Envelope[T any] struct {
	Data     T         `json:"data"`
	Includes *Includes `json:"includes,omitempty"`
	Meta     *Meta     `json:"meta,omitempty"`
}

// Includes holds related entities resolved server-side when expansions
// were requested.
type Includes struct {
	Users  []User  `json:"users,omitempty"`
	Tweets []Tweet `json:"tweets,omitempty"`
}

// Meta holds pagination metadata accompanying list responses.
type Meta struct {
	ResultCount   int    `json:"result_count"`
	NextToken     string `json:"next_token,omitempty"`
	PreviousToken string `json:"previous_token,omitempty"`
}

// ListOpts control pagination and field selection for list endpoints.
// The zero value requests the first page with the server's defaults.
type ListOpts struct {
	// MaxResults bounds the page size; 0 means "server default".
	// Accepted range is [1, 1000].
	MaxResults int
	// PaginationToken is the opaque cursor from a previous page's Meta.
	PaginationToken string
	UserFields      []UserField
	TweetFields     []TweetField
	Expansions      []Expansion
}

func (o *ListOpts) query() (url.Values, error) {
	q := url.Values{}
	if o == nil {
		return q, nil
	}
	if o.MaxResults != 0 {
		if o.MaxResults < minPageSize || o.MaxResults > maxPageSize {
			return nil, &RangeError{
				Field:  "max_results",
				Min:    minPageSize,
				Max:    maxPageSize,
				Actual: o.MaxResults,
			}
		}
		q.Set("max_results", itoa(o.MaxResults))
	}
	if o.PaginationToken != "" {
		q.Set("pagination_token", o.PaginationToken)
	}
	addFieldParams(q, o.UserFields, o.TweetFields, o.Expansions)
	return q, nil
}

// UserOpts control field selection for single/multi user lookups.
type UserOpts struct {
	UserFields  []UserField
	TweetFields []TweetField
	Expansions  []Expansion
}

func (o *UserOpts) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	addFieldParams(q, o.UserFields, o.TweetFields, o.Expansions)
	return q
}

func addFieldParams(q url.Values, uf []UserField, tf []TweetField, ex []Expansion) {
	if v := joinFields(uf); v != "" {
		q.Set("user.fields", v)
	}
	if v := joinFields(tf); v != "" {
		q.Set("tweet.fields", v)
	}
	if v := joinFields(ex); v != "" {
		q.Set("expansions", v)
	}
}

// getUserList issues a paginated user-list request against one of the
// /2/users/:id/* subresources.
func (c *Client) getUserList(ctx context.Context, userID, subresource string, opts *ListOpts) (*UserListResponse, error) {
	id, err := pathParam("id", userID)
	if err != nil {
		return nil, err
	}
	q, err := opts.query()
	if err != nil {
		return nil, err
	}
	var out UserListResponse
	if err := c.get(ctx, "/2/users/"+id+subresource, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// pathParam validates a request identifier and returns it escaped for
// substitution into a route. Identifiers are opaque to the client; only
// obviously malformed values are rejected here.
func pathParam(name, value string) (string, error) {
	if value == "" {
		return "", &RouteError{Param: name, Reason: "must not be empty"}
	}
	if strings.ContainsAny(value, "/ \t\n") {
		return "", &RouteError{Param: name, Reason: "contains path separator or whitespace"}
	}
	return urlPathEscape(value), nil
}

// envelopeProbe is the discrimination shape: a payload is an API error if
// it carries a non-empty errors list, a success if data is present.
type envelopeProbe struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorDetail   `json:"errors"`
}

// decodeResponse discriminates the three payload shapes the API produces:
// structured error envelope, success envelope, and everything else.
// It is a pure function of (status, bytes, target).
func decodeResponse(statusCode int, data []byte, out any) error {
	var probe envelopeProbe
	probeErr := json.Unmarshal(data, &probe)
	if probeErr == nil && len(probe.Errors) > 0 {
		return &APIError{StatusCode: statusCode, Errors: probe.Errors}
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return &DecodeError{StatusCode: statusCode, Body: data}
	}
	if out == nil {
		return nil
	}
	if probeErr != nil {
		return &DecodeError{StatusCode: statusCode, Body: data, Err: probeErr}
	}
	if len(probe.Data) == 0 {
		return &DecodeError{StatusCode: statusCode, Body: data}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{StatusCode: statusCode, Body: data, Err: err}
	}
	return nil
}
