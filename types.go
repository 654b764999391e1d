package twift

// User is a v2 user object. Only id, name and username are always present;
// the rest appear when requested via user.fields.
type User struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Username        string             `json:"username"`
	CreatedAt       string             `json:"created_at,omitempty"`
	Description     string             `json:"description,omitempty"`
	Location        string             `json:"location,omitempty"`
	PinnedTweetID   string             `json:"pinned_tweet_id,omitempty"`
	ProfileImageURL string             `json:"profile_image_url,omitempty"`
	Protected       bool               `json:"protected,omitempty"`
	PublicMetrics   *UserPublicMetrics `json:"public_metrics,omitempty"`
	URL             string             `json:"url,omitempty"`
	Verified        bool               `json:"verified,omitempty"`
}

// UserPublicMetrics are the public engagement counts for a user.
type UserPublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
	ListedCount    int `json:"listed_count"`
}

// Tweet is a v2 tweet object as it appears in includes.
type Tweet struct {
	ID             string              `json:"id"`
	Text           string              `json:"text"`
	AuthorID       string              `json:"author_id,omitempty"`
	ConversationID string              `json:"conversation_id,omitempty"`
	CreatedAt      string              `json:"created_at,omitempty"`
	Lang           string              `json:"lang,omitempty"`
	PublicMetrics  *TweetPublicMetrics `json:"public_metrics,omitempty"`
}

// TweetPublicMetrics are the public engagement counts for a tweet.
type TweetPublicMetrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
}
