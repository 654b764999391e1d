package twift

import (
	"sort"
	"strings"
)

// UserField selects an optional user attribute for the server to include
// in responses (the v2 `user.fields` query parameter).
type UserField string

const (
	UserFieldCreatedAt       UserField = "created_at"
	UserFieldDescription     UserField = "description"
	UserFieldEntities        UserField = "entities"
	UserFieldID              UserField = "id"
	UserFieldLocation        UserField = "location"
	UserFieldName            UserField = "name"
	UserFieldPinnedTweetID   UserField = "pinned_tweet_id"
	UserFieldProfileImageURL UserField = "profile_image_url"
	UserFieldProtected       UserField = "protected"
	UserFieldPublicMetrics   UserField = "public_metrics"
	UserFieldURL             UserField = "url"
	UserFieldUsername        UserField = "username"
	UserFieldVerified        UserField = "verified"
	UserFieldWithheld        UserField = "withheld"
)

// TweetField selects an optional tweet attribute (the v2 `tweet.fields`
// query parameter).
type TweetField string

const (
	TweetFieldAttachments    TweetField = "attachments"
	TweetFieldAuthorID       TweetField = "author_id"
	TweetFieldConversationID TweetField = "conversation_id"
	TweetFieldCreatedAt      TweetField = "created_at"
	TweetFieldEntities       TweetField = "entities"
	TweetFieldID             TweetField = "id"
	TweetFieldLang           TweetField = "lang"
	TweetFieldPublicMetrics  TweetField = "public_metrics"
	TweetFieldSource         TweetField = "source"
	TweetFieldText           TweetField = "text"
)

// Expansion names a relation the server should resolve inline and return
// in the includes side channel.
type Expansion string

const (
	ExpansionPinnedTweetID Expansion = "pinned_tweet_id"
	ExpansionAuthorID      Expansion = "author_id"
)

// joinFields serializes a selection set as a comma-joined list.
// Duplicates collapse and the output is sorted so encodings are
// reproducible. An empty set yields "".
func joinFields[T ~string](fields []T) string {
	if len(fields) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(fields))
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		s := string(f)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		names = append(names, s)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
