package ledger

// ActionKind classifies an action record for downstream consumers.
type ActionKind string

const (
	PostAction       ActionKind = "post"
	CommentAction    ActionKind = "comment"
	VoteAction       ActionKind = "vote"
	ModeratorChanged ActionKind = "moderator"
)

// 动作标签常量，与 ActionKind 一起构成通知记录的内容
const (
	LabelCreatePost      = "create_post"
	LabelRemovePost      = "remove_post"
	LabelCreateComment   = "create_comment"
	LabelRemoveComment   = "remove_comment"
	LabelUpvotePost      = "upvote_post"
	LabelDownvotePost    = "downvote_post"
	LabelRevokePost      = "revoke_post"
	LabelUpvoteComment   = "upvote_comment"
	LabelDownvoteComment = "downvote_comment"
	LabelRevokeComment   = "revoke_comment"
	LabelGrantModerator  = "grant_moderator"
	LabelRevokeModerator = "revoke_moderator"
)

// Action is the structured record emitted once per successful mutation,
// never on failure. For moderated takedowns Label carries the supplied
// reason instead of a fixed label. Reputation is the resulting reputation of
// the account the mutation credited or debited (the item author for votes,
// the actor for create/remove, the target for moderator changes).
type Action struct {
	Kind       ActionKind `json:"kind"`
	ItemID     uint64     `json:"item_id"`
	Actor      Identity   `json:"actor"`
	Label      string     `json:"label"`
	Reputation int64      `json:"reputation"`
}

// Notifier receives the action stream. Notify is called synchronously after
// all state writes of the mutation have landed; implementations that do slow
// I/O should hand off internally.
type Notifier interface {
	Notify(a Action)
}

type noopNotifier struct{}

func (noopNotifier) Notify(Action) {}
