package ledger

import (
	"fmt"
	"time"
)

// CreatePost validates the content, assigns the next dense post id and
// credits the author. Returns the new post id.
func (l *Ledger) CreatePost(author Identity, content string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if author == 0 {
		return 0, fmt.Errorf("%w: zero author identity", ErrValidation)
	}
	if len(content) == 0 || len(content) > MaxPostContent {
		return 0, fmt.Errorf("%w: post content must be 1..%d bytes", ErrValidation, MaxPostContent)
	}

	post := &Post{
		ID:        uint64(len(l.posts)) + 1,
		Author:    author,
		Content:   content,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	l.posts = append(l.posts, post)
	l.account(author).PostCount++
	rep := l.adjustReputation(author, RepPostCreate)

	l.bump(Action{Kind: PostAction, ItemID: post.ID, Actor: author, Label: LabelCreatePost, Reputation: rep})
	return post.ID, nil
}

// CreateComment appends a comment to an active post. A post holds at most
// MaxCommentsPerPost comments counting removed ones, since the index is
// append-only.
func (l *Ledger) CreateComment(author Identity, postID uint64, content string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if author == 0 {
		return 0, fmt.Errorf("%w: zero author identity", ErrValidation)
	}
	if len(content) == 0 || len(content) > MaxCommentContent {
		return 0, fmt.Errorf("%w: comment content must be 1..%d bytes", ErrValidation, MaxCommentContent)
	}
	post, err := l.post(postID)
	if err != nil {
		return 0, err
	}
	if !post.IsActive {
		return 0, fmt.Errorf("%w: post %d", ErrInactive, postID)
	}
	if len(post.CommentIDs) >= MaxCommentsPerPost {
		return 0, fmt.Errorf("%w: post %d already holds %d comments", ErrValidation, postID, MaxCommentsPerPost)
	}

	comment := &Comment{
		ID:        uint64(len(l.comments)) + 1,
		PostID:    postID,
		Author:    author,
		Content:   content,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	l.comments = append(l.comments, comment)
	post.CommentIDs = append(post.CommentIDs, comment.ID)
	l.account(author).CommentCount++
	rep := l.adjustReputation(author, RepCommentCreate)

	l.bump(Action{Kind: CommentAction, ItemID: comment.ID, Actor: author, Label: LabelCreateComment, Reputation: rep})
	return comment.ID, nil
}

// Remove is the self-service takedown: only the author may remove their own
// item, the creation reputation grant is returned, and the tombstone is
// permanent.
func (l *Ledger) Remove(caller Identity, kind ItemKind, id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller == 0 {
		return fmt.Errorf("%w: zero caller identity", ErrValidation)
	}
	ref, err := l.activeItem(kind, id)
	if err != nil {
		return err
	}
	if ref.author != caller {
		return fmt.Errorf("%w: only the author may remove %s %d", ErrUnauthorized, kind, id)
	}

	*ref.active = false
	delta := int64(RepPostRemove)
	actionKind, label := PostAction, LabelRemovePost
	if kind == KindComment {
		delta = RepCommentRemove
		actionKind, label = CommentAction, LabelRemoveComment
	}
	rep := l.adjustReputation(caller, delta)

	l.bump(Action{Kind: actionKind, ItemID: id, Actor: caller, Label: label, Reputation: rep})
	return nil
}

// AdminRemove is the moderated takedown. It requires moderator or owner
// role, leaves reputation untouched (区别于作者自删) and logs the supplied
// reason.
func (l *Ledger) AdminRemove(caller Identity, kind ItemKind, id uint64, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller == 0 {
		return fmt.Errorf("%w: zero caller identity", ErrValidation)
	}
	if !l.access.IsModerator(caller) {
		return fmt.Errorf("%w: caller %d is not a moderator", ErrUnauthorized, caller)
	}
	ref, err := l.activeItem(kind, id)
	if err != nil {
		return err
	}

	*ref.active = false
	actionKind := PostAction
	if kind == KindComment {
		actionKind = CommentAction
	}
	rep := l.account(ref.author).Reputation

	l.bump(Action{Kind: actionKind, ItemID: id, Actor: caller, Label: reason, Reputation: rep})
	return nil
}

// SetModerator grants or revokes moderator status. Owner only; the owner's
// own status is not revocable.
func (l *Ledger) SetModerator(caller, target Identity, grant bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller == 0 {
		return fmt.Errorf("%w: zero caller identity", ErrValidation)
	}
	if caller != l.access.Owner() {
		return fmt.Errorf("%w: only the owner may manage moderators", ErrUnauthorized)
	}

	var err error
	label := LabelGrantModerator
	if grant {
		err = l.access.Grant(target)
	} else {
		err = l.access.Revoke(target)
		label = LabelRevokeModerator
	}
	if err != nil {
		return err
	}

	rep := l.account(target).Reputation
	l.bump(Action{Kind: ModeratorChanged, ItemID: uint64(target), Actor: caller, Label: label, Reputation: rep})
	return nil
}
