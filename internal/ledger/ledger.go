package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Identity is the already-authenticated caller identity supplied by the
// execution environment. Zero means anonymous and is rejected by every
// mutating operation.
type Identity uint64

// ItemKind selects the post or the comment namespace.
type ItemKind string

const (
	KindPost    ItemKind = "post"
	KindComment ItemKind = "comment"
)

// 内容长度与批量上限
const (
	MaxPostContent     = 10000
	MaxCommentContent  = 5000
	MaxCommentsPerPost = 1000
	MaxBatchSize       = 100
)

// Account 账户状态（声望、计数），首次写操作时惰性创建，永不删除
type Account struct {
	Reputation   int64
	PostCount    uint64
	CommentCount uint64
}

// Post ids are dense and start at 1; removal only flips IsActive so existing
// references stay valid (墓碑式删除，槽位永久保留).
type Post struct {
	ID         uint64
	Author     Identity
	Content    string
	Votes      int64
	IsActive   bool
	CreatedAt  time.Time
	CommentIDs []uint64
}

// Comment has the same shape as Post plus the back-reference to its post.
type Comment struct {
	ID        uint64
	PostID    uint64
	Author    Identity
	Content   string
	Votes     int64
	IsActive  bool
	CreatedAt time.Time
}

// VoteRecord tracks a single (voter, item) pair through
// Unvoted → Voted(direction) → Revoked. Revoked is terminal: the record is
// frozen and no later vote or revoke is accepted.
type VoteRecord struct {
	HasVoted   bool
	IsUpvote   bool
	HasRevoked bool
}

type voteKey struct {
	Voter  Identity
	ItemID uint64
}

// Ledger is the in-memory state machine holding all core state. Every
// mutating method holds the write lock for its whole duration and performs
// all validation before the first state write, so a rejected call leaves the
// stores unchanged and a call can never observe another call half-applied.
type Ledger struct {
	mu sync.RWMutex

	accounts     map[Identity]*Account
	posts        []*Post
	comments     []*Comment
	postVotes    map[voteKey]*VoteRecord
	commentVotes map[voteKey]*VoteRecord

	access   *AccessControl
	notifier Notifier

	// version increments on every successful mutation; read-side caches key
	// on it so stale entries can never be served.
	version uint64
}

// New creates a ledger owned by the deployer identity. The owner is granted
// moderator status immediately. A nil notifier discards actions.
func New(owner Identity, n Notifier) (*Ledger, error) {
	if owner == 0 {
		return nil, fmt.Errorf("%w: zero owner identity", ErrValidation)
	}
	if n == nil {
		n = noopNotifier{}
	}
	return &Ledger{
		accounts:     make(map[Identity]*Account),
		postVotes:    make(map[voteKey]*VoteRecord),
		commentVotes: make(map[voteKey]*VoteRecord),
		access:       NewAccessControl(owner),
		notifier:     n,
	}, nil
}

// Version returns the mutation counter.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// account returns the lazily created account entry. Caller holds the write
// lock and has already validated the identity.
func (l *Ledger) account(id Identity) *Account {
	acc, ok := l.accounts[id]
	if !ok {
		acc = &Account{}
		l.accounts[id] = acc
	}
	return acc
}

// itemRef exposes the fields shared by posts and comments so the vote and
// removal paths can treat both namespaces uniformly.
type itemRef struct {
	author Identity
	votes  *int64
	active *bool
}

// activeItem resolves an id inside the given namespace and requires the item
// to be live. An unallocated slot is ErrNotFound, a tombstoned one
// ErrInactive.
func (l *Ledger) activeItem(kind ItemKind, id uint64) (itemRef, error) {
	switch kind {
	case KindPost:
		p, err := l.post(id)
		if err != nil {
			return itemRef{}, err
		}
		if !p.IsActive {
			return itemRef{}, fmt.Errorf("%w: post %d", ErrInactive, id)
		}
		return itemRef{author: p.Author, votes: &p.Votes, active: &p.IsActive}, nil
	case KindComment:
		c, err := l.comment(id)
		if err != nil {
			return itemRef{}, err
		}
		if !c.IsActive {
			return itemRef{}, fmt.Errorf("%w: comment %d", ErrInactive, id)
		}
		return itemRef{author: c.Author, votes: &c.Votes, active: &c.IsActive}, nil
	default:
		return itemRef{}, fmt.Errorf("%w: unknown item kind %q", ErrValidation, kind)
	}
}

func (l *Ledger) post(id uint64) (*Post, error) {
	if id == 0 || id > uint64(len(l.posts)) {
		return nil, fmt.Errorf("%w: post %d", ErrNotFound, id)
	}
	return l.posts[id-1], nil
}

func (l *Ledger) comment(id uint64) (*Comment, error) {
	if id == 0 || id > uint64(len(l.comments)) {
		return nil, fmt.Errorf("%w: comment %d", ErrNotFound, id)
	}
	return l.comments[id-1], nil
}

func (l *Ledger) voteRecords(kind ItemKind) map[voteKey]*VoteRecord {
	if kind == KindComment {
		return l.commentVotes
	}
	return l.postVotes
}

// bump marks a successful mutation and emits its action record. Called after
// every state write of the operation has landed.
func (l *Ledger) bump(a Action) {
	l.version++
	l.notifier.Notify(a)
}
