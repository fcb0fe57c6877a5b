package ledger

// 声望边界：溢出时饱和截断，而不是报错或回绕
const (
	MinReputation = -1_000_000
	MaxReputation = 1_000_000
)

// 声望变动常量（正数增加，负数扣除）；撤销投票时应用当初变动的精确相反值
const (
	RepPostCreate       = 10
	RepPostRemove       = -10
	RepCommentCreate    = 5
	RepCommentRemove    = -5
	RepUpvoteReceived   = 2
	RepDownvoteReceived = -1
)

// adjustReputation adds delta to the account's reputation, clamped into
// [MinReputation, MaxReputation], and returns the resulting value. This is
// the sole mutator of reputation. Caller holds the write lock and has
// already validated the identity.
func (l *Ledger) adjustReputation(id Identity, delta int64) int64 {
	acc := l.account(id)
	r := acc.Reputation + delta
	if r > MaxReputation {
		r = MaxReputation
	}
	if r < MinReputation {
		r = MinReputation
	}
	acc.Reputation = r
	return r
}
