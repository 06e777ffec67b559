package domain

import "time"

// ActivityKind labels an entry in the engagement audit trail.
type ActivityKind string

const (
	ActivityLike    ActivityKind = "like"
	ActivityComment ActivityKind = "comment"
)

// Activity is an audit record of an engagement action on a post.
type Activity struct {
	PostID     string
	ActorID    string
	Kind       ActivityKind
	OccurredAt time.Time
}
