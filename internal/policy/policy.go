// Package policy centralizes the visibility and authorization rules.
// Every rule is a pure function over the caller identity and entity
// state, so the rules are testable without any storage behind them.
package policy

import "github.com/BloggingApp/content-service/internal/model"

// CanReadPost allows anyone to read a published post; drafts are
// readable by their author only. Callers that are denied should be
// answered with a not-found error so that hidden posts stay
// indistinguishable from absent ones.
func CanReadPost(caller model.Identity, post *model.Post) bool {
	return post.Published() || caller.Is(post.AuthorID)
}

// CanModifyPost gates edits, deletes and publish-state changes.
func CanModifyPost(caller model.Identity, post *model.Post) bool {
	return caller.Is(post.AuthorID)
}

// CanComment requires an authenticated caller; which post is being
// commented on does not matter.
func CanComment(caller model.Identity) bool {
	return !caller.Anonymous()
}

func CanDeleteComment(caller model.Identity, comment *model.Comment) bool {
	return caller.Is(comment.AuthorID)
}
