package api

import "context"

type Comments struct {
	c *caller
}

func (cm *Comments) List(ctx context.Context, discussionID int64, p Params) ([]Comment, error) {
	var out []Comment
	if err := cm.c.require("comments.list", id("discussionId", discussionID)); err != nil {
		return out, err
	}
	err := cm.c.get(ctx, path("discussion", discussionID, "comments"), p.values(), &out)
	return out, err
}

func (cm *Comments) Create(ctx context.Context, discussionID int64, in CommentInput) (Comment, error) {
	var out Comment
	if err := cm.c.require("comments.create", id("discussionId", discussionID)); err != nil {
		return out, err
	}
	err := cm.c.post(ctx, path("discussion", discussionID, "comments"), in, &out)
	return out, err
}

func (cm *Comments) Update(ctx context.Context, commentID int64, in CommentInput) (Comment, error) {
	var out Comment
	if err := cm.c.require("comments.update", id("commentId", commentID)); err != nil {
		return out, err
	}
	err := cm.c.put(ctx, path("comment", commentID), nil, in, &out)
	return out, err
}

func (cm *Comments) Delete(ctx context.Context, commentID int64) error {
	if err := cm.c.require("comments.delete", id("commentId", commentID)); err != nil {
		return err
	}
	return cm.c.delete(ctx, path("comment", commentID), nil)
}
