package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MrEthical07/goEdu/transport"
)

type Discussions struct {
	c *caller
}

func (d *Discussions) List(ctx context.Context, p Params) ([]Discussion, error) {
	var out []Discussion
	err := d.c.get(ctx, "/discussion", p.values(), &out)
	return out, err
}

func (d *Discussions) Detail(ctx context.Context, discussionID int64) (Discussion, error) {
	var out Discussion
	if err := d.c.require("discussions.detail", id("discussionId", discussionID)); err != nil {
		return out, err
	}
	err := d.c.get(ctx, path("discussion", discussionID), nil, &out)
	return out, err
}

func (d *Discussions) Create(ctx context.Context, in DiscussionInput) (Discussion, error) {
	var out Discussion
	err := d.c.post(ctx, "/discussion", in, &out)
	return out, err
}

func (d *Discussions) Update(ctx context.Context, discussionID int64, in DiscussionInput) (Discussion, error) {
	var out Discussion
	if err := d.c.require("discussions.update", id("discussionId", discussionID)); err != nil {
		return out, err
	}
	err := d.c.put(ctx, path("discussion", discussionID), nil, in, &out)
	return out, err
}

func (d *Discussions) Delete(ctx context.Context, discussionID int64) error {
	if err := d.c.require("discussions.delete", id("discussionId", discussionID)); err != nil {
		return err
	}
	return d.c.delete(ctx, path("discussion", discussionID), nil)
}

func (d *Discussions) ByClass(ctx context.Context, classID int64, p Params) ([]Discussion, error) {
	var out []Discussion
	if err := d.c.require("discussions.by_class", id("classId", classID)); err != nil {
		return out, err
	}
	err := d.c.get(ctx, path("class", classID, "discussions"), p.values(), &out)
	return out, err
}

func (d *Discussions) Like(ctx context.Context, discussionID int64) error {
	if err := d.c.require("discussions.like", id("discussionId", discussionID)); err != nil {
		return err
	}
	return d.c.post(ctx, path("discussion", discussionID, "like"), nil, nil)
}

func (d *Discussions) Unlike(ctx context.Context, discussionID int64) error {
	if err := d.c.require("discussions.unlike", id("discussionId", discussionID)); err != nil {
		return err
	}
	return d.c.delete(ctx, path("discussion", discussionID, "like"), nil)
}

// Pin sets or clears the pinned flag of a discussion.
func (d *Discussions) Pin(ctx context.Context, discussionID int64, pinned bool) (Discussion, error) {
	var out Discussion
	if err := d.c.require("discussions.pin", id("discussionId", discussionID)); err != nil {
		return out, err
	}
	err := d.c.d.Do(ctx, transport.Request{
		Method: http.MethodPut,
		Path:   path("discussions", discussionID, "pin"),
		Query:  query("isPinned", strconv.FormatBool(pinned)),
	}, &out)
	return out, err
}
