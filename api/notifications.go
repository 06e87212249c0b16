package api

import "context"

type Notifications struct {
	c *caller
}

func (n *Notifications) List(ctx context.Context, p Params) ([]Notification, error) {
	var out []Notification
	err := n.c.get(ctx, "/notification", p.values(), &out)
	return out, err
}

func (n *Notifications) MarkRead(ctx context.Context, notificationID int64) error {
	if err := n.c.require("notifications.mark_read", id("notificationId", notificationID)); err != nil {
		return err
	}
	return n.c.put(ctx, path("notification", notificationID, "read"), nil, nil, nil)
}

func (n *Notifications) MarkAllRead(ctx context.Context) error {
	return n.c.put(ctx, "/notification/read-all", nil, nil, nil)
}

func (n *Notifications) Delete(ctx context.Context, notificationID int64) error {
	if err := n.c.require("notifications.delete", id("notificationId", notificationID)); err != nil {
		return err
	}
	return n.c.delete(ctx, path("notification", notificationID), nil)
}
