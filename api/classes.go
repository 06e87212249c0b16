package api

import "context"

// Classes covers teaching classes and their membership.
type Classes struct {
	c *caller
}

func (cl *Classes) List(ctx context.Context, p Params) ([]Class, error) {
	var out []Class
	err := cl.c.get(ctx, "/class", p.values(), &out)
	return out, err
}

func (cl *Classes) Detail(ctx context.Context, classID int64) (Class, error) {
	var out Class
	if err := cl.c.require("classes.detail", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("class", classID), nil, &out)
	return out, err
}

func (cl *Classes) Create(ctx context.Context, in ClassInput) (Class, error) {
	var out Class
	err := cl.c.post(ctx, "/class", in, &out)
	return out, err
}

func (cl *Classes) Update(ctx context.Context, classID int64, in ClassInput) (Class, error) {
	var out Class
	if err := cl.c.require("classes.update", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.put(ctx, path("class", classID), nil, in, &out)
	return out, err
}

func (cl *Classes) Delete(ctx context.Context, classID int64) error {
	if err := cl.c.require("classes.delete", id("classId", classID)); err != nil {
		return err
	}
	return cl.c.delete(ctx, path("class", classID), nil)
}

// Join enrolls the signed-in student with an invite code.
func (cl *Classes) Join(ctx context.Context, inviteCode string) (Class, error) {
	var out Class
	if err := cl.c.require("classes.join", str("inviteCode", inviteCode)); err != nil {
		return out, err
	}
	err := cl.c.post(ctx, "/class/join", map[string]string{"inviteCode": inviteCode}, &out)
	return out, err
}

func (cl *Classes) Members(ctx context.Context, classID int64, p Params) ([]Member, error) {
	var out []Member
	if err := cl.c.require("classes.members", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("class", classID, "members"), p.values(), &out)
	return out, err
}

func (cl *Classes) RemoveMember(ctx context.Context, classID, userID int64) error {
	if err := cl.c.require("classes.remove_member", id("classId", classID), id("userId", userID)); err != nil {
		return err
	}
	return cl.c.delete(ctx, path("class", classID, "members", userID), nil)
}

// FindByCode looks a class up by its invite code.
func (cl *Classes) FindByCode(ctx context.Context, code string) (Class, error) {
	var out Class
	if err := cl.c.require("classes.find_by_code", str("code", code)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("classes", "code", code), nil, &out)
	return out, err
}

func (cl *Classes) ListByTeacher(ctx context.Context, teacherID int64) ([]Class, error) {
	var out []Class
	if err := cl.c.require("classes.list_by_teacher", id("teacherId", teacherID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("classes", "teacher", teacherID), nil, &out)
	return out, err
}
