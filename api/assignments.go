package api

import "context"

type Assignments struct {
	c *caller
}

func (a *Assignments) List(ctx context.Context, p Params) ([]Assignment, error) {
	var out []Assignment
	err := a.c.get(ctx, "/assignment", p.values(), &out)
	return out, err
}

func (a *Assignments) Detail(ctx context.Context, assignmentID int64) (Assignment, error) {
	var out Assignment
	if err := a.c.require("assignments.detail", id("assignmentId", assignmentID)); err != nil {
		return out, err
	}
	err := a.c.get(ctx, path("assignment", assignmentID), nil, &out)
	return out, err
}

func (a *Assignments) Create(ctx context.Context, in AssignmentInput) (Assignment, error) {
	var out Assignment
	err := a.c.post(ctx, "/assignment", in, &out)
	return out, err
}

func (a *Assignments) Update(ctx context.Context, assignmentID int64, in AssignmentInput) (Assignment, error) {
	var out Assignment
	if err := a.c.require("assignments.update", id("assignmentId", assignmentID)); err != nil {
		return out, err
	}
	err := a.c.put(ctx, path("assignment", assignmentID), nil, in, &out)
	return out, err
}

func (a *Assignments) Delete(ctx context.Context, assignmentID int64) error {
	if err := a.c.require("assignments.delete", id("assignmentId", assignmentID)); err != nil {
		return err
	}
	return a.c.delete(ctx, path("assignment", assignmentID), nil)
}

func (a *Assignments) ByCourse(ctx context.Context, courseID int64, p Params) ([]Assignment, error) {
	var out []Assignment
	if err := a.c.require("assignments.by_course", id("courseId", courseID)); err != nil {
		return out, err
	}
	err := a.c.get(ctx, path("course", courseID, "assignments"), p.values(), &out)
	return out, err
}

// ForStudent lists the assignments visible to the signed-in student.
func (a *Assignments) ForStudent(ctx context.Context, p Params) ([]Assignment, error) {
	var out []Assignment
	err := a.c.get(ctx, "/assignment/student", p.values(), &out)
	return out, err
}
