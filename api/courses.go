package api

import "context"

type Courses struct {
	c *caller
}

func (co *Courses) List(ctx context.Context, p Params) ([]Course, error) {
	var out []Course
	err := co.c.get(ctx, "/course", p.values(), &out)
	return out, err
}

func (co *Courses) Detail(ctx context.Context, courseID int64) (Course, error) {
	var out Course
	if err := co.c.require("courses.detail", id("courseId", courseID)); err != nil {
		return out, err
	}
	err := co.c.get(ctx, path("course", courseID), nil, &out)
	return out, err
}

func (co *Courses) Create(ctx context.Context, in CourseInput) (Course, error) {
	var out Course
	err := co.c.post(ctx, "/course", in, &out)
	return out, err
}

func (co *Courses) Update(ctx context.Context, courseID int64, in CourseInput) (Course, error) {
	var out Course
	if err := co.c.require("courses.update", id("courseId", courseID)); err != nil {
		return out, err
	}
	err := co.c.put(ctx, path("course", courseID), nil, in, &out)
	return out, err
}

func (co *Courses) Delete(ctx context.Context, courseID int64) error {
	if err := co.c.require("courses.delete", id("courseId", courseID)); err != nil {
		return err
	}
	return co.c.delete(ctx, path("course", courseID), nil)
}

func (co *Courses) ByClass(ctx context.Context, classID int64, p Params) ([]Course, error) {
	var out []Course
	if err := co.c.require("courses.by_class", id("classId", classID)); err != nil {
		return out, err
	}
	err := co.c.get(ctx, path("class", classID, "courses"), p.values(), &out)
	return out, err
}
