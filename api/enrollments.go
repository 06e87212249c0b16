package api

import (
	"context"
	"net/http"

	"github.com/MrEthical07/goEdu/transport"
)

type Enrollments struct {
	c *caller
}

// Enroll adds a student to a class.
func (e *Enrollments) Enroll(ctx context.Context, classID, studentID int64) (Enrollment, error) {
	var out Enrollment
	if err := e.c.require("enrollments.enroll", id("classId", classID), id("studentId", studentID)); err != nil {
		return out, err
	}
	err := e.c.d.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/enrollments",
		Query:  query("classId", itoa(classID), "studentId", itoa(studentID)),
	}, &out)
	return out, err
}

func (e *Enrollments) ByClass(ctx context.Context, classID int64) ([]Enrollment, error) {
	var out []Enrollment
	if err := e.c.require("enrollments.by_class", id("classId", classID)); err != nil {
		return out, err
	}
	err := e.c.get(ctx, path("enrollments", "class", classID), nil, &out)
	return out, err
}

func (e *Enrollments) FindUnique(ctx context.Context, classID, studentID int64) (Enrollment, error) {
	var out Enrollment
	if err := e.c.require("enrollments.find_unique", id("classId", classID), id("studentId", studentID)); err != nil {
		return out, err
	}
	q := query("classId", itoa(classID), "studentId", itoa(studentID))
	err := e.c.get(ctx, "/enrollments/unique", q, &out)
	return out, err
}
