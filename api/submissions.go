package api

import "context"

type Submissions struct {
	c *caller
}

func (s *Submissions) List(ctx context.Context, p Params) ([]Submission, error) {
	var out []Submission
	err := s.c.get(ctx, "/submission", p.values(), &out)
	return out, err
}

func (s *Submissions) Detail(ctx context.Context, submissionID int64) (Submission, error) {
	var out Submission
	if err := s.c.require("submissions.detail", id("submissionId", submissionID)); err != nil {
		return out, err
	}
	err := s.c.get(ctx, path("submission", submissionID), nil, &out)
	return out, err
}

func (s *Submissions) Create(ctx context.Context, in SubmissionInput) (Submission, error) {
	var out Submission
	if err := s.c.require("submissions.create", id("assignmentId", in.AssignmentID)); err != nil {
		return out, err
	}
	err := s.c.post(ctx, "/submission", in, &out)
	return out, err
}

func (s *Submissions) Update(ctx context.Context, submissionID int64, in SubmissionInput) (Submission, error) {
	var out Submission
	if err := s.c.require("submissions.update", id("submissionId", submissionID)); err != nil {
		return out, err
	}
	err := s.c.put(ctx, path("submission", submissionID), nil, in, &out)
	return out, err
}

func (s *Submissions) Delete(ctx context.Context, submissionID int64) error {
	if err := s.c.require("submissions.delete", id("submissionId", submissionID)); err != nil {
		return err
	}
	return s.c.delete(ctx, path("submission", submissionID), nil)
}

// Grade records a score and optional feedback.
func (s *Submissions) Grade(ctx context.Context, submissionID int64, g Grade) (Submission, error) {
	var out Submission
	if err := s.c.require("submissions.grade", id("submissionId", submissionID)); err != nil {
		return out, err
	}
	err := s.c.post(ctx, path("submission", submissionID, "grade"), g, &out)
	return out, err
}

func (s *Submissions) ByAssignment(ctx context.Context, assignmentID int64, p Params) ([]Submission, error) {
	var out []Submission
	if err := s.c.require("submissions.by_assignment", id("assignmentId", assignmentID)); err != nil {
		return out, err
	}
	err := s.c.get(ctx, path("assignment", assignmentID, "submissions"), p.values(), &out)
	return out, err
}

func (s *Submissions) ByStudent(ctx context.Context, studentID int64, p Params) ([]Submission, error) {
	var out []Submission
	if err := s.c.require("submissions.by_student", id("studentId", studentID)); err != nil {
		return out, err
	}
	err := s.c.get(ctx, path("student", studentID, "submissions"), p.values(), &out)
	return out, err
}

// FindUnique returns the submission of one student for one assignment.
func (s *Submissions) FindUnique(ctx context.Context, assignmentID, studentID int64) (Submission, error) {
	var out Submission
	if err := s.c.require("submissions.find_unique", id("assignmentId", assignmentID), id("studentId", studentID)); err != nil {
		return out, err
	}
	q := query("assignmentId", itoa(assignmentID), "studentId", itoa(studentID))
	err := s.c.get(ctx, "/submissions/unique", q, &out)
	return out, err
}
