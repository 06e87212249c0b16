package api

import "context"

type Statistics struct {
	c *caller
}

func (s *Statistics) Teacher(ctx context.Context) (Stats, error) {
	var out Stats
	err := s.c.get(ctx, "/statistics/teacher", nil, &out)
	return out, err
}

func (s *Statistics) Student(ctx context.Context) (Stats, error) {
	var out Stats
	err := s.c.get(ctx, "/statistics/student", nil, &out)
	return out, err
}

func (s *Statistics) Class(ctx context.Context, classID int64) (Stats, error) {
	var out Stats
	if err := s.c.require("statistics.class", id("classId", classID)); err != nil {
		return out, err
	}
	err := s.c.get(ctx, path("statistics", "class", classID), nil, &out)
	return out, err
}
