// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The learn-app Authors

package models

// Course is a learning course available to users. Courses are referenced by
// their human-readable Name from both users and videos.
type Course struct {
	// ID is the internal unique identifier of the course.
	ID int64 `json:"id"`

	// Name is the course title used as the reference key by videos
	// and by the users' CourseTitle field.
	Name string `json:"name"`

	// Category is a free-form grouping label (e.g. "programming").
	Category string `json:"category"`

	// Logo is a URL or path to the course logo image.
	Logo string `json:"logo"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
