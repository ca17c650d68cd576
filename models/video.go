// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The learn-app Authors

package models

// Video is a lecture video that belongs to a course. The link to the course
// is kept by title string rather than by course ID.
type Video struct {
	// ID is the internal unique identifier of the video.
	ID int64 `json:"id"`

	// Title is the display title of the video.
	Title string `json:"title"`

	// Description is a free-form summary of the video contents.
	Description string `json:"description"`

	// URL is the location of the video file.
	URL string `json:"url"`

	// CourseTitle is the Name of the course this video belongs to.
	CourseTitle string `json:"courseTitle"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}
