package models

// Class represents a course the student can attend.
type Class struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Professor   string  `db:"professor" json:"professor"`
	Location    string  `db:"location" json:"location"`
	Color       string  `db:"color" json:"color"`
}

// Schedule places a class on a weekday. DayOfWeek follows time.Weekday
// numbering: 0 = Sunday through 6 = Saturday. Times are zero-padded
// "HH:MM" strings so lexicographic order matches chronological order.
type Schedule struct {
	ID        int    `db:"id" json:"id"`
	ClassID   int    `db:"class_id" json:"classId"`
	DayOfWeek int    `db:"day_of_week" json:"dayOfWeek"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`
}

// ClassWithSchedule pairs a class with one of its schedule slots, the
// shape the timetable and "today" views render.
type ClassWithSchedule struct {
	Class
	Schedule Schedule `json:"schedule"`
}
