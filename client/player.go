package client

import "fmt"

// CoursePlayer drives lesson playback for one enrolled course. It keeps
// the completed set locally so marking an already-finished lesson never
// issues a network call.
type CoursePlayer struct {
	client    *Client
	Course    *Course
	completed map[uint]bool
	active    *Lesson
}

// OpenPlayer fetches the course detail and the caller's enrollment for
// it. Playback is gated on enrollment.
func (c *Client) OpenPlayer(courseID uint) (*CoursePlayer, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}

	course, err := c.Course(courseID)
	if err != nil {
		return nil, err
	}

	enrollments, err := c.MyEnrollments()
	if err != nil {
		return nil, err
	}

	var enrollment *Enrollment
	for i := range enrollments {
		if enrollments[i].CourseID == courseID {
			enrollment = &enrollments[i]
			break
		}
	}
	if enrollment == nil {
		return nil, ErrNotEnrolled
	}

	completed := make(map[uint]bool, len(enrollment.CompletedLessons))
	for _, id := range enrollment.CompletedLessons {
		completed[id] = true
	}

	return &CoursePlayer{
		client:    c,
		Course:    course,
		completed: completed,
	}, nil
}

// SelectLesson makes any lesson of the course the active one
func (p *CoursePlayer) SelectLesson(lessonID uint) error {
	for mi := range p.Course.Modules {
		for li := range p.Course.Modules[mi].Lessons {
			if p.Course.Modules[mi].Lessons[li].ID == lessonID {
				p.active = &p.Course.Modules[mi].Lessons[li]
				return nil
			}
		}
	}
	return fmt.Errorf("client: lesson %d not found in course %d", lessonID, p.Course.ID)
}

// ActiveLesson returns the currently selected lesson, or nil
func (p *CoursePlayer) ActiveLesson() *Lesson {
	return p.active
}

// Completed reports whether a lesson has been marked finished
func (p *CoursePlayer) Completed(lessonID uint) bool {
	return p.completed[lessonID]
}

// MarkComplete marks a lesson finished. Already-completed lessons are
// skipped locally.
func (p *CoursePlayer) MarkComplete(lessonID uint) error {
	if p.completed[lessonID] {
		return nil
	}

	if _, err := p.client.CompleteLesson(p.Course.ID, lessonID); err != nil {
		return err
	}

	p.completed[lessonID] = true
	return nil
}

// Progress returns the completed and total lesson counts for the course
func (p *CoursePlayer) Progress() (completed, total int) {
	for _, module := range p.Course.Modules {
		total += len(module.Lessons)
	}
	return len(p.completed), total
}
