package entities

import (
	"errors"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

type Task struct {
	Id          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
}

func NewTask(title, description string) *Task {
	return &Task{
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Title:       title,
		Description: description,
	}
}

func (t *Task) validate() error {
	if t.Title == "" {
		return errors.New("title must not be empty")
	}
	if utf8.RuneCountInString(t.Title) > maxTitleLength {
		return errors.New("title must be at most 100 characters")
	}
	if utf8.RuneCountInString(t.Description) > maxDescriptionLength {
		return errors.New("description must be at most 500 characters")
	}
	return nil
}

func (t *Task) UpdateDetails(title, description string) error {
	t.Title = title
	t.Description = description
	t.UpdatedAt = time.Now()
	return t.validate()
}
