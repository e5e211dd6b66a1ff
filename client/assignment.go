package client

import (
	"sort"
	"sync"
	"time"

	"github.com/tdelacour/semesterbuddy"
)

// AssignmentStub keeps assignments in memory on the client side. There is
// no assignment route on the server in this revision, so the managers work
// against this local store instead.
type AssignmentStub struct {
	mu          sync.Mutex
	nextID      int
	assignments map[int]*semesterbuddy.Assignment
}

func NewAssignmentStub() *AssignmentStub {
	return &AssignmentStub{
		nextID:      1,
		assignments: make(map[int]*semesterbuddy.Assignment),
	}
}

func (s *AssignmentStub) Create(assignment *semesterbuddy.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	assignment.ID = s.nextID
	s.nextID++
	assignment.CreatedAt = now
	assignment.UpdatedAt = now
	if assignment.Status == "" {
		assignment.Status = semesterbuddy.StatusPending
	}

	stored := *assignment
	s.assignments[assignment.ID] = &stored
	return nil
}

func (s *AssignmentStub) ListByOwner(userID int) ([]*semesterbuddy.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignments := make([]*semesterbuddy.Assignment, 0)
	for _, assignment := range s.assignments {
		if assignment.UserID != userID {
			continue
		}
		a := *assignment
		assignments = append(assignments, &a)
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt.After(assignments[j].CreatedAt)
	})
	return assignments, nil
}

func (s *AssignmentStub) Get(id int) (*semesterbuddy.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, ok := s.assignments[id]
	if !ok {
		return nil, nil
	}

	a := *assignment
	return &a, nil
}

func (s *AssignmentStub) Update(id int, u semesterbuddy.AssignmentUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, ok := s.assignments[id]
	if !ok {
		return false, nil
	}

	if u.Title != nil {
		assignment.Title = *u.Title
	}
	if u.Description != nil {
		assignment.Description = *u.Description
	}
	if u.DueDate != nil {
		assignment.DueDate = *u.DueDate
	}
	if u.Status != nil {
		assignment.Status = *u.Status
	}
	if u.Priority != nil {
		assignment.Priority = *u.Priority
	}
	assignment.UpdatedAt = time.Now()

	return true, nil
}

func (s *AssignmentStub) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return false, nil
	}

	delete(s.assignments, id)
	return true, nil
}
