// Package resourcepool models a physical resource shared by several services,
// such as the single bungalow behind both accommodation offerings.
package resourcepool

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID         = errors.New("pool id is required")
	ErrInvalidCapacity = errors.New("pool capacity must be positive")
)

type Pool struct {
	id       string
	name     string
	capacity int
}

func NewPool(id, name string, capacity int) (*Pool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Pool{id: id, name: name, capacity: capacity}, nil
}

func ReconstructPool(id, name string, capacity int) *Pool {
	return &Pool{id: id, name: name, capacity: capacity}
}

func (p *Pool) ID() string    { return p.id }
func (p *Pool) Name() string  { return p.name }
func (p *Pool) Capacity() int { return p.capacity }
