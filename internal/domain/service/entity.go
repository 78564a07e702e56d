package service

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName      = errors.New("service name is required")
	ErrNegativePrice  = errors.New("service price cannot be negative")
	ErrInvalidMode    = errors.New("invalid capacity mode")
	ErrPoolRequired   = errors.New("pool capacity mode requires a pool id")
	ErrPoolNotAllowed = errors.New("pool id is only allowed with pool capacity mode")
)

type Service struct {
	id          int64
	name        string
	description string
	duration    string
	price       int64
	mode        CapacityMode
	poolID      *string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(name, description, duration string, price int64, mode CapacityMode, poolID *string, active bool) (*Service, error) {
	s := &Service{
		name:        strings.TrimSpace(name),
		description: description,
		duration:    duration,
		price:       price,
		mode:        mode,
		poolID:      poolID,
		active:      active,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(
	id int64,
	name, description, duration string,
	price int64,
	mode CapacityMode,
	poolID *string,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		duration:    duration,
		price:       price,
		mode:        mode,
		poolID:      poolID,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Changes is a partial update; nil fields keep their current value.
type Changes struct {
	Name        *string
	Description *string
	Duration    *string
	Price       *int64
	Mode        *CapacityMode
	PoolID      *string
	Active      *bool
}

// Apply returns the updated service without touching the receiver. Switching
// away from pool mode drops the pool reference.
func (s *Service) Apply(ch Changes) (*Service, error) {
	next := *s
	if ch.Name != nil {
		next.name = strings.TrimSpace(*ch.Name)
	}
	if ch.Description != nil {
		next.description = *ch.Description
	}
	if ch.Duration != nil {
		next.duration = *ch.Duration
	}
	if ch.Price != nil {
		next.price = *ch.Price
	}
	if ch.Mode != nil {
		next.mode = *ch.Mode
		if next.mode != ModePool && ch.PoolID == nil {
			next.poolID = nil
		}
	}
	if ch.PoolID != nil {
		id := *ch.PoolID
		next.poolID = &id
	}
	if ch.Active != nil {
		next.active = *ch.Active
	}
	if err := next.validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *Service) validate() error {
	if s.name == "" {
		return ErrEmptyName
	}
	if s.price < 0 {
		return ErrNegativePrice
	}
	if !s.mode.IsValid() {
		return ErrInvalidMode
	}
	hasPool := s.poolID != nil && *s.poolID != ""
	if s.mode == ModePool && !hasPool {
		return ErrPoolRequired
	}
	if s.mode != ModePool && hasPool {
		return ErrPoolNotAllowed
	}
	if !hasPool {
		s.poolID = nil
	}
	return nil
}

func (s *Service) IsSlotBased() bool { return s.mode == ModeSlot }
func (s *Service) IsPooled() bool    { return s.mode == ModePool }

func (s *Service) ID() int64            { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) Duration() string     { return s.duration }
func (s *Service) Price() int64         { return s.price }
func (s *Service) Mode() CapacityMode   { return s.mode }
func (s *Service) PoolID() *string      { return s.poolID }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
