package service

import (
	"strings"

	"lentora/internal/models"
	"lentora/internal/timer"
)

type TimerService struct {
	pt *timer.PhaseTimer
}

func NewTimerService(pt *timer.PhaseTimer) *TimerService {
	return &TimerService{pt: pt}
}

func (s *TimerService) State() models.TimerState { return s.pt.Snapshot() }

func (s *TimerService) Start()  { s.pt.Start() }
func (s *TimerService) Pause()  { s.pt.Pause() }
func (s *TimerService) Toggle() { s.pt.Toggle() }
func (s *TimerService) Reset()  { s.pt.Reset() }
func (s *TimerService) Skip()   { s.pt.Skip() }

// ChangePhase accepts "focus", "short_break" or "long_break" (case-insensitive).
// A running countdown is discarded only when confirm is true; otherwise
// timer.ErrConfirmationRequired is returned.
func (s *TimerService) ChangePhase(phase string, confirm bool) error {
	p := models.Phase(strings.ToLower(strings.TrimSpace(phase)))
	if !p.Valid() {
		return timer.ErrInvalidPhase
	}
	return s.pt.ChangePhase(p, confirm)
}

func (s *TimerService) Subscribe(buffer int) (<-chan timer.Event, func()) {
	return s.pt.Subscribe(buffer)
}
