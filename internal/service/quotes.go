package service

import "math/rand/v2"

var quotes = []string{
	"The secret of getting ahead is getting started.",
	"Focus on being productive instead of busy.",
	"It always seems impossible until it's done.",
	"Small daily improvements are the key to staggering long-term results.",
	"Don't watch the clock; do what it does. Keep going.",
	"Concentrate all your thoughts upon the work at hand.",
	"You don't have to see the whole staircase, just take the first step.",
	"Action is the foundational key to all success.",
}

var messages = []string{
	"Great job! Time for a well-deserved break.",
	"Another session done. Keep up the momentum!",
	"Nice focus! Stretch, breathe, and recharge.",
	"You're making real progress. Enjoy your break!",
	"Well done! Step away from the screen for a moment.",
}

type QuoteService struct {
	intn func(n int) int
}

func NewQuoteService() *QuoteService {
	return &QuoteService{intn: rand.IntN}
}

// Quote returns a random motivational quote.
func (s *QuoteService) Quote() string { return quotes[s.intn(len(quotes))] }

// Message returns a random supportive message for the end of a focus session.
func (s *QuoteService) Message() string { return messages[s.intn(len(messages))] }
