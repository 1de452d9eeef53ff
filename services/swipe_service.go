package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Sunilkumarmehta2002/swipemyhood/apperrors"
	"github.com/Sunilkumarmehta2002/swipemyhood/models"
)

const (
	DirectionLike = "like"
	DirectionPass = "pass"
)

type SwipeStore interface {
	Create(ctx context.Context, swipe *models.Swipe) error
}

type MatchStore interface {
	Create(ctx context.Context, match *models.Match) error
	FindByUser(ctx context.Context, userID string) ([]models.Match, error)
}

// MatchScore is round(10 x mean) over the eight feature ratings, so scores
// range 10-50. The UI presents it as a percentage; the scale is kept anyway
// because ordering and top-score comparisons only need internal consistency.
func MatchScore(n models.Neighborhood) int {
	values := n.Features.Values()
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))
	return int(math.Round(mean * 10))
}

// DeckView describes where a session currently is in the deck.
type DeckView struct {
	Card      *models.Neighborhood `json:"card,omitempty"`
	Position  int                  `json:"position"`
	Total     int                  `json:"total"`
	Exhausted bool                 `json:"exhausted"`
}

// DecideResult reports the outcome of one swipe decision.
type DecideResult struct {
	Card      *models.Neighborhood `json:"card,omitempty"`
	Liked     bool                 `json:"liked"`
	Score     int                  `json:"score,omitempty"`
	Exhausted bool                 `json:"exhausted"`
	Note      string               `json:"note,omitempty"`
}

// SwipeService runs one swipe session per user over the fixed deck. A session
// moves Browsing -> Exhausted and never back; Reset starts a fresh session.
type SwipeService struct {
	deck    []models.Neighborhood
	swipes  SwipeStore
	matches MatchStore

	mu       sync.Mutex
	sessions map[string]*swipeSession
}

type swipeSession struct {
	mu    sync.Mutex
	index int
}

func NewSwipeService(deck []models.Neighborhood, swipes SwipeStore, matches MatchStore) *SwipeService {
	return &SwipeService{
		deck:     deck,
		swipes:   swipes,
		matches:  matches,
		sessions: make(map[string]*swipeSession),
	}
}

func (s *SwipeService) session(userID string) *swipeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &swipeSession{}
		s.sessions[userID] = sess
	}
	return sess
}

// Deck returns the user's current card and position.
func (s *SwipeService) Deck(userID string) DeckView {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	view := DeckView{Position: sess.index, Total: len(s.deck)}
	if sess.index >= len(s.deck) {
		view.Exhausted = true
		return view
	}
	card := s.deck[sess.index]
	view.Card = &card
	return view
}

// Decide records a like/pass on the current card. The cursor advances only
// after every record has been persisted; on a store failure the session stays
// on the same card so the user can retry. An exhausted session is a silent
// no-op: nothing is written and no error is returned.
func (s *SwipeService) Decide(ctx context.Context, userID, direction string) (DecideResult, error) {
	if direction != DirectionLike && direction != DirectionPass {
		return DecideResult{}, apperrors.Wrap(apperrors.ErrValidation, fmt.Errorf("unknown direction %q", direction))
	}

	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.index >= len(s.deck) {
		return DecideResult{Exhausted: true}, nil
	}

	card := s.deck[sess.index]
	liked := direction == DirectionLike
	now := time.Now().UTC()

	swipe := &models.Swipe{
		UserID:         userID,
		NeighborhoodID: card.ID,
		IsLike:         liked,
		Timestamp:      now,
		Neighborhood:   card,
	}
	if err := s.swipes.Create(ctx, swipe); err != nil {
		return DecideResult{}, apperrors.Wrap(apperrors.ErrSwipeNotSaved, err)
	}

	result := DecideResult{Card: &card, Liked: liked}
	if liked {
		result.Score = MatchScore(card)
		match := &models.Match{
			UserID:         userID,
			NeighborhoodID: card.ID,
			Score:          result.Score,
			Timestamp:      now,
			Neighborhood:   card,
		}
		if err := s.matches.Create(ctx, match); err != nil {
			return DecideResult{}, apperrors.Wrap(apperrors.ErrSwipeNotSaved, err)
		}
		result.Note = fmt.Sprintf("Added %s to your matches!", card.Name)
	}

	sess.index++
	result.Exhausted = sess.index >= len(s.deck)
	return result, nil
}

// Reset starts a fresh session at the top of the deck (the reload analogue).
func (s *SwipeService) Reset(userID string) DeckView {
	sess := s.session(userID)
	sess.mu.Lock()
	sess.index = 0
	sess.mu.Unlock()
	return s.Deck(userID)
}

// Matches lists the user's match records, newest first.
func (s *SwipeService) Matches(ctx context.Context, userID string) ([]models.Match, error) {
	return s.matches.FindByUser(ctx, userID)
}
