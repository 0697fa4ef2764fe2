package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sde-casino/solitaire/internal/card"
)

// HTTPSource calls a deck-of-cards style HTTP API, grounded in
// original_source/solitaire/deck_adapter: GET {baseURL}/new_deck and
// GET {baseURL}/draw_cards/{deck_id}/{count}, each returning cards as
// {"value": "ACE".."KING", "suit": "HEARTS"|"DIAMONDS"|"CLUBS"|"SPADES"}.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a Source backed by the given base URL.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type wireCard struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

type newDeckResponse struct {
	Success bool       `json:"success"`
	DeckID  string     `json:"deck_id"`
	Cards   []wireCard `json:"cards"`
}

type drawResponse struct {
	Success bool       `json:"success"`
	Cards   []wireCard `json:"cards"`
}

func (s *HTTPSource) NewDeck(ctx context.Context) (string, [52]card.Card, error) {
	var cards [52]card.Card

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/new_deck", nil)
	if err != nil {
		return "", cards, fmt.Errorf("%w: %v", Unavailable, err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return "", cards, fmt.Errorf("%w: %v", Unavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", cards, fmt.Errorf("%w: status %d", Unavailable, resp.StatusCode)
	}

	var body newDeckResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", cards, fmt.Errorf("%w: %v", Unavailable, err)
	}
	if len(body.Cards) != 52 {
		// The adapter may issue the deck id separately from the
		// initial deal; draw the 52 cards explicitly in that case.
		drawn, err := s.Draw(ctx, body.DeckID, 52)
		if err != nil {
			return "", cards, err
		}
		body.Cards = nil
		for _, c := range drawn {
			body.Cards = append(body.Cards, wireCard{Value: c.Rank.String(), Suit: c.Suit.String()})
		}
	}
	for i, wc := range body.Cards {
		c, err := parseWireCard(wc)
		if err != nil {
			return "", cards, fmt.Errorf("%w: %v", Unavailable, err)
		}
		cards[i] = c
	}
	return body.DeckID, cards, nil
}

func (s *HTTPSource) Draw(ctx context.Context, deckID string, n int) ([]card.Card, error) {
	url := fmt.Sprintf("%s/draw_cards/%s/%d", s.BaseURL, deckID, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", Unavailable, resp.StatusCode)
	}

	var body drawResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", Unavailable, err)
	}
	cards := make([]card.Card, len(body.Cards))
	for i, wc := range body.Cards {
		c, err := parseWireCard(wc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", Unavailable, err)
		}
		cards[i] = c
	}
	return cards, nil
}

func parseWireCard(wc wireCard) (card.Card, error) {
	rank, err := card.ParseRank(strings.ToUpper(wc.Value))
	if err != nil {
		return card.Card{}, err
	}
	suit, err := card.ParseSuit(strings.ToLower(wc.Suit))
	if err != nil {
		return card.Card{}, err
	}
	return card.Card{Rank: rank, Suit: suit}, nil
}
