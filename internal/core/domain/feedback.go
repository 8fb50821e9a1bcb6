package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidFeedback = errors.New("invalid feedback")

// FeedbackForm is what an interviewer submits for a candidate.
type FeedbackForm struct {
	OverallScore int    `json:"overallScore" validate:"required,min=1,max=10"`
	Strengths    string `json:"strengths" validate:"min=5"`
	Improvements string `json:"improvements" validate:"min=5"`
}

// Title renders the entry title for the form.
func (f FeedbackForm) Title() string {
	return fmt.Sprintf("Score: %d", f.OverallScore)
}

// Body renders the entry body for the form.
func (f FeedbackForm) Body() string {
	return fmt.Sprintf("**Strengths:** %s\n\n**Improvements:** %s", f.Strengths, f.Improvements)
}

// Entry builds the entry a submission produces before it has an id.
func (f FeedbackForm) Entry(candidateID int) FeedbackEntry {
	return FeedbackEntry{
		OwnerID: candidateID,
		Title:   f.Title(),
		Body:    f.Body(),
		Tags:    []string{},
	}
}

// FeedbackEntry is an upstream post rendered as interview feedback.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	OwnerID   int       `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Reactions Reactions `json:"reactions"`
	Tags      []string  `json:"tags"`
	// Local marks an entry synthesised after the remote create failed. It is
	// visible for the session only.
	Local bool `json:"local,omitempty"`
}

// Reactions is the reaction count of a post. The directory reports it either
// as a plain number or as {likes, dislikes}.
type Reactions int

func (r *Reactions) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*r = Reactions(n)
		return nil
	}
	var split struct {
		Likes    int `json:"likes"`
		Dislikes int `json:"dislikes"`
	}
	if err := json.Unmarshal(b, &split); err != nil {
		return fmt.Errorf("reactions: %w", err)
	}
	*r = Reactions(split.Likes + split.Dislikes)
	return nil
}
