package order

import (
	"strings"

	"orderfeatures/internal/pkg/errs"
)

// Column names of the order_reviews table.
const (
	ColumnReviewID    = "review_id"
	ColumnReviewScore = "review_score"
)

const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Review is a customer satisfaction score attached to an order.
type Review struct {
	ID      string
	OrderID string
	Score   int
}

// NewReview creates a review row; the score must be within [1, 5].
func NewReview(id, orderID string, score int) (Review, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return Review{}, errs.NewValueIsRequiredError(ColumnOrderID)
	}

	if score < MinReviewScore || score > MaxReviewScore {
		return Review{}, errs.NewValueIsOutOfRangeError(ColumnReviewScore, score, MinReviewScore, MaxReviewScore)
	}

	return Review{ID: strings.TrimSpace(id), OrderID: orderID, Score: score}, nil
}

// IsFiveStar reports a top score.
func (r Review) IsFiveStar() bool {
	return r.Score == MaxReviewScore
}

// IsOneStar reports a bottom score.
func (r Review) IsOneStar() bool {
	return r.Score == MinReviewScore
}
