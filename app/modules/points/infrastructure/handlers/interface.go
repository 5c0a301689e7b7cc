package pointshandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers defines the event handlers owned by the points module.
type Handlers interface {
	HandleCompetitionFinalized(msg *message.Message) ([]*message.Message, error)
	HandleScoreSubmitted(msg *message.Message) ([]*message.Message, error)
}
