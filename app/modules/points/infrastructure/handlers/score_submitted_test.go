package pointshandlers

import (
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	scoreevents "github.com/arena-ops/podium/app/modules/score/domain/events"
)

func TestHandleScoreSubmitted_AcceptsValidPayload(t *testing.T) {
	payload, err := json.Marshal(scoreevents.ScoreSubmittedPayload{
		CompetitionID: uuid.New(),
		ParticipantID: uuid.New(),
		JudgeID:       uuid.New(),
		RuleID:        uuid.New(),
		Value:         7.5,
	})
	require.NoError(t, err)

	msgs, err := newTestHandlers(&FakePointsService{}).
		HandleScoreSubmitted(message.NewMessage(watermill.NewUUID(), payload))
	require.NoError(t, err)
	require.Nil(t, msgs)
}

func TestHandleScoreSubmitted_BadPayload(t *testing.T) {
	msg := message.NewMessage(watermill.NewUUID(), []byte("{"))

	_, err := newTestHandlers(&FakePointsService{}).HandleScoreSubmitted(msg)
	require.Error(t, err)
}
