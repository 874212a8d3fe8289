package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestAsValidationError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name: "нарушение схемы коллекции",
			err: mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: codeDocumentValidationFailure, Message: "Document failed validation"},
			}},
			wantMessage: "Document failed validation",
		},
		{
			name: "другая ошибка записи",
			err: mongo.WriteException{WriteErrors: mongo.WriteErrors{
				{Code: 11000, Message: "duplicate key error"},
			}},
		},
		{
			name: "обычная ошибка",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationErr := asValidationError(tt.err)

			if tt.wantMessage == "" {
				assert.Nil(t, validationErr)
				return
			}
			require.NotNil(t, validationErr)
			assert.Equal(t, tt.wantMessage, validationErr.Error())
		})
	}
}

func TestRemoveSubscription_InvalidHex(t *testing.T) {
	// некорректный hex не доходит до коллекции, поэтому
	// достаточно нулевого Storage
	var s Storage

	deleted, err := s.RemoveSubscription(context.Background(), "not-a-hex-id")

	require.NoError(t, err)
	assert.Zero(t, deleted)
}
