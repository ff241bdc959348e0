package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type card struct {
	Number string `validate:"card_number"`
	Holder string `validate:"required"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      card
		wantErr string
	}{
		{name: "valid", in: card{Number: "4111 1111 1111 1111", Holder: "Ana"}},
		{name: "letters", in: card{Number: "4111-abcd", Holder: "Ana"}, wantErr: "card.Number failed on card_number"},
		{name: "too short", in: card{Number: "4111", Holder: "Ana"}, wantErr: "card.Number failed on card_number"},
		{name: "two fields", in: card{Number: "1"}, wantErr: "card.Number failed on card_number; card.Holder failed on required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
