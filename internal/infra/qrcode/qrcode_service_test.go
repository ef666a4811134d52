package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQRCodeService_GenerateFollowQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	userID := uuid.New()
	pngBytes, err := service.GenerateFollowQR(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, pngBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ParseFollowQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	userID := uuid.New()
	payload, err := json.Marshal(QRCodeData{
		UserID: userID.String(),
		Type:   "follow",
	})
	assert.NoError(t, err)

	parsedID, err := service.ParseFollowQR(string(payload))
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestQRCodeService_ParseFollowQR_InvalidPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	testCases := []struct {
		name   string
		qrData string
	}{
		{"not json", "clearly-not-json"},
		{"wrong type", `{"user_id":"` + uuid.New().String() + `","type":"profile"}`},
		{"bad user id", `{"user_id":"not-a-uuid","type":"follow"}`},
		{"empty payload", `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsedID, err := service.ParseFollowQR(tc.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
		})
	}
}

func TestQRCodeService_ErrorCorrectionLevels(t *testing.T) {
	userID := uuid.New()

	for _, level := range []string{"L", "M", "Q", "H", "unknown"} {
		service := NewQRCodeService(128, level)
		pngBytes, err := service.GenerateFollowQR(userID)
		assert.NoError(t, err, "level %s", level)
		assert.NotEmpty(t, pngBytes, "level %s", level)
	}
}
