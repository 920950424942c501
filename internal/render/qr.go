package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/aaronzipp/hand-cricket/internal/models"
)

// SharePayload is the text encoded in the share code
func SharePayload(s models.Summary) string {
	return fmt.Sprintf("hand-cricket %s score=%d rounds=%d", s.GameID, s.FinalScore, s.Rounds)
}

// ShareCode renders the summary as a QR code made of terminal block characters
func ShareCode(s models.Summary) (string, error) {
	q, err := qrcode.New(SharePayload(s), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode share code: %w", err)
	}
	return q.ToSmallString(false), nil
}
