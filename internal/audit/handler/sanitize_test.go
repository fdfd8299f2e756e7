package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	responsible := "  7c1f5f33-2b8e-4a57-9e0e-4b8f6a5b1c10 "
	req := &AddFindingRequest{
		Description: "  loose cable across walkway\n",
		Location:    " corridor B ",
	}
	sanitize(req)
	assert.Equal(t, "loose cable across walkway", req.Description)
	assert.Equal(t, "corridor B", req.Location)

	ca := &FindingCorrectiveActionRequest{Text: " tape down ", ResponsiblePersonID: &responsible}
	sanitize(ca)
	assert.Equal(t, "tape down", ca.Text)
	assert.Equal(t, "7c1f5f33-2b8e-4a57-9e0e-4b8f6a5b1c10", *ca.ResponsiblePersonID)

	sanitize(nil)
	sanitize("not a pointer")
}
