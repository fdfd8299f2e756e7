//go:build go1.18

package domain

import "testing"

// FuzzParseAuditID checks that parsing never panics and valid ids round-trip.
func FuzzParseAuditID(f *testing.F) {
	f.Add("")
	f.Add("1")
	f.Add("000001")
	f.Add("9223372036854775807")
	f.Add("9223372036854775808")
	f.Add("'; DROP TABLE audits;--")
	f.Add(string([]byte{0x00, 0x01}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseAuditID(input)
		if err != nil {
			return
		}
		if id <= 0 {
			t.Errorf("accepted non-positive id %d from %q", id, input)
		}
		roundTrip, err := ParseAuditID(id.String())
		if err != nil {
			t.Errorf("valid id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed id value")
		}
	})
}
