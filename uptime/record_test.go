package uptime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportJSONShape(t *testing.T) {
	report := Report{
		nodeA: {Record: &Record{
			Name:                 "Sensei 1",
			Uptime:               KnownNumber(99.5),
			Location:             "Lagos, Nigeria",
			ExpirationDate:       Unknown,
			StakeFromSelf:        KnownNumber(5),
			StakeFromDelegations: UnknownNumber(),
		}},
		nodeB: {Placeholder: "Unavailable"},
	}

	body, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"NodeID-F3SZA2ZNdRjTBe3GYyRQFDaCXB3DyaZQQ": {
			"name": "Sensei 1",
			"uptime": 99.5,
			"location": "Lagos, Nigeria",
			"expiration_date": "Unknown",
			"stake_from_self": 5,
			"stake_from_delegations": "Unknown"
		},
		"NodeID-2Coj79FAu7rPdSdYdJ27CqTr1K2p45gze": "Unavailable"
	}`, string(body))

	var decoded Report
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, report, decoded)
}
