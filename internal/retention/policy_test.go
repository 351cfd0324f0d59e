package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTierValidate(t *testing.T) {
	require.NoError(t, Tier{Length: 24 * time.Hour, Chunk: time.Hour}.Validate())
	require.NoError(t, Tier{Length: time.Hour, Chunk: time.Hour}.Validate())

	require.ErrorIs(t, Tier{Length: time.Hour, Chunk: 0}.Validate(), ErrInvalidTier)
	require.ErrorIs(t, Tier{Length: time.Hour, Chunk: -time.Second}.Validate(), ErrInvalidTier)
	require.ErrorIs(t, Tier{Length: time.Hour, Chunk: 2 * time.Hour}.Validate(), ErrInvalidTier)
}

func TestTierChunks(t *testing.T) {
	require.Equal(t, int64(24), Tier{Length: 24 * time.Hour, Chunk: time.Hour}.Chunks())
	// floor division, the straddling remainder is not a chunk of its own
	require.Equal(t, int64(1), Tier{Length: 90 * time.Minute, Chunk: time.Hour}.Chunks())
}

func TestPolicyValidate(t *testing.T) {
	require.ErrorIs(t, Policy{}.Validate(), ErrEmptyPolicy)

	p := Policy{
		{Length: 6 * time.Hour, Chunk: time.Second},
		{Length: time.Second, Chunk: time.Hour}, // bad
	}
	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidTier)
	require.Contains(t, err.Error(), "tier 1")
}

func TestPolicyHorizon(t *testing.T) {
	p := Policy{
		{Length: 6 * time.Hour, Chunk: time.Second},
		{Length: 6 * time.Hour, Chunk: time.Hour},
		{Length: 8 * 24 * time.Hour, Chunk: 48 * time.Hour},
	}
	require.Equal(t, 12*time.Hour+8*24*time.Hour, p.Horizon())
}

func TestPolicyValidateOverflow(t *testing.T) {
	huge := time.Duration(1<<62 - 1)
	p := Policy{
		{Length: huge, Chunk: time.Hour},
		{Length: huge, Chunk: time.Hour},
	}
	require.ErrorIs(t, p.Validate(), ErrDurationOverflow)
}
