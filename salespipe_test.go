package salespipe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salespipe "github.com/rtavil/salespipe"
	"github.com/rtavil/salespipe/pkg/tools"
)

func TestEngine_RunWithDefaults(t *testing.T) {
	engine := salespipe.New(salespipe.WithProvider(tools.NewResearcher(tools.WithSeed(3))))

	result, err := engine.Run(context.Background(), "Acme Corp", "Alice")
	require.NoError(t, err)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "Acme Corp", result.Research.CompanyName)
	assert.NotEmpty(t, result.Outreach.Outreach.Email)

	sess, err := engine.Sessions().Get(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Contains(t, sess.State, "research")
	assert.Contains(t, sess.State, "outreach")
}
