package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type levelHolder struct {
	Level string `validate:"required,loglevel"`
}

func TestNew_LogLevelTag(t *testing.T) {
	t.Parallel()

	validate := New()

	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.NoError(t, validate.Struct(&levelHolder{Level: level}), level)
	}

	err := validate.Struct(&levelHolder{Level: "chatty"})
	require.Error(t, err)
	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "loglevel", ve[0].Tag())
}
