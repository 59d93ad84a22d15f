package conf_test

import (
	"testing"

	conf "github.com/0xalexb/kalla-conf"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", conf.Version)
}
