package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocap "github.com/syndtr/gocapability/capability"
	"gopkg.in/yaml.v3"

	"nsboot/internal/capability"
)

func TestParseCap(t *testing.T) {
	for _, name := range []string{"CAP_SETUID", "cap_setuid", "setuid", " SETUID "} {
		c, err := capability.ParseCap(name)
		require.NoError(t, err, name)
		assert.Equal(t, gocap.CAP_SETUID, c)
	}

	_, err := capability.ParseCap("CAP_FLY")
	assert.Error(t, err)
}

func TestParseAllowList_SortsAndDeduplicates(t *testing.T) {
	list, err := capability.ParseAllowList([]string{"setuid", "CAP_SETGID", "CAP_SETUID", ""})

	require.NoError(t, err)
	assert.Equal(t, []string{"CAP_SETGID", "CAP_SETUID"}, list.Names())
	assert.Equal(t, "CAP_SETGID,CAP_SETUID", list.String())
	assert.True(t, list.Contains(gocap.CAP_SETGID))
	assert.False(t, list.Contains(gocap.CAP_SYS_ADMIN))
}

func TestAllowList_YAML(t *testing.T) {
	var doc struct {
		Capabilities capability.AllowList `yaml:"capabilities"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("capabilities: [net_bind_service, CAP_CHOWN]\n"), &doc))
	assert.Equal(t, capability.NewAllowList(gocap.CAP_CHOWN, gocap.CAP_NET_BIND_SERVICE), doc.Capabilities)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "CAP_NET_BIND_SERVICE")

	assert.Error(t, yaml.Unmarshal([]byte("capabilities: [cap_bogus]\n"), &doc))
}
