package idmap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsboot/internal/idmap"
	errs "nsboot/pkg/errors"
)

func TestParseRange(t *testing.T) {
	r, err := idmap.ParseRange("0:1000:1")
	require.NoError(t, err)
	assert.Equal(t, idmap.Range{NamespaceStart: 0, HostStart: 1000, Length: 1}, r)

	r, err = idmap.ParseRange("1 100000 65536")
	require.NoError(t, err)
	assert.Equal(t, "1 100000 65536", r.String())

	for _, bad := range []string{"", "0:1000", "a:b:c", "0:1000:1:2", "0:-1:1"} {
		_, err := idmap.ParseRange(bad)
		assert.ErrorIs(t, err, errs.ErrInvalidMapping, bad)
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   idmap.Table
		wantErr bool
	}{
		{"single root entry", idmap.Table{{0, 1000, 1}}, false},
		{"root plus subordinate range", idmap.Table{{0, 1000, 1}, {1, 100000, 65536}}, false},
		{"unsorted disjoint entries", idmap.Table{{1, 100000, 65536}, {0, 1000, 1}}, false},
		{"empty", nil, true},
		{"overlapping namespace id 0", idmap.Table{{0, 1000, 1}, {0, 2000, 1}}, true},
		{"overlapping namespace ranges", idmap.Table{{0, 1000, 10}, {5, 5000, 10}}, true},
		{"overlapping host ranges", idmap.Table{{0, 1000, 10}, {100, 1005, 10}}, true},
		{"zero length", idmap.Table{{0, 1000, 0}}, true},
		{"namespace id 0 not mapped", idmap.Table{{1, 1000, 1}}, true},
		{"overflows id space", idmap.Table{{0, 4294967295, 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate("uid")
			if tt.wantErr {
				assert.True(t, errors.Is(err, errs.ErrInvalidMapping), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_TooManyExtents(t *testing.T) {
	table := make(idmap.Table, 0, idmap.MaxExtents+1)
	for i := uint32(0); i <= idmap.MaxExtents; i++ {
		table = append(table, idmap.Range{NamespaceStart: i, HostStart: 100000 + i, Length: 1})
	}

	assert.ErrorIs(t, table.Validate("gid"), errs.ErrInvalidMapping)
	assert.NoError(t, table[:idmap.MaxExtents].Validate("gid"))
}

func TestTable_RenderAndLookup(t *testing.T) {
	table := idmap.Table{{0, 1000, 1}, {1, 100000, 65536}}

	assert.Equal(t, "0 1000 1\n1 100000 65536\n", table.Render())

	host, ok := table.HostID(42)
	assert.True(t, ok)
	assert.Equal(t, uint32(100041), host)

	_, ok = table.HostID(70000)
	assert.False(t, ok)
}

func TestSingleID(t *testing.T) {
	m := idmap.SingleID(1000, 1001)

	require.NoError(t, m.Validate())
	assert.Equal(t, "0 1000 1\n", m.UID.Render())
	assert.Equal(t, "0 1001 1\n", m.GID.Render())
	assert.False(t, m.IsEmpty())
	assert.True(t, idmap.Mapping{}.IsEmpty())
}
