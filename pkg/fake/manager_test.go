//go:build test

package fake_test

import (
	"testing"

	"github.com/srg/blefake/internal/testutils"
	"github.com/srg/blefake/pkg/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	helper := testutils.NewTestHelper(t)
	m := fake.NewManager(helper.Logger)

	_, err := m.DefaultAdapter()
	assert.ErrorIs(t, err, fake.ErrNotFound)

	hci1, err := m.NewAdapter("hci1")
	require.NoError(t, err)
	hci0, err := m.NewAdapter("hci0")
	require.NoError(t, err)

	_, err = m.NewAdapter("hci0")
	assert.ErrorIs(t, err, fake.ErrDuplicateAdapter)
	assert.ErrorIs(t, m.AddAdapter(fake.NewAdapter("hci1", nil)), fake.ErrDuplicateAdapter)

	got, err := m.Adapter("hci1")
	require.NoError(t, err)
	assert.Same(t, hci1, got)

	assert.Equal(t, []*fake.Adapter{hci0, hci1}, m.Adapters())

	def, err := m.DefaultAdapter()
	require.NoError(t, err)
	assert.Same(t, hci0, def)

	assert.True(t, m.RemoveAdapter("hci0"))
	assert.False(t, m.RemoveAdapter("hci0"))
	_, err = m.Adapter("hci0")
	assert.ErrorIs(t, err, fake.ErrNotFound)
}
