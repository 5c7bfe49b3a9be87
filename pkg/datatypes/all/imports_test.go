package all_test

import (
	"testing"

	"github.com/leapstack-labs/datatypes/pkg/core"
	"github.com/leapstack-labs/datatypes/pkg/datatype"
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/all"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllBackendsRegistered(t *testing.T) {
	assert.Equal(t, []string{"generic", "oracle", "redshift", "snowflake"}, datatype.List())
}

func TestEveryBackend(t *testing.T) {
	for _, name := range datatype.List() {
		b, ok := datatype.Get(name)
		require.True(t, ok)

		t.Run(name+"/unknown option", func(t *testing.T) {
			_, err := datatype.NewColumn(name, "VARCHAR", datatype.Options{"length": "10", "bogus": true})
			assert.ErrorIs(t, err, datatype.ErrInvalidOption)
		})

		t.Run(name+"/definition for basetype", func(t *testing.T) {
			for _, bt := range core.AllBaseTypes() {
				col, err := b.DefinitionForBaseType(bt)
				require.NoError(t, err, bt.String())
				assert.True(t, col.BaseType().IsValid())
			}
		})

		t.Run(name+"/metadata round trip", func(t *testing.T) {
			for _, bt := range core.AllBaseTypes() {
				col, err := b.DefinitionForBaseType(bt)
				require.NoError(t, err)
				got, err := datatype.FromMetadata(b, col.ToMetadata())
				require.NoError(t, err)
				assert.Equal(t, col.SQLDefinition(), got.SQLDefinition())
			}
		})

		if b.AcceptsAnyType() {
			continue
		}
		t.Run(name+"/type case", func(t *testing.T) {
			for _, typ := range b.Types() {
				_, err := b.NewColumn(typ+"_X", nil)
				assert.ErrorIs(t, err, datatype.ErrInvalidType)
			}
		})
	}
}
