package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConnectedError(t *testing.T) {
	err := NotConnectedError()
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

func TestErrors(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name    string
		error   error
		code    gn.ErrorCode
		varsNum int
	}{
		{
			name:  "GORMConnectionError",
			error: GORMConnectionError(originalErr),
			code:  errcode.SchemaGORMConnectionError,
		},
		{
			name:  "CreateSchemaError",
			error: CreateSchemaError(originalErr),
			code:  errcode.SchemaCreateError,
		},
		{
			name:  "MigrateSchemaError",
			error: MigrateSchemaError(originalErr),
			code:  errcode.SchemaMigrateError,
		},
		{
			name: "CollationError",
			error: CollationError("profiles", "scientific_name",
				originalErr),
			code:    errcode.SchemaCollationError,
			varsNum: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.error.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Len(t, gnErr.Vars, tt.varsNum)
			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
		})
	}
}
