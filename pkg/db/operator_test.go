package db_test

import (
	"testing"

	"github.com/gnames/gnprofiles/internal/iodb"
	"github.com/gnames/gnprofiles/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxOperator(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.NotNil(t, op)
	assert.Nil(t, op.Pool(), "pool is created by Connect")
	assert.Nil(t, op.Close())
}
