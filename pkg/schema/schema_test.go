package schema_test

import (
	"testing"

	"github.com/gnames/gnprofiles/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, []string{
		"opuses",
		"vocabularies",
		"terms",
		"contributors",
		"profiles",
		"classifications",
		"attributes",
		"attribute_creators",
		"attribute_editors",
		"links",
		"link_creators",
		"authorships",
	}, schema.TableNames())
}

func TestAllModelsHaveTableNames(t *testing.T) {
	for _, v := range schema.AllModels() {
		_, ok := v.(interface{ TableName() string })
		assert.True(t, ok, "%T has no TableName", v)
	}
}
