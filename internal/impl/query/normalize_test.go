package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringList_NilMeansNoConstraint(t *testing.T) {
	assert.Nil(t, StringList(nil, zap.NewNop()))
}

func TestStringList_ProperSlicePassesThrough(t *testing.T) {
	result := StringList([]any{"Comedy", "Drama"}, zap.NewNop())
	assert.Equal(t, []string{"Comedy", "Drama"}, result)
}

func TestStringList_SliceCoercesAndDropsNulls(t *testing.T) {
	result := StringList([]any{"Bill Murray", nil, float64(1984), 2.5, true}, zap.NewNop())
	assert.Equal(t, []string{"Bill Murray", "1984", "2.5", "true"}, result)
}

func TestStringList_StringSlicePassesThrough(t *testing.T) {
	result := StringList([]string{"Comedy"}, zap.NewNop())
	assert.Equal(t, []string{"Comedy"}, result)
}

func TestStringList_BlankStringIgnoredWithWarning(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	assert.Nil(t, StringList("   ", logger))
	assert.Equal(t, 1, observed.FilterLevelExact(zap.WarnLevel).Len())
}

func TestStringList_JSONArrayStringParses(t *testing.T) {
	result := StringList(`["Comedy", "Drama"]`, zap.NewNop())
	assert.Equal(t, []string{"Comedy", "Drama"}, result)
}

func TestStringList_JSONArrayStringCoercesNumbers(t *testing.T) {
	result := StringList(`[1, 2.5, "x", null]`, zap.NewNop())
	assert.Equal(t, []string{"1", "2.5", "x"}, result)
}

func TestStringList_BareStringBecomesSingleItem(t *testing.T) {
	result := StringList("Bill Murray", zap.NewNop())
	assert.Equal(t, []string{"Bill Murray"}, result)
}

func TestStringList_JSONNonArrayIgnored(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	assert.Nil(t, StringList(`{"genre": "Comedy"}`, logger))
	assert.Nil(t, StringList(`7.5`, logger))
	assert.Nil(t, StringList(`null`, logger))
	assert.Equal(t, 3, observed.FilterLevelExact(zap.WarnLevel).Len())
}

func TestStringList_UnsupportedTypeIgnored(t *testing.T) {
	core, observed := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	assert.Nil(t, StringList(float64(7), logger))
	assert.Nil(t, StringList(true, logger))
	assert.Equal(t, 2, observed.FilterLevelExact(zap.WarnLevel).Len())
}
