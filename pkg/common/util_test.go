package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperReducerFilter(t *testing.T) {
	items := []int{1, 2, 3, 4}

	assert.Equal(t, []string{"1", "2", "3", "4"}, Mapper(items, func(i int) string {
		return string(rune('0' + i))
	}))

	sum := Reducer(items, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 10, sum)

	even := Filter(items, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))
}

func TestParseOptionalFloat(t *testing.T) {
	v, err := ParseOptionalFloat("  ")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOptionalFloat(" 10.5 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 10.5, *v)

	_, err = ParseOptionalFloat("ten")
	assert.Error(t, err)
}
