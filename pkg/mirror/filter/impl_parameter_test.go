/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package filter_test

import (
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/mirror/pkg/mirror"
	"github.com/voedger/mirror/pkg/mirror/filter"
)

func paramStrings(seq iter.Seq[mirror.IParameter]) []string {
	ss := []string{}
	for p := range seq {
		ss = append(ss, fmt.Sprint(p))
	}
	return ss
}

func TestParameterFilter_Match(t *testing.T) {
	zoo := zooClass()

	tests := []struct {
		name   string
		filter mirror.IParameterFilter
		want   []string
	}{
		{"identity",
			filter.ForParameters(),
			[]string{
				"Parameter «NewZooWithName#0 name string»",
				"Parameter «NewZooWithCapacity#0 string»",
				"Parameter «NewZooWithCapacity#1 int»",
				"Parameter «NewZooWithCapacity#2 string»",
				"Parameter «NewZooOpened#0 bool»",
				"Parameter «newZooWith#0 name string»",
				"Parameter «newZooWith#1 animal filter_test.Animal»",
				"Parameter «NewZooFromDog#0 filter_test.Dog»",
			}},
		{"name",
			filter.ForParameters().WithName("name"),
			[]string{
				"Parameter «NewZooWithName#0 name string»",
				"Parameter «newZooWith#0 name string»",
			}},
		{"empty name never matches nameless parameters",
			filter.ForParameters().WithName(""),
			[]string{}},
		{"supertype",
			filter.ForParameters().OfType(animalType),
			[]string{
				"Parameter «newZooWith#1 animal filter_test.Animal»",
				"Parameter «NewZooFromDog#0 filter_test.Dog»",
			}},
		{"annotation",
			filter.ForParameters().WithAnnotation(injectType),
			[]string{"Parameter «newZooWith#1 animal filter_test.Animal»"}},
		{"no annotations and type",
			filter.ForParameters().WithNoAnnotations().OfType(animalType),
			[]string{"Parameter «NewZooFromDog#0 filter_test.Dog»"}},
		{"name and type",
			filter.ForParameters().WithName("name").OfType(intType),
			[]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.want, paramStrings(tt.filter.Matches(allParameters(zoo))))
		})
	}

	t.Run("nil parameter never matches", func(t *testing.T) {
		require.False(t, filter.ForParameters().Match(nil))
	})
}

func TestParameterFilter_Copy(t *testing.T) {
	require := require.New(t)

	f := filter.ForParameters().WithName("x").OfType(stringType).WithNoAnnotations()
	c := f.Copy()

	f.ClearName().ClearType().ClearAnnotations()

	n, ok := c.Name()
	require.True(ok)
	require.Equal("x", n)
	require.Equal(stringType, c.Type())
	aa, ok := c.Annotations()
	require.True(ok)
	require.Empty(aa)

	_, ok = f.Annotations()
	require.False(ok)
	require.Nil(f.Type())
}

func TestParameterFilter_String(t *testing.T) {
	tests := []struct {
		filter mirror.IParameterFilter
		want   string
	}{
		{filter.ForParameters(), "PARAMETERS(*)"},
		{filter.ForParameters().WithName(""), `PARAMETERS(NAME(""))`},
		{filter.ForParameters().OfType(stringType).WithAnnotation(injectType), "PARAMETERS(TYPE(string) AND ANNOTATIONS(filter_test.Inject))"},
	}

	require := require.New(t)
	for _, tt := range tests {
		require.Equal(tt.want, tt.filter.String())
	}
}
