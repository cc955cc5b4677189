package resource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovsyannikovviva64/analysis-model/resource"
)

func TestReader_DecodeHelpersReportMissingResources(t *testing.T) {
	t.Parallel()

	reader := resource.New()
	const name = "testdata/no-such-fixture.yaml"

	var out map[string]any
	err := reader.YAML(name, &out)
	require.ErrorIs(t, err, resource.ErrUnavailable)

	_, err = reader.JSON(name)
	require.ErrorIs(t, err, resource.ErrUnavailable)

	_, err = reader.Env(name)
	require.ErrorIs(t, err, resource.ErrUnavailable)
}

func TestReader_JSONRejectsMalformedContent(t *testing.T) {
	t.Parallel()

	reader := resource.New()

	_, err := reader.JSON("testdata/greeting.txt")
	require.Error(t, err)
	require.NotErrorIs(t, err, resource.ErrUnavailable)
	require.Contains(t, err.Error(), "testdata/greeting.txt")
}

func TestReader_YAMLDecodeErrorsPropagate(t *testing.T) {
	t.Parallel()

	reader := resource.New()

	// greeting.txt is a plain scalar, not a mapping.
	var out map[string]any
	err := reader.YAML("testdata/greeting.txt", &out)
	require.Error(t, err)
	require.NotErrorIs(t, err, resource.ErrUnavailable)
}
