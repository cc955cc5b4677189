package resource

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirResolver_RelativeNamesJoinTheAnchor(t *testing.T) {
	t.Parallel()

	resolver := DirResolver{Root: "fixtures", Anchor: filepath.Join("fixtures", "parser")}

	location, err := resolver.Resolve("reports/spotbugs.xml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("fixtures", "parser", "reports", "spotbugs.xml"), location)
}

func TestDirResolver_LeadingSlashIgnoresTheAnchor(t *testing.T) {
	t.Parallel()

	resolver := DirResolver{Root: "fixtures", Anchor: filepath.Join("fixtures", "parser")}

	location, err := resolver.Resolve("/shared/reports/spotbugs.xml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("fixtures", "shared", "reports", "spotbugs.xml"), location)
}

func TestDirResolver_EmptyRootDefaultsToWorkingDirectory(t *testing.T) {
	t.Parallel()

	resolver := DirResolver{Anchor: "unused"}

	location, err := resolver.Resolve("/testdata/greeting.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("testdata", "greeting.txt"), location)
}

func TestDirResolver_RejectsUnusableNames(t *testing.T) {
	t.Parallel()

	_, err := DirResolver{Anchor: "fixtures"}.Resolve("  ")
	require.Error(t, err)

	// A relative name without an anchor has nowhere to resolve against.
	_, err = DirResolver{}.Resolve("greeting.txt")
	require.Error(t, err)
}

func TestDirResolver_AnchorChangesWhereTheSameNameLands(t *testing.T) {
	t.Parallel()

	first := DirResolver{Anchor: filepath.Join("fixtures", "checkstyle")}
	second := DirResolver{Anchor: filepath.Join("fixtures", "spotbugs")}

	a, err := first.Resolve("report.xml")
	require.NoError(t, err)
	b, err := second.Resolve("report.xml")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
