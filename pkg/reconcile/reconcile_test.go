package reconcile

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-linux-isp/isptool/pkg/control"
)

func names(list []control.Record) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Name)
	}
	return out
}

func TestReconcileScenarios(t *testing.T) {
	tests := []struct {
		name    string
		catalog control.Set
		status  control.Set
		want    *Result
	}{
		{
			name:    "version differs",
			catalog: control.Set{{Name: "app", Version: "2.0"}},
			status:  control.Set{{Name: "app", Version: "1.0"}},
			want:    &Result{Upgradable: []control.Record{{Name: "app", Version: "2.0"}}},
		},
		{
			name:    "not on host",
			catalog: control.Set{{Name: "lib", Version: "1.0"}},
			status:  nil,
			want:    &Result{Uninstalled: []control.Record{{Name: "lib", Version: "1.0"}}},
		},
		{
			name:    "same version",
			catalog: control.Set{{Name: "lib", Version: "1.0"}},
			status:  control.Set{{Name: "lib", Version: "1.0"}},
			want:    &Result{Installed: []control.Record{{Name: "lib", Version: "1.0"}}},
		},
		{
			name:    "host only",
			catalog: nil,
			status:  control.Set{{Name: "busybox", Version: "1.36"}},
			want:    &Result{},
		},
		{
			name:    "no semantic comparison",
			catalog: control.Set{{Name: "lib", Version: "1.0"}},
			status:  control.Set{{Name: "lib", Version: "1.0.0"}},
			want:    &Result{Upgradable: []control.Record{{Name: "lib", Version: "1.0"}}},
		},
		{
			name:    "empty versions are equal",
			catalog: control.Set{{Name: "lib"}},
			status:  control.Set{{Name: "lib"}},
			want:    &Result{Installed: []control.Record{{Name: "lib"}}},
		},
		{
			name:    "empty version differs from set version",
			catalog: control.Set{{Name: "lib"}},
			status:  control.Set{{Name: "lib", Version: "1.0"}},
			want:    &Result{Upgradable: []control.Record{{Name: "lib"}}},
		},
		{
			name: "last record per name wins",
			catalog: control.Set{
				{Name: "lib"},
				{Name: "lib", Version: "1.0"},
				{Name: "lib", Version: "2.0"},
			},
			status: control.Set{
				{Name: "lib", Version: "2.0"},
				{Name: "lib", Version: "1.0"},
			},
			want: &Result{Upgradable: []control.Record{{Name: "lib", Version: "2.0"}}},
		},
		{
			name: "sorted by name",
			catalog: control.Set{
				{Name: "zeta", Version: "1"},
				{Name: "alpha", Version: "1"},
				{Name: "mid", Version: "1"},
			},
			status: nil,
			want: &Result{Uninstalled: []control.Record{
				{Name: "alpha", Version: "1"},
				{Name: "mid", Version: "1"},
				{Name: "zeta", Version: "1"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(tt.catalog, tt.status))
		})
	}
}

func randomSet(rng *rand.Rand) control.Set {
	var set control.Set
	for i := rng.Intn(30); i > 0; i-- {
		set = append(set, control.Record{
			Name:    fmt.Sprintf("pkg-%d", rng.Intn(20)),
			Version: fmt.Sprintf("%d.%d", rng.Intn(3), rng.Intn(2)),
		})
	}
	return set
}

func TestReconcileProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		catalog, status := randomSet(rng), randomSet(rng)
		result := Reconcile(catalog, status)

		catalogVersions := catalog.Versions()
		statusVersions := status.Versions()

		seen := make(map[string]int)
		for _, list := range [][]control.Record{result.Installed, result.Upgradable, result.Uninstalled} {
			for _, r := range list {
				seen[r.Name]++
			}
		}

		// Coverage and disjointness.
		require.Len(t, seen, len(catalogVersions))
		for name, count := range seen {
			require.Equal(t, 1, count, "name %s classified %d times", name, count)
			require.Contains(t, catalogVersions, name)
		}

		for _, r := range result.Installed {
			require.Equal(t, catalogVersions[r.Name], statusVersions[r.Name])
		}
		for _, r := range result.Upgradable {
			v, ok := statusVersions[r.Name]
			require.True(t, ok)
			require.NotEqual(t, catalogVersions[r.Name], v)
		}
		for _, r := range result.Uninstalled {
			require.NotContains(t, statusVersions, r.Name)
		}

		// Pure: same inputs, same output.
		require.Equal(t, result, Reconcile(catalog, status))
	}
}

func TestContains(t *testing.T) {
	list := []control.Record{{Name: "isp-iqtune", Version: "1"}, {Name: "libcamera-apps", Version: "1"}}

	assert.True(t, Contains(list, "isp-iqtune"))
	assert.False(t, Contains(list, "libcamera"))
	assert.False(t, Contains(nil, "libcamera"))
}

func TestPrint(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	result := Reconcile(
		control.Set{{Name: "a", Version: "1"}, {Name: "b", Version: "2"}, {Name: "c", Version: "1"}},
		control.Set{{Name: "a", Version: "1"}, {Name: "b", Version: "1"}},
	)
	assert.Equal(t, []string{"a"}, names(result.Installed))

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, result))

	want := "\n" +
		" [installed]      a\n" +
		"\n" +
		" [upgradable]     b\n" +
		"\n" +
		" [not installed]  c\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintEmpty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Reconcile(nil, nil)))
	assert.Equal(t, "\n\n\n\n", buf.String())
}
