package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVolumesUnmarshalScalar(t *testing.T) {
	var m VolumeMap
	require.NoError(t, yaml.Unmarshal([]byte("SRV-EST: 100\n"), &m))

	require.EqualValues(t, 100, m.For("SRV-EST", 1))
	require.EqualValues(t, 100, m.For("SRV-EST", 12))
}

func TestVolumesUnmarshalMonthMap(t *testing.T) {
	var m VolumeMap
	require.NoError(t, yaml.Unmarshal([]byte("SRV-EST:\n  1: 80\n  2: 90\n"), &m))

	require.EqualValues(t, 80, m.For("SRV-EST", 1))
	require.EqualValues(t, 90, m.For("SRV-EST", 2))
	// Meses no declarados no venden.
	require.EqualValues(t, 0, m.For("SRV-EST", 3))
}

func TestVolumesRejectBadShapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"negativo", "SRV-EST: -5\n"},
		{"mes trece", "SRV-EST:\n  13: 10\n"},
		{"cantidad negativa", "SRV-EST:\n  3: -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m VolumeMap
			require.Error(t, yaml.Unmarshal([]byte(tc.in), &m))
		})
	}
}

func TestVolumeMapAbsentCodeIsZero(t *testing.T) {
	m := Flat(map[string]int64{"SRV-EST": 10})
	require.EqualValues(t, 0, m.For("NO-EXISTE", 5))
}

func TestLoadVolumes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volumenes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SRV-EST: 100\nCERT-DOC:\n  6: 40\n"), 0o644))

	m, err := LoadVolumes(path)
	require.NoError(t, err)
	require.EqualValues(t, 100, m.For("SRV-EST", 7))
	require.EqualValues(t, 40, m.For("CERT-DOC", 6))
	require.EqualValues(t, 0, m.For("CERT-DOC", 7))
}
