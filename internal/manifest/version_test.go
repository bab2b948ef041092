package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  VersionKind
		want  string
	}{
		{
			name:  "bare integer",
			input: "7",
			kind:  VersionInt,
			want:  "7",
		},
		{
			name:  "single dot is a float",
			input: "7.1",
			kind:  VersionFloat,
			want:  "7.1",
		},
		{
			name:  "dotted triple is text",
			input: "7.3.2",
			kind:  VersionText,
			want:  "7.3.2",
		},
		{
			name:  "prefixed version is text",
			input: "v1",
			kind:  VersionText,
			want:  "v1",
		},
		{
			name:  "zero",
			input: "0",
			kind:  VersionInt,
			want:  "0",
		},
		{
			name:  "largest 16-bit integer",
			input: "65535",
			kind:  VersionInt,
			want:  "65535",
		},
		{
			name:  "integer overflowing 16 bits falls to float",
			input: "70000",
			kind:  VersionFloat,
			want:  "70000",
		},
		{
			name:  "negative integer falls to float",
			input: "-3",
			kind:  VersionFloat,
			want:  "-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.input)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestVersion_DisplayRoundTrip(t *testing.T) {
	// Display output, reclassified, must reproduce an equal value.
	versions := []Version{
		IntVersion(7),
		IntVersion(0),
		FloatVersion(7.1),
		FloatVersion(0.5),
		TextVersion("7.3.2"),
		TextVersion("v1"),
		TextVersion("latest"),
	}

	for _, v := range versions {
		t.Run(v.String(), func(t *testing.T) {
			again := Classify(v.String())
			assert.True(t, v.Equal(again), "round-trip of %q changed variant or value", v)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want int
	}{
		{"equal ints", IntVersion(7), IntVersion(7), 0},
		{"int ordering", IntVersion(3), IntVersion(7), -1},
		{"float ordering", FloatVersion(7.1), FloatVersion(7.0), 1},
		{"text ordering", TextVersion("1.2.3"), TextVersion("1.2.4"), -1},
		{"text ranks below float", TextVersion("9"), FloatVersion(1.0), -1},
		{"float ranks below int", FloatVersion(9.9), IntVersion(1), -1},
		{"text ranks below int", TextVersion("zzz"), IntVersion(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestVersion_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind VersionKind
		want string
	}{
		{"unquoted integer", "v: 7", VersionInt, "7"},
		{"unquoted float", "v: 7.1", VersionFloat, "7.1"},
		{"dotted triple", "v: 7.3.2", VersionText, "7.3.2"},
		{"quoted integer stays text", `v: "7"`, VersionText, "7"},
		{"plain word", "v: v1", VersionText, "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V Version `yaml:"v"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &out))
			assert.Equal(t, tt.kind, out.V.Kind())
			assert.Equal(t, tt.want, out.V.String())
		})
	}
}

func TestVersion_UnmarshalYAML_RejectsNonScalar(t *testing.T) {
	var out struct {
		V Version `yaml:"v"`
	}
	err := yaml.Unmarshal([]byte("v: [1, 2]"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScalarRequired)
}

func TestRequirementSet_Unmarshal(t *testing.T) {
	doc := `
zlib: 1.2
python: 3
openssl: 1.1.1w
`
	var reqs RequirementSet
	require.NoError(t, yaml.Unmarshal([]byte(doc), &reqs))
	require.Len(t, reqs, 3)

	assert.Equal(t, VersionFloat, reqs["zlib"].Kind())
	assert.Equal(t, VersionInt, reqs["python"].Kind())
	assert.Equal(t, VersionText, reqs["openssl"].Kind())
	assert.Equal(t, "1.1.1w", reqs["openssl"].String())
}
